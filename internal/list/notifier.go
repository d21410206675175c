package list

import (
	"sync"
	"time"
)

// DefaultNotificationTTL is how long a transient notification stays visible.
const DefaultNotificationTTL = 5 * time.Second

type noteKind int

const (
	noteSuccess noteKind = iota
	noteError
)

// Notifier holds the single current transient notification. Publishing a new
// message invalidates the previous expiry token, so only one timer is ever
// logically active, and Close cancels any pending expiry.
type Notifier struct {
	mu    sync.Mutex
	msg   string
	kind  noteKind
	token int
	timer *time.Timer
	ttl   time.Duration
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl}
}

// Success publishes a transient success message.
func (n *Notifier) Success(msg string) { n.publish(msg, noteSuccess) }

// Error publishes a transient error message.
func (n *Notifier) Error(msg string) { n.publish(msg, noteError) }

func (n *Notifier) publish(msg string, kind noteKind) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.token++
	token := n.token
	if n.timer != nil {
		n.timer.Stop()
	}

	n.msg = msg
	n.kind = kind
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(token) })
}

// expire clears the message only when it still belongs to the token's
// notification; a newer message keeps its own timer.
func (n *Notifier) expire(token int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if token == n.token {
		n.msg = ""
	}
}

// SuccessMessage returns the current success message, or "" when the current
// notification is an error or has expired.
func (n *Notifier) SuccessMessage() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.kind != noteSuccess {
		return ""
	}
	return n.msg
}

// ErrorMessage returns the current error message, or "" when the current
// notification is a success or has expired.
func (n *Notifier) ErrorMessage() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.kind != noteError {
		return ""
	}
	return n.msg
}

// Clear drops the current notification without waiting for expiry.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.token++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.msg = ""
}

// Close cancels any pending expiry timer.
func (n *Notifier) Close() {
	n.Clear()
}
