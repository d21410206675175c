package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

type contextKey string

// ContextKeyProduct carries the validated product through the request context.
const ContextKeyProduct contextKey = "product"

// Middleware holds dependencies for the stub server middleware functions.
type Middleware struct {
	Logger    hclog.Logger
	Validator *domain.Validation
}

func NewMiddleware(logger hclog.Logger, validator *domain.Validation) *Middleware {
	return &Middleware{Logger: logger, Validator: validator}
}

// LoggingMiddleware logs incoming requests and responses, echoing the
// client's X-Request-ID or minting one when absent.
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", time.Since(start),
		)
	})
}

// ValidationMiddleware validates the product in the request body and adds it
// to the context.
func (m *Middleware) ValidationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			m.Logger.Error("Error decoding product", "error", err)
			http.Error(w, "Invalid product data", http.StatusBadRequest)
			return
		}

		var errs domain.ValidationErrors
		if r.Method == http.MethodPut {
			// The path code is authoritative on update; the body code is
			// ignored and therefore not validated.
			errs = m.Validator.ValidateExcept(&product, "Code")
		} else {
			errs = m.Validator.Validate(&product)
		}
		if len(errs) > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(errs)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyProduct, &product)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
