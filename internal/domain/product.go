package domain

// Status is the lifecycle state of a product. The backend speaks the
// Spanish literals on the wire, so the constants keep them verbatim.
type Status string

const (
	StatusActive   Status = "Activo"
	StatusInactive Status = "Inactivo"
)

// Units is the fixed vocabulary the unit field must be chosen from.
var Units = []string{"kg", "g", "l", "ml", "unidad", "caja", "paquete"}

// Product represents the product model exchanged with the backend.
type Product struct {
	// Unique identifier, set exactly once at creation and never mutated
	Code string `json:"code" validate:"required,min=3,max=50"`

	ProviderID int `json:"providerId" validate:"required,gte=1"`

	// Letters and spaces only, including Spanish accented characters
	Name string `json:"name" validate:"required,prodname,max=100"`

	Description string `json:"description" validate:"required,max=200"`

	Unit string `json:"unit" validate:"required,unit"`

	Price float64 `json:"price" validate:"gte=0.01"`

	Stock int `json:"stock" validate:"gte=0"`

	Status Status `json:"status" validate:"required,oneof=Activo Inactivo"`

	// Assigned by the server, never edited by the form
	CreatedDate string `json:"createdDate,omitempty"`
}

// Products is a collection of Product
type Products []Product
