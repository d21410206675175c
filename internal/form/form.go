package form

import (
	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
)

// Mode tells the form whether it is creating a new product or editing an
// existing one. It is fixed for the lifetime of the form.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Fields is the raw editable field set of the form.
type Fields struct {
	Code        string
	ProviderID  int
	Name        string
	Description string
	Unit        string
	Price       float64
	Stock       int
	Status      domain.Status
}

var fieldNames = []string{
	"Code", "ProviderID", "Name", "Description", "Unit", "Price", "Stock", "Status",
}

// blank is the default template the form resets to on cancel.
func blank() Fields {
	return Fields{Price: 0.01, Stock: 0, Status: domain.StatusActive}
}

// Form is a validated input surface for a single product. In edit mode the
// code field is locked: user edits to it are never validated and the emitted
// record always carries the original code.
type Form struct {
	mode      Mode
	original  domain.Product
	validator *domain.Validation
	touched   map[string]bool

	// Fields holds the working values the caller fills in before Submit.
	Fields Fields
}

// NewCreate returns a form in create mode with the blank template.
func NewCreate(v *domain.Validation) *Form {
	return &Form{
		mode:      ModeCreate,
		validator: v,
		touched:   map[string]bool{},
		Fields:    blank(),
	}
}

// NewEdit returns a form in edit mode pre-filled from the original record.
func NewEdit(v *domain.Validation, original domain.Product) *Form {
	status := original.Status
	if status == "" {
		status = domain.StatusActive
	}
	return &Form{
		mode:      ModeEdit,
		original:  original,
		validator: v,
		touched:   map[string]bool{},
		Fields: Fields{
			Code:        original.Code,
			ProviderID:  original.ProviderID,
			Name:        original.Name,
			Description: original.Description,
			Unit:        original.Unit,
			Price:       original.Price,
			Stock:       original.Stock,
			Status:      status,
		},
	}
}

func (f *Form) Mode() Mode { return f.mode }

// Original returns the record supplied at initialization. Only meaningful in
// edit mode.
func (f *Form) Original() domain.Product { return f.original }

// Touched reports whether the named field has been flagged for inline error
// rendering.
func (f *Form) Touched(field string) bool { return f.touched[field] }

// Submit validates the current fields. On success it returns the finalized
// record; in edit mode the immutable code is force-merged from the original,
// overriding anything written into the locked field. On failure it returns
// the field errors and flags every field as touched, emitting nothing.
func (f *Form) Submit() (domain.Product, domain.ValidationErrors) {
	product := domain.Product{
		Code:        f.Fields.Code,
		ProviderID:  f.Fields.ProviderID,
		Name:        f.Fields.Name,
		Description: f.Fields.Description,
		Unit:        f.Fields.Unit,
		Price:       f.Fields.Price,
		Stock:       f.Fields.Stock,
		Status:      f.Fields.Status,
	}

	var errs domain.ValidationErrors
	if f.mode == ModeEdit {
		product.Code = f.original.Code
		errs = f.validator.ValidateExcept(&product, "Code")
	} else {
		errs = f.validator.Validate(&product)
	}

	if len(errs) > 0 {
		for _, name := range fieldNames {
			f.touched[name] = true
		}
		return domain.Product{}, errs
	}

	return product, nil
}

// Cancel resets the fields to the blank template without emitting a save.
func (f *Form) Cancel() {
	f.Fields = blank()
	f.touched = map[string]bool{}
}
