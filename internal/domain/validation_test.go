package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		Code:        "ABC123",
		ProviderID:  1,
		Name:        "Arroz",
		Description: "Grano",
		Unit:        "kg",
		Price:       2.5,
		Stock:       10,
		Status:      StatusActive,
	}
}

func TestValidateProduct(t *testing.T) {
	v := NewValidation()

	testCases := []struct {
		name   string
		mutate func(p *Product)
		field  string
	}{
		{"valid product", func(p *Product) {}, ""},
		{"zero stock is valid", func(p *Product) { p.Stock = 0 }, ""},
		{"accented name is valid", func(p *Product) { p.Name = "Azúcar añeja" }, ""},
		{"code too short", func(p *Product) { p.Code = "AB" }, "Code"},
		{"missing code", func(p *Product) { p.Code = "" }, "Code"},
		{"provider zero", func(p *Product) { p.ProviderID = 0 }, "ProviderID"},
		{"name with digits", func(p *Product) { p.Name = "Arroz123" }, "Name"},
		{"empty name", func(p *Product) { p.Name = "" }, "Name"},
		{"empty description", func(p *Product) { p.Description = "" }, "Description"},
		{"unknown unit", func(p *Product) { p.Unit = "toneladas" }, "Unit"},
		{"price zero", func(p *Product) { p.Price = 0 }, "Price"},
		{"negative stock", func(p *Product) { p.Stock = -1 }, "Stock"},
		{"unknown status", func(p *Product) { p.Status = "Pendiente" }, "Status"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)

			errs := v.Validate(&p)

			if tc.field == "" {
				assert.Empty(t, errs)
				return
			}

			require.NotEmpty(t, errs)
			fields := make([]string, 0, len(errs))
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestValidateExceptSkipsLockedCode(t *testing.T) {
	v := NewValidation()

	p := validProduct()
	p.Code = "X" // too short, but locked in edit mode

	assert.Empty(t, v.ValidateExcept(&p, "Code"))
	assert.NotEmpty(t, v.Validate(&p))
}

func TestValidationErrorMessage(t *testing.T) {
	v := NewValidation()

	p := validProduct()
	p.Name = "Arroz 99"

	errs := v.Validate(&p)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "Name")
}
