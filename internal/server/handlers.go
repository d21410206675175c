package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/report"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/store"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
)

// ProductHandler serves the stub backend's REST contract over the in-memory
// store.
type ProductHandler struct {
	store  *store.Memory
	logger hclog.Logger
}

func NewProductHandler(s *store.Memory, logger hclog.Logger) *ProductHandler {
	return &ProductHandler{store: s, logger: logger}
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// GetByCode handles GET /api/products/{code}
func (h *ProductHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	product, err := h.store.GetByCode(code)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// GetByStatus handles GET /api/products/status/{status}
func (h *ProductHandler) GetByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.Status(mux.Vars(r)["status"])
	writeJSON(w, http.StatusOK, h.store.GetByStatus(status))
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	product, ok := r.Context().Value(ContextKeyProduct).(*domain.Product)
	if !ok {
		http.Error(w, "Invalid product data", http.StatusBadRequest)
		return
	}

	created, err := h.store.Create(*product)
	if err != nil {
		if errors.Is(err, domain.ErrCodeExists) {
			http.Error(w, "Product code already exists", http.StatusConflict)
			return
		}
		h.logger.Error("Error creating product", "error", err)
		http.Error(w, "Error creating product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/products/{code}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	product, ok := r.Context().Value(ContextKeyProduct).(*domain.Product)
	if !ok {
		http.Error(w, "Invalid product data", http.StatusBadRequest)
		return
	}

	updated, err := h.store.Update(code, *product)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// SoftDelete handles DELETE /api/products/{code}
func (h *ProductHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if err := h.store.SoftDelete(code); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Restore handles PUT /api/products/{code}/restore
func (h *ProductHandler) Restore(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if err := h.store.Restore(code); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HardDelete handles DELETE /api/products/physical/{code}
func (h *ProductHandler) HardDelete(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	if err := h.store.HardDelete(code); err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReportPDF handles GET /api/products/pdf
func (h *ProductHandler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := report.BuildProductsPDF(h.store.List())
	if err != nil {
		h.logger.Error("Error rendering report", "error", err)
		http.Error(w, "Error rendering report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Write(pdf)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
