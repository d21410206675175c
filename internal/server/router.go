package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the stub backend's REST contract. The fixed paths (/pdf,
// /status/{status}, /physical/{code}) are registered before the bare {code}
// routes so they are matched first.
func NewRouter(ph *ProductHandler, mw *Middleware) *mux.Router {
	router := mux.NewRouter()

	router.Use(mw.LoggingMiddleware)

	api := router.PathPrefix("/api/products").Subrouter()

	api.HandleFunc("", ph.List).Methods(http.MethodGet)
	api.HandleFunc("/pdf", ph.ReportPDF).Methods(http.MethodGet)
	api.HandleFunc("/status/{status}", ph.GetByStatus).Methods(http.MethodGet)
	api.HandleFunc("/physical/{code}", ph.HardDelete).Methods(http.MethodDelete)
	api.HandleFunc("/{code}/restore", ph.Restore).Methods(http.MethodPut)

	// Routes carrying a product body go through the validation middleware.
	api.Handle("", mw.ValidationMiddleware(http.HandlerFunc(ph.Create))).Methods(http.MethodPost)
	api.Handle("/{code}", mw.ValidationMiddleware(http.HandlerFunc(ph.Update))).Methods(http.MethodPut)

	api.HandleFunc("/{code}", ph.GetByCode).Methods(http.MethodGet)
	api.HandleFunc("/{code}", ph.SoftDelete).Methods(http.MethodDelete)

	return router
}
