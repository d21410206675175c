package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method    string
	path      string
	requestID string
	body      []byte
}

func newRecordingBackend(t *testing.T) (ProductClient, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	router := mux.NewRouter()
	record := func(status int, payload interface{}) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rec.method = r.Method
			rec.path = r.URL.Path
			rec.requestID = r.Header.Get("X-Request-ID")
			if r.Body != nil {
				var buf [1024]byte
				n, _ := r.Body.Read(buf[:])
				rec.body = buf[:n]
			}
			w.WriteHeader(status)
			if payload != nil {
				json.NewEncoder(w).Encode(payload)
			}
		}
	}

	sample := domain.Product{Code: "ABC123", Name: "Arroz", Status: domain.StatusActive}
	router.HandleFunc("/api/products", record(http.StatusOK, domain.Products{sample})).Methods(http.MethodGet)
	router.HandleFunc("/api/products", record(http.StatusCreated, sample)).Methods(http.MethodPost)
	router.HandleFunc("/api/products/pdf", func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		w.Write([]byte("%PDF-1.4 stub"))
	}).Methods(http.MethodGet)
	router.HandleFunc("/api/products/status/{status}", record(http.StatusOK, domain.Products{})).Methods(http.MethodGet)
	router.HandleFunc("/api/products/physical/{code}", record(http.StatusNoContent, nil)).Methods(http.MethodDelete)
	router.HandleFunc("/api/products/{code}/restore", record(http.StatusNoContent, nil)).Methods(http.MethodPut)
	router.HandleFunc("/api/products/{code}", record(http.StatusOK, sample)).Methods(http.MethodGet, http.MethodPut)
	router.HandleFunc("/api/products/{code}", record(http.StatusNoContent, nil)).Methods(http.MethodDelete)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return New(srv.URL, srv.Client(), hclog.NewNullLogger()), rec
}

func TestRequestShapes(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		call   func(c ProductClient) error
		method string
		path   string
	}{
		{
			"list all",
			func(c ProductClient) error { _, err := c.ListAll(ctx); return err },
			http.MethodGet, "/api/products",
		},
		{
			"create",
			func(c ProductClient) error {
				_, err := c.Create(ctx, domain.Product{Code: "ABC123", Name: "Arroz"})
				return err
			},
			http.MethodPost, "/api/products",
		},
		{
			"get by code",
			func(c ProductClient) error { _, err := c.GetByCode(ctx, "ABC123"); return err },
			http.MethodGet, "/api/products/ABC123",
		},
		{
			"get by status",
			func(c ProductClient) error { _, err := c.GetByStatus(ctx, domain.StatusInactive); return err },
			http.MethodGet, "/api/products/status/Inactivo",
		},
		{
			"update",
			func(c ProductClient) error {
				_, err := c.Update(ctx, "ABC123", domain.Product{Name: "Arroz"})
				return err
			},
			http.MethodPut, "/api/products/ABC123",
		},
		{
			"soft delete",
			func(c ProductClient) error { return c.SoftDelete(ctx, "ABC123") },
			http.MethodDelete, "/api/products/ABC123",
		},
		{
			"restore",
			func(c ProductClient) error { return c.Restore(ctx, "ABC123") },
			http.MethodPut, "/api/products/ABC123/restore",
		},
		{
			"hard delete",
			func(c ProductClient) error { return c.HardDelete(ctx, "ABC123") },
			http.MethodDelete, "/api/products/physical/ABC123",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newRecordingBackend(t)

			require.NoError(t, tc.call(c))
			assert.Equal(t, tc.method, rec.method)
			assert.Equal(t, tc.path, rec.path)
			assert.NotEmpty(t, rec.requestID, "every request carries an X-Request-ID")
		})
	}
}

func TestCreateSendsProductBody(t *testing.T) {
	c, rec := newRecordingBackend(t)

	_, err := c.Create(context.Background(), domain.Product{
		Code: "ABC123", ProviderID: 1, Name: "Arroz", Description: "Grano",
		Unit: "kg", Price: 2.5, Stock: 10, Status: domain.StatusActive,
	})
	require.NoError(t, err)

	var sent domain.Product
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "ABC123", sent.Code)
	assert.Equal(t, 2.5, sent.Price)
}

func TestExportReportPDFReturnsRawBytes(t *testing.T) {
	c, _ := newRecordingBackend(t)

	pdf, err := c.ExportReportPDF(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 stub", string(pdf))
}

func TestNotFoundMapsToDomainError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	c := New(srv.URL, srv.Client(), hclog.NewNullLogger())

	_, err := c.GetByCode(context.Background(), "NOPE")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestServerErrorSurfacesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := New(srv.URL, srv.Client(), hclog.NewNullLogger())

	_, err := c.ListAll(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "boom")
}
