package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/client"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/store"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBackend(t *testing.T) (client.ProductClient, *httptest.Server) {
	t.Helper()

	logger := hclog.NewNullLogger()
	handler := NewProductHandler(store.NewMemory(store.SampleProducts()...), logger)
	router := NewRouter(handler, NewMiddleware(logger, domain.NewValidation()))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return client.New(srv.URL, srv.Client(), logger), srv
}

func TestListAll(t *testing.T) {
	c, _ := newTestBackend(t)

	products, err := c.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestCreateThenReloadIncludesRecord(t *testing.T) {
	c, _ := newTestBackend(t)

	created, err := c.Create(context.Background(), domain.Product{
		Code: "ABC123", ProviderID: 1, Name: "Arroz", Description: "Grano",
		Unit: "kg", Price: 2.5, Stock: 10, Status: domain.StatusActive,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.CreatedDate, "server assigns the creation date")

	products, err := c.ListAll(context.Background())
	require.NoError(t, err)
	assert.Contains(t, products, *created)
}

func TestCreateInvalidProductRejected(t *testing.T) {
	c, _ := newTestBackend(t)

	_, err := c.Create(context.Background(), domain.Product{
		Code: "ABC123", ProviderID: 1, Name: "Arroz123", Description: "Grano",
		Unit: "kg", Price: 2.5, Stock: 10, Status: domain.StatusActive,
	})

	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
}

func TestCreateDuplicateCodeConflicts(t *testing.T) {
	c, _ := newTestBackend(t)

	_, err := c.Create(context.Background(), domain.Product{
		Code: "ARZ001", ProviderID: 1, Name: "Duplicado", Description: "Copia",
		Unit: "kg", Price: 1, Stock: 1, Status: domain.StatusActive,
	})

	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
}

func TestUpdatePathCodeAuthoritative(t *testing.T) {
	c, _ := newTestBackend(t)

	updated, err := c.Update(context.Background(), "ARZ001", domain.Product{
		Code: "IGNORED", ProviderID: 4, Name: "Arroz integral", Description: "Grano entero",
		Unit: "kg", Price: 3.2, Stock: 60, Status: domain.StatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, "ARZ001", updated.Code)
	assert.Equal(t, "Arroz integral", updated.Name)
}

func TestGetByCodeNotFound(t *testing.T) {
	c, _ := newTestBackend(t)

	_, err := c.GetByCode(context.Background(), "NOPE")

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetByStatus(t *testing.T) {
	c, _ := newTestBackend(t)

	inactive, err := c.GetByStatus(context.Background(), domain.StatusInactive)

	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "LCH003", inactive[0].Code)
}

func TestSoftDeleteRestoreLifecycle(t *testing.T) {
	c, _ := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, c.SoftDelete(ctx, "ARZ001"))
	p, err := c.GetByCode(ctx, "ARZ001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInactive, p.Status)

	require.NoError(t, c.Restore(ctx, "ARZ001"))
	p, err = c.GetByCode(ctx, "ARZ001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, p.Status)
}

func TestHardDeleteRemovesPermanently(t *testing.T) {
	c, _ := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, c.HardDelete(ctx, "ARZ001"))

	_, err := c.GetByCode(ctx, "ARZ001")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.ErrorIs(t, c.HardDelete(ctx, "ARZ001"), domain.ErrProductNotFound)
}

func TestReportPDF(t *testing.T) {
	c, _ := newTestBackend(t)

	pdf, err := c.ExportReportPDF(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
