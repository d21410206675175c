package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// ProductClient exposes one operation per backend capability. Every call is
// fire-once: no retries, no client-imposed timeout, failures reported to the
// caller unmodified.
type ProductClient interface {
	ListAll(ctx context.Context) (domain.Products, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
	GetByStatus(ctx context.Context, status domain.Status) (domain.Products, error)
	Update(ctx context.Context, code string, product domain.Product) (*domain.Product, error)
	SoftDelete(ctx context.Context, code string) error
	Restore(ctx context.Context, code string) error
	HardDelete(ctx context.Context, code string) error
	ExportReportPDF(ctx context.Context) ([]byte, error)
}

// StatusError is returned when the backend answers with a non-success status
// that has no dedicated mapping.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

type httpProductClient struct {
	baseURL    string
	httpClient *http.Client
	logger     hclog.Logger
}

// New creates a ProductClient talking to <baseURL>/api/products. A nil
// httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client, logger hclog.Logger) ProductClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &httpProductClient{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/products",
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *httpProductClient) ListAll(ctx context.Context) (domain.Products, error) {
	c.logger.Debug("Listing all products")

	var products domain.Products
	if err := c.do(ctx, http.MethodGet, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *httpProductClient) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	c.logger.Debug("Creating product", "code", product.Code)

	var created domain.Product
	if err := c.do(ctx, http.MethodPost, "", &product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *httpProductClient) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	c.logger.Debug("Getting product by code", "code", code)

	var product domain.Product
	if err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(code), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *httpProductClient) GetByStatus(ctx context.Context, status domain.Status) (domain.Products, error) {
	c.logger.Debug("Getting products by status", "status", status)

	var products domain.Products
	if err := c.do(ctx, http.MethodGet, "/status/"+url.PathEscape(string(status)), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *httpProductClient) Update(ctx context.Context, code string, product domain.Product) (*domain.Product, error) {
	c.logger.Debug("Updating product", "code", code)

	// The path code is authoritative; the body code is ignored by convention.
	var updated domain.Product
	if err := c.do(ctx, http.MethodPut, "/"+url.PathEscape(code), &product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *httpProductClient) SoftDelete(ctx context.Context, code string) error {
	c.logger.Debug("Soft deleting product", "code", code)
	return c.do(ctx, http.MethodDelete, "/"+url.PathEscape(code), nil, nil)
}

func (c *httpProductClient) Restore(ctx context.Context, code string) error {
	c.logger.Debug("Restoring product", "code", code)
	return c.do(ctx, http.MethodPut, "/"+url.PathEscape(code)+"/restore", nil, nil)
}

func (c *httpProductClient) HardDelete(ctx context.Context, code string) error {
	c.logger.Debug("Hard deleting product", "code", code)
	return c.do(ctx, http.MethodDelete, "/physical/"+url.PathEscape(code), nil, nil)
}

func (c *httpProductClient) ExportReportPDF(ctx context.Context) ([]byte, error) {
	c.logger.Debug("Requesting product report")

	resp, err := c.roundTrip(ctx, http.MethodGet, "/pdf", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

// do performs a request and decodes the JSON response into out when out is
// non-nil.
func (c *httpProductClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.roundTrip(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *httpProductClient) roundTrip(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return nil, err
	}

	c.logger.Debug("Request completed",
		"method", method,
		"path", path,
		"request_id", requestID,
		"status", resp.StatusCode)
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrProductNotFound
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
}
