package store

import (
	"sync"
	"time"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
)

// Memory is an in-memory product store backing the stub server. Soft delete
// flips the status to Inactivo and keeps the record; hard delete removes it
// permanently.
type Memory struct {
	mutex    sync.RWMutex
	products domain.Products
	now      func() time.Time
}

func NewMemory(seed ...domain.Product) *Memory {
	return &Memory{
		products: domain.Products(seed),
		now:      time.Now,
	}
}

// SampleProducts returns the seed data the stub server starts with.
func SampleProducts() []domain.Product {
	return []domain.Product{
		{
			Code:        "ARZ001",
			ProviderID:  1,
			Name:        "Arroz extra",
			Description: "Grano largo",
			Unit:        "kg",
			Price:       2.45,
			Stock:       120,
			Status:      domain.StatusActive,
			CreatedDate: "2025-01-15T09:30:00Z",
		},
		{
			Code:        "AZU002",
			ProviderID:  1,
			Name:        "Azúcar rubia",
			Description: "Bolsa de medio kilo",
			Unit:        "g",
			Price:       1.1,
			Stock:       80,
			Status:      domain.StatusActive,
			CreatedDate: "2025-02-02T14:00:00Z",
		},
		{
			Code:        "LCH003",
			ProviderID:  2,
			Name:        "Leche entera",
			Description: "Botella de un litro",
			Unit:        "l",
			Price:       0.95,
			Stock:       0,
			Status:      domain.StatusInactive,
			CreatedDate: "2025-03-20T08:15:00Z",
		},
	}
}

func (s *Memory) List() domain.Products {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make(domain.Products, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Memory) GetByCode(code string) (domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	i := s.findIndex(code)
	if i == -1 {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return s.products[i], nil
}

func (s *Memory) GetByStatus(status domain.Status) domain.Products {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := domain.Products{}
	for _, p := range s.products {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// Create stores a new product. The code must not collide with an existing
// record; status defaults to Activo and the creation timestamp is assigned
// here.
func (s *Memory) Create(p domain.Product) (domain.Product, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.findIndex(p.Code) != -1 {
		return domain.Product{}, domain.ErrCodeExists
	}

	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	p.CreatedDate = s.now().UTC().Format(time.RFC3339)

	s.products = append(s.products, p)
	return p, nil
}

// Update replaces the record identified by code. The path code is
// authoritative: the stored code and creation date survive whatever the body
// carried.
func (s *Memory) Update(code string, p domain.Product) (domain.Product, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.findIndex(code)
	if i == -1 {
		return domain.Product{}, domain.ErrProductNotFound
	}

	p.Code = code
	p.CreatedDate = s.products[i].CreatedDate
	s.products[i] = p
	return p, nil
}

func (s *Memory) SoftDelete(code string) error {
	return s.setStatus(code, domain.StatusInactive)
}

func (s *Memory) Restore(code string) error {
	return s.setStatus(code, domain.StatusActive)
}

func (s *Memory) HardDelete(code string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.findIndex(code)
	if i == -1 {
		return domain.ErrProductNotFound
	}

	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

func (s *Memory) setStatus(code string, status domain.Status) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.findIndex(code)
	if i == -1 {
		return domain.ErrProductNotFound
	}

	s.products[i].Status = status
	return nil
}

// findIndex returns -1 when no product with the code exists. Callers hold the
// lock.
func (s *Memory) findIndex(code string) int {
	for i, p := range s.products {
		if p.Code == code {
			return i
		}
	}
	return -1
}
