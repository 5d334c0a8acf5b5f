package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/mely/internal/models"
	"github.com/example/mely/internal/repository"
)

// memoryStore implements the repository interfaces in memory.
type memoryStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]models.Product
	orders   map[uuid.UUID]models.Order
	admins   map[string]models.Admin
	sessions map[uuid.UUID]models.AdminSession
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		products: make(map[uuid.UUID]models.Product),
		orders:   make(map[uuid.UUID]models.Order),
		admins:   make(map[string]models.Admin),
		sessions: make(map[uuid.UUID]models.AdminSession),
	}
}

func stamp(b *models.BaseModel) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

type productStore struct{ *memoryStore }

func (s productStore) ListByCategory(_ context.Context, category models.Category) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s productStore) List(_ context.Context, limit, offset int) ([]models.Product, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))
	if offset >= len(out) {
		return []models.Product{}, total, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (s productStore) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s productStore) FindByName(_ context.Context, name string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s productStore) Create(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&product.BaseModel)
	s.products[product.ID] = *product
	return nil
}

func (s productStore) Update(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return repository.ErrNotFound
	}
	stamp(&product.BaseModel)
	s.products[product.ID] = *product
	return nil
}

func (s productStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

type orderStore struct{ *memoryStore }

func (s orderStore) Create(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&order.BaseModel)
	for i := range order.Items {
		stamp(&order.Items[i].BaseModel)
		order.Items[i].OrderID = order.ID
	}
	s.orders[order.ID] = *order
	return nil
}

func (s orderStore) FindByID(_ context.Context, id uuid.UUID) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (s orderStore) ListByStatus(_ context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))
	if limit > 0 {
		if offset >= len(out) {
			return []models.Order{}, total, nil
		}
		out = out[offset:]
		if limit < len(out) {
			out = out[:limit]
		}
	}
	return out, total, nil
}

func (s orderStore) CountByStatus(_ context.Context, status models.OrderStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, o := range s.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (s orderStore) ListDeliveredSince(_ context.Context, since time.Time) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == models.OrderStatusDelivered && !o.CreatedAt.Before(since) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s orderStore) UpdateStatus(_ context.Context, id uuid.UUID, from, to models.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	s.orders[id] = o
	return true, nil
}

type adminStore struct{ *memoryStore }

func (s adminStore) Create(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&admin.BaseModel)
	s.admins[strings.ToLower(admin.Email)] = *admin
	return nil
}

func (s adminStore) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (s adminStore) CreateSession(_ context.Context, session *models.AdminSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&session.BaseModel)
	s.sessions[session.ID] = *session
	return nil
}

func (s adminStore) FindSession(_ context.Context, id uuid.UUID) (*models.AdminSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, a := range s.admins {
		if a.ID == session.AdminID {
			admin := a
			session.Admin = &admin
		}
	}
	return &session, nil
}

func (s adminStore) RevokeSession(_ context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok || session.RevokedAt != nil {
		return repository.ErrNotFound
	}
	session.RevokedAt = &at
	s.sessions[id] = session
	return nil
}
