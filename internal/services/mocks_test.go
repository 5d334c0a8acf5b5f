package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/example/mely/internal/auth"
	"github.com/example/mely/internal/models"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) ListByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	args := m.Called(ctx, category)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, limit, offset int) ([]models.Product, int64, error) {
	args := m.Called(ctx, limit, offset)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *mockProductRepo) FindByName(ctx context.Context, name string) (*models.Product, error) {
	args := m.Called(ctx, name)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *mockOrderRepo) ListByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepo) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) ListDeliveredSince(ctx context.Context, since time.Time) ([]models.Order, error) {
	args := m.Called(ctx, since)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.OrderStatus) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *mockAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	args := m.Called(ctx, email)
	admin, _ := args.Get(0).(*models.Admin)
	return admin, args.Error(1)
}

func (m *mockAdminRepo) CreateSession(ctx context.Context, session *models.AdminSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockAdminRepo) FindSession(ctx context.Context, id uuid.UUID) (*models.AdminSession, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*models.AdminSession)
	return session, args.Error(1)
}

func (m *mockAdminRepo) RevokeSession(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	return m.Called(ctx, topic, key, payload).Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

type chanNotifier chan OrderNotification

func (c chanNotifier) NotifyNewOrder(n OrderNotification) error {
	c <- n
	return nil
}

func adminContext() context.Context {
	return auth.WithSession(context.Background(), auth.Session{
		ID:        uuid.New(),
		AdminID:   uuid.New(),
		Email:     "admin@mely.test",
		ExpiresAt: time.Now().Add(time.Hour),
	})
}
