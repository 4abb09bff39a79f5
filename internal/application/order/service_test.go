package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/obsidianspecter/demo-delivery/internal/domain/order"
	"github.com/obsidianspecter/demo-delivery/internal/infrastructure/persistence/memory"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
)

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// MockPublisher mocks the EventPublisher interface.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderEvent(ctx context.Context, eventType string, o domain.Order) error {
	args := m.Called(ctx, eventType, o)
	return args.Error(0)
}

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.NewZapLogger("development")
	require.NoError(t, err)
	return log
}

func cart() []domain.OrderItem {
	return []domain.OrderItem{
		{ID: "item-1", Name: "Margherita Pizza", Price: 5.00, Quantity: 1},
		{ID: "item-5", Name: "Garlic Bread", Price: 3.00, Quantity: 1},
	}
}

func TestService_PlaceOrder_Success(t *testing.T) {
	// Arrange
	store := memory.NewStore(nil)
	mockRepo := new(MockOrderRepository)
	mockPublisher := new(MockPublisher)
	svc := NewService(store, nil, mockRepo, mockPublisher, nil, testLogger(t))

	ctx := context.Background()
	mockRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(nil)
	mockPublisher.On("PublishOrderEvent", ctx, EventOrderCreated, mock.AnythingOfType("order.Order")).Return(nil)

	// Act
	o, err := svc.PlaceOrder(ctx, PlaceOrderCommand{
		Items:       cart(),
		TotalPrice:  8.00,
		TableNumber: "Table-4",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, o.Status)
	assert.Len(t, o.Items, 2)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestService_PlaceOrder_EmptyCart(t *testing.T) {
	store := memory.NewStore(nil)
	mockPublisher := new(MockPublisher)
	svc := NewService(store, nil, nil, mockPublisher, nil, testLogger(t))

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderCommand{
		TotalPrice:  8.00,
		TableNumber: "Table-4",
	})

	assert.ErrorIs(t, err, domain.ErrEmptyItems)
	mockPublisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_PlaceOrder_PersistFailureDoesNotFailRequest(t *testing.T) {
	store := memory.NewStore(nil)
	mockRepo := new(MockOrderRepository)
	svc := NewService(store, nil, mockRepo, nil, nil, testLogger(t))

	ctx := context.Background()
	mockRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("db down"))

	o, err := svc.PlaceOrder(ctx, PlaceOrderCommand{
		Items:       cart(),
		TotalPrice:  8.00,
		TableNumber: "Table-4",
	})

	require.NoError(t, err, "persistence is best-effort")
	assert.NotEmpty(t, o.ID)
	mockRepo.AssertExpectations(t)
}

func TestService_UpdateStatus(t *testing.T) {
	store := memory.NewStore(nil)
	mockPublisher := new(MockPublisher)
	svc := NewService(store, nil, nil, mockPublisher, nil, testLogger(t))

	ctx := context.Background()
	mockPublisher.On("PublishOrderEvent", ctx, mock.Anything, mock.AnythingOfType("order.Order")).Return(nil)

	o, err := svc.PlaceOrder(ctx, PlaceOrderCommand{Items: cart(), TotalPrice: 8.00, TableNumber: "Table-4"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, o.ID, "Preparing"))

	got, err := svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, got.Status)

	mockPublisher.AssertCalled(t, "PublishOrderEvent", ctx, EventStatusChanged, mock.AnythingOfType("order.Order"))
}

func TestService_UpdateStatus_Errors(t *testing.T) {
	store := memory.NewStore(nil)
	svc := NewService(store, nil, nil, nil, nil, testLogger(t))
	ctx := context.Background()

	err := svc.UpdateStatus(ctx, "missing-id", "Preparing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	o, err := svc.PlaceOrder(ctx, PlaceOrderCommand{Items: cart(), TotalPrice: 8.00, TableNumber: "Table-4"})
	require.NoError(t, err)

	err = svc.UpdateStatus(ctx, o.ID, "Cancelled")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestService_GetOrder_RepositoryFallback(t *testing.T) {
	store := memory.NewStore(nil)
	mockRepo := new(MockOrderRepository)
	svc := NewService(store, nil, mockRepo, nil, nil, testLogger(t))

	ctx := context.Background()
	persisted := &domain.Order{ID: "order-db-1", Status: domain.StatusDelivered, TableNumber: "Table-9"}
	mockRepo.On("FindByID", ctx, "order-db-1").Return(persisted, nil)
	mockRepo.On("FindByID", ctx, "missing-id").Return(nil, nil)

	got, err := svc.GetOrder(ctx, "order-db-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, got.Status)

	_, err = svc.GetOrder(ctx, "missing-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ListOrders_StatusFilter(t *testing.T) {
	store := memory.NewStore(nil)
	svc := NewService(store, nil, nil, nil, nil, testLogger(t))
	ctx := context.Background()

	a, err := svc.PlaceOrder(ctx, PlaceOrderCommand{Items: cart(), TotalPrice: 8.00, TableNumber: "Table-1"})
	require.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, PlaceOrderCommand{Items: cart(), TotalPrice: 8.00, TableNumber: "Table-2"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, a.ID, "Preparing"))

	all, err := svc.ListOrders("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	preparing, err := svc.ListOrders("Preparing")
	require.NoError(t, err)
	require.Len(t, preparing, 1)
	assert.Equal(t, a.ID, preparing[0].ID)

	_, err = svc.ListOrders("Burnt")
	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
}

func TestService_UpdateTable(t *testing.T) {
	store := memory.NewStore(nil)
	svc := NewService(store, nil, nil, nil, nil, testLogger(t))
	ctx := context.Background()

	o, err := svc.PlaceOrder(ctx, PlaceOrderCommand{Items: cart(), TotalPrice: 8.00, TableNumber: "Table-4"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateTable(ctx, o.ID, "Table-3"))

	got, err := svc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Table-3", got.TableNumber)

	assert.ErrorIs(t, svc.UpdateTable(ctx, o.ID, ""), domain.ErrMissingField)
	assert.ErrorIs(t, svc.UpdateTable(ctx, "missing-id", "Table-1"), domain.ErrNotFound)
}
