package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"foodbot/internal/adapters/out/memory/cartstore"
	"foodbot/internal/core/application/usecases/commands"
	"foodbot/internal/core/domain/model/kernel"
	"foodbot/internal/core/domain/model/order"
	"foodbot/internal/core/ports"
	"foodbot/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextOrderID(ctx context.Context) (kernel.OrderID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

func (m *MockOrderRepository) AddItem(ctx context.Context, id kernel.OrderID, line order.Line) error {
	args := m.Called(ctx, id, line)
	return args.Error(0)
}

func (m *MockOrderRepository) AddTracking(ctx context.Context, id kernel.OrderID, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) TotalPrice(ctx context.Context, id kernel.OrderID) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockOrderRepository) Status(ctx context.Context, id kernel.OrderID) (order.Status, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Status), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type completeFixture struct {
	store   *cartstore.InMemoryCartStore
	repo    *MockOrderRepository
	uow     *MockOrderUoW
	factory *MockOrderUoWFactory
	handler commands.CompleteOrderCommandHandler
	sid     kernel.SessionID
}

func newCompleteFixture(t *testing.T) *completeFixture {
	t.Helper()
	f := &completeFixture{
		store:   cartstore.NewInMemoryCartStore(nil),
		repo:    new(MockOrderRepository),
		uow:     new(MockOrderUoW),
		factory: new(MockOrderUoWFactory),
		sid:     newSessionID(t),
	}
	f.handler = commands.NewCompleteOrderCommandHandler(f.store, f.factory, discardLogger())
	return f
}

func (f *completeFixture) complete(t *testing.T) string {
	t.Helper()
	cmd, err := commands.NewCompleteOrderCommand(f.sid)
	require.NoError(t, err)
	reply, err := f.handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return reply
}

func (f *completeFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.repo.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Success(t *testing.T) {
	f := newCompleteFixture(t)
	seedCart(t, f.store, f.sid, []string{"rice", "soda"}, []int{2, 1})

	id := kernel.OrderID(41)
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.repo)
	mock.InOrder(
		f.uow.On("Begin", mock.Anything).Return(nil).Once(),
		f.repo.On("NextOrderID", mock.Anything).Return(id, nil).Once(),
		f.repo.On("AddItem", mock.Anything, id, order.Line{Name: "rice", Quantity: 2}).Return(nil).Once(),
		f.repo.On("AddItem", mock.Anything, id, order.Line{Name: "soda", Quantity: 1}).Return(nil).Once(),
		f.repo.On("AddTracking", mock.Anything, id, order.InProgress).Return(nil).Once(),
		f.uow.On("Commit", mock.Anything).Return(nil).Once(),
		f.uow.On("Rollback", mock.Anything).Return(nil).Once(),
		f.repo.On("TotalPrice", mock.Anything, id).Return(decimal.RequireFromString("14.5"), nil).Once(),
	)

	reply := f.complete(t)

	assert.Equal(t,
		"Awesome. We have placed your order. Here is your order id # 41. "+
			"Your order total is 14.50 which you can pay at the time of delivery!",
		reply)
	_, ok := f.store.Get(t.Context(), f.sid)
	assert.False(t, ok)
	f.assertExpectations(t)
}

func TestCompleteOrderCommandHandler_NoOrder(t *testing.T) {
	f := newCompleteFixture(t)

	reply := f.complete(t)

	assert.Equal(t, commands.MsgOrderNotFound, reply)
	f.factory.AssertNotCalled(t, "Create")
}

// A failed save still drops the session's cart: the items are lost and the
// user is asked to order again.
func TestCompleteOrderCommandHandler_AddItemFailureClearsCart(t *testing.T) {
	f := newCompleteFixture(t)
	seedCart(t, f.store, f.sid, []string{"rice", "unknown dish"}, []int{2, 1})

	id := kernel.OrderID(7)
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.repo)
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.repo.On("NextOrderID", mock.Anything).Return(id, nil).Once()
	f.repo.On("AddItem", mock.Anything, id, order.Line{Name: "rice", Quantity: 2}).Return(nil).Once()
	f.repo.On("AddItem", mock.Anything, id, order.Line{Name: "unknown dish", Quantity: 1}).
		Return(errs.NewObjectNotFoundError("foodItem", "unknown dish")).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()

	reply := f.complete(t)

	assert.Equal(t, commands.MsgBackendError, reply)
	_, ok := f.store.Get(t.Context(), f.sid)
	assert.False(t, ok)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.repo.AssertNotCalled(t, "AddTracking", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestCompleteOrderCommandHandler_BeginFailureClearsCart(t *testing.T) {
	f := newCompleteFixture(t)
	seedCart(t, f.store, f.sid, []string{"rice"}, []int{2})

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", mock.Anything).Return(errors.New("connection refused")).Once()

	reply := f.complete(t)

	assert.Equal(t, commands.MsgBackendError, reply)
	assert.Equal(t, 0, f.store.Len())
	f.assertExpectations(t)
}

func TestCompleteOrderCommandHandler_CommitFailure(t *testing.T) {
	f := newCompleteFixture(t)
	seedCart(t, f.store, f.sid, []string{"rice"}, []int{2})

	id := kernel.OrderID(3)
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.repo)
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.repo.On("NextOrderID", mock.Anything).Return(id, nil).Once()
	f.repo.On("AddItem", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.repo.On("AddTracking", mock.Anything, id, order.InProgress).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(errors.New("serialization failure")).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()

	reply := f.complete(t)

	assert.Equal(t, commands.MsgBackendError, reply)
	assert.Equal(t, 0, f.store.Len())
	f.assertExpectations(t)
}

func TestCompleteOrderCommandHandler_TotalFailureStillConfirms(t *testing.T) {
	f := newCompleteFixture(t)
	seedCart(t, f.store, f.sid, []string{"rice"}, []int{2})

	id := kernel.OrderID(9)
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.repo)
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.repo.On("NextOrderID", mock.Anything).Return(id, nil).Once()
	f.repo.On("AddItem", mock.Anything, id, mock.Anything).Return(nil).Once()
	f.repo.On("AddTracking", mock.Anything, id, order.InProgress).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
	f.repo.On("TotalPrice", mock.Anything, id).Return(decimal.Zero, errors.New("timeout")).Once()

	reply := f.complete(t)

	assert.Equal(t,
		"Awesome. We have placed your order. Here is your order id # 9. You can pay at the time of delivery!",
		reply)
	assert.Equal(t, 0, f.store.Len())
	f.assertExpectations(t)
}

func TestCompleteOrderCommandHandler_NotConstructed(t *testing.T) {
	f := newCompleteFixture(t)

	_, err := f.handler.Handle(t.Context(), commands.CompleteOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)
}
