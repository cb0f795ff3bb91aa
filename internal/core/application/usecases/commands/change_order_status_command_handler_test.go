package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pending := testPendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(pending.ID(), order.Dispatched)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Dispatched, updated.Status())
	require.Equal(t, int64(2), updated.Version())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ChangeOrderStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Dispatched)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	delivered := testOrderInStatus(t, order.Delivered)
	cmd, err := commands.NewChangeOrderStatusCommand(delivered.ID(), order.Dispatched)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, delivered.ID()).Return(delivered, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_VersionConflict(t *testing.T) {
	ctx := t.Context()
	pending := testPendingOrder(t)
	cmd, err := commands.NewChangeOrderStatusCommand(pending.ID(), order.Cancelled)
	require.NoError(t, err)

	conflict := errs.NewVersionConflictError("order", pending.Version())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrVersionConflict)
}
