package workshop

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/juvelir/workshop/internal/adapters/store/model"
)

// AddOrder persists the order with its material lines and the owner's
// recomputed aggregate in one store transaction, then mirrors both into the
// cache. The order comes back from the store with its lines costed.
func (w *Workshop) AddOrder(ctx context.Context, order *model.Order) error {
	if order.Status == "" {
		order.Status = model.OrderStatusInProcess
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	if err := validateOrder(order); err != nil {
		return err
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	owner, err := w.store.CreateOrder(ctx, order, aggregatePolicy())
	if err != nil {
		return fmt.Errorf("failed create order: %w", err)
	}
	w.cache.PutOrder(*order)
	w.patchClient(owner)
	w.log.Info("order created",
		zap.Uint("orderID", order.ID),
		zap.Uint("clientID", order.ClientID),
		zap.String("status", string(order.Status)),
	)

	return nil
}

// UpdateOrder overwrites the order and replaces its lines; the store
// recomputes the aggregate of every owning client the change touches (both
// owners on a reassignment) in the same transaction, and the cache is
// patched with the persisted values.
func (w *Workshop) UpdateOrder(ctx context.Context, order *model.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	clients, err := w.store.UpdateOrder(ctx, order, aggregatePolicy())
	if err != nil {
		return fmt.Errorf("failed update order: %w", err)
	}
	w.cache.PutOrder(*order)
	for _, client := range clients {
		w.patchClient(client)
	}

	return nil
}

// DeleteOrder removes the order with its lines and recomputes the owner's
// aggregate in the same store transaction.
func (w *Workshop) DeleteOrder(ctx context.Context, orderID uint) error {
	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	deleted, owner, err := w.store.DeleteOrder(ctx, orderID, aggregatePolicy())
	if err != nil {
		return fmt.Errorf("failed delete order: %w", err)
	}
	w.cache.RemoveOrder(orderID)
	w.patchClient(owner)
	w.log.Info("order deleted", zap.Uint("orderID", orderID), zap.Uint("clientID", deleted.ClientID))

	return nil
}

func (w *Workshop) Orders() []model.Order {
	return w.cache.Orders()
}

func (w *Workshop) OrdersByClient(clientID uint) []model.Order {
	return w.cache.OrdersByClient(clientID)
}

func (w *Workshop) OrderByID(ctx context.Context, orderID uint) (model.Order, error) {
	if order, ok := w.cache.Order(orderID); ok {
		return order, nil
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	order, err := w.store.GetOrder(ctx, orderID)
	if err != nil {
		return order, fmt.Errorf("failed get order: %w", err)
	}
	w.cache.PutOrder(order)

	return order, nil
}
