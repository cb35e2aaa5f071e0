package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/juvelir/workshop/internal/adapters/store/errstore"
	"github.com/juvelir/workshop/internal/adapters/store/model"
)

// CreateOrder persists the order row, its material lines and the owning
// client's recomputed aggregate as one transaction. The order is written
// back with its generated id and loaded associations; the returned client
// carries the persisted aggregate.
func (s *Store) CreateOrder(ctx context.Context, order *model.Order, policy model.AggregatePolicy) (model.Client, error) {
	owner := model.Client{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := order.Materials
		order.Materials = nil
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed create order: %w", asStoreError(err))
		}
		if err := createOrderLines(tx, order.ID, lines); err != nil {
			return err
		}

		var err error
		owner, err = recalcAggregateTx(tx, order.ClientID, policy)
		if err != nil {
			return err
		}
		return reloadOrderTx(tx, order)
	})
	if err != nil {
		return owner, fmt.Errorf("failed complete transaction: %w", err)
	}

	return owner, nil
}

// UpdateOrder overwrites the order's fields, replaces its material lines and
// recomputes the aggregate of every owning client the change touches (both
// the previous and the new owner when the order moved between clients), all
// in one transaction. The returned clients carry the persisted aggregates.
func (s *Store) UpdateOrder(ctx context.Context, order *model.Order, policy model.AggregatePolicy) ([]model.Client, error) {
	clients := []model.Client{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prev := model.Order{}
		if err := tx.First(&prev, order.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select order: %w", err)
		}

		lines := order.Materials
		order.Materials = nil
		order.CreatedAt = prev.CreatedAt
		if err := tx.Save(order).Error; err != nil {
			return fmt.Errorf("failed save order: %w", asStoreError(err))
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderMaterial{}).Error; err != nil {
			return fmt.Errorf("failed delete order lines: %w", err)
		}
		if err := createOrderLines(tx, order.ID, lines); err != nil {
			return err
		}

		for _, clientID := range []uint{prev.ClientID, order.ClientID} {
			if len(clients) > 0 && clients[0].ID == clientID {
				continue
			}
			client, err := recalcAggregateTx(tx, clientID, policy)
			if err != nil {
				return err
			}
			clients = append(clients, client)
		}
		return reloadOrderTx(tx, order)
	})
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return nil, err
		}
		return nil, fmt.Errorf("failed complete transaction: %w", err)
	}

	return clients, nil
}

// DeleteOrder removes the order's material lines, the order row and the
// owner's stale aggregate in one transaction, returning the deleted row and
// the owner with the recomputed aggregate.
func (s *Store) DeleteOrder(ctx context.Context, orderID uint, policy model.AggregatePolicy) (model.Order, model.Client, error) {
	deleted := model.Order{}
	owner := model.Client{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select order: %w", err)
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderMaterial{}).Error; err != nil {
			return fmt.Errorf("failed delete order lines: %w", err)
		}
		if err := tx.Delete(&model.Order{}, orderID).Error; err != nil {
			return fmt.Errorf("failed delete order: %w", err)
		}

		var err error
		owner, err = recalcAggregateTx(tx, deleted.ClientID, policy)
		return err
	})
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return deleted, owner, err
		}
		return deleted, owner, fmt.Errorf("failed complete transaction: %w", err)
	}

	return deleted, owner, nil
}

func (s *Store) GetOrder(ctx context.Context, orderID uint) (model.Order, error) {
	order := model.Order{}
	err := s.db.WithContext(ctx).
		Preload("Materials").Preload("Materials.Material").
		First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order, errstore.ErrNotFoundData
		}
		return order, fmt.Errorf("failed get order: %w", err)
	}

	return order, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	err := s.db.WithContext(ctx).
		Preload("Materials").Preload("Materials.Material").
		Order("order_id").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed list orders: %w", err)
	}

	return orders, nil
}

func (s *Store) ListOrdersByClient(ctx context.Context, clientID uint) ([]model.Order, error) {
	orders := []model.Order{}
	err := s.db.WithContext(ctx).
		Preload("Materials").Preload("Materials.Material").
		Where("client_id = ?", clientID).
		Order("order_id").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed list client orders: %w", err)
	}

	return orders, nil
}

// reloadOrderTx re-reads the order with its line and material associations
// so callers cache a fully costed view, not the request-shaped input.
func reloadOrderTx(tx *gorm.DB, order *model.Order) error {
	err := tx.Preload("Materials").Preload("Materials.Material").
		First(order, order.ID).Error
	if err != nil {
		return fmt.Errorf("failed reload order: %w", err)
	}
	return nil
}

func createOrderLines(tx *gorm.DB, orderID uint, lines []model.OrderMaterial) error {
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].OrderID = orderID
	}
	if err := tx.Omit("Material").Create(&lines).Error; err != nil {
		return fmt.Errorf("failed create order lines: %w", asStoreError(err))
	}
	return nil
}
