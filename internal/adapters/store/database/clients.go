package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/juvelir/workshop/internal/adapters/store/errstore"
	"github.com/juvelir/workshop/internal/adapters/store/model"
)

func (s *Store) CreateClient(ctx context.Context, client *model.Client) error {
	tx := s.db.WithContext(ctx)
	if err := tx.Create(client).Error; err != nil {
		if serr := asStoreError(err); errors.Is(serr, errstore.ErrNotUniqueData) {
			return serr
		}
		return fmt.Errorf("failed create client: %w", err)
	}

	return nil
}

func (s *Store) UpdateClient(ctx context.Context, client *model.Client) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := model.Client{}
		if err := tx.First(&existing, client.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select client: %w", err)
		}
		if err := tx.Save(client).Error; err != nil {
			return fmt.Errorf("failed save client: %w", asStoreError(err))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed update client id=`%d`: %w", client.ID, err)
	}

	return nil
}

func (s *Store) DeleteClient(ctx context.Context, clientID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&model.Order{}).Where("client_id = ?", clientID).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed count client orders: %w", err)
		}
		if refs > 0 {
			return errstore.ErrClientHasOrders
		}

		result := tx.Delete(&model.Client{}, clientID)
		if err := result.Error; err != nil {
			if serr := asStoreError(err); errors.Is(serr, errstore.ErrReferenceViolation) {
				return errstore.ErrClientHasOrders
			}
			return fmt.Errorf("failed delete client: %w", err)
		}
		if result.RowsAffected == 0 {
			return errstore.ErrNotFoundData
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed delete client id=`%d`: %w", clientID, err)
	}

	return nil
}

func (s *Store) GetClient(ctx context.Context, clientID uint) (model.Client, error) {
	client := model.Client{}
	if err := s.db.WithContext(ctx).First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client, errstore.ErrNotFoundData
		}
		return client, fmt.Errorf("failed get client: %w", err)
	}

	return client, nil
}

func (s *Store) ListClients(ctx context.Context) ([]model.Client, error) {
	clients := []model.Client{}
	if err := s.db.WithContext(ctx).Order("client_id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed list clients: %w", err)
	}

	return clients, nil
}

// RecalculateAggregate recomputes one client's total purchases and discount
// from its qualifying orders in a single transaction and returns the client
// with the persisted values.
func (s *Store) RecalculateAggregate(ctx context.Context, clientID uint, policy model.AggregatePolicy) (model.Client, error) {
	client := model.Client{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		client, err = recalcAggregateTx(tx, clientID, policy)
		return err
	})
	if err != nil {
		if errors.Is(err, errstore.ErrNotFoundData) {
			return client, err
		}
		return client, fmt.Errorf("failed complete transaction: %w", err)
	}

	return client, nil
}

// recalcAggregateTx recomputes a client's aggregate inside an open
// transaction; order mutations call it so the order and the aggregate
// commit or roll back together.
func recalcAggregateTx(tx *gorm.DB, clientID uint, policy model.AggregatePolicy) (model.Client, error) {
	client := model.Client{}
	if err := tx.First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client, errstore.ErrNotFoundData
		}
		return client, fmt.Errorf("failed select client: %w", err)
	}

	total := decimal.Zero
	err := tx.Model(&model.Order{}).
		Select("COALESCE(SUM(price), 0)").
		Where("client_id = ? AND status IN ?", clientID, policy.Qualifying).
		Scan(&total).Error
	if err != nil {
		return client, fmt.Errorf("failed sum client purchases: %w", err)
	}
	discount := policy.DiscountFor(total)

	err = tx.Model(&model.Client{}).
		Where("client_id = ?", clientID).
		Updates(map[string]interface{}{"total_purchases": total, "discount": discount}).Error
	if err != nil {
		return client, fmt.Errorf("failed save client aggregate: %w", err)
	}

	client.TotalPurchases = total
	client.Discount = discount
	return client, nil
}
