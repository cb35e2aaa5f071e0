package workshop

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/juvelir/workshop/internal/adapters/store/model"
)

func (w *Workshop) AddClient(ctx context.Context, client *model.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	// Aggregates are derived, never caller-supplied.
	client.TotalPurchases = decimal.Zero
	client.Discount = 0

	if err := w.store.CreateClient(ctx, client); err != nil {
		return fmt.Errorf("failed create client: %w", err)
	}
	w.cache.PutClient(*client)

	return nil
}

func (w *Workshop) UpdateClient(ctx context.Context, client *model.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	unlock := w.locks.lock(client.ID)
	defer unlock()

	// Keep the stored aggregate; only identity fields are caller-editable.
	existing, err := w.store.GetClient(ctx, client.ID)
	if err != nil {
		return fmt.Errorf("failed get client: %w", err)
	}
	client.TotalPurchases = existing.TotalPurchases
	client.Discount = existing.Discount
	client.CreatedAt = existing.CreatedAt

	if err := w.store.UpdateClient(ctx, client); err != nil {
		return fmt.Errorf("failed update client: %w", err)
	}
	w.cache.PutClient(*client)

	return nil
}

func (w *Workshop) DeleteClient(ctx context.Context, clientID uint) error {
	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	unlock := w.locks.lock(clientID)
	defer unlock()

	if err := w.store.DeleteClient(ctx, clientID); err != nil {
		return fmt.Errorf("failed delete client: %w", err)
	}
	w.cache.RemoveClient(clientID)

	return nil
}

func (w *Workshop) Clients() []model.Client {
	return w.cache.Clients()
}

func (w *Workshop) ClientByID(ctx context.Context, clientID uint) (model.Client, error) {
	if client, ok := w.cache.Client(clientID); ok {
		return client, nil
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	client, err := w.store.GetClient(ctx, clientID)
	if err != nil {
		return client, fmt.Errorf("failed get client: %w", err)
	}
	w.cache.PutClient(client)

	return client, nil
}

func (w *Workshop) ClientByPhone(phone string) (model.Client, bool) {
	return w.cache.ClientByPhone(phone)
}

// RecalculateClientAggregate recomputes total purchases and the discount
// tier from the client's qualifying orders, persists both fields and patches
// the cached client with the persisted values. A failure on any step leaves
// store and cache untouched.
func (w *Workshop) RecalculateClientAggregate(ctx context.Context, clientID uint) (model.Client, error) {
	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	unlock := w.locks.lock(clientID)
	defer unlock()

	return w.recalculateLocked(ctx, clientID)
}

func (w *Workshop) recalculateLocked(ctx context.Context, clientID uint) (model.Client, error) {
	client, err := w.store.RecalculateAggregate(ctx, clientID, aggregatePolicy())
	if err != nil {
		return client, fmt.Errorf("failed recalculate aggregate: %w", err)
	}
	w.cache.PutClient(client)

	w.log.Debug("client aggregate recalculated",
		zap.Uint("clientID", clientID),
		zap.String("totalPurchases", client.TotalPurchases.String()),
		zap.Int("discount", client.Discount),
	)
	return client, nil
}

// patchClient mirrors a client row returned by the store into the cache
// under that client's lock.
func (w *Workshop) patchClient(client model.Client) {
	unlock := w.locks.lock(client.ID)
	w.cache.PutClient(client)
	unlock()
}

// RecalculateAllClients recomputes every client's aggregate once, used after
// a bulk load.
func (w *Workshop) RecalculateAllClients(ctx context.Context) error {
	clients, err := w.store.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("failed list clients: %w", err)
	}

	for _, client := range clients {
		unlock := w.locks.lock(client.ID)
		_, err := w.recalculateLocked(ctx, client.ID)
		unlock()
		if err != nil {
			return fmt.Errorf("failed recalculate client id=`%d`: %w", client.ID, err)
		}
	}

	return nil
}
