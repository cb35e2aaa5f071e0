// Package workshop is the domain core of the back office: order lifecycle,
// client aggregates, catalog and user management. Every mutation goes to the
// store first; only a successful write patches the in-memory mirror.
package workshop

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/juvelir/workshop/internal/adapters/cache"
	"github.com/juvelir/workshop/internal/adapters/store/model"
)

type Store interface {
	CreateClient(ctx context.Context, client *model.Client) error
	UpdateClient(ctx context.Context, client *model.Client) error
	DeleteClient(ctx context.Context, clientID uint) error
	GetClient(ctx context.Context, clientID uint) (model.Client, error)
	ListClients(ctx context.Context) ([]model.Client, error)
	RecalculateAggregate(ctx context.Context, clientID uint, policy model.AggregatePolicy) (model.Client, error)

	CreateOrder(ctx context.Context, order *model.Order, policy model.AggregatePolicy) (model.Client, error)
	UpdateOrder(ctx context.Context, order *model.Order, policy model.AggregatePolicy) ([]model.Client, error)
	DeleteOrder(ctx context.Context, orderID uint, policy model.AggregatePolicy) (model.Order, model.Client, error)
	GetOrder(ctx context.Context, orderID uint) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListOrdersByClient(ctx context.Context, clientID uint) ([]model.Order, error)

	CreateMaterial(ctx context.Context, material *model.Material) error
	UpdateMaterial(ctx context.Context, material *model.Material) error
	DeleteMaterial(ctx context.Context, materialID uint) error
	ListMaterials(ctx context.Context) ([]model.Material, error)

	CreateProductType(ctx context.Context, productType *model.ProductType) error
	UpdateProductType(ctx context.Context, productType *model.ProductType) error
	DeleteProductType(ctx context.Context, typeID uint) error
	ListProductTypes(ctx context.Context) ([]model.ProductType, error)

	CreateRole(ctx context.Context, role *model.Role) error
	DeleteRole(ctx context.Context, roleID uint) error
	ListRoles(ctx context.Context) ([]model.Role, error)

	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, userID uint) error
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type Config struct {
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT" envDefault:"5s"`
}

type Workshop struct {
	log   *zap.Logger
	cfg   *Config
	store Store
	cache *cache.Container
	locks clientLocks
}

type option func(*Workshop)

func Logger(log *zap.Logger) option {
	return func(w *Workshop) {
		if log != nil {
			w.log = log
		}
	}
}

func New(cfg *Config, store Store, options ...option) *Workshop {
	w := &Workshop{
		log:   zap.NewNop(),
		cfg:   cfg,
		store: store,
		cache: cache.New(),
	}

	for _, opt := range options {
		opt(w)
	}

	return w
}

// opCtx bounds a single store operation; expiry is a retryable failure for
// the caller, never partial data.
func (w *Workshop) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.cfg.OperationTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, w.cfg.OperationTimeout)
}

// Load clears and repopulates every cache section from the store, then
// recomputes all client aggregates. Run at process start.
func (w *Workshop) Load(ctx context.Context) error {
	roles, err := w.store.ListRoles(ctx)
	if err != nil {
		return fmt.Errorf("failed load roles: %w", err)
	}
	users, err := w.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed load users: %w", err)
	}
	clients, err := w.store.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("failed load clients: %w", err)
	}
	materials, err := w.store.ListMaterials(ctx)
	if err != nil {
		return fmt.Errorf("failed load materials: %w", err)
	}
	types, err := w.store.ListProductTypes(ctx)
	if err != nil {
		return fmt.Errorf("failed load product types: %w", err)
	}
	orders, err := w.store.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed load orders: %w", err)
	}

	w.cache.ReplaceRoles(roles)
	w.cache.ReplaceUsers(users)
	w.cache.ReplaceClients(clients)
	w.cache.ReplaceMaterials(materials)
	w.cache.ReplaceProductTypes(types)
	w.cache.ReplaceOrders(orders)

	if err := w.RecalculateAllClients(ctx); err != nil {
		return fmt.Errorf("failed recalculate aggregates after load: %w", err)
	}

	w.log.Info("data loaded",
		zap.Int("clients", len(clients)),
		zap.Int("orders", len(orders)),
		zap.Int("materials", len(materials)),
		zap.Int("productTypes", len(types)),
		zap.Int("users", len(users)),
	)
	return nil
}
