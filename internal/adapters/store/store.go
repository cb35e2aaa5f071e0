package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/juvelir/workshop/internal/adapters/store/database"
	"github.com/juvelir/workshop/internal/adapters/store/model"
)

type Config struct {
	Database *database.Config
}

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

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
