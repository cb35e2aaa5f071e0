package workshop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juvelir/workshop/internal/adapters/store/errstore"
	"github.com/juvelir/workshop/internal/adapters/store/model"
	"github.com/juvelir/workshop/internal/core/workshop"
	"github.com/juvelir/workshop/internal/mocks/store"
)

func newWorkshop(t *testing.T) *workshop.Workshop {
	t.Helper()
	return workshop.New(&workshop.Config{}, store.NewMemoryStore())
}

func addClient(t *testing.T, w *workshop.Workshop, phone string) model.Client {
	t.Helper()
	client := model.Client{Phone: phone, FullName: "Test Client"}
	require.NoError(t, w.AddClient(context.Background(), &client))
	return client
}

func addCatalog(t *testing.T, w *workshop.Workshop) (model.Material, model.ProductType) {
	t.Helper()
	material := model.Material{Name: "gold 585", CostPerGram: decimal.NewFromInt(4000)}
	require.NoError(t, w.AddMaterial(context.Background(), &material))
	productType := model.ProductType{Name: "ring", LaborCost: decimal.NewFromInt(3000)}
	require.NoError(t, w.AddProductType(context.Background(), &productType))
	return material, productType
}

func addOrder(t *testing.T, w *workshop.Workshop, clientID, typeID uint, status model.OrderStatus, price int64) model.Order {
	t.Helper()
	order := model.Order{
		ClientID: clientID,
		TypeID:   typeID,
		Status:   status,
		Price:    decimal.NewFromInt(price),
	}
	require.NoError(t, w.AddOrder(context.Background(), &order))
	return order
}

func clientState(t *testing.T, w *workshop.Workshop, clientID uint) model.Client {
	t.Helper()
	client, err := w.ClientByID(context.Background(), clientID)
	require.NoError(t, err)
	return client
}

func TestWorkshop_AggregateFromCompletedOrders(t *testing.T) {
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000001")
	_, productType := addCatalog(t, w)

	addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 30000)
	addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 40000)
	addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 40000)

	got := clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.Equal(decimal.NewFromInt(110000)),
		"total=%s", got.TotalPurchases)
	assert.Equal(t, 15, got.Discount)

	byPhone, ok := w.ClientByPhone("+79990000001")
	assert.True(t, ok)
	assert.Equal(t, client.ID, byPhone.ID)
}

func TestWorkshop_NonQualifyingOrderDoesNotChangeAggregate(t *testing.T) {
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000002")
	_, productType := addCatalog(t, w)

	addOrder(t, w, client.ID, productType.ID, model.OrderStatusInProcess, 30000)
	addOrder(t, w, client.ID, productType.ID, model.OrderStatusReady, 60000)
	addOrder(t, w, client.ID, productType.ID, model.OrderStatusCancelled, 90000)

	got := clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.IsZero(), "total=%s", got.TotalPurchases)
	assert.Equal(t, 0, got.Discount)
}

func TestWorkshop_StatusTransitionRecomputesAggregate(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000003")
	_, productType := addCatalog(t, w)

	order := addOrder(t, w, client.ID, productType.ID, model.OrderStatusInProcess, 26000)
	assert.True(t, clientState(t, w, client.ID).TotalPurchases.IsZero())

	order.Status = model.OrderStatusCompleted
	require.NoError(t, w.UpdateOrder(ctx, &order))

	got := clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.Equal(decimal.NewFromInt(26000)))
	assert.Equal(t, 5, got.Discount)

	order.Status = model.OrderStatusCancelled
	require.NoError(t, w.UpdateOrder(ctx, &order))

	got = clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.IsZero())
	assert.Equal(t, 0, got.Discount)
}

func TestWorkshop_PriceChangeOnCompletedOrderRecomputes(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000004")
	_, productType := addCatalog(t, w)

	order := addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 30000)
	assert.Equal(t, 5, clientState(t, w, client.ID).Discount)

	order.Price = decimal.NewFromInt(120000)
	require.NoError(t, w.UpdateOrder(ctx, &order))

	got := clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.Equal(decimal.NewFromInt(120000)))
	assert.Equal(t, 15, got.Discount)
}

func TestWorkshop_ReassignOrderRecomputesBothClients(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	first := addClient(t, w, "+79990000005")
	second := addClient(t, w, "+79990000006")
	_, productType := addCatalog(t, w)

	order := addOrder(t, w, first.ID, productType.ID, model.OrderStatusCompleted, 55000)
	assert.Equal(t, 10, clientState(t, w, first.ID).Discount)
	assert.Equal(t, 0, clientState(t, w, second.ID).Discount)

	order.ClientID = second.ID
	require.NoError(t, w.UpdateOrder(ctx, &order))

	gotFirst := clientState(t, w, first.ID)
	assert.True(t, gotFirst.TotalPurchases.IsZero(), "previous owner keeps stale total")
	assert.Equal(t, 0, gotFirst.Discount)

	gotSecond := clientState(t, w, second.ID)
	assert.True(t, gotSecond.TotalPurchases.Equal(decimal.NewFromInt(55000)))
	assert.Equal(t, 10, gotSecond.Discount)
}

func TestWorkshop_DeleteOrderShrinksAggregate(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000007")
	_, productType := addCatalog(t, w)

	addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 60000)
	order := addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 50000)
	assert.Equal(t, 15, clientState(t, w, client.ID).Discount)

	require.NoError(t, w.DeleteOrder(ctx, order.ID))

	got := clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.Equal(decimal.NewFromInt(60000)))
	assert.Equal(t, 10, got.Discount)

	_, err := w.OrderByID(ctx, order.ID)
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)
}

func TestWorkshop_DeleteClientWithOrdersRejected(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000008")
	_, productType := addCatalog(t, w)
	addOrder(t, w, client.ID, productType.ID, model.OrderStatusInProcess, 1000)

	err := w.DeleteClient(ctx, client.ID)
	assert.ErrorIs(t, err, errstore.ErrClientHasOrders)

	// Client and order both survive a rejected delete.
	_, err = w.ClientByID(ctx, client.ID)
	assert.NoError(t, err)
	assert.Len(t, w.OrdersByClient(client.ID), 1)
}

func TestWorkshop_RecalculateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000009")
	_, productType := addCatalog(t, w)
	addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 27000)

	first, err := w.RecalculateClientAggregate(ctx, client.ID)
	require.NoError(t, err)
	second, err := w.RecalculateClientAggregate(ctx, client.ID)
	require.NoError(t, err)

	assert.True(t, first.TotalPurchases.Equal(second.TotalPurchases))
	assert.Equal(t, first.Discount, second.Discount)
	assert.Equal(t, 5, second.Discount)
}

func TestWorkshop_AddClientResetsAggregateFields(t *testing.T) {
	w := newWorkshop(t)
	client := model.Client{
		Phone:          "+79990000010",
		FullName:       "Aggregate Smuggler",
		TotalPurchases: decimal.NewFromInt(999999),
		Discount:       15,
	}
	require.NoError(t, w.AddClient(context.Background(), &client))

	got := clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.IsZero())
	assert.Equal(t, 0, got.Discount)
}

func TestWorkshop_UpdateClientKeepsAggregate(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000011")
	_, productType := addCatalog(t, w)
	addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 30000)

	updated := model.Client{ID: client.ID, Phone: "+79990000012", FullName: "Renamed"}
	require.NoError(t, w.UpdateClient(ctx, &updated))

	got := clientState(t, w, client.ID)
	assert.Equal(t, "Renamed", got.FullName)
	assert.True(t, got.TotalPurchases.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, 5, got.Discount)
}

func TestWorkshop_OrderValidation(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000013")
	material, productType := addCatalog(t, w)

	tests := []struct {
		name  string
		order model.Order
		want  error
	}{
		{
			name:  "missing client",
			order: model.Order{TypeID: productType.ID},
			want:  workshop.ErrClientRequired,
		},
		{
			name:  "missing product type",
			order: model.Order{ClientID: client.ID},
			want:  workshop.ErrProductTypeRequired,
		},
		{
			name: "unknown status",
			order: model.Order{
				ClientID: client.ID,
				TypeID:   productType.ID,
				Status:   model.OrderStatus("SHIPPED"),
			},
			want: workshop.ErrStatusNotValid,
		},
		{
			name: "negative price",
			order: model.Order{
				ClientID: client.ID,
				TypeID:   productType.ID,
				Price:    decimal.NewFromInt(-1),
			},
			want: workshop.ErrAmountNotValid,
		},
		{
			name: "line without material",
			order: model.Order{
				ClientID:  client.ID,
				TypeID:    productType.ID,
				Materials: []model.OrderMaterial{{Weight: decimal.NewFromInt(5)}},
			},
			want: workshop.ErrMaterialRequired,
		},
		{
			name: "line with zero weight",
			order: model.Order{
				ClientID:  client.ID,
				TypeID:    productType.ID,
				Materials: []model.OrderMaterial{{MaterialID: material.ID}},
			},
			want: workshop.ErrWeightNotValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.AddOrder(ctx, &tt.order)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, workshop.IsValidationError(err))
		})
	}
}

func TestWorkshop_CatalogDeleteGuards(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000014")
	material, productType := addCatalog(t, w)

	order := model.Order{
		ClientID: client.ID,
		TypeID:   productType.ID,
		Materials: []model.OrderMaterial{
			{MaterialID: material.ID, Weight: decimal.NewFromFloat(3.5)},
		},
	}
	require.NoError(t, w.AddOrder(ctx, &order))

	assert.ErrorIs(t, w.DeleteMaterial(ctx, material.ID), errstore.ErrMaterialInUse)
	assert.ErrorIs(t, w.DeleteProductType(ctx, productType.ID), errstore.ErrProductTypeInUse)

	require.NoError(t, w.DeleteOrder(ctx, order.ID))
	assert.NoError(t, w.DeleteMaterial(ctx, material.ID))
	assert.NoError(t, w.DeleteProductType(ctx, productType.ID))
}

func TestWorkshop_RegisterAndAuthorization(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)

	role := model.Role{Name: "master"}
	require.NoError(t, w.AddRole(ctx, &role))

	user, err := w.Register(ctx, "jeweler", "secret-pass", role.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass", user.PasswordHash)

	_, err = w.Register(ctx, "jeweler", "other-pass", role.ID)
	assert.ErrorIs(t, err, errstore.ErrUsernameNotUnique)

	_, err = w.Authorization(ctx, "jeweler", "secret-pass")
	assert.NoError(t, err)

	_, err = w.Authorization(ctx, "jeweler", "wrong-pass")
	assert.ErrorIs(t, err, workshop.ErrPasswordNotEqual)

	_, err = w.Authorization(ctx, "nobody", "secret-pass")
	assert.ErrorIs(t, err, errstore.ErrNotFoundData)
}

func TestWorkshop_DeleteRoleInUse(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)

	role := model.Role{Name: "admin"}
	require.NoError(t, w.AddRole(ctx, &role))
	_, err := w.Register(ctx, "boss", "pass", role.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, w.DeleteRole(ctx, role.ID), errstore.ErrRoleInUse)
}

func TestWorkshop_UpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)

	role := model.Role{Name: "seller"}
	require.NoError(t, w.AddRole(ctx, &role))
	user, err := w.Register(ctx, "clerk", "first-pass", role.ID)
	require.NoError(t, err)

	updated := model.User{ID: user.ID, Username: "clerk-renamed", RoleID: role.ID}
	require.NoError(t, w.UpdateUser(ctx, &updated, ""))

	_, err = w.Authorization(ctx, "clerk-renamed", "first-pass")
	assert.NoError(t, err)

	require.NoError(t, w.UpdateUser(ctx, &updated, "second-pass"))
	_, err = w.Authorization(ctx, "clerk-renamed", "first-pass")
	assert.ErrorIs(t, err, workshop.ErrPasswordNotEqual)
	_, err = w.Authorization(ctx, "clerk-renamed", "second-pass")
	assert.NoError(t, err)
}

// countingStore counts standalone aggregate recomputation calls so tests can
// tell them apart from recomputation riding inside an order mutation.
type countingStore struct {
	*store.MemoryStore
	recalcCalls int
}

func (c *countingStore) RecalculateAggregate(ctx context.Context, clientID uint, policy model.AggregatePolicy) (model.Client, error) {
	c.recalcCalls++
	return c.MemoryStore.RecalculateAggregate(ctx, clientID, policy)
}

func TestWorkshop_OrderMutationRecomputesInOneStoreCall(t *testing.T) {
	ctx := context.Background()
	counting := &countingStore{MemoryStore: store.NewMemoryStore()}
	w := workshop.New(&workshop.Config{}, counting)

	client := addClient(t, w, "+79990000016")
	_, productType := addCatalog(t, w)

	order := addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 30000)
	got := clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, 5, got.Discount)

	order.Price = decimal.NewFromInt(120000)
	require.NoError(t, w.UpdateOrder(ctx, &order))
	assert.Equal(t, 15, clientState(t, w, client.ID).Discount)

	require.NoError(t, w.DeleteOrder(ctx, order.ID))
	assert.True(t, clientState(t, w, client.ID).TotalPurchases.IsZero())

	// Every aggregate above came out of the order mutation itself.
	assert.Equal(t, 0, counting.recalcCalls)

	_, err := w.RecalculateClientAggregate(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counting.recalcCalls)
}

var errTxAborted = errors.New("transaction aborted")

// failingOrderStore rejects order mutations once armed, standing in for a
// transaction that rolled back in the database.
type failingOrderStore struct {
	*store.MemoryStore
	fail bool
}

func (f *failingOrderStore) CreateOrder(ctx context.Context, order *model.Order, policy model.AggregatePolicy) (model.Client, error) {
	if f.fail {
		return model.Client{}, errTxAborted
	}
	return f.MemoryStore.CreateOrder(ctx, order, policy)
}

func (f *failingOrderStore) UpdateOrder(ctx context.Context, order *model.Order, policy model.AggregatePolicy) ([]model.Client, error) {
	if f.fail {
		return nil, errTxAborted
	}
	return f.MemoryStore.UpdateOrder(ctx, order, policy)
}

func TestWorkshop_FailedOrderMutationLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	failing := &failingOrderStore{MemoryStore: store.NewMemoryStore()}
	w := workshop.New(&workshop.Config{}, failing)

	client := addClient(t, w, "+79990000017")
	_, productType := addCatalog(t, w)
	order := addOrder(t, w, client.ID, productType.ID, model.OrderStatusCompleted, 30000)

	failing.fail = true

	update := order
	update.Price = decimal.NewFromInt(99999)
	assert.ErrorIs(t, w.UpdateOrder(ctx, &update), errTxAborted)

	// Neither half of the invariant moved: the cached order keeps its old
	// price and the aggregate still matches it.
	cached, err := w.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, cached.Price.Equal(decimal.NewFromInt(30000)))
	got := clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, 5, got.Discount)

	add := model.Order{
		ClientID: client.ID,
		TypeID:   productType.ID,
		Status:   model.OrderStatusCompleted,
		Price:    decimal.NewFromInt(70000),
	}
	assert.ErrorIs(t, w.AddOrder(ctx, &add), errTxAborted)
	assert.Len(t, w.Orders(), 1)
	assert.Equal(t, 5, clientState(t, w, client.ID).Discount)
}

func TestWorkshop_OrderByIDServesCostedLines(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)
	client := addClient(t, w, "+79990000018")
	material, productType := addCatalog(t, w)

	order := model.Order{
		ClientID: client.ID,
		TypeID:   productType.ID,
		Materials: []model.OrderMaterial{
			{MaterialID: material.ID, Weight: decimal.NewFromInt(5)},
		},
	}
	require.NoError(t, w.AddOrder(ctx, &order))

	// Served from the cache right after the create, lines must be costed.
	cached, err := w.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, cached.Materials, 1)
	assert.Equal(t, "gold 585", cached.Materials[0].Material.Name)
	assert.True(t, cached.Materials[0].TotalCost().Equal(decimal.NewFromInt(20000)),
		"line cost=%s", cached.Materials[0].TotalCost())

	order.Materials = []model.OrderMaterial{
		{MaterialID: material.ID, Weight: decimal.NewFromInt(2)},
	}
	require.NoError(t, w.UpdateOrder(ctx, &order))
	cached, err = w.OrderByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, cached.Materials, 1)
	assert.True(t, cached.Materials[0].TotalCost().Equal(decimal.NewFromInt(8000)))
}

func TestWorkshop_RegisteredUserCachedWithRole(t *testing.T) {
	ctx := context.Background()
	w := newWorkshop(t)

	role := model.Role{Name: "master"}
	require.NoError(t, w.AddRole(ctx, &role))
	other := model.Role{Name: "apprentice"}
	require.NoError(t, w.AddRole(ctx, &other))

	user, err := w.Register(ctx, "smith", "pass", role.ID)
	require.NoError(t, err)

	users := w.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "master", users[0].Role.Name)

	updated := model.User{ID: user.ID, Username: "smith", RoleID: other.ID}
	require.NoError(t, w.UpdateUser(ctx, &updated, ""))
	users = w.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "apprentice", users[0].Role.Name)
}

func TestWorkshop_LoadRebuildsAggregates(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemoryStore()

	seed := workshop.New(&workshop.Config{}, memory)
	client := model.Client{Phone: "+79990000015", FullName: "Seeded"}
	require.NoError(t, seed.AddClient(ctx, &client))
	productType := model.ProductType{Name: "chain", LaborCost: decimal.NewFromInt(2000)}
	require.NoError(t, seed.AddProductType(ctx, &productType))
	order := model.Order{
		ClientID: client.ID,
		TypeID:   productType.ID,
		Status:   model.OrderStatusCompleted,
		Price:    decimal.NewFromInt(52000),
	}
	require.NoError(t, seed.AddOrder(ctx, &order))

	// Fresh instance over the same store starts from an empty cache.
	w := workshop.New(&workshop.Config{}, memory)
	require.NoError(t, w.Load(ctx))

	got := clientState(t, w, client.ID)
	assert.True(t, got.TotalPurchases.Equal(decimal.NewFromInt(52000)))
	assert.Equal(t, 10, got.Discount)
	assert.Len(t, w.Orders(), 1)
}
