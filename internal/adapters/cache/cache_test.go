package cache_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/juvelir/workshop/internal/adapters/cache"
	"github.com/juvelir/workshop/internal/adapters/store/model"
)

func TestContainer_ClientSection(t *testing.T) {
	c := cache.New()

	c.PutClient(model.Client{ID: 2, Phone: "+79990000002", FullName: "Second"})
	c.PutClient(model.Client{ID: 1, Phone: "+79990000001", FullName: "First"})

	clients := c.Clients()
	assert.Len(t, clients, 2)
	assert.Equal(t, uint(1), clients[0].ID, "listing is ordered by id")
	assert.Equal(t, uint(2), clients[1].ID)

	got, ok := c.Client(1)
	assert.True(t, ok)
	assert.Equal(t, "First", got.FullName)

	got, ok = c.ClientByPhone("+79990000002")
	assert.True(t, ok)
	assert.Equal(t, uint(2), got.ID)

	_, ok = c.ClientByPhone("+70000000000")
	assert.False(t, ok)

	c.PutClient(model.Client{ID: 1, Phone: "+79990000001", FullName: "Renamed"})
	got, _ = c.Client(1)
	assert.Equal(t, "Renamed", got.FullName)

	c.RemoveClient(1)
	_, ok = c.Client(1)
	assert.False(t, ok)
	assert.Len(t, c.Clients(), 1)
}

func TestContainer_ReplaceDropsStale(t *testing.T) {
	c := cache.New()
	c.PutOrder(model.Order{ID: 10, ClientID: 1})
	c.PutOrder(model.Order{ID: 11, ClientID: 1})

	c.ReplaceOrders([]model.Order{{ID: 12, ClientID: 2}})

	_, ok := c.Order(10)
	assert.False(t, ok)
	assert.Len(t, c.Orders(), 1)
}

func TestContainer_OrdersByClient(t *testing.T) {
	c := cache.New()
	c.PutOrder(model.Order{ID: 3, ClientID: 7, Price: decimal.NewFromInt(100)})
	c.PutOrder(model.Order{ID: 1, ClientID: 7, Price: decimal.NewFromInt(200)})
	c.PutOrder(model.Order{ID: 2, ClientID: 8, Price: decimal.NewFromInt(300)})

	orders := c.OrdersByClient(7)
	assert.Len(t, orders, 2)
	assert.Equal(t, uint(1), orders[0].ID)
	assert.Equal(t, uint(3), orders[1].ID)

	assert.Empty(t, c.OrdersByClient(99))
}
