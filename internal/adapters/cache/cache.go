// Package cache keeps an in-memory mirror of every entity collection.
// It is patched by the core after each successful store mutation and must
// never be written to directly by callers.
package cache

import (
	"sort"
	"sync"

	"github.com/juvelir/workshop/internal/adapters/store/model"
)

type section[T any] struct {
	items map[uint]T
	key   func(T) uint
	mu    sync.RWMutex
}

func newSection[T any](key func(T) uint) *section[T] {
	return &section[T]{
		items: make(map[uint]T),
		key:   key,
	}
}

func (s *section[T]) replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[uint]T, len(items))
	for _, item := range items {
		s.items[s.key(item)] = item
	}
}

func (s *section[T]) put(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[s.key(item)] = item
}

func (s *section[T]) remove(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

func (s *section[T]) get(id uint) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	return item, ok
}

func (s *section[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]T, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return s.key(items[i]) < s.key(items[j]) })
	return items
}

func (s *section[T]) filter(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := []T{}
	for _, item := range s.items {
		if match(item) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return s.key(items[i]) < s.key(items[j]) })
	return items
}

// Container mirrors the relational store, one section per entity.
type Container struct {
	clients      *section[model.Client]
	orders       *section[model.Order]
	materials    *section[model.Material]
	productTypes *section[model.ProductType]
	roles        *section[model.Role]
	users        *section[model.User]
}

func New() *Container {
	return &Container{
		clients:      newSection(func(c model.Client) uint { return c.ID }),
		orders:       newSection(func(o model.Order) uint { return o.ID }),
		materials:    newSection(func(m model.Material) uint { return m.ID }),
		productTypes: newSection(func(t model.ProductType) uint { return t.ID }),
		roles:        newSection(func(r model.Role) uint { return r.ID }),
		users:        newSection(func(u model.User) uint { return u.ID }),
	}
}

func (c *Container) ReplaceClients(clients []model.Client) { c.clients.replace(clients) }
func (c *Container) PutClient(client model.Client) { c.clients.put(client) }
func (c *Container) RemoveClient(id uint) { c.clients.remove(id) }
func (c *Container) Client(id uint) (model.Client, bool) { return c.clients.get(id) }
func (c *Container) Clients() []model.Client { return c.clients.list() }

func (c *Container) ClientByPhone(phone string) (model.Client, bool) {
	matches := c.clients.filter(func(cl model.Client) bool { return cl.Phone == phone })
	if len(matches) == 0 {
		return model.Client{}, false
	}
	return matches[0], true
}

func (c *Container) ReplaceOrders(orders []model.Order) { c.orders.replace(orders) }
func (c *Container) PutOrder(order model.Order) { c.orders.put(order) }
func (c *Container) RemoveOrder(id uint) { c.orders.remove(id) }
func (c *Container) Order(id uint) (model.Order, bool) { return c.orders.get(id) }
func (c *Container) Orders() []model.Order { return c.orders.list() }

func (c *Container) OrdersByClient(clientID uint) []model.Order {
	return c.orders.filter(func(o model.Order) bool { return o.ClientID == clientID })
}

func (c *Container) ReplaceMaterials(materials []model.Material) { c.materials.replace(materials) }
func (c *Container) PutMaterial(material model.Material) { c.materials.put(material) }
func (c *Container) RemoveMaterial(id uint) { c.materials.remove(id) }
func (c *Container) Material(id uint) (model.Material, bool) { return c.materials.get(id) }
func (c *Container) Materials() []model.Material { return c.materials.list() }

func (c *Container) ReplaceProductTypes(types []model.ProductType) { c.productTypes.replace(types) }
func (c *Container) PutProductType(productType model.ProductType) { c.productTypes.put(productType) }
func (c *Container) RemoveProductType(id uint) { c.productTypes.remove(id) }
func (c *Container) ProductType(id uint) (model.ProductType, bool) { return c.productTypes.get(id) }
func (c *Container) ProductTypes() []model.ProductType { return c.productTypes.list() }

func (c *Container) ReplaceRoles(roles []model.Role) { c.roles.replace(roles) }
func (c *Container) PutRole(role model.Role) { c.roles.put(role) }
func (c *Container) RemoveRole(id uint) { c.roles.remove(id) }
func (c *Container) Role(id uint) (model.Role, bool) { return c.roles.get(id) }
func (c *Container) Roles() []model.Role { return c.roles.list() }

func (c *Container) ReplaceUsers(users []model.User) { c.users.replace(users) }
func (c *Container) PutUser(user model.User) { c.users.put(user) }
func (c *Container) RemoveUser(id uint) { c.users.remove(id) }
func (c *Container) Users() []model.User { return c.users.list() }
