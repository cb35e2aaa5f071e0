// Package store provides an in-memory Store used by tests.
package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/juvelir/workshop/internal/adapters/store/errstore"
	"github.com/juvelir/workshop/internal/adapters/store/model"
)

// MemoryStore keeps every entity in maps and reproduces the guard and
// aggregate semantics of the database adapter.
type MemoryStore struct {
	mu           sync.Mutex
	clients      map[uint]model.Client
	orders       map[uint]model.Order
	materials    map[uint]model.Material
	productTypes map[uint]model.ProductType
	roles        map[uint]model.Role
	users        map[uint]model.User
	nextID       uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clients:      map[uint]model.Client{},
		orders:       map[uint]model.Order{},
		materials:    map[uint]model.Material{},
		productTypes: map[uint]model.ProductType{},
		roles:        map[uint]model.Role{},
		users:        map[uint]model.User{},
	}
}

func (m *MemoryStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *MemoryStore) CreateClient(_ context.Context, client *model.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.clients {
		if c.Phone == client.Phone {
			return errstore.ErrNotUniqueData
		}
	}
	client.ID = m.id()
	m.clients[client.ID] = *client
	return nil
}

func (m *MemoryStore) UpdateClient(_ context.Context, client *model.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[client.ID]; !ok {
		return errstore.ErrNotFoundData
	}
	m.clients[client.ID] = *client
	return nil
}

func (m *MemoryStore) DeleteClient(_ context.Context, clientID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[clientID]; !ok {
		return errstore.ErrNotFoundData
	}
	for _, o := range m.orders {
		if o.ClientID == clientID {
			return errstore.ErrClientHasOrders
		}
	}
	delete(m.clients, clientID)
	return nil
}

func (m *MemoryStore) GetClient(_ context.Context, clientID uint) (model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	client, ok := m.clients[clientID]
	if !ok {
		return client, errstore.ErrNotFoundData
	}
	return client, nil
}

func (m *MemoryStore) ListClients(_ context.Context) ([]model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clients := []model.Client{}
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	return clients, nil
}

func (m *MemoryStore) RecalculateAggregate(_ context.Context, clientID uint, policy model.AggregatePolicy) (model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.recalcLocked(clientID, policy)
}

// recalcLocked recomputes one client's aggregate under the held lock, the
// way the database adapter does it inside an open transaction.
func (m *MemoryStore) recalcLocked(clientID uint, policy model.AggregatePolicy) (model.Client, error) {
	client, ok := m.clients[clientID]
	if !ok {
		return client, errstore.ErrNotFoundData
	}
	total := decimal.Zero
	for _, o := range m.orders {
		if o.ClientID != clientID {
			continue
		}
		for _, s := range policy.Qualifying {
			if o.Status == s {
				total = total.Add(o.Price)
				break
			}
		}
	}
	client.TotalPurchases = total
	client.Discount = policy.DiscountFor(total)
	m.clients[clientID] = client
	return client, nil
}

// resolveLinesLocked mimics the adapter's post-mutation reload: lines come
// back with their Material association populated.
func (m *MemoryStore) resolveLinesLocked(order *model.Order) {
	for i := range order.Materials {
		order.Materials[i].OrderID = order.ID
		order.Materials[i].Material = m.materials[order.Materials[i].MaterialID]
	}
}

func (m *MemoryStore) CreateOrder(_ context.Context, order *model.Order, policy model.AggregatePolicy) (model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[order.ClientID]; !ok {
		return model.Client{}, errstore.ErrReferenceViolation
	}
	order.ID = m.id()
	m.resolveLinesLocked(order)
	m.orders[order.ID] = *order
	return m.recalcLocked(order.ClientID, policy)
}

func (m *MemoryStore) UpdateOrder(_ context.Context, order *model.Order, policy model.AggregatePolicy) ([]model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.orders[order.ID]
	if !ok {
		return nil, errstore.ErrNotFoundData
	}
	if _, ok := m.clients[order.ClientID]; !ok {
		return nil, errstore.ErrReferenceViolation
	}
	m.resolveLinesLocked(order)
	m.orders[order.ID] = *order

	clients := []model.Client{}
	for _, clientID := range []uint{prev.ClientID, order.ClientID} {
		if len(clients) > 0 && clients[0].ID == clientID {
			continue
		}
		client, err := m.recalcLocked(clientID, policy)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func (m *MemoryStore) DeleteOrder(_ context.Context, orderID uint, policy model.AggregatePolicy) (model.Order, model.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	deleted, ok := m.orders[orderID]
	if !ok {
		return deleted, model.Client{}, errstore.ErrNotFoundData
	}
	delete(m.orders, orderID)
	owner, err := m.recalcLocked(deleted.ClientID, policy)
	if err != nil {
		return deleted, owner, err
	}
	return deleted, owner, nil
}

func (m *MemoryStore) GetOrder(_ context.Context, orderID uint) (model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return order, errstore.ErrNotFoundData
	}
	return order, nil
}

func (m *MemoryStore) ListOrders(_ context.Context) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := []model.Order{}
	for _, o := range m.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (m *MemoryStore) ListOrdersByClient(_ context.Context, clientID uint) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := []model.Order{}
	for _, o := range m.orders {
		if o.ClientID == clientID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *MemoryStore) CreateMaterial(_ context.Context, material *model.Material) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	material.ID = m.id()
	m.materials[material.ID] = *material
	return nil
}

func (m *MemoryStore) UpdateMaterial(_ context.Context, material *model.Material) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.materials[material.ID]; !ok {
		return errstore.ErrNotFoundData
	}
	m.materials[material.ID] = *material
	return nil
}

func (m *MemoryStore) DeleteMaterial(_ context.Context, materialID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.materials[materialID]; !ok {
		return errstore.ErrNotFoundData
	}
	for _, o := range m.orders {
		for _, line := range o.Materials {
			if line.MaterialID == materialID {
				return errstore.ErrMaterialInUse
			}
		}
	}
	delete(m.materials, materialID)
	return nil
}

func (m *MemoryStore) ListMaterials(_ context.Context) ([]model.Material, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	materials := []model.Material{}
	for _, v := range m.materials {
		materials = append(materials, v)
	}
	return materials, nil
}

func (m *MemoryStore) CreateProductType(_ context.Context, productType *model.ProductType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	productType.ID = m.id()
	m.productTypes[productType.ID] = *productType
	return nil
}

func (m *MemoryStore) UpdateProductType(_ context.Context, productType *model.ProductType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.productTypes[productType.ID]; !ok {
		return errstore.ErrNotFoundData
	}
	m.productTypes[productType.ID] = *productType
	return nil
}

func (m *MemoryStore) DeleteProductType(_ context.Context, typeID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.productTypes[typeID]; !ok {
		return errstore.ErrNotFoundData
	}
	for _, o := range m.orders {
		if o.TypeID == typeID {
			return errstore.ErrProductTypeInUse
		}
	}
	delete(m.productTypes, typeID)
	return nil
}

func (m *MemoryStore) ListProductTypes(_ context.Context) ([]model.ProductType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := []model.ProductType{}
	for _, v := range m.productTypes {
		types = append(types, v)
	}
	return types, nil
}

func (m *MemoryStore) CreateRole(_ context.Context, role *model.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.roles {
		if r.Name == role.Name {
			return errstore.ErrNotUniqueData
		}
	}
	role.ID = m.id()
	m.roles[role.ID] = *role
	return nil
}

func (m *MemoryStore) DeleteRole(_ context.Context, roleID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roles[roleID]; !ok {
		return errstore.ErrNotFoundData
	}
	for _, u := range m.users {
		if u.RoleID == roleID {
			return errstore.ErrRoleInUse
		}
	}
	delete(m.roles, roleID)
	return nil
}

func (m *MemoryStore) ListRoles(_ context.Context) ([]model.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	roles := []model.Role{}
	for _, v := range m.roles {
		roles = append(roles, v)
	}
	return roles, nil
}

func (m *MemoryStore) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return errstore.ErrUsernameNotUnique
		}
	}
	if _, ok := m.roles[user.RoleID]; !ok {
		return errstore.ErrReferenceViolation
	}
	// Like the adapter's insert, no association is loaded here.
	user.ID = m.id()
	m.users[user.ID] = *user
	return nil
}

func (m *MemoryStore) UpdateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.users[user.ID]
	if !ok {
		return errstore.ErrNotFoundData
	}
	if user.PasswordHash == "" {
		user.PasswordHash = existing.PasswordHash
	}
	if _, ok := m.roles[user.RoleID]; !ok {
		return errstore.ErrReferenceViolation
	}
	m.users[user.ID] = *user
	return nil
}

func (m *MemoryStore) DeleteUser(_ context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[userID]; !ok {
		return errstore.ErrNotFoundData
	}
	delete(m.users, userID)
	return nil
}

func (m *MemoryStore) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			u.Role = m.roles[u.RoleID]
			return u, nil
		}
	}
	return model.User{}, errstore.ErrNotFoundData
}

func (m *MemoryStore) ListUsers(_ context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := []model.User{}
	for _, v := range m.users {
		v.Role = m.roles[v.RoleID]
		users = append(users, v)
	}
	return users, nil
}
