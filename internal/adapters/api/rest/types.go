package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/juvelir/workshop/internal/adapters/store/model"
)

const dateLayout = "2006-01-02"

type tRegistration struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RoleID   uint   `json:"role_id"`
}

type tAuthorization struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tClientRequest struct {
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type tClient struct {
	Phone          string          `json:"phone"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	ID             uint            `json:"id"`
	Discount       int             `json:"discount"`
}

func newClient(client model.Client) tClient {
	return tClient{
		ID:             client.ID,
		Phone:          client.Phone,
		FullName:       client.FullName,
		Email:          client.Email,
		TotalPurchases: client.TotalPurchases,
		Discount:       client.Discount,
	}
}

type tOrderLine struct {
	MaterialID uint            `json:"material_id"`
	Weight     decimal.Decimal `json:"weight"`
}

type tOrderRequest struct {
	OrderDate   string            `json:"order_date"`
	Status      model.OrderStatus `json:"status"`
	TotalWeight decimal.Decimal   `json:"total_weight"`
	Price       decimal.Decimal   `json:"price"`
	Materials   []tOrderLine      `json:"materials"`
	ClientID    uint              `json:"client_id"`
	TypeID      uint              `json:"product_type_id"`
}

func (r tOrderRequest) toModel() (model.Order, error) {
	order := model.Order{
		ClientID:    r.ClientID,
		TypeID:      r.TypeID,
		Status:      r.Status,
		TotalWeight: r.TotalWeight,
		Price:       r.Price,
	}
	if r.OrderDate != "" {
		date, err := time.Parse(dateLayout, r.OrderDate)
		if err != nil {
			return order, err
		}
		order.OrderDate = date
	}
	for _, line := range r.Materials {
		order.Materials = append(order.Materials, model.OrderMaterial{
			MaterialID: line.MaterialID,
			Weight:     line.Weight,
		})
	}
	return order, nil
}

type tOrderLineResponse struct {
	MaterialID uint            `json:"material_id"`
	Name       string          `json:"material,omitempty"`
	Weight     decimal.Decimal `json:"weight"`
	TotalCost  decimal.Decimal `json:"total_cost"`
}

type tOrder struct {
	OrderDate   string               `json:"order_date"`
	Status      model.OrderStatus    `json:"status"`
	TotalWeight decimal.Decimal      `json:"total_weight"`
	Price       decimal.Decimal      `json:"price"`
	Materials   []tOrderLineResponse `json:"materials"`
	ID          uint                 `json:"id"`
	ClientID    uint                 `json:"client_id"`
	TypeID      uint                 `json:"product_type_id"`
}

func newOrder(order model.Order) tOrder {
	resp := tOrder{
		ID:          order.ID,
		ClientID:    order.ClientID,
		TypeID:      order.TypeID,
		OrderDate:   order.OrderDate.Format(dateLayout),
		Status:      order.Status,
		TotalWeight: order.TotalWeight,
		Price:       order.Price,
	}
	for _, line := range order.Materials {
		resp.Materials = append(resp.Materials, tOrderLineResponse{
			MaterialID: line.MaterialID,
			Name:       line.Material.Name,
			Weight:     line.Weight,
			TotalCost:  line.TotalCost(),
		})
	}
	return resp
}

type tMaterial struct {
	Name        string          `json:"name"`
	CostPerGram decimal.Decimal `json:"cost_per_gram"`
	ID          uint            `json:"id"`
}

type tProductType struct {
	Name      string          `json:"name"`
	LaborCost decimal.Decimal `json:"labor_cost"`
	ID        uint            `json:"id"`
}

type tRole struct {
	Name string `json:"name"`
	ID   uint   `json:"id"`
}

type tUser struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
	ID       uint   `json:"id"`
	RoleID   uint   `json:"role_id"`
}

func newUser(user model.User) tUser {
	return tUser{
		ID:       user.ID,
		Username: user.Username,
		RoleID:   user.RoleID,
		Role:     user.Role.Name,
	}
}
