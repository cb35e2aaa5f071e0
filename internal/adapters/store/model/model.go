package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusInProcess OrderStatus = "IN_PROCESS"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusInProcess, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// AggregatePolicy tells the store which order statuses count toward a
// client's total purchases and how a total maps onto a discount percent.
// Order mutations recompute affected client aggregates under this policy
// inside the same transaction.
type AggregatePolicy struct {
	DiscountFor func(total decimal.Decimal) int
	Qualifying  []OrderStatus
}

// Client carries the derived aggregate fields TotalPurchases and Discount,
// recomputed from the client's completed orders.
type Client struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Phone          string          `gorm:"column:phone;size:20;uniqueIndex;not null"`
	FullName       string          `gorm:"column:full_name;not null"`
	Email          string          `gorm:"column:email"`
	TotalPurchases decimal.Decimal `gorm:"column:total_purchases;type:numeric(14,2);not null;default:0"`
	ID             uint            `gorm:"column:client_id;primarykey"`
	Discount       int             `gorm:"column:discount;not null;default:0"`
}

func (Client) TableName() string { return "clients" }

type Material struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string          `gorm:"column:name;uniqueIndex;not null"`
	CostPerGram decimal.Decimal `gorm:"column:cost_per_gram;type:numeric(12,2);not null"`
	ID          uint            `gorm:"column:material_id;primarykey"`
}

func (Material) TableName() string { return "materials" }

type ProductType struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string          `gorm:"column:name;uniqueIndex;not null"`
	LaborCost decimal.Decimal `gorm:"column:labor_cost;type:numeric(12,2);not null"`
	ID        uint            `gorm:"column:type_id;primarykey"`
}

func (ProductType) TableName() string { return "product_types" }

type Order struct {
	CreatedAt   time.Time
	UpdatedAt   time.Time
	OrderDate   time.Time       `gorm:"column:order_date;type:date;not null"`
	Status      OrderStatus     `gorm:"column:status;size:16;not null;default:IN_PROCESS"`
	TotalWeight decimal.Decimal `gorm:"column:total_weight;type:numeric(12,2);not null;default:0"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(14,2);not null;default:0"`
	Materials   []OrderMaterial `gorm:"foreignKey:OrderID"`
	ID          uint            `gorm:"column:order_id;primarykey"`
	ClientID    uint            `gorm:"column:client_id;index;not null"`
	TypeID      uint            `gorm:"column:product_type_id;not null"`
}

func (Order) TableName() string { return "orders" }

// TotalWithDiscount applies the client's percent discount to the order price.
func (o Order) TotalWithDiscount(discount int) decimal.Decimal {
	if discount <= 0 {
		return o.Price
	}
	factor := decimal.NewFromInt(100 - int64(discount)).Div(decimal.NewFromInt(100))
	return o.Price.Mul(factor)
}

// OrderMaterial is a line of an order, owned exclusively by it.
type OrderMaterial struct {
	Material   Material        `gorm:"foreignKey:MaterialID"`
	Weight     decimal.Decimal `gorm:"column:weight;type:numeric(12,2);not null"`
	OrderID    uint            `gorm:"column:order_id;primarykey"`
	MaterialID uint            `gorm:"column:material_id;primarykey"`
}

func (OrderMaterial) TableName() string { return "order_materials" }

// TotalCost is weight times the material's cost per gram.
func (m OrderMaterial) TotalCost() decimal.Decimal {
	return m.Weight.Mul(m.Material.CostPerGram)
}

type Role struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string `gorm:"column:role_name;uniqueIndex;not null"`
	ID        uint   `gorm:"column:role_id;primarykey"`
}

func (Role) TableName() string { return "roles" }

type User struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string `gorm:"column:username;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         Role   `gorm:"foreignKey:RoleID"`
	ID           uint   `gorm:"column:user_id;primarykey"`
	RoleID       uint   `gorm:"column:role_id;not null"`
}

func (User) TableName() string { return "users" }
