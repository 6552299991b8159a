package model

import (
	"time"

	"gorm.io/datatypes"
)

// OrderType 订单类型
type OrderType string

const (
	OrderRetail    OrderType = "retail"
	OrderBulk      OrderType = "bulk"
	OrderEmergency OrderType = "emergency"
	OrderWarranty  OrderType = "warranty"
	OrderRecurring OrderType = "recurring"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderRetail, OrderBulk, OrderEmergency, OrderWarranty, OrderRecurring:
		return true
	}
	return false
}

// OrderStatus 订单状态
// 正向流转 pending → confirmed → processing → shipped → delivered
// cancelled/returned 可从任意未送达状态侧向退出
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderReturned   OrderStatus = "returned"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped,
		OrderDelivered, OrderCancelled, OrderReturned:
		return true
	}
	return false
}

// 正向链上的序号，终态不在链上
var orderProgression = map[OrderStatus]int{
	OrderPending:    0,
	OrderConfirmed:  1,
	OrderProcessing: 2,
	OrderShipped:    3,
	OrderDelivered:  4,
}

// CanTransitionTo 校验状态流转是否合法，非法跳转一律拒绝
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return false
	}
	cur, curOk := orderProgression[s]
	if !curOk {
		// cancelled/returned 是终态
		return false
	}
	if next == OrderCancelled || next == OrderReturned {
		// 送达之前都可以取消/退货
		return s != OrderDelivered
	}
	n, ok := orderProgression[next]
	return ok && n == cur+1
}

// Order 订单主表
// total_amount = subtotal + tax + shipping，由存储层在每次写入时重算
type Order struct {
	ID                uint                        `gorm:"primaryKey" json:"id"`
	OrderNumber       string                      `gorm:"type:varchar(64);uniqueIndex;not null" json:"orderNumber"`
	CustomerID        uint                        `gorm:"index;not null" json:"customerId"`
	OrderType         OrderType                   `gorm:"type:varchar(16);not null;default:'retail'" json:"orderType"`
	Status            OrderStatus                 `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	Subtotal          float64                     `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	TaxAmount         float64                     `gorm:"type:decimal(12,2);default:0" json:"taxAmount"`
	ShippingAmount    float64                     `gorm:"type:decimal(12,2);default:0" json:"shippingAmount"`
	TotalAmount       float64                     `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	Notes             string                      `gorm:"type:text" json:"notes,omitempty"`
	ShippingAddress   datatypes.JSONType[Address] `json:"shippingAddress"`
	BillingAddress    datatypes.JSONType[Address] `json:"billingAddress"`
	EstimatedDelivery *time.Time                  `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time                  `json:"actualDelivery,omitempty"`
	Items             []OrderItem                 `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`
}

// OrderItem 订单明细，total_price = quantity × unit_price
type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"index;not null" json:"orderId"`
	ProductID  uint      `gorm:"index;not null" json:"productId"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  float64   `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalPrice float64   `gorm:"type:decimal(12,2);not null" json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}

func (OrderItem) TableName() string {
	return "order_items"
}
