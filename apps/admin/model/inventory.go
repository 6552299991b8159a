package model

import "time"

// Inventory 库存记录，按 商品+库位 维度
// quantity_available 冗余存储，每次变更由存储层按 on_hand - reserved 重算
type Inventory struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	ProductID         uint       `gorm:"index;not null" json:"productId"`
	Location          string     `gorm:"type:varchar(100);not null" json:"location"`
	QuantityOnHand    int        `gorm:"not null;default:0" json:"quantityOnHand"`
	QuantityReserved  int        `gorm:"not null;default:0" json:"quantityReserved"`
	QuantityAvailable int        `gorm:"not null;default:0" json:"quantityAvailable"`
	ReorderPoint      int        `gorm:"not null" json:"reorderPoint"`
	MaxStock          *int       `json:"maxStock,omitempty"`
	LastStockCheck    *time.Time `json:"lastStockCheck,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// DefaultLowStockThreshold 低库存预警默认阈值
const DefaultLowStockThreshold = 10

func (Inventory) TableName() string {
	return "inventories"
}
