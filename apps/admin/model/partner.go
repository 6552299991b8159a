package model

import (
	"time"

	"gorm.io/datatypes"
)

// Vendor 经销商名录，与 Supplier 职责不同：
// Supplier 被商品采购链引用，Vendor 是独立的授权经销商档案，两者不合并
type Vendor struct {
	ID               uint                        `gorm:"primaryKey" json:"id"`
	Name             string                      `gorm:"type:varchar(255);not null" json:"name"`
	ContactEmail     string                      `gorm:"type:varchar(255)" json:"contactEmail"`
	ContactPhone     string                      `gorm:"type:varchar(30)" json:"contactPhone"`
	Address          datatypes.JSONType[Address] `json:"address"`
	AuthorizedDealer bool                        `gorm:"not null;default:false" json:"authorizedDealer"`
	PaymentTerms     string                      `gorm:"type:varchar(100)" json:"paymentTerms"`
	IsActive         bool                        `gorm:"not null" json:"isActive"`
	CreatedAt        time.Time                   `json:"createdAt"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

// Supplier 供应商，被 Product.supplier_id 引用
type Supplier struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Name         string                      `gorm:"type:varchar(255);not null" json:"name"`
	ContactEmail string                      `gorm:"type:varchar(255)" json:"contactEmail"`
	ContactPhone string                      `gorm:"type:varchar(30)" json:"contactPhone"`
	Address      datatypes.JSONType[Address] `json:"address"`
	IsActive     bool                        `gorm:"not null" json:"isActive"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

func (Vendor) TableName() string {
	return "vendors"
}

func (Supplier) TableName() string {
	return "suppliers"
}
