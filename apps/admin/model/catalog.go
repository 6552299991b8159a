package model

import (
	"time"

	"gorm.io/datatypes"
)

// Category 商品分类
// 与商品是多对多关系，商品侧用 category_ids JSON 数组存引用，删除分类时需手工级联
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Slug        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	IsActive    bool      `gorm:"not null" json:"isActive"`
	SortOrder   int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Product 商品 SPU
type Product struct {
	ID              uint                            `gorm:"primaryKey" json:"id"`
	Sku             string                          `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku"`
	Name            string                          `gorm:"type:varchar(255);not null" json:"name"`
	Description     string                          `gorm:"type:text" json:"description"`
	Specifications  string                          `gorm:"type:text" json:"specifications"`
	Brand           string                          `gorm:"type:varchar(100)" json:"brand"`
	CategoryIds     datatypes.JSONSlice[int64]      `json:"categoryIds"`
	SellingPrice    float64                         `gorm:"type:decimal(10,2);not null" json:"sellingPrice"`
	CostPrice       float64                         `gorm:"type:decimal(10,2)" json:"costPrice"`
	OriginalPrice   *float64                        `gorm:"type:decimal(10,2)" json:"originalPrice,omitempty"`
	DiscountPercent *float64                        `gorm:"type:decimal(5,2)" json:"discountPercent,omitempty"`
	Weight          *float64                        `gorm:"type:decimal(8,2)" json:"weight,omitempty"`
	Dimensions      *datatypes.JSONType[Dimensions] `json:"dimensions,omitempty"`
	Images          datatypes.JSONSlice[string]     `json:"images"` // 最多 4 张
	IsActive        bool                            `gorm:"not null" json:"isActive"`
	SupplierID      *uint                           `gorm:"index" json:"supplierId,omitempty"`
	Tags            datatypes.JSONSlice[string]     `json:"tags"`
	CreatedAt       time.Time                       `json:"createdAt"`
	UpdatedAt       time.Time                       `json:"updatedAt"`
}

// MaxProductImages 商品图片上限
const MaxProductImages = 4

// HasCategory 商品是否挂在某个分类下
func (p *Product) HasCategory(categoryId uint) bool {
	for _, id := range p.CategoryIds {
		if uint(id) == categoryId {
			return true
		}
	}
	return false
}

// VariantAttribute 规格属性对，如 {color, red}
type VariantAttribute struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ProductVariant 商品规格 SKU
// SKU 全局唯一，且不能与任何商品主 SKU 重复
type ProductVariant struct {
	ID            uint                                   `gorm:"primaryKey" json:"id"`
	ProductID     uint                                   `gorm:"index;not null" json:"productId"`
	Sku           string                                 `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku"`
	Attributes    datatypes.JSONType[[]VariantAttribute] `json:"attributes"` // 至少一项
	StockQuantity int                                    `gorm:"not null;default:0" json:"stockQuantity"`
	PriceDelta    float64                                `gorm:"type:decimal(10,2);default:0" json:"priceDelta"` // 可为负
	Images        datatypes.JSONSlice[string]            `json:"images"`
	CreatedAt     time.Time                              `json:"createdAt"`
	UpdatedAt     time.Time                              `json:"updatedAt"`
}

// RatingStatus 评分审核状态
type RatingStatus string

const (
	RatingPending  RatingStatus = "pending"
	RatingApproved RatingStatus = "approved"
	RatingRejected RatingStatus = "rejected"
)

func (s RatingStatus) Valid() bool {
	switch s {
	case RatingPending, RatingApproved, RatingRejected:
		return true
	}
	return false
}

// ProductRating 星级评分，挂在客户+商品上
type ProductRating struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	ProductID        uint         `gorm:"index;not null" json:"productId"`
	CustomerID       uint         `gorm:"index;not null" json:"customerId"`
	Rating           int          `gorm:"not null" json:"rating"` // 1-5
	Status           RatingStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	VerifiedPurchase bool         `gorm:"not null;default:false" json:"verifiedPurchase"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// ProductReview 文字评价
type ProductReview struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  uint      `gorm:"index;not null" json:"productId"`
	CustomerID uint      `gorm:"index;not null" json:"customerId"`
	Rating     int       `gorm:"not null" json:"rating"` // 1-5
	Title      string    `gorm:"type:varchar(255)" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}

func (Product) TableName() string {
	return "products"
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

func (ProductRating) TableName() string {
	return "product_ratings"
}

func (ProductReview) TableName() string {
	return "product_reviews"
}
