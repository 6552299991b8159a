package store

import (
	"time"

	"toolmart-admin/apps/admin/model"

	"gorm.io/datatypes"
)

// 局部更新载荷：nil 字段不动，非 nil 覆盖
// 存储层把它们折成 gorm 的 updates map，更新时间戳由 gorm 刷新

type UserPatch struct {
	Email     *string         `json:"email"`
	FirstName *string         `json:"firstName"`
	LastName  *string         `json:"lastName"`
	Role      *model.UserRole `json:"role"`
	IsActive  *bool           `json:"isActive"`
	Password  *string         `json:"password"`
}

type CustomerPatch struct {
	CompanyName      *string             `json:"companyName"`
	FirstName        *string             `json:"firstName"`
	LastName         *string             `json:"lastName"`
	Email            *string             `json:"email"`
	Phone            *string             `json:"phone"`
	CustomerType     *model.CustomerType `json:"customerType"`
	TaxExempt        *bool               `json:"taxExempt"`
	CreditLimit      *float64            `json:"creditLimit"`
	PaymentTermsDays *int                `json:"paymentTermsDays"`
	Address          *model.Address      `json:"address"`
	IsActive         *bool               `json:"isActive"`
}

type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder"`
}

type ProductPatch struct {
	Name            *string           `json:"name"`
	Description     *string           `json:"description"`
	Specifications  *string           `json:"specifications"`
	Brand           *string           `json:"brand"`
	CategoryIds     *[]int64          `json:"categoryIds"`
	SellingPrice    *float64          `json:"sellingPrice"`
	CostPrice       *float64          `json:"costPrice"`
	OriginalPrice   *float64          `json:"originalPrice"`
	DiscountPercent *float64          `json:"discountPercent"`
	Weight          *float64          `json:"weight"`
	Dimensions      *model.Dimensions `json:"dimensions"`
	Images          *[]string         `json:"images"`
	IsActive        *bool             `json:"isActive"`
	SupplierID      *uint             `json:"supplierId"`
	Tags            *[]string         `json:"tags"`
}

type VariantPatch struct {
	Attributes    *[]model.VariantAttribute `json:"attributes"`
	StockQuantity *int                      `json:"stockQuantity"`
	PriceDelta    *float64                  `json:"priceDelta"`
	Images        *[]string                 `json:"images"`
}

type InventoryPatch struct {
	Location         *string    `json:"location"`
	QuantityOnHand   *int       `json:"quantityOnHand"`
	QuantityReserved *int       `json:"quantityReserved"`
	ReorderPoint     *int       `json:"reorderPoint"`
	MaxStock         *int       `json:"maxStock"`
	LastStockCheck   *time.Time `json:"lastStockCheck"`
}

type OrderPatch struct {
	OrderType         *model.OrderType `json:"orderType"`
	Subtotal          *float64         `json:"subtotal"`
	TaxAmount         *float64         `json:"taxAmount"`
	ShippingAmount    *float64         `json:"shippingAmount"`
	Notes             *string          `json:"notes"`
	ShippingAddress   *model.Address   `json:"shippingAddress"`
	BillingAddress    *model.Address   `json:"billingAddress"`
	EstimatedDelivery *time.Time       `json:"estimatedDelivery"`
	ActualDelivery    *time.Time       `json:"actualDelivery"`
}

type WarrantyPatch struct {
	SerialNumber      *string    `json:"serialNumber"`
	PurchaseDate      *time.Time `json:"purchaseDate"`
	WarrantyStartDate *time.Time `json:"warrantyStartDate"`
	WarrantyEndDate   *time.Time `json:"warrantyEndDate"`
	ResolutionNotes   *string    `json:"resolutionNotes"`
}

// PartnerPatch Vendor/Supplier 共用的更新载荷
type PartnerPatch struct {
	Name             *string        `json:"name"`
	ContactEmail     *string        `json:"contactEmail"`
	ContactPhone     *string        `json:"contactPhone"`
	Address          *model.Address `json:"address"`
	AuthorizedDealer *bool          `json:"authorizedDealer"`
	PaymentTerms     *string        `json:"paymentTerms"`
	IsActive         *bool          `json:"isActive"`
}

// 查询过滤条件

type CustomerFilter struct {
	CustomerType model.CustomerType
	ActiveOnly   bool
	Query        string // 姓名/公司/邮箱 子串匹配
}

type ProductFilter struct {
	Query      string // name/sku/brand 不区分大小写子串匹配
	CategoryID uint
	ActiveOnly bool
}

type OrderFilter struct {
	Status     model.OrderStatus
	OrderType  model.OrderType
	CustomerID uint
}

type WarrantyFilter struct {
	// 按呈现状态过滤（含计算出的 expired）
	Status       model.WarrantyStatus
	CustomerID   uint
	ProductID    uint
	ExpiringSoon bool
}

// 聚合读返回结构

type CategoryCount struct {
	CategoryID   uint   `json:"categoryId"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"productCount"`
}

type OrderWithCustomer struct {
	model.Order
	Customer *model.Customer `json:"customer,omitempty"`
}

type DashboardMetrics struct {
	MonthlyRevenue          float64 `json:"monthlyRevenue"`
	ActiveOrders            int64   `json:"activeOrders"`
	LowStockCount           int64   `json:"lowStockCount"`
	WarrantyClaimsThisMonth int64   `json:"warrantyClaimsThisMonth"`
	ExpiringWarranties      int64   `json:"expiringWarranties"`
}

func jsonAddress(a *model.Address) datatypes.JSONType[model.Address] {
	return datatypes.NewJSONType(*a)
}
