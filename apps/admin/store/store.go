package store

import (
	"errors"
	"time"

	"toolmart-admin/apps/admin/model"

	"gorm.io/gorm"
)

// 存储层错误分类，API 层据此映射状态码
var (
	ErrNotFound          = errors.New("record not found")
	ErrConflict          = errors.New("duplicate value for unique field")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidReference  = errors.New("referenced record does not exist")
)

// Store 存储访问层接口
// 每个实体提供 CRUD + 过滤查询，聚合读单列
type Store interface {
	// 员工
	CreateUser(u *model.User) error
	GetUserByID(id uint) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUser(id uint, patch UserPatch) (*model.User, error)

	// 客户
	CreateCustomer(c *model.Customer) error
	GetCustomerByID(id uint) (*model.Customer, error)
	ListCustomers(filter CustomerFilter) ([]model.Customer, error)
	UpdateCustomer(id uint, patch CustomerPatch) (*model.Customer, error)

	// 分类
	CreateCategory(c *model.Category) error
	GetCategoryByID(id uint) (*model.Category, error)
	ListCategories(activeOnly bool) ([]model.Category, error)
	UpdateCategory(id uint, patch CategoryPatch) (*model.Category, error)
	DeleteCategory(id uint) error
	CategoryProductCounts() ([]CategoryCount, error)

	// 商品
	CreateProduct(p *model.Product) error
	GetProductByID(id uint) (*model.Product, error)
	ListProducts(filter ProductFilter) ([]model.Product, error)
	UpdateProduct(id uint, patch ProductPatch) (*model.Product, error)
	DeleteProduct(id uint) error

	// 规格
	CreateVariant(v *model.ProductVariant) error
	GetVariantByID(id uint) (*model.ProductVariant, error)
	ListVariants(productId uint) ([]model.ProductVariant, error)
	UpdateVariant(id uint, patch VariantPatch) (*model.ProductVariant, error)
	DeleteVariant(id uint) error

	// 评分 / 评价
	CreateRating(r *model.ProductRating) error
	ListRatings(productId uint) ([]model.ProductRating, error)
	SetRatingStatus(id uint, status model.RatingStatus) (*model.ProductRating, error)
	DeleteRating(id uint) error
	CreateReview(r *model.ProductReview) error
	ListReviews(productId uint) ([]model.ProductReview, error)
	DeleteReview(id uint) error

	// 库存
	CreateInventory(inv *model.Inventory) error
	GetInventoryByID(id uint) (*model.Inventory, error)
	ListInventory(productId uint) ([]model.Inventory, error)
	UpdateInventory(id uint, patch InventoryPatch) (*model.Inventory, error)
	DeleteInventory(id uint) error
	LowStockItems(threshold int) ([]model.Inventory, error)

	// 订单
	CreateOrder(o *model.Order) error
	GetOrderByID(id uint) (*model.Order, error)
	ListOrders(filter OrderFilter) ([]model.Order, error)
	UpdateOrder(id uint, patch OrderPatch) (*model.Order, error)
	UpdateOrderStatus(id uint, next model.OrderStatus) (*model.Order, error)
	RecentOrders(limit int) ([]OrderWithCustomer, error)

	// 保修
	CreateWarranty(w *model.Warranty) error
	GetWarrantyByID(id uint) (*model.Warranty, error)
	ListWarranties(filter WarrantyFilter) ([]model.Warranty, error)
	UpdateWarranty(id uint, patch WarrantyPatch) (*model.Warranty, error)
	ClaimWarranty(id uint, reason string) (*model.Warranty, error)
	ResolveWarranty(id uint, notes string) (*model.Warranty, error)
	VoidWarranty(id uint) (*model.Warranty, error)

	// 经销商 / 供应商
	CreateVendor(v *model.Vendor) error
	GetVendorByID(id uint) (*model.Vendor, error)
	ListVendors() ([]model.Vendor, error)
	UpdateVendor(id uint, patch PartnerPatch) (*model.Vendor, error)
	DeleteVendor(id uint) error
	CreateSupplier(s *model.Supplier) error
	GetSupplierByID(id uint) (*model.Supplier, error)
	ListSuppliers() ([]model.Supplier, error)
	UpdateSupplier(id uint, patch PartnerPatch) (*model.Supplier, error)
	DeleteSupplier(id uint) error

	// 看板
	DashboardMetrics(now time.Time) (*DashboardMetrics, error)
}

type gormStore struct {
	db  *gorm.DB
	now func() time.Time
}

// New 构造存储层，显式注入 *gorm.DB，连接失败应由调用方在启动期处理
func New(db *gorm.DB) Store {
	return &gormStore{db: db, now: time.Now}
}

// NewWithClock 测试用，固定时钟
func NewWithClock(db *gorm.DB, now func() time.Time) Store {
	return &gormStore{db: db, now: now}
}

// AutoMigrate 建表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Category{},
		&model.Product{},
		&model.ProductVariant{},
		&model.ProductRating{},
		&model.ProductReview{},
		&model.Inventory{},
		&model.Order{},
		&model.OrderItem{},
		&model.Warranty{},
		&model.Vendor{},
		&model.Supplier{},
	)
}

// translate 把 gorm 错误折到本层分类
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}
