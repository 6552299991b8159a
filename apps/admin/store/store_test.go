package store

import (
	"testing"
	"time"

	"toolmart-admin/apps/admin/model"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 内存 sqlite，单连接避免 :memory: 各连接各建一库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))
	return db
}

func newTestStore(t *testing.T) Store {
	return New(newTestDB(t))
}

// --- 测试夹具 ---

func newAttrs(typ, val string) datatypes.JSONType[[]model.VariantAttribute] {
	return datatypes.NewJSONType([]model.VariantAttribute{{Type: typ, Value: val}})
}

func seedCategory(t *testing.T, s Store, name, slug string) *model.Category {
	t.Helper()
	c := &model.Category{Name: name, Slug: slug, IsActive: true}
	require.NoError(t, s.CreateCategory(c))
	return c
}

func seedProduct(t *testing.T, s Store, sku string, categoryIds ...uint) *model.Product {
	t.Helper()
	ids := make([]int64, 0, len(categoryIds))
	for _, id := range categoryIds {
		ids = append(ids, int64(id))
	}
	p := &model.Product{
		Sku:          sku,
		Name:         "Product " + sku,
		Brand:        "ToolMart",
		CategoryIds:  datatypes.NewJSONSlice(ids),
		SellingPrice: 99.99,
		CostPrice:    50,
		IsActive:     true,
	}
	require.NoError(t, s.CreateProduct(p))
	return p
}

func seedCustomer(t *testing.T, s Store, email string) *model.Customer {
	t.Helper()
	c := &model.Customer{
		FirstName:    "Dana",
		LastName:     "Pratt",
		Email:        email,
		CustomerType: model.CustomerContractor,
		IsActive:     true,
	}
	require.NoError(t, s.CreateCustomer(c))
	return c
}

func seedOrder(t *testing.T, s Store, customerId, productId uint, qty int, unitPrice float64) *model.Order {
	t.Helper()
	o := &model.Order{
		CustomerID: customerId,
		Items: []model.OrderItem{
			{ProductID: productId, Quantity: qty, UnitPrice: unitPrice},
		},
	}
	require.NoError(t, s.CreateOrder(o))
	return o
}

func seedWarranty(t *testing.T, s Store, productId, customerId uint, end time.Time) *model.Warranty {
	t.Helper()
	w := &model.Warranty{
		ProductID:         productId,
		CustomerID:        customerId,
		PurchaseDate:      end.AddDate(-1, 0, 0),
		WarrantyStartDate: end.AddDate(-1, 0, 0),
		WarrantyEndDate:   end,
		Status:            model.WarrantyActive,
	}
	require.NoError(t, s.CreateWarranty(w))
	return w
}
