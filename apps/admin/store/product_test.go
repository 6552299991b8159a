package store

import (
	"testing"

	"toolmart-admin/apps/admin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCreateProductValidations(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	seedProduct(t, s, "DRL-001", cat.ID)

	// SKU 撞车
	err := s.CreateProduct(&model.Product{
		Sku:          "DRL-001",
		Name:         "dup",
		CategoryIds:  datatypes.NewJSONSlice([]int64{int64(cat.ID)}),
		SellingPrice: 10,
	})
	assert.ErrorIs(t, err, ErrConflict)

	// 空分类列表
	err = s.CreateProduct(&model.Product{Sku: "DRL-002", Name: "x", SellingPrice: 10})
	assert.ErrorIs(t, err, ErrInvalidReference)

	// 悬空分类 id
	err = s.CreateProduct(&model.Product{
		Sku:          "DRL-003",
		Name:         "x",
		CategoryIds:  datatypes.NewJSONSlice([]int64{9999}),
		SellingPrice: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestVariantSkuGloballyUnique(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)

	// 规格 SKU 不得与商品主 SKU 重复
	err := s.CreateVariant(&model.ProductVariant{
		ProductID:  p.ID,
		Sku:        "DRL-001",
		Attributes: newAttrs("color", "red"),
	})
	assert.ErrorIs(t, err, ErrConflict)

	require.NoError(t, s.CreateVariant(&model.ProductVariant{
		ProductID:  p.ID,
		Sku:        "DRL-001-RED",
		Attributes: newAttrs("color", "red"),
	}))

	// 规格之间也不能重复
	err = s.CreateVariant(&model.ProductVariant{
		ProductID:  p.ID,
		Sku:        "DRL-001-RED",
		Attributes: newAttrs("color", "blue"),
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateProductInactivePersisted(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")

	p := &model.Product{
		Sku:          "DRL-OLD",
		Name:         "Discontinued Drill",
		Brand:        "ToolMart",
		CategoryIds:  datatypes.NewJSONSlice([]int64{int64(cat.ID)}),
		SellingPrice: 49.99,
		CostPrice:    20,
		IsActive:     false,
	}
	require.NoError(t, s.CreateProduct(p))

	got, err := s.GetProductByID(p.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// 停售商品不进 ActiveOnly 列表
	rows, err := s.ListProducts(ProductFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSearchProducts(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")

	p := &model.Product{
		Sku:          "DRL-100",
		Name:         "Cordless Hammer Drill",
		Brand:        "Makira",
		CategoryIds:  datatypes.NewJSONSlice([]int64{int64(cat.ID)}),
		SellingPrice: 129.99,
		IsActive:     true,
	}
	require.NoError(t, s.CreateProduct(p))
	seedProduct(t, s, "SAW-200", cat.ID)

	// 大小写不敏感的子串匹配，name/sku/brand 任一命中
	for _, q := range []string{"hammer", "HAMMER", "drl-1", "makira"} {
		got, err := s.ListProducts(ProductFilter{Query: q})
		require.NoError(t, err)
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "DRL-100", got[0].Sku)
	}

	got, err := s.ListProducts(ProductFilter{Query: "no-such-thing"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteProductCascades(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-300", cat.ID)
	cust := seedCustomer(t, s, "casey@example.com")

	require.NoError(t, s.CreateVariant(&model.ProductVariant{
		ProductID: p.ID, Sku: "DRL-300-XL", Attributes: newAttrs("size", "xl"),
	}))
	require.NoError(t, s.CreateRating(&model.ProductRating{ProductID: p.ID, CustomerID: cust.ID, Rating: 4}))
	require.NoError(t, s.CreateReview(&model.ProductReview{ProductID: p.ID, CustomerID: cust.ID, Rating: 4, Content: "solid"}))
	require.NoError(t, s.CreateInventory(&model.Inventory{ProductID: p.ID, Location: "B2", QuantityOnHand: 3}))

	require.NoError(t, s.DeleteProduct(p.ID))

	_, err := s.GetProductByID(p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	variants, _ := s.ListVariants(p.ID)
	assert.Empty(t, variants)
	ratings, _ := s.ListRatings(p.ID)
	assert.Empty(t, ratings)
	reviews, _ := s.ListReviews(p.ID)
	assert.Empty(t, reviews)
	inv, _ := s.ListInventory(p.ID)
	assert.Empty(t, inv)
}

func TestSupplierDeleteUnlinksProducts(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")

	sup := &model.Supplier{Name: "Acme Industrial", IsActive: true}
	require.NoError(t, s.CreateSupplier(sup))

	p := &model.Product{
		Sku:          "GRN-001",
		Name:         "Angle Grinder",
		CategoryIds:  datatypes.NewJSONSlice([]int64{int64(cat.ID)}),
		SellingPrice: 79.99,
		SupplierID:   &sup.ID,
		IsActive:     true,
	}
	require.NoError(t, s.CreateProduct(p))

	require.NoError(t, s.DeleteSupplier(sup.ID))

	got, err := s.GetProductByID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SupplierID)
}

func TestRatingModeration(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-400", cat.ID)
	cust := seedCustomer(t, s, "riley@example.com")

	r := &model.ProductRating{ProductID: p.ID, CustomerID: cust.ID, Rating: 2}
	require.NoError(t, s.CreateRating(r))
	assert.Equal(t, model.RatingPending, r.Status)

	_, err := s.SetRatingStatus(r.ID, model.RatingApproved)
	require.NoError(t, err)

	ratings, err := s.ListRatings(p.ID)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, model.RatingApproved, ratings[0].Status)
}
