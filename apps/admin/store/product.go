package store

import (
	"toolmart-admin/apps/admin/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// skuTaken SKU 在商品和规格两张表里都要唯一
func skuTaken(db *gorm.DB, sku string, excludeProductId, excludeVariantId uint) bool {
	var cnt int64
	db.Model(&model.Product{}).Where("sku = ? AND id <> ?", sku, excludeProductId).Count(&cnt)
	if cnt > 0 {
		return true
	}
	db.Model(&model.ProductVariant{}).Where("sku = ? AND id <> ?", sku, excludeVariantId).Count(&cnt)
	return cnt > 0
}

// categoriesExist 校验 category_ids 全部指向真实分类
func (s *gormStore) categoriesExist(ids []int64) bool {
	if len(ids) == 0 {
		return false
	}
	var cnt int64
	s.db.Model(&model.Category{}).Where("id IN ?", ids).Count(&cnt)
	return cnt == int64(len(ids))
}

func (s *gormStore) CreateProduct(p *model.Product) error {
	if skuTaken(s.db, p.Sku, 0, 0) {
		return ErrConflict
	}
	if !s.categoriesExist(p.CategoryIds) {
		return ErrInvalidReference
	}
	if p.SupplierID != nil {
		var cnt int64
		s.db.Model(&model.Supplier{}).Where("id = ?", *p.SupplierID).Count(&cnt)
		if cnt == 0 {
			return ErrInvalidReference
		}
	}
	return translate(s.db.Create(p).Error)
}

func (s *gormStore) GetProductByID(id uint) (*model.Product, error) {
	var p model.Product
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *gormStore) ListProducts(filter ProductFilter) ([]model.Product, error) {
	query := s.db.Model(&model.Product{})
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(sku) LIKE LOWER(?) OR LOWER(brand) LIKE LOWER(?)",
			like, like, like,
		)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}

	if filter.CategoryID == 0 {
		return products, nil
	}
	filtered := products[:0]
	for _, p := range products {
		if p.HasCategory(filter.CategoryID) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *gormStore) UpdateProduct(id uint, patch ProductPatch) (*model.Product, error) {
	var p model.Product
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := make(map[string]interface{})
	if patch.CategoryIds != nil {
		if !s.categoriesExist(*patch.CategoryIds) {
			return nil, ErrInvalidReference
		}
		updates["category_ids"] = datatypes.NewJSONSlice(*patch.CategoryIds)
	}
	if patch.SupplierID != nil {
		var cnt int64
		s.db.Model(&model.Supplier{}).Where("id = ?", *patch.SupplierID).Count(&cnt)
		if cnt == 0 {
			return nil, ErrInvalidReference
		}
		updates["supplier_id"] = *patch.SupplierID
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Specifications != nil {
		updates["specifications"] = *patch.Specifications
	}
	if patch.Brand != nil {
		updates["brand"] = *patch.Brand
	}
	if patch.SellingPrice != nil {
		updates["selling_price"] = *patch.SellingPrice
	}
	if patch.CostPrice != nil {
		updates["cost_price"] = *patch.CostPrice
	}
	if patch.OriginalPrice != nil {
		updates["original_price"] = *patch.OriginalPrice
	}
	if patch.DiscountPercent != nil {
		updates["discount_percent"] = *patch.DiscountPercent
	}
	if patch.Weight != nil {
		updates["weight"] = *patch.Weight
	}
	if patch.Dimensions != nil {
		updates["dimensions"] = datatypes.NewJSONType(*patch.Dimensions)
	}
	if patch.Images != nil {
		updates["images"] = datatypes.NewJSONSlice(*patch.Images)
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.Tags != nil {
		updates["tags"] = datatypes.NewJSONSlice(*patch.Tags)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&p).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return &p, nil
}

// deleteProductCascade 商品级联删除：规格、评分、评价、库存一并清掉
func deleteProductCascade(tx *gorm.DB, productId uint) error {
	if err := tx.Where("product_id = ?", productId).Delete(&model.ProductVariant{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id = ?", productId).Delete(&model.ProductRating{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id = ?", productId).Delete(&model.ProductReview{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id = ?", productId).Delete(&model.Inventory{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Product{}, productId).Error
}

func (s *gormStore) DeleteProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var p model.Product
		if err := tx.First(&p, id).Error; err != nil {
			return translate(err)
		}
		return deleteProductCascade(tx, id)
	})
}

// --- 规格 ---

func (s *gormStore) CreateVariant(v *model.ProductVariant) error {
	var cnt int64
	s.db.Model(&model.Product{}).Where("id = ?", v.ProductID).Count(&cnt)
	if cnt == 0 {
		return ErrInvalidReference
	}
	if skuTaken(s.db, v.Sku, 0, 0) {
		return ErrConflict
	}
	return translate(s.db.Create(v).Error)
}

func (s *gormStore) GetVariantByID(id uint) (*model.ProductVariant, error) {
	var v model.ProductVariant
	if err := s.db.First(&v, id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (s *gormStore) ListVariants(productId uint) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	if err := s.db.Where("product_id = ?", productId).Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

func (s *gormStore) UpdateVariant(id uint, patch VariantPatch) (*model.ProductVariant, error) {
	var v model.ProductVariant
	if err := s.db.First(&v, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := make(map[string]interface{})
	if patch.Attributes != nil {
		updates["attributes"] = datatypes.NewJSONType(*patch.Attributes)
	}
	if patch.StockQuantity != nil {
		updates["stock_quantity"] = *patch.StockQuantity
	}
	if patch.PriceDelta != nil {
		updates["price_delta"] = *patch.PriceDelta
	}
	if patch.Images != nil {
		updates["images"] = datatypes.NewJSONSlice(*patch.Images)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&v).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return &v, nil
}

func (s *gormStore) DeleteVariant(id uint) error {
	res := s.db.Delete(&model.ProductVariant{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- 评分 ---

func (s *gormStore) CreateRating(r *model.ProductRating) error {
	if err := s.checkProductCustomer(r.ProductID, r.CustomerID); err != nil {
		return err
	}
	if r.Status == "" {
		r.Status = model.RatingPending
	}
	return translate(s.db.Create(r).Error)
}

func (s *gormStore) ListRatings(productId uint) ([]model.ProductRating, error) {
	var ratings []model.ProductRating
	if err := s.db.Where("product_id = ?", productId).Order("created_at desc").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (s *gormStore) SetRatingStatus(id uint, status model.RatingStatus) (*model.ProductRating, error) {
	var r model.ProductRating
	if err := s.db.First(&r, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := s.db.Model(&r).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormStore) DeleteRating(id uint) error {
	res := s.db.Delete(&model.ProductRating{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- 评价 ---

func (s *gormStore) CreateReview(r *model.ProductReview) error {
	if err := s.checkProductCustomer(r.ProductID, r.CustomerID); err != nil {
		return err
	}
	return translate(s.db.Create(r).Error)
}

func (s *gormStore) ListReviews(productId uint) ([]model.ProductReview, error) {
	var reviews []model.ProductReview
	if err := s.db.Where("product_id = ?", productId).Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *gormStore) DeleteReview(id uint) error {
	res := s.db.Delete(&model.ProductReview{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) checkProductCustomer(productId, customerId uint) error {
	var cnt int64
	s.db.Model(&model.Product{}).Where("id = ?", productId).Count(&cnt)
	if cnt == 0 {
		return ErrInvalidReference
	}
	s.db.Model(&model.Customer{}).Where("id = ?", customerId).Count(&cnt)
	if cnt == 0 {
		return ErrInvalidReference
	}
	return nil
}
