package store

import (
	"toolmart-admin/apps/admin/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (s *gormStore) CreateCategory(c *model.Category) error {
	var cnt int64
	s.db.Model(&model.Category{}).Where("slug = ?", c.Slug).Count(&cnt)
	if cnt > 0 {
		return ErrConflict
	}
	return translate(s.db.Create(c).Error)
}

func (s *gormStore) GetCategoryByID(id uint) (*model.Category, error) {
	var c model.Category
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (s *gormStore) ListCategories(activeOnly bool) ([]model.Category, error) {
	query := s.db.Model(&model.Category{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categories []model.Category
	if err := query.Order("sort_order asc, name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *gormStore) UpdateCategory(id uint, patch CategoryPatch) (*model.Category, error) {
	var c model.Category
	if err := s.db.First(&c, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := make(map[string]interface{})
	if patch.Slug != nil {
		var cnt int64
		s.db.Model(&model.Category{}).Where("slug = ? AND id <> ?", *patch.Slug, id).Count(&cnt)
		if cnt > 0 {
			return nil, ErrConflict
		}
		updates["slug"] = *patch.Slug
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	if patch.SortOrder != nil {
		updates["sort_order"] = *patch.SortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&c).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return &c, nil
}

// DeleteCategory 删除分类并级联：
// 从所有商品的 category_ids 里摘掉该 id，摘空的商品整个删除（连带其附属行）。
// 整个过程一个事务，任何一步失败全部回滚
func (s *gormStore) DeleteCategory(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var cat model.Category
		if err := tx.First(&cat, id).Error; err != nil {
			return translate(err)
		}

		var products []model.Product
		if err := tx.Find(&products).Error; err != nil {
			return err
		}

		for _, p := range products {
			if !p.HasCategory(id) {
				continue
			}

			remaining := make([]int64, 0, len(p.CategoryIds))
			for _, cid := range p.CategoryIds {
				if uint(cid) != id {
					remaining = append(remaining, cid)
				}
			}

			if len(remaining) == 0 {
				// 最后一个分类没了，商品一起删
				if err := deleteProductCascade(tx, p.ID); err != nil {
					return err
				}
				continue
			}

			err := tx.Model(&model.Product{}).Where("id = ?", p.ID).
				Update("category_ids", datatypes.NewJSONSlice(remaining)).Error
			if err != nil {
				return err
			}
		}

		return tx.Delete(&model.Category{}, id).Error
	})
}

// CategoryProductCounts 每个分类下 active 商品的数量
// category_ids 是 JSON 数组，包含判断在应用层做，避免方言相关的 JSON 查询
func (s *gormStore) CategoryProductCounts() ([]CategoryCount, error) {
	categories, err := s.ListCategories(false)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := s.db.Where("is_active = ?", true).Find(&products).Error; err != nil {
		return nil, err
	}

	counts := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		cc := CategoryCount{CategoryID: c.ID, Name: c.Name, Slug: c.Slug}
		for i := range products {
			if products[i].HasCategory(c.ID) {
				cc.ProductCount++
			}
		}
		counts = append(counts, cc)
	}
	return counts, nil
}
