package store

import (
	"toolmart-admin/apps/admin/model"

	"gorm.io/gorm"
)

// Vendor 与 Supplier 刻意不合并：Supplier 挂在商品采购链上，
// Vendor 是独立经销商名录，删除语义也不同（见 DeleteSupplier）

func (s *gormStore) CreateVendor(v *model.Vendor) error {
	return translate(s.db.Create(v).Error)
}

func (s *gormStore) GetVendorByID(id uint) (*model.Vendor, error) {
	var v model.Vendor
	if err := s.db.First(&v, id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (s *gormStore) ListVendors() ([]model.Vendor, error) {
	var vendors []model.Vendor
	if err := s.db.Order("name asc").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (s *gormStore) UpdateVendor(id uint, patch PartnerPatch) (*model.Vendor, error) {
	var v model.Vendor
	if err := s.db.First(&v, id).Error; err != nil {
		return nil, translate(err)
	}
	updates := partnerUpdates(patch)
	if patch.AuthorizedDealer != nil {
		updates["authorized_dealer"] = *patch.AuthorizedDealer
	}
	if patch.PaymentTerms != nil {
		updates["payment_terms"] = *patch.PaymentTerms
	}
	if len(updates) > 0 {
		if err := s.db.Model(&v).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return &v, nil
}

func (s *gormStore) DeleteVendor(id uint) error {
	res := s.db.Delete(&model.Vendor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) CreateSupplier(sup *model.Supplier) error {
	return translate(s.db.Create(sup).Error)
}

func (s *gormStore) GetSupplierByID(id uint) (*model.Supplier, error) {
	var sup model.Supplier
	if err := s.db.First(&sup, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sup, nil
}

func (s *gormStore) ListSuppliers() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := s.db.Order("name asc").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (s *gormStore) UpdateSupplier(id uint, patch PartnerPatch) (*model.Supplier, error) {
	var sup model.Supplier
	if err := s.db.First(&sup, id).Error; err != nil {
		return nil, translate(err)
	}
	updates := partnerUpdates(patch)
	if len(updates) > 0 {
		if err := s.db.Model(&sup).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return &sup, nil
}

// DeleteSupplier 删除供应商，引用它的商品 supplier_id 置空
func (s *gormStore) DeleteSupplier(id uint) error {
	var sup model.Supplier
	if err := s.db.First(&sup, id).Error; err != nil {
		return translate(err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).Where("supplier_id = ?", id).
			Update("supplier_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Supplier{}, id).Error
	})
}

func partnerUpdates(patch PartnerPatch) map[string]interface{} {
	updates := make(map[string]interface{})
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.ContactEmail != nil {
		updates["contact_email"] = *patch.ContactEmail
	}
	if patch.ContactPhone != nil {
		updates["contact_phone"] = *patch.ContactPhone
	}
	if patch.Address != nil {
		updates["address"] = jsonAddress(patch.Address)
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}
	return updates
}
