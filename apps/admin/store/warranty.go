package store

import "toolmart-admin/apps/admin/model"

// 保修的读路径统一返回呈现状态（EffectiveStatus），
// 存储的 status 只通过 claim/resolve/void 显式变更

func (s *gormStore) CreateWarranty(w *model.Warranty) error {
	if err := s.checkProductCustomer(w.ProductID, w.CustomerID); err != nil {
		return err
	}
	if w.OrderID != nil {
		var cnt int64
		s.db.Model(&model.Order{}).Where("id = ?", *w.OrderID).Count(&cnt)
		if cnt == 0 {
			return ErrInvalidReference
		}
	}
	if w.Status == "" {
		w.Status = model.WarrantyActive
	}
	return translate(s.db.Create(w).Error)
}

func (s *gormStore) GetWarrantyByID(id uint) (*model.Warranty, error) {
	var w model.Warranty
	if err := s.db.First(&w, id).Error; err != nil {
		return nil, translate(err)
	}
	w.Status = w.EffectiveStatus(s.now())
	return &w, nil
}

func (s *gormStore) ListWarranties(filter WarrantyFilter) ([]model.Warranty, error) {
	query := s.db.Model(&model.Warranty{})
	if filter.CustomerID > 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.ProductID > 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}

	var warranties []model.Warranty
	if err := query.Order("warranty_end_date asc").Find(&warranties).Error; err != nil {
		return nil, err
	}

	now := s.now()
	result := warranties[:0]
	for _, w := range warranties {
		if filter.ExpiringSoon && !w.ExpiringSoon(now) {
			continue
		}
		w.Status = w.EffectiveStatus(now)
		if filter.Status != "" && w.Status != filter.Status {
			continue
		}
		result = append(result, w)
	}
	return result, nil
}

func (s *gormStore) UpdateWarranty(id uint, patch WarrantyPatch) (*model.Warranty, error) {
	var w model.Warranty
	if err := s.db.First(&w, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := make(map[string]interface{})
	if patch.SerialNumber != nil {
		updates["serial_number"] = *patch.SerialNumber
	}
	if patch.PurchaseDate != nil {
		updates["purchase_date"] = *patch.PurchaseDate
	}
	if patch.WarrantyStartDate != nil {
		updates["warranty_start_date"] = *patch.WarrantyStartDate
	}
	if patch.WarrantyEndDate != nil {
		updates["warranty_end_date"] = *patch.WarrantyEndDate
	}
	if patch.ResolutionNotes != nil {
		updates["resolution_notes"] = *patch.ResolutionNotes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&w).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return s.GetWarrantyByID(id)
}

// ClaimWarranty 发起理赔：仅呈现状态为 active 时允许，记录理赔时间和原因
func (s *gormStore) ClaimWarranty(id uint, reason string) (*model.Warranty, error) {
	var w model.Warranty
	if err := s.db.First(&w, id).Error; err != nil {
		return nil, translate(err)
	}
	if w.EffectiveStatus(s.now()) != model.WarrantyActive {
		return nil, ErrInvalidTransition
	}

	now := s.now()
	updates := map[string]interface{}{
		"status":       model.WarrantyClaimed,
		"claim_date":   now,
		"claim_reason": reason,
	}
	if err := s.db.Model(&w).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetWarrantyByID(id)
}

// ResolveWarranty 理赔结案：状态保持 claimed，补充处理结论
func (s *gormStore) ResolveWarranty(id uint, notes string) (*model.Warranty, error) {
	var w model.Warranty
	if err := s.db.First(&w, id).Error; err != nil {
		return nil, translate(err)
	}
	if w.Status != model.WarrantyClaimed {
		return nil, ErrInvalidTransition
	}
	if err := s.db.Model(&w).Update("resolution_notes", notes).Error; err != nil {
		return nil, err
	}
	return s.GetWarrantyByID(id)
}

// VoidWarranty 作废保修单
func (s *gormStore) VoidWarranty(id uint) (*model.Warranty, error) {
	var w model.Warranty
	if err := s.db.First(&w, id).Error; err != nil {
		return nil, translate(err)
	}
	if w.Status == model.WarrantyVoided {
		return nil, ErrInvalidTransition
	}
	if err := s.db.Model(&w).Update("status", model.WarrantyVoided).Error; err != nil {
		return nil, err
	}
	return s.GetWarrantyByID(id)
}
