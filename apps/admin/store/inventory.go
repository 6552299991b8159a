package store

import "toolmart-admin/apps/admin/model"

func (s *gormStore) CreateInventory(inv *model.Inventory) error {
	var cnt int64
	s.db.Model(&model.Product{}).Where("id = ?", inv.ProductID).Count(&cnt)
	if cnt == 0 {
		return ErrInvalidReference
	}
	// available 永远重算，不信任调用方传入的值
	inv.QuantityAvailable = inv.QuantityOnHand - inv.QuantityReserved
	return translate(s.db.Create(inv).Error)
}

func (s *gormStore) GetInventoryByID(id uint) (*model.Inventory, error) {
	var inv model.Inventory
	if err := s.db.First(&inv, id).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (s *gormStore) ListInventory(productId uint) ([]model.Inventory, error) {
	query := s.db.Model(&model.Inventory{})
	if productId > 0 {
		query = query.Where("product_id = ?", productId)
	}

	var rows []model.Inventory
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormStore) UpdateInventory(id uint, patch InventoryPatch) (*model.Inventory, error) {
	var inv model.Inventory
	if err := s.db.First(&inv, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := make(map[string]interface{})
	onHand := inv.QuantityOnHand
	reserved := inv.QuantityReserved
	if patch.QuantityOnHand != nil {
		onHand = *patch.QuantityOnHand
		updates["quantity_on_hand"] = onHand
	}
	if patch.QuantityReserved != nil {
		reserved = *patch.QuantityReserved
		updates["quantity_reserved"] = reserved
	}
	if patch.QuantityOnHand != nil || patch.QuantityReserved != nil {
		updates["quantity_available"] = onHand - reserved
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.ReorderPoint != nil {
		updates["reorder_point"] = *patch.ReorderPoint
	}
	if patch.MaxStock != nil {
		updates["max_stock"] = *patch.MaxStock
	}
	if patch.LastStockCheck != nil {
		updates["last_stock_check"] = *patch.LastStockCheck
	}

	if len(updates) > 0 {
		if err := s.db.Model(&inv).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return &inv, nil
}

func (s *gormStore) DeleteInventory(id uint) error {
	res := s.db.Delete(&model.Inventory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) LowStockItems(threshold int) ([]model.Inventory, error) {
	if threshold <= 0 {
		threshold = model.DefaultLowStockThreshold
	}

	var rows []model.Inventory
	if err := s.db.Where("quantity_available <= ?", threshold).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
