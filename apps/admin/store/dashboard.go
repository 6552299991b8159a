package store

import (
	"time"

	"toolmart-admin/apps/admin/model"
)

// DashboardMetrics 看板聚合指标
// 月度口径一律按自然月（当月 1 号零点起）
func (s *gormStore) DashboardMetrics(now time.Time) (*DashboardMetrics, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	m := &DashboardMetrics{}

	// 月度营收：本月创建且已发货/已送达的订单
	var revenue *float64
	err := s.db.Model(&model.Order{}).
		Where("created_at >= ?", monthStart).
		Where("status IN ?", []model.OrderStatus{model.OrderShipped, model.OrderDelivered}).
		Select("SUM(total_amount)").
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	if revenue != nil {
		m.MonthlyRevenue = round2(*revenue)
	}

	// 进行中订单
	err = s.db.Model(&model.Order{}).
		Where("status IN ?", []model.OrderStatus{model.OrderPending, model.OrderConfirmed, model.OrderProcessing}).
		Count(&m.ActiveOrders).Error
	if err != nil {
		return nil, err
	}

	// 低库存
	err = s.db.Model(&model.Inventory{}).
		Where("quantity_available <= ?", model.DefaultLowStockThreshold).
		Count(&m.LowStockCount).Error
	if err != nil {
		return nil, err
	}

	// 本月理赔数
	err = s.db.Model(&model.Warranty{}).
		Where("claim_date >= ? AND claim_date < ?", monthStart, monthStart.AddDate(0, 1, 0)).
		Count(&m.WarrantyClaimsThisMonth).Error
	if err != nil {
		return nil, err
	}

	// 临期保修：到期判断走计算口径，和列表/详情保持一致
	var warranties []model.Warranty
	err = s.db.Where("status = ?", model.WarrantyActive).
		Where("warranty_end_date < ?", now.Add(model.ExpiringSoonWindow)).
		Find(&warranties).Error
	if err != nil {
		return nil, err
	}
	for i := range warranties {
		if warranties[i].ExpiringSoon(now) {
			m.ExpiringWarranties++
		}
	}

	return m, nil
}
