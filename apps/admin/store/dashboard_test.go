package store

import (
	"testing"
	"time"

	"toolmart-admin/apps/admin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardMetrics(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	s := NewWithClock(newTestDB(t), func() time.Time { return now })
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)
	cust := seedCustomer(t, s, "quinn@example.com")

	mkOrder := func(created time.Time, status model.OrderStatus, total float64) {
		t.Helper()
		o := &model.Order{
			CustomerID: cust.ID,
			Status:     status,
			Subtotal:   total,
			CreatedAt:  created,
		}
		require.NoError(t, s.CreateOrder(o))
	}

	// 营收口径：本月创建且 shipped/delivered
	mkOrder(now.AddDate(0, 0, -2), model.OrderShipped, 100.50)
	mkOrder(now.AddDate(0, 0, -1), model.OrderDelivered, 200)
	// 本月但未发货，不计营收，计进行中
	mkOrder(now.AddDate(0, 0, -1), model.OrderPending, 999)
	mkOrder(now.AddDate(0, 0, -1), model.OrderProcessing, 999)
	// 上月发货，不计
	mkOrder(now.AddDate(0, -1, 0), model.OrderShipped, 999)
	// 已取消，哪边都不计
	mkOrder(now.AddDate(0, 0, -1), model.OrderCancelled, 999)

	// 一条低库存，一条充足
	p2 := seedProduct(t, s, "SAW-002", cat.ID)
	require.NoError(t, s.CreateInventory(&model.Inventory{ProductID: p.ID, Location: "A1", QuantityOnHand: 4}))
	require.NoError(t, s.CreateInventory(&model.Inventory{ProductID: p2.ID, Location: "A2", QuantityOnHand: 40}))

	// 本月理赔一笔
	claimed := seedWarranty(t, s, p.ID, cust.ID, now.AddDate(1, 0, 0))
	_, err := s.ClaimWarranty(claimed.ID, "motor burned out")
	require.NoError(t, err)
	// 临期一单
	seedWarranty(t, s, p.ID, cust.ID, now.AddDate(0, 0, 14))
	// 远期一单，不计临期
	seedWarranty(t, s, p2.ID, cust.ID, now.AddDate(2, 0, 0))

	m, err := s.DashboardMetrics(now)
	require.NoError(t, err)

	assert.Equal(t, 300.50, m.MonthlyRevenue)
	assert.Equal(t, int64(2), m.ActiveOrders)
	assert.Equal(t, int64(1), m.LowStockCount)
	assert.Equal(t, int64(1), m.WarrantyClaimsThisMonth)
	assert.Equal(t, int64(1), m.ExpiringWarranties)
}

func TestDashboardMetricsEmptyDatabase(t *testing.T) {
	s := newTestStore(t)

	m, err := s.DashboardMetrics(time.Now())
	require.NoError(t, err)
	assert.Zero(t, m.MonthlyRevenue)
	assert.Zero(t, m.ActiveOrders)
	assert.Zero(t, m.LowStockCount)
	assert.Zero(t, m.WarrantyClaimsThisMonth)
	assert.Zero(t, m.ExpiringWarranties)
}
