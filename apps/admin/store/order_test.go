package store

import (
	"strings"
	"testing"
	"time"

	"toolmart-admin/apps/admin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderRecomputesTotals(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)
	cust := seedCustomer(t, s, "jordan@example.com")

	o := &model.Order{
		CustomerID: cust.ID,
		Items: []model.OrderItem{
			{ProductID: p.ID, Quantity: 2, UnitPrice: 129.99},
		},
		TaxAmount:      20.80,
		ShippingAmount: 9.99,
		// 故意传错的汇总值，应被覆盖
		Subtotal:    1,
		TotalAmount: 1,
	}
	require.NoError(t, s.CreateOrder(o))

	assert.Equal(t, 259.98, o.Items[0].TotalPrice)
	assert.Equal(t, 259.98, o.Subtotal)
	assert.Equal(t, 290.77, o.TotalAmount)
	assert.Equal(t, model.OrderPending, o.Status)
	assert.Equal(t, model.OrderRetail, o.OrderType)
}

func TestCreateOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(newTestDB(t), func() time.Time { return now })
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)
	cust := seedCustomer(t, s, "jordan@example.com")

	o := seedOrderOn(t, s, cust.ID, p.ID)
	assert.True(t, strings.HasPrefix(o.OrderNumber, "ORD-20260829-"), o.OrderNumber)
	assert.Len(t, o.OrderNumber, len("ORD-20260829-")+8)

	// 指定订单号撞车
	dup := &model.Order{CustomerID: cust.ID, OrderNumber: o.OrderNumber}
	assert.ErrorIs(t, s.CreateOrder(dup), ErrConflict)
}

func seedOrderOn(t *testing.T, s Store, customerId, productId uint) *model.Order {
	t.Helper()
	o := &model.Order{
		CustomerID: customerId,
		Items:      []model.OrderItem{{ProductID: productId, Quantity: 1, UnitPrice: 10}},
	}
	require.NoError(t, s.CreateOrder(o))
	return o
}

func TestCreateOrderRejectsDanglingRefs(t *testing.T) {
	s := newTestStore(t)
	cust := seedCustomer(t, s, "jordan@example.com")

	err := s.CreateOrder(&model.Order{CustomerID: 9999})
	assert.ErrorIs(t, err, ErrInvalidReference)

	err = s.CreateOrder(&model.Order{
		CustomerID: cust.ID,
		Items:      []model.OrderItem{{ProductID: 9999, Quantity: 1, UnitPrice: 1}},
	})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestOrderStatusTransitions(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)
	cust := seedCustomer(t, s, "jordan@example.com")
	o := seedOrder(t, s, cust.ID, p.ID, 1, 10)

	// 跳级不行
	_, err := s.UpdateOrderStatus(o.ID, model.OrderShipped)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// 顺序推进
	for _, next := range []model.OrderStatus{
		model.OrderConfirmed, model.OrderProcessing, model.OrderShipped, model.OrderDelivered,
	} {
		got, err := s.UpdateOrderStatus(o.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, got.Status)
	}

	// 送达后不可取消
	_, err = s.UpdateOrderStatus(o.ID, model.OrderCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderDeliveredStampsActualDelivery(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	s := NewWithClock(newTestDB(t), func() time.Time { return now })
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)
	cust := seedCustomer(t, s, "jordan@example.com")
	o := seedOrder(t, s, cust.ID, p.ID, 1, 10)

	for _, next := range []model.OrderStatus{
		model.OrderConfirmed, model.OrderProcessing, model.OrderShipped,
	} {
		_, err := s.UpdateOrderStatus(o.ID, next)
		require.NoError(t, err)
	}
	got, err := s.UpdateOrderStatus(o.ID, model.OrderDelivered)
	require.NoError(t, err)
	require.NotNil(t, got.ActualDelivery)
	assert.True(t, got.ActualDelivery.Equal(now))
}

func TestOrderCancelBeforeDelivery(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)
	cust := seedCustomer(t, s, "jordan@example.com")
	o := seedOrder(t, s, cust.ID, p.ID, 1, 10)

	_, err := s.UpdateOrderStatus(o.ID, model.OrderConfirmed)
	require.NoError(t, err)
	got, err := s.UpdateOrderStatus(o.ID, model.OrderCancelled)
	require.NoError(t, err)
	assert.Equal(t, model.OrderCancelled, got.Status)

	// 终态不可再动
	_, err = s.UpdateOrderStatus(o.ID, model.OrderConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateOrderRecomputesTotalAmount(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)
	cust := seedCustomer(t, s, "jordan@example.com")
	o := seedOrder(t, s, cust.ID, p.ID, 2, 129.99)

	shipping := 15.50
	got, err := s.UpdateOrder(o.ID, OrderPatch{ShippingAmount: &shipping})
	require.NoError(t, err)
	assert.Equal(t, 275.48, got.TotalAmount)
}

func TestRecentOrdersIncludesCustomer(t *testing.T) {
	s := newTestStore(t)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)
	cust := seedCustomer(t, s, "jordan@example.com")
	seedOrder(t, s, cust.ID, p.ID, 1, 10)
	seedOrder(t, s, cust.ID, p.ID, 3, 20)

	rows, err := s.RecentOrders(5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.NotNil(t, row.Customer)
		assert.Equal(t, "jordan@example.com", row.Customer.Email)
		assert.NotEmpty(t, row.Items)
	}
}

func TestRecentOrdersMissingCustomer(t *testing.T) {
	db := newTestDB(t)
	s := New(db)
	cat := seedCategory(t, s, "Power Tools", "power-tools")
	p := seedProduct(t, s, "DRL-001", cat.ID)
	cust := seedCustomer(t, s, "jordan@example.com")
	seedOrder(t, s, cust.ID, p.ID, 1, 10)

	// 客户记录被直接清掉后，列表照常返回，customer 为空
	require.NoError(t, db.Delete(&model.Customer{}, cust.ID).Error)

	rows, err := s.RecentOrders(5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Customer)
}
