package store

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"toolmart-admin/apps/admin/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// newOrderNumber 生成订单号，如 ORD-20260829-3F2A1B9C
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

// CreateOrder 创建订单
// 明细金额和订单总额在这里统一重算，不信任调用方传入的汇总值
func (s *gormStore) CreateOrder(o *model.Order) error {
	var cnt int64
	s.db.Model(&model.Customer{}).Where("id = ?", o.CustomerID).Count(&cnt)
	if cnt == 0 {
		return ErrInvalidReference
	}

	if o.OrderNumber == "" {
		o.OrderNumber = newOrderNumber(s.now())
	} else {
		s.db.Model(&model.Order{}).Where("order_number = ?", o.OrderNumber).Count(&cnt)
		if cnt > 0 {
			return ErrConflict
		}
	}
	if o.OrderType == "" {
		o.OrderType = model.OrderRetail
	}
	if o.Status == "" {
		o.Status = model.OrderPending
	}

	var subtotal float64
	for i := range o.Items {
		s.db.Model(&model.Product{}).Where("id = ?", o.Items[i].ProductID).Count(&cnt)
		if cnt == 0 {
			return ErrInvalidReference
		}
		o.Items[i].TotalPrice = round2(float64(o.Items[i].Quantity) * o.Items[i].UnitPrice)
		subtotal += o.Items[i].TotalPrice
	}
	if len(o.Items) > 0 {
		o.Subtotal = round2(subtotal)
	}
	o.TotalAmount = round2(o.Subtotal + o.TaxAmount + o.ShippingAmount)

	return translate(s.db.Create(o).Error)
}

func (s *gormStore) GetOrderByID(id uint) (*model.Order, error) {
	var o model.Order
	if err := s.db.Preload("Items").First(&o, id).Error; err != nil {
		return nil, translate(err)
	}
	return &o, nil
}

func (s *gormStore) ListOrders(filter OrderFilter) ([]model.Order, error) {
	query := s.db.Model(&model.Order{}).Preload("Items")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderType != "" {
		query = query.Where("order_type = ?", filter.OrderType)
	}
	if filter.CustomerID > 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}

	var orders []model.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrder 局部更新，金额字段动过就重算 total_amount
func (s *gormStore) UpdateOrder(id uint, patch OrderPatch) (*model.Order, error) {
	var o model.Order
	if err := s.db.First(&o, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := make(map[string]interface{})
	subtotal, tax, shipping := o.Subtotal, o.TaxAmount, o.ShippingAmount
	if patch.Subtotal != nil {
		subtotal = *patch.Subtotal
		updates["subtotal"] = round2(subtotal)
	}
	if patch.TaxAmount != nil {
		tax = *patch.TaxAmount
		updates["tax_amount"] = round2(tax)
	}
	if patch.ShippingAmount != nil {
		shipping = *patch.ShippingAmount
		updates["shipping_amount"] = round2(shipping)
	}
	if patch.Subtotal != nil || patch.TaxAmount != nil || patch.ShippingAmount != nil {
		updates["total_amount"] = round2(subtotal + tax + shipping)
	}
	if patch.OrderType != nil {
		updates["order_type"] = *patch.OrderType
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.ShippingAddress != nil {
		updates["shipping_address"] = jsonAddress(patch.ShippingAddress)
	}
	if patch.BillingAddress != nil {
		updates["billing_address"] = jsonAddress(patch.BillingAddress)
	}
	if patch.EstimatedDelivery != nil {
		updates["estimated_delivery"] = *patch.EstimatedDelivery
	}
	if patch.ActualDelivery != nil {
		updates["actual_delivery"] = *patch.ActualDelivery
	}

	if len(updates) > 0 {
		if err := s.db.Model(&o).Updates(updates).Error; err != nil {
			return nil, translate(err)
		}
	}
	return s.GetOrderByID(id)
}

// UpdateOrderStatus 校验流转合法性后更新状态，送达时顺手记 actual_delivery
func (s *gormStore) UpdateOrderStatus(id uint, next model.OrderStatus) (*model.Order, error) {
	var o model.Order
	if err := s.db.First(&o, id).Error; err != nil {
		return nil, translate(err)
	}
	if !o.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": next}
	if next == model.OrderDelivered {
		updates["actual_delivery"] = s.now()
	}
	if err := s.db.Model(&o).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetOrderByID(id)
}

// RecentOrders 最近 N 单，附上客户信息
func (s *gormStore) RecentOrders(limit int) ([]OrderWithCustomer, error) {
	if limit <= 0 {
		limit = 10
	}

	var orders []model.Order
	err := s.db.Preload("Items").Order("created_at desc").Limit(limit).Find(&orders).Error
	if err != nil {
		return nil, err
	}

	result := make([]OrderWithCustomer, 0, len(orders))
	for _, o := range orders {
		row := OrderWithCustomer{Order: o}
		var c model.Customer
		switch err := s.db.First(&c, o.CustomerID).Error; {
		case err == nil:
			row.Customer = &c
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
		result = append(result, row)
	}
	return result, nil
}
