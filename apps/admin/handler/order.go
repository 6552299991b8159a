package handler

import (
	"net/http"
	"strconv"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

func (h *Handler) ListOrders(c *gin.Context) {
	customerId, _ := strconv.ParseUint(c.DefaultQuery("customerId", "0"), 10, 64)
	filter := store.OrderFilter{
		Status:     model.OrderStatus(c.Query("status")),
		OrderType:  model.OrderType(c.Query("orderType")),
		CustomerID: uint(customerId),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown order status")
		return
	}
	if filter.OrderType != "" && !filter.OrderType.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown order type")
		return
	}

	orders, err := h.store.ListOrders(filter)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	order, err := h.store.GetOrderByID(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, order)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req struct {
		CustomerID      uint            `json:"customerId" binding:"required"`
		OrderType       model.OrderType `json:"orderType"`
		Subtotal        float64         `json:"subtotal"`
		TaxAmount       float64         `json:"taxAmount"`
		ShippingAmount  float64         `json:"shippingAmount"`
		Notes           string          `json:"notes"`
		ShippingAddress model.Address   `json:"shippingAddress"`
		BillingAddress  model.Address   `json:"billingAddress"`
		Items           []struct {
			ProductID uint    `json:"productId" binding:"required"`
			Quantity  int     `json:"quantity" binding:"required,gt=0"`
			UnitPrice float64 `json:"unitPrice" binding:"required,gt=0"`
		} `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.OrderType != "" && !req.OrderType.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown order type")
		return
	}

	order := model.Order{
		CustomerID:      req.CustomerID,
		OrderType:       req.OrderType,
		Status:          model.OrderPending,
		Subtotal:        req.Subtotal,
		TaxAmount:       req.TaxAmount,
		ShippingAmount:  req.ShippingAmount,
		Notes:           req.Notes,
		ShippingAddress: datatypes.NewJSONType(req.ShippingAddress),
		BillingAddress:  datatypes.NewJSONType(req.BillingAddress),
	}
	for _, it := range req.Items {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	if err := h.store.CreateOrder(&order); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, order)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if patch.OrderType != nil && !patch.OrderType.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown order type")
		return
	}

	order, err := h.store.UpdateOrder(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatus 状态流转，非法跳转 400
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Status model.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown order status")
		return
	}

	order, err := h.store.UpdateOrderStatus(id, req.Status)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, order)
}
