package handler

import (
	"net/http"
	"strconv"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListInventory(c *gin.Context) {
	productId, _ := strconv.ParseUint(c.DefaultQuery("productId", "0"), 10, 64)
	rows, err := h.store.ListInventory(uint(productId))
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *Handler) GetInventory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := h.store.GetInventoryByID(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, inv)
}

// LowStock 低库存清单，阈值可调，默认 10
func (h *Handler) LowStock(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "0"))
	rows, err := h.store.LowStockItems(threshold)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, rows)
}

func (h *Handler) CreateInventory(c *gin.Context) {
	var req struct {
		ProductID        uint   `json:"productId" binding:"required"`
		Location         string `json:"location" binding:"required"`
		QuantityOnHand   int    `json:"quantityOnHand" binding:"min=0"`
		QuantityReserved int    `json:"quantityReserved" binding:"min=0"`
		ReorderPoint     int    `json:"reorderPoint"`
		MaxStock         *int   `json:"maxStock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.QuantityReserved > req.QuantityOnHand {
		response.Error(c, http.StatusBadRequest, "reserved quantity cannot exceed on-hand quantity")
		return
	}

	inv := model.Inventory{
		ProductID:        req.ProductID,
		Location:         req.Location,
		QuantityOnHand:   req.QuantityOnHand,
		QuantityReserved: req.QuantityReserved,
		ReorderPoint:     req.ReorderPoint,
		MaxStock:         req.MaxStock,
	}
	if inv.ReorderPoint == 0 {
		inv.ReorderPoint = model.DefaultLowStockThreshold
	}
	if err := h.store.CreateInventory(&inv); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, inv)
}

func (h *Handler) UpdateInventory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.InventoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := h.store.UpdateInventory(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, inv)
}

func (h *Handler) DeleteInventory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteInventory(id); err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
