package handler

import (
	"net/http"
	"strconv"
	"time"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListWarranties(c *gin.Context) {
	customerId, _ := strconv.ParseUint(c.DefaultQuery("customerId", "0"), 10, 64)
	productId, _ := strconv.ParseUint(c.DefaultQuery("productId", "0"), 10, 64)
	filter := store.WarrantyFilter{
		Status:       model.WarrantyStatus(c.Query("status")),
		CustomerID:   uint(customerId),
		ProductID:    uint(productId),
		ExpiringSoon: c.Query("expiringSoon") == "true",
	}
	if filter.Status != "" && !filter.Status.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown warranty status")
		return
	}

	warranties, err := h.store.ListWarranties(filter)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, warranties)
}

func (h *Handler) GetWarranty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	w, err := h.store.GetWarrantyByID(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, w)
}

func (h *Handler) CreateWarranty(c *gin.Context) {
	var req struct {
		ProductID         uint      `json:"productId" binding:"required"`
		CustomerID        uint      `json:"customerId" binding:"required"`
		OrderID           *uint     `json:"orderId"`
		SerialNumber      string    `json:"serialNumber"`
		PurchaseDate      time.Time `json:"purchaseDate" binding:"required"`
		WarrantyStartDate time.Time `json:"warrantyStartDate" binding:"required"`
		WarrantyEndDate   time.Time `json:"warrantyEndDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if !req.WarrantyEndDate.After(req.WarrantyStartDate) {
		response.Error(c, http.StatusBadRequest, "warranty end date must be after start date")
		return
	}

	w := model.Warranty{
		ProductID:         req.ProductID,
		CustomerID:        req.CustomerID,
		OrderID:           req.OrderID,
		SerialNumber:      req.SerialNumber,
		PurchaseDate:      req.PurchaseDate,
		WarrantyStartDate: req.WarrantyStartDate,
		WarrantyEndDate:   req.WarrantyEndDate,
		Status:            model.WarrantyActive,
	}
	if err := h.store.CreateWarranty(&w); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, w)
}

func (h *Handler) UpdateWarranty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.WarrantyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	w, err := h.store.UpdateWarranty(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, w)
}

// ClaimWarranty 发起理赔，必须给出理由
func (h *Handler) ClaimWarranty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		ClaimReason string `json:"claimReason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "claimReason is required")
		return
	}

	w, err := h.store.ClaimWarranty(id, req.ClaimReason)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, w)
}

// ResolveWarranty 理赔结案
func (h *Handler) ResolveWarranty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		ResolutionNotes string `json:"resolutionNotes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "resolutionNotes is required")
		return
	}

	w, err := h.store.ResolveWarranty(id, req.ResolutionNotes)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, w)
}

func (h *Handler) VoidWarranty(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	w, err := h.store.VoidWarranty(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, w)
}
