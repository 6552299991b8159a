package handler

import (
	"net/http"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// Vendor 和 Supplier 是两套档案，接口分开但载荷结构共用

type partnerRequest struct {
	Name             string        `json:"name" binding:"required"`
	ContactEmail     string        `json:"contactEmail"`
	ContactPhone     string        `json:"contactPhone"`
	Address          model.Address `json:"address"`
	AuthorizedDealer bool          `json:"authorizedDealer"`
	PaymentTerms     string        `json:"paymentTerms"`
}

func (h *Handler) ListVendors(c *gin.Context) {
	vendors, err := h.store.ListVendors()
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, vendors)
}

func (h *Handler) GetVendor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	v, err := h.store.GetVendorByID(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, v)
}

func (h *Handler) CreateVendor(c *gin.Context) {
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	v := model.Vendor{
		Name:             req.Name,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		Address:          datatypes.NewJSONType(req.Address),
		AuthorizedDealer: req.AuthorizedDealer,
		PaymentTerms:     req.PaymentTerms,
		IsActive:         true,
	}
	if err := h.store.CreateVendor(&v); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, v)
}

func (h *Handler) UpdateVendor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.PartnerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.store.UpdateVendor(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, v)
}

func (h *Handler) DeleteVendor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteVendor(id); err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.store.ListSuppliers()
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, suppliers)
}

func (h *Handler) GetSupplier(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	s, err := h.store.GetSupplierByID(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, s)
}

func (h *Handler) CreateSupplier(c *gin.Context) {
	var req partnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	s := model.Supplier{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      datatypes.NewJSONType(req.Address),
		IsActive:     true,
	}
	if err := h.store.CreateSupplier(&s); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, s)
}

func (h *Handler) UpdateSupplier(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.PartnerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.store.UpdateSupplier(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, s)
}

// DeleteSupplier 删除供应商，引用它的商品自动解绑
func (h *Handler) DeleteSupplier(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteSupplier(id); err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
