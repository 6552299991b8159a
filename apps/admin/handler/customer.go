package handler

import (
	"net/http"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

func (h *Handler) ListCustomers(c *gin.Context) {
	filter := store.CustomerFilter{
		CustomerType: model.CustomerType(c.Query("customerType")),
		ActiveOnly:   c.Query("activeOnly") == "true",
		Query:        c.Query("query"),
	}
	if filter.CustomerType != "" && !filter.CustomerType.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown customer type")
		return
	}

	customers, err := h.store.ListCustomers(filter)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, customers)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	customer, err := h.store.GetCustomerByID(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, customer)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var req struct {
		CompanyName      string             `json:"companyName"`
		FirstName        string             `json:"firstName" binding:"required"`
		LastName         string             `json:"lastName" binding:"required"`
		Email            string             `json:"email" binding:"required,email"`
		Phone            string             `json:"phone"`
		CustomerType     model.CustomerType `json:"customerType" binding:"required"`
		TaxExempt        bool               `json:"taxExempt"`
		CreditLimit      float64            `json:"creditLimit"`
		PaymentTermsDays int                `json:"paymentTermsDays"`
		Address          model.Address      `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if !req.CustomerType.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown customer type")
		return
	}

	customer := model.Customer{
		CompanyName:      req.CompanyName,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		CustomerType:     req.CustomerType,
		TaxExempt:        req.TaxExempt,
		CreditLimit:      req.CreditLimit,
		PaymentTermsDays: req.PaymentTermsDays,
		Address:          datatypes.NewJSONType(req.Address),
		IsActive:         true,
	}
	if err := h.store.CreateCustomer(&customer); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, customer)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if patch.CustomerType != nil && !patch.CustomerType.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown customer type")
		return
	}

	customer, err := h.store.UpdateCustomer(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, customer)
}
