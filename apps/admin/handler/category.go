package handler

import (
	"net/http"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCategories(c *gin.Context) {
	activeOnly := c.Query("activeOnly") == "true"
	categories, err := h.store.ListCategories(activeOnly)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, categories)
}

func (h *Handler) CategoryCounts(c *gin.Context) {
	counts, err := h.store.CategoryProductCounts()
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, counts)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Slug        string `json:"slug" binding:"required"`
		SortOrder   int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	category := model.Category{
		Name:        req.Name,
		Description: req.Description,
		Slug:        req.Slug,
		IsActive:    true,
		SortOrder:   req.SortOrder,
	}
	if err := h.store.CreateCategory(&category); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.store.UpdateCategory(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类，级联处理商品引用（见存储层）
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteCategory(id); err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
