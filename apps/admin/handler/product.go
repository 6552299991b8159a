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

func (h *Handler) ListProducts(c *gin.Context) {
	categoryId, _ := strconv.ParseUint(c.DefaultQuery("categoryId", "0"), 10, 64)
	filter := store.ProductFilter{
		Query:      c.Query("query"),
		CategoryID: uint(categoryId),
		ActiveOnly: c.Query("activeOnly") == "true",
	}
	products, err := h.store.ListProducts(filter)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := h.store.GetProductByID(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, product)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req struct {
		Sku             string            `json:"sku" binding:"required"`
		Name            string            `json:"name" binding:"required"`
		Description     string            `json:"description"`
		Specifications  string            `json:"specifications"`
		Brand           string            `json:"brand"`
		CategoryIds     []int64           `json:"categoryIds" binding:"required,min=1"`
		SellingPrice    float64           `json:"sellingPrice" binding:"required,gt=0"`
		CostPrice       float64           `json:"costPrice"`
		OriginalPrice   *float64          `json:"originalPrice"`
		DiscountPercent *float64          `json:"discountPercent"`
		Weight          *float64          `json:"weight"`
		Dimensions      *model.Dimensions `json:"dimensions"`
		Images          []string          `json:"images"`
		SupplierID      *uint             `json:"supplierId"`
		Tags            []string          `json:"tags"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Images) > model.MaxProductImages {
		response.Error(c, http.StatusBadRequest, "a product can carry at most 4 images")
		return
	}

	product := model.Product{
		Sku:             req.Sku,
		Name:            req.Name,
		Description:     req.Description,
		Specifications:  req.Specifications,
		Brand:           req.Brand,
		CategoryIds:     datatypes.NewJSONSlice(req.CategoryIds),
		SellingPrice:    req.SellingPrice,
		CostPrice:       req.CostPrice,
		OriginalPrice:   req.OriginalPrice,
		DiscountPercent: req.DiscountPercent,
		Weight:          req.Weight,
		Images:          datatypes.NewJSONSlice(req.Images),
		IsActive:        true,
		SupplierID:      req.SupplierID,
		Tags:            datatypes.NewJSONSlice(req.Tags),
	}
	if req.Dimensions != nil {
		d := datatypes.NewJSONType(*req.Dimensions)
		product.Dimensions = &d
	}

	if err := h.store.CreateProduct(&product); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, product)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if patch.CategoryIds != nil && len(*patch.CategoryIds) == 0 {
		response.Error(c, http.StatusBadRequest, "a product must keep at least one category")
		return
	}
	if patch.Images != nil && len(*patch.Images) > model.MaxProductImages {
		response.Error(c, http.StatusBadRequest, "a product can carry at most 4 images")
		return
	}

	product, err := h.store.UpdateProduct(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品并级联清掉规格/评分/评价/库存
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteProduct(id); err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// --- 规格 ---

func (h *Handler) ListVariants(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	variants, err := h.store.ListVariants(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, variants)
}

func (h *Handler) CreateVariant(c *gin.Context) {
	productId, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Sku           string                   `json:"sku" binding:"required"`
		Attributes    []model.VariantAttribute `json:"attributes" binding:"required,min=1"`
		StockQuantity int                      `json:"stockQuantity"`
		PriceDelta    float64                  `json:"priceDelta"`
		Images        []string                 `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	variant := model.ProductVariant{
		ProductID:     productId,
		Sku:           req.Sku,
		Attributes:    datatypes.NewJSONType(req.Attributes),
		StockQuantity: req.StockQuantity,
		PriceDelta:    req.PriceDelta,
		Images:        datatypes.NewJSONSlice(req.Images),
	}
	if err := h.store.CreateVariant(&variant); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, variant)
}

func (h *Handler) UpdateVariant(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.VariantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if patch.Attributes != nil && len(*patch.Attributes) == 0 {
		response.Error(c, http.StatusBadRequest, "a variant needs at least one attribute")
		return
	}

	variant, err := h.store.UpdateVariant(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, variant)
}

func (h *Handler) DeleteVariant(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteVariant(id); err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// --- 评分 ---

func (h *Handler) ListRatings(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ratings, err := h.store.ListRatings(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, ratings)
}

func (h *Handler) CreateRating(c *gin.Context) {
	productId, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		CustomerID       uint `json:"customerId" binding:"required"`
		Rating           int  `json:"rating" binding:"required,min=1,max=5"`
		VerifiedPurchase bool `json:"verifiedPurchase"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	rating := model.ProductRating{
		ProductID:        productId,
		CustomerID:       req.CustomerID,
		Rating:           req.Rating,
		Status:           model.RatingPending,
		VerifiedPurchase: req.VerifiedPurchase,
	}
	if err := h.store.CreateRating(&rating); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, rating)
}

// ModerateRating 审核评分 (approve/reject)
func (h *Handler) ModerateRating(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Status model.RatingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		response.Error(c, http.StatusBadRequest, "status must be pending, approved or rejected")
		return
	}

	rating, err := h.store.SetRatingStatus(id, req.Status)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, rating)
}

func (h *Handler) DeleteRating(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteRating(id); err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// --- 评价 ---

func (h *Handler) ListReviews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	reviews, err := h.store.ListReviews(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, reviews)
}

func (h *Handler) CreateReview(c *gin.Context) {
	productId, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		CustomerID uint   `json:"customerId" binding:"required"`
		Rating     int    `json:"rating" binding:"required,min=1,max=5"`
		Title      string `json:"title"`
		Content    string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	review := model.ProductReview{
		ProductID:  productId,
		CustomerID: req.CustomerID,
		Rating:     req.Rating,
		Title:      req.Title,
		Content:    req.Content,
	}
	if err := h.store.CreateReview(&review); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, review)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.store.DeleteReview(id); err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
