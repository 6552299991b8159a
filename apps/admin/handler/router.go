package handler

import (
	"toolmart-admin/apps/admin/middleware"
	"toolmart-admin/apps/admin/store"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 挂载全部路由
// 读接口只要登录，写接口再过权限表
func RegisterRoutes(r *gin.Engine, s store.Store) {
	h := New(s)
	api := r.Group("/api")

	// 公开接口
	api.POST("/auth/login", middleware.LoginGuard(), h.Login)

	authed := api.Group("/")
	authed.Use(middleware.Auth(s))
	{
		authed.GET("/auth/me", h.Me)

		// 看板
		authed.GET("/dashboard/metrics", h.DashboardMetrics)
		authed.GET("/dashboard/recent-orders", h.RecentOrders)

		// 员工
		authed.GET("/users", middleware.Require(middleware.PermManageUsers), h.ListUsers)
		authed.POST("/users", middleware.Require(middleware.PermManageUsers), h.CreateUser)
		authed.GET("/users/:id", middleware.Require(middleware.PermManageUsers), h.GetUser)
		authed.PUT("/users/:id", middleware.Require(middleware.PermManageUsers), h.UpdateUser)

		// 分类
		authed.GET("/categories", h.ListCategories)
		authed.GET("/categories/counts", h.CategoryCounts)
		authed.POST("/categories", middleware.Require(middleware.PermWriteCategories), h.CreateCategory)
		authed.PUT("/categories/:id", middleware.Require(middleware.PermWriteCategories), h.UpdateCategory)
		authed.DELETE("/categories/:id", middleware.Require(middleware.PermWriteCategories), h.DeleteCategory)

		// 商品
		authed.GET("/products", h.ListProducts)
		authed.POST("/products", middleware.Require(middleware.PermWriteProducts), h.CreateProduct)
		authed.GET("/products/:id", h.GetProduct)
		authed.PUT("/products/:id", middleware.Require(middleware.PermWriteProducts), h.UpdateProduct)
		authed.DELETE("/products/:id", middleware.Require(middleware.PermWriteProducts), h.DeleteProduct)

		// 规格
		authed.GET("/products/:id/variants", h.ListVariants)
		authed.POST("/products/:id/variants", middleware.Require(middleware.PermWriteProducts), h.CreateVariant)
		authed.PUT("/product-variants/:id", middleware.Require(middleware.PermWriteProducts), h.UpdateVariant)
		authed.DELETE("/product-variants/:id", middleware.Require(middleware.PermWriteProducts), h.DeleteVariant)

		// 评分 / 评价
		authed.GET("/products/:id/ratings", h.ListRatings)
		authed.POST("/products/:id/ratings", h.CreateRating)
		authed.PATCH("/product-ratings/:id/status", middleware.Require(middleware.PermModerateRatings), h.ModerateRating)
		authed.DELETE("/product-ratings/:id", middleware.Require(middleware.PermModerateRatings), h.DeleteRating)
		authed.GET("/products/:id/reviews", h.ListReviews)
		authed.POST("/products/:id/reviews", h.CreateReview)
		authed.DELETE("/product-reviews/:id", middleware.Require(middleware.PermModerateRatings), h.DeleteReview)

		// 客户
		authed.GET("/customers", h.ListCustomers)
		authed.POST("/customers", middleware.Require(middleware.PermWriteCustomers), h.CreateCustomer)
		authed.GET("/customers/:id", h.GetCustomer)
		authed.PUT("/customers/:id", middleware.Require(middleware.PermWriteCustomers), h.UpdateCustomer)

		// 订单
		authed.GET("/orders", h.ListOrders)
		authed.POST("/orders", middleware.Require(middleware.PermWriteOrders), h.CreateOrder)
		authed.GET("/orders/:id", h.GetOrder)
		authed.PUT("/orders/:id", middleware.Require(middleware.PermWriteOrders), h.UpdateOrder)
		authed.PATCH("/orders/:id/status", middleware.Require(middleware.PermWriteOrders), h.UpdateOrderStatus)

		// 库存
		authed.GET("/inventory", h.ListInventory)
		authed.GET("/inventory/low-stock", h.LowStock)
		authed.POST("/inventory", middleware.Require(middleware.PermWriteInventory), h.CreateInventory)
		authed.GET("/inventory/:id", h.GetInventory)
		authed.PUT("/inventory/:id", middleware.Require(middleware.PermWriteInventory), h.UpdateInventory)
		authed.DELETE("/inventory/:id", middleware.Require(middleware.PermWriteInventory), h.DeleteInventory)

		// 保修
		authed.GET("/warranties", h.ListWarranties)
		authed.POST("/warranties", middleware.Require(middleware.PermWriteWarranties), h.CreateWarranty)
		authed.GET("/warranties/:id", h.GetWarranty)
		authed.PUT("/warranties/:id", middleware.Require(middleware.PermWriteWarranties), h.UpdateWarranty)
		authed.POST("/warranties/:id/claim", middleware.Require(middleware.PermWriteWarranties), h.ClaimWarranty)
		authed.POST("/warranties/:id/resolve", middleware.Require(middleware.PermWriteWarranties), h.ResolveWarranty)
		authed.POST("/warranties/:id/void", middleware.Require(middleware.PermWriteWarranties), h.VoidWarranty)

		// 经销商 / 供应商
		authed.GET("/vendors", h.ListVendors)
		authed.POST("/vendors", middleware.Require(middleware.PermWritePartners), h.CreateVendor)
		authed.GET("/vendors/:id", h.GetVendor)
		authed.PUT("/vendors/:id", middleware.Require(middleware.PermWritePartners), h.UpdateVendor)
		authed.DELETE("/vendors/:id", middleware.Require(middleware.PermWritePartners), h.DeleteVendor)
		authed.GET("/suppliers", h.ListSuppliers)
		authed.POST("/suppliers", middleware.Require(middleware.PermWritePartners), h.CreateSupplier)
		authed.GET("/suppliers/:id", h.GetSupplier)
		authed.PUT("/suppliers/:id", middleware.Require(middleware.PermWritePartners), h.UpdateSupplier)
		authed.DELETE("/suppliers/:id", middleware.Require(middleware.PermWritePartners), h.DeleteSupplier)
	}
}
