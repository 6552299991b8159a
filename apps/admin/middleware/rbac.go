package middleware

import (
	"net/http"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// Permission 写操作权限点
type Permission string

const (
	PermManageUsers     Permission = "manage_users"
	PermWriteProducts   Permission = "write_products"
	PermWriteCategories Permission = "write_categories"
	PermModerateRatings Permission = "moderate_ratings"
	PermWriteCustomers  Permission = "write_customers"
	PermWriteOrders     Permission = "write_orders"
	PermWriteInventory  Permission = "write_inventory"
	PermWriteWarranties Permission = "write_warranties"
	PermWritePartners   Permission = "write_partners"
)

// policy 权限表：集中声明，审计只看这一处
// 读接口对所有已登录角色开放，不进这张表；super_admin 全量放行
var policy = map[Permission][]model.UserRole{
	PermManageUsers:     {},
	PermWriteProducts:   {model.RoleProductManager, model.RoleOperationsManager},
	PermWriteCategories: {model.RoleProductManager, model.RoleOperationsManager},
	PermModerateRatings: {model.RoleProductManager, model.RoleCustomerService},
	PermWriteCustomers:  {model.RoleCustomerService, model.RoleSalesRep, model.RoleOperationsManager},
	PermWriteOrders:     {model.RoleOperationsManager, model.RoleCustomerService},
	PermWriteInventory:  {model.RoleWarehouseManager, model.RoleOperationsManager},
	PermWriteWarranties: {model.RoleTechnicalSupport, model.RoleCustomerService},
	PermWritePartners:   {model.RoleOperationsManager},
}

// Allowed 角色是否具备权限点
func Allowed(role model.UserRole, perm Permission) bool {
	if role == model.RoleSuperAdmin {
		return true
	}
	for _, r := range policy[perm] {
		if r == role {
			return true
		}
	}
	return false
}

// Require 角色门禁中间件，必须排在 Auth 之后
func Require(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !Allowed(user.Role, perm) {
			response.Error(c, http.StatusForbidden, "insufficient role for this operation")
			c.Abort()
			return
		}
		c.Next()
	}
}
