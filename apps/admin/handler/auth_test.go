package handler

import (
	"net/http"
	"strings"
	"testing"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccess(t *testing.T) {
	r, s := newTestRouter(t)
	seedUser(t, s, "admin", model.RoleSuperAdmin, true)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	decodeData(t, w, &data)
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "admin", data.User.Username)
	// password 绝不能出现在响应里
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginBadCredentialsIndistinguishable(t *testing.T) {
	r, s := newTestRouter(t)
	seedUser(t, s, "admin", model.RoleSuperAdmin, true)

	// 密码错和用户不存在必须是同一个响应
	wrongPw := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin", "password": "not-the-password",
	})
	noUser := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "ghost", "password": testPassword,
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, noUser.Code)
	assert.Equal(t, wrongPw.Body.String(), noUser.Body.String())
}

func TestLoginDisabledAccount(t *testing.T) {
	r, s := newTestRouter(t)
	seedUser(t, s, "parked", model.RoleCustomerService, false)

	// 密码对但账号停用
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "parked", "password": testPassword,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "account is disabled", responseMessage(t, w))
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthMe(t *testing.T) {
	r, s := newTestRouter(t)
	u := seedUser(t, s, "casey", model.RoleProductManager, true)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", tokenFor(t, u), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.User
	decodeData(t, w, &got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, model.RoleProductManager, got.Role)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthRejectsAnonymous(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	r, s := newTestRouter(t)
	u := seedUser(t, s, "casey", model.RoleProductManager, true)

	// 没有 Bearer 前缀
	rec := doHeader(t, r, "Token "+tokenFor(t, u))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// 伪造 Token
	rec = doHeader(t, r, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthRejectsDeactivatedUser(t *testing.T) {
	r, s := newTestRouter(t)
	u := seedUser(t, s, "casey", model.RoleProductManager, true)
	token := tokenFor(t, u)

	// 停用后已签发的 Token 也要失效
	active := false
	_, err := s.UpdateUser(u.ID, store.UserPatch{IsActive: &active})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/products", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRBACWriteDeniedByRole(t *testing.T) {
	r, s := newTestRouter(t)
	warehouse := seedUser(t, s, "dockhand", model.RoleWarehouseManager, true)

	// 仓库角色不能动分类
	w := doJSON(t, r, http.MethodPost, "/api/categories", tokenFor(t, warehouse), gin.H{
		"name": "Power Tools", "slug": "power-tools",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.True(t, strings.Contains(responseMessage(t, w), "insufficient role"))
}

func TestRBACWriteAllowedByRole(t *testing.T) {
	r, s := newTestRouter(t)
	pm := seedUser(t, s, "merch", model.RoleProductManager, true)

	w := doJSON(t, r, http.MethodPost, "/api/categories", tokenFor(t, pm), gin.H{
		"name": "Power Tools", "slug": "power-tools",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRBACReadOpenToAllRoles(t *testing.T) {
	r, s := newTestRouter(t)
	tech := seedUser(t, s, "fixer", model.RoleTechnicalSupport, true)

	w := doJSON(t, r, http.MethodGet, "/api/categories", tokenFor(t, tech), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRBACSuperAdminBypassesPolicy(t *testing.T) {
	r, s := newTestRouter(t)
	admin := seedUser(t, s, "root", model.RoleSuperAdmin, true)

	// 权限表里 manage_users 没列任何角色，只有 super_admin 过得去
	w := doJSON(t, r, http.MethodPost, "/api/users", tokenFor(t, admin), gin.H{
		"username": "newhire",
		"email":    "newhire@toolmart.test",
		"password": "longenoughpw",
		"role":     "sales_representative",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	pm := seedUser(t, s, "merch", model.RoleProductManager, true)
	w = doJSON(t, r, http.MethodGet, "/api/users", tokenFor(t, pm), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
