package handler

import (
	"errors"
	"net/http"

	"toolmart-admin/apps/admin/middleware"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/jwtauth"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Login 用户名+密码换 Token
// 用户不存在和密码错误返回同一句提示，不给枚举口子
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		storeError(c, err)
		return
	}

	// bcrypt 比对自带常数时间
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !user.IsActive {
		response.Error(c, http.StatusForbidden, "account is disabled")
		return
	}

	token, err := jwtauth.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	response.Success(c, gin.H{
		"token": token,
		"user":  user, // password 字段带 json:"-"，不会出去
	})
}

// Me 返回当前登录用户
func (h *Handler) Me(c *gin.Context) {
	response.Success(c, middleware.CurrentUser(c))
}
