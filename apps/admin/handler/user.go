package handler

import (
	"net/http"

	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers()
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.store.GetUserByID(id)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, user)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req struct {
		Username  string         `json:"username" binding:"required"`
		Email     string         `json:"email" binding:"required,email"`
		Password  string         `json:"password" binding:"required,min=8"`
		FirstName string         `json:"firstName"`
		LastName  string         `json:"lastName"`
		Role      model.UserRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if !req.Role.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown role")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := model.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  true,
	}
	if err := h.store.CreateUser(&user); err != nil {
		storeError(c, err)
		return
	}
	response.Created(c, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var patch store.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if patch.Role != nil && !patch.Role.Valid() {
		response.Error(c, http.StatusBadRequest, "unknown role")
		return
	}
	if patch.Password != nil {
		if len(*patch.Password) < 8 {
			response.Error(c, http.StatusBadRequest, "password must be at least 8 characters")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "failed to hash password")
			return
		}
		hashedStr := string(hashed)
		patch.Password = &hashedStr
	}

	user, err := h.store.UpdateUser(id, patch)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, user)
}
