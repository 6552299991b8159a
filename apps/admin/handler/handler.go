package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler REST 处理器，只依赖存储层接口
type Handler struct {
	store store.Store
}

func New(s store.Store) *Handler {
	return &Handler{store: s}
}

// idParam 解析路径里的 :id
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// storeError 把存储层错误分类翻译成状态码
// 未知错误记日志、对外只给笼统信息
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.Error(c, http.StatusNotFound, "record not found")
	case errors.Is(err, store.ErrConflict):
		response.Error(c, http.StatusConflict, "duplicate value for a unique field")
	case errors.Is(err, store.ErrInvalidReference):
		response.Error(c, http.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, store.ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, "requested status transition is not allowed")
	default:
		log.Printf("[storage] unexpected error: %v", err)
		response.Error(c, http.StatusInternalServerError, "internal storage error")
	}
}
