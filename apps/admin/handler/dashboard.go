package handler

import (
	"strconv"
	"time"

	"toolmart-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// DashboardMetrics 看板聚合指标
func (h *Handler) DashboardMetrics(c *gin.Context) {
	metrics, err := h.store.DashboardMetrics(time.Now())
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, metrics)
}

// RecentOrders 最近订单 + 客户信息，默认 10 条
func (h *Handler) RecentOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	orders, err := h.store.RecentOrders(limit)
	if err != nil {
		storeError(c, err)
		return
	}
	response.Success(c, orders)
}
