package middleware

import (
	"net/http"

	"toolmart-admin/pkg/response"

	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/gin-gonic/gin"
)

// 登录接口的限流资源名
const ResLogin = "admin_login"

// InitLoginLimiter 初始化登录限流规则，防口令爆破
func InitLoginLimiter(qps float64) error {
	if err := sentinel.InitDefault(); err != nil {
		return err
	}

	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               ResLogin,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              qps,
			StatIntervalInMs:       1000,
		},
	})
	return err
}

// LoginGuard 登录限流埋点
func LoginGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		e, b := sentinel.Entry(ResLogin, sentinel.WithTrafficType(base.Inbound))
		if b != nil {
			response.Error(c, http.StatusTooManyRequests, "too many login attempts, try again later")
			c.Abort()
			return
		}
		defer e.Exit()
		c.Next()
	}
}
