package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"toolmart-admin/apps/admin/handler"
	"toolmart-admin/apps/admin/middleware"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/config"
	"toolmart-admin/pkg/database"
	"toolmart-admin/pkg/jwtauth"
	"toolmart-admin/pkg/tracer"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	c, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 环境变量覆盖
	if v := os.Getenv("MYSQL_HOST"); v != "" {
		c.Mysql.Host = v
	}
	if v := os.Getenv("MYSQL_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Mysql.Port = p
		}
	}
	if v := os.Getenv("MYSQL_USER"); v != "" {
		c.Mysql.User = v
	}
	if v := os.Getenv("MYSQL_PASSWORD"); v != "" {
		c.Mysql.Password = v
	}
	if v := os.Getenv("MYSQL_DBNAME"); v != "" {
		c.Mysql.DbName = v
	}
	if v := os.Getenv("SERVICE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Service.Port = p
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("OTLP_ENDPOINT"); v != "" {
		c.Trace.Endpoint = v
	}

	jwtauth.Init(c.Jwt.Secret, c.Jwt.ExpireHours)

	// 存储必须在开始收流量前就绪，起不来就退出，不做内存降级
	db, err := database.InitMySQL(c.Mysql)
	if err != nil {
		log.Fatalf("Failed to init mysql: %v", err)
	}
	if err := store.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme-now"
	}
	if err := store.SeedSuperAdmin(db, "admin", adminPassword); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// 登录限流
	if err := middleware.InitLoginLimiter(c.Login.Qps); err != nil {
		log.Fatalf("Failed to init login limiter: %v", err)
	}
	log.Printf("Login rate limit loaded: QPS = %.0f", c.Login.Qps)

	r := gin.Default()

	// 配了 OTLP 地址才开链路追踪
	if c.Trace.Endpoint != "" {
		tp, err := tracer.InitTracer(c.Service.Name, c.Trace.Endpoint)
		if err != nil {
			log.Fatalf("Failed to init tracer: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(ctx)
		}()
		r.Use(otelgin.Middleware(c.Service.Name))
	}

	handler.RegisterRoutes(r, store.New(db))

	addr := fmt.Sprintf(":%d", c.Service.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	log.Printf("Admin API listening on %s", addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
