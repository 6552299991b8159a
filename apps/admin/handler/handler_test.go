package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"toolmart-admin/apps/admin/middleware"
	"toolmart-admin/apps/admin/model"
	"toolmart-admin/apps/admin/store"
	"toolmart-admin/pkg/jwtauth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "password123"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	jwtauth.Init("handler-test-secret", 1)
	// 限流阈值拉高，测试里不触发
	if err := middleware.InitLoginLimiter(1000); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, store.AutoMigrate(db))

	s := store.New(db)
	r := gin.New()
	RegisterRoutes(r, s)
	return r, s
}

func seedUser(t *testing.T, s store.Store, username string, role model.UserRole, active bool) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		Username: username,
		Email:    username + "@toolmart.test",
		Password: string(hashed),
		Role:     role,
		IsActive: active,
	}
	require.NoError(t, s.CreateUser(u))
	return u
}

func tokenFor(t *testing.T, u *model.User) string {
	t.Helper()
	token, err := jwtauth.GenerateToken(u.ID, u.Username, string(u.Role))
	require.NoError(t, err)
	return token
}

// doJSON 发 JSON 请求，token 为空则不带鉴权头
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doHeader 带任意 Authorization 头打一个受保护接口
func doHeader(t *testing.T, r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/products", nil)
	req.Header.Set("Authorization", authorization)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeData 把统一响应里的 data 解到 out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NoError(t, json.Unmarshal(resp.Data, out))
}

func responseMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}
