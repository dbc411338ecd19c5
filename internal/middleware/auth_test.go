package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoviz-server/internal/model"
	"autoviz-server/internal/service"
	"autoviz-server/internal/utils"

	"github.com/gin-gonic/gin"
)

const testSecret = "middleware-secret"

func newAdminRouter(tokens *service.TokenService) *gin.Engine {
	r := gin.New()
	r.GET("/admin", JWTAuth(tokens), AdminCheck(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/me", JWTAuth(tokens), func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": identity.UserID, "username": identity.Username, "role": identity.Role})
	})
	return r
}

func doRequest(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// 测试内容：管理员接口无令牌 401，普通用户 403，管理员 200。
func TestAdminRoute_AccessGuard(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	r := newAdminRouter(tokens)

	if w := doRequest(r, "/admin", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}

	userToken, _ := tokens.Issue(2, "alice", model.RoleUser)
	if w := doRequest(r, "/admin", userToken); w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}

	adminToken, _ := tokens.Issue(1, "root_admin", model.RoleAdmin)
	if w := doRequest(r, "/admin", adminToken); w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}

// 测试内容：格式错误、过期、错误签名的令牌均返回 401。
func TestJWTAuth_InvalidTokens(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	r := newAdminRouter(tokens)

	expired, _ := utils.GenerateLoginToken([]byte(testSecret), 1, "alice", "admin", -time.Minute)
	foreign, _ := utils.GenerateLoginToken([]byte("other"), 1, "alice", "admin", time.Hour)

	for name, token := range map[string]string{
		"garbage": "abc.def.ghi",
		"expired": expired,
		"foreign": foreign,
	} {
		if w := doRequest(r, "/me", token); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: 期望 401，实际为 %d", name, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
}

// 测试内容：有效令牌将身份写入上下文。
func TestJWTAuth_ValidTokenSetsContext(t *testing.T) {
	tokens := service.NewTokenService(testSecret, time.Hour)
	token, _ := tokens.Issue(7, "alice", model.RoleUser)

	w := doRequest(newAdminRouter(tokens), "/me", token)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	if body := w.Body.String(); body != `{"id":7,"role":"user","username":"alice"}` {
		t.Fatalf("非预期响应: %s", body)
	}
}

// 测试内容：未经过 JWTAuth 时 RequireRole 返回 401。
func TestRequireRole_WithoutIdentity(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireRole(model.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	if w := doRequest(r, "/x", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
}
