package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"autoviz-server/internal/config"
	"autoviz-server/internal/di"
	"autoviz-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

const (
	failRenderScript = "exit 1\n"
	okRenderScript   = "printf 'png' > \"$2\"\n"
)

type testApp struct {
	engine  *gin.Engine
	app     *di.Application
	root    string
	smsHits *int32
}

// newTestApp 用真实依赖组装应用，渲染脚本与短信网关按需替换
func newTestApp(t *testing.T, renderScript string, smsStatus int) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	script := filepath.Join(root, "render.sh")
	if err := os.WriteFile(script, []byte(renderScript), 0755); err != nil {
		t.Fatalf("写入渲染脚本失败: %v", err)
	}

	var hits int32
	sms := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(smsStatus)
		_, _ = w.Write([]byte(`{"errorCode":"Fail","errorMessage":"down"}`))
	}))
	t.Cleanup(sms.Close)

	translate := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":503,"message":"backend error"}}`))
	}))
	t.Cleanup(translate.Close)

	cfg := config.Config{
		Server: config.ServerConfig{Port: "0", Mode: "test"},
		JWT:    config.JWTConfig{Secret: "e2e_secret", ExpirationHours: 1},
		Upload: config.UploadConfig{
			Path:              filepath.Join(root, "uploads"),
			URLPrefix:         "/uploads/",
			VisiblePath:       filepath.Join(root, "visible"),
			VisibleURLPrefix:  "/visible/",
			MaxSizeMB:         1,
			AllowedExtensions: ".xlsx,.xls,.csv",
		},
		Render: config.RenderConfig{Command: "sh " + script, TimeoutSeconds: 5},
		SMS: config.SMSConfig{
			Enabled:        true,
			APIURL:         sms.URL,
			APIKey:         "key",
			APISecret:      "secret",
			From:           "01000000000",
			Message:        "新的报告已发布",
			RetryAttempts:  2,
			RetryBackoffMS: 1,
		},
		Translate: config.TranslateConfig{APIURL: translate.URL, APIKey: "key", TimeoutSeconds: 2},
		Redis:     config.RedisConfig{Enabled: false, Prefix: "autoviz"},
	}
	config.Set(cfg)

	gdb := testutils.SetupDB(t)
	application, err := di.InitializeApplication(gdb, cfg)
	if err != nil {
		t.Fatalf("初始化应用失败: %v", err)
	}
	// 后台通知需在数据库关闭前结束
	t.Cleanup(application.Publish.Wait)

	return &testApp{engine: newEngine(application), app: application, root: root, smsHits: &hits}
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("序列化请求失败: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) publish(t *testing.T, token, title, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, ct := testutils.BuildMultipart(t,
		map[string][]string{"title": {title}, "columns": {"name,value"}},
		testutils.FormFile{Field: "file", Filename: filename, ContentType: "text/csv", Data: data},
	)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", body)
	req.Header.Set("Content-Type", ct)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) registerAndLogin(t *testing.T, username, role, phone string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username, "password": "password123", "phone": phone, "role": role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("注册 %s 期望 201，实际为 %d: %s", username, w.Code, w.Body.String())
	}
	w = a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": username, "password": "password123"})
	if w.Code != http.StatusOK {
		t.Fatalf("登录 %s 期望 200，实际为 %d: %s", username, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	decode(t, w, &resp)
	if resp.Token == "" || resp.Role != role {
		t.Fatalf("非预期登录响应: %s", w.Body.String())
	}
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("解析响应失败: %v body=%s", err, w.Body.String())
	}
}

var sampleCSV = []byte("name,value\nalpha,1\nbeta,2\n")

// 测试内容：注册后登录返回的角色与注册一致，错误密码与不存在用户返回相同错误。
func TestAuthFlow_LoginRoleAndUniformErrors(t *testing.T) {
	a := newTestApp(t, okRenderScript, http.StatusOK)
	a.registerAndLogin(t, "boss", "admin", "")
	a.registerAndLogin(t, "alice", "user", "010-1234-5678")

	wrong := a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "alice", "password": "wrongpass1"})
	missing := a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "nobody", "password": "wrongpass1"})
	if wrong.Code != http.StatusUnauthorized || missing.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d / %d", wrong.Code, missing.Code)
	}
	if wrong.Body.String() != missing.Body.String() {
		t.Fatalf("错误信息不一致: %s vs %s", wrong.Body.String(), missing.Body.String())
	}

	dup := a.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice2", "password": "password123", "phone": "010-1234-5678", "role": "user",
	})
	if dup.Code != http.StatusBadRequest {
		t.Fatalf("重复手机号期望 400，实际为 %d", dup.Code)
	}

	bad := a.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "mallory", "password": "password123", "role": "root",
	})
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("未知角色期望 400，实际为 %d", bad.Code)
	}

	found := a.do(t, http.MethodPost, "/api/auth/find-id", "", gin.H{"phone": "010-1234-5678"})
	if found.Code != http.StatusOK || !strings.Contains(found.Body.String(), `"alice"`) {
		t.Fatalf("找回用户名失败: %d %s", found.Code, found.Body.String())
	}
	notFound := a.do(t, http.MethodPost, "/api/auth/find-id", "", gin.H{"phone": "010-0000-0000"})
	if notFound.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", notFound.Code)
	}
}

// 测试内容：韩文、纯数字等用户名与短密码均可注册并登录。
func TestAuthFlow_RegisterAcceptsAnyUsername(t *testing.T) {
	a := newTestApp(t, okRenderScript, http.StatusOK)
	for _, username := range []string{"홍길동", "20240001"} {
		w := a.do(t, http.MethodPost, "/api/auth/register", "", gin.H{"username": username, "password": "abc", "role": "user"})
		if w.Code != http.StatusCreated {
			t.Fatalf("注册 %s 期望 201，实际为 %d: %s", username, w.Code, w.Body.String())
		}
		w = a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": username, "password": "abc"})
		if w.Code != http.StatusOK {
			t.Fatalf("登录 %s 期望 200，实际为 %d: %s", username, w.Code, w.Body.String())
		}
	}
}

// 测试内容：管理员接口对无令牌返回 401，对普通用户返回 403，对管理员放行。
func TestAccessGuard_AdminRoute(t *testing.T) {
	a := newTestApp(t, okRenderScript, http.StatusOK)
	adminToken := a.registerAndLogin(t, "boss", "admin", "")
	userToken := a.registerAndLogin(t, "alice", "user", "")

	columns := func(token string) int {
		body, ct := testutils.BuildMultipart(t, nil,
			testutils.FormFile{Field: "file", Filename: "a.csv", ContentType: "text/csv", Data: sampleCSV})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/sheets/columns", body)
		req.Header.Set("Content-Type", ct)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		a.engine.ServeHTTP(w, req)
		return w.Code
	}

	if code := columns(""); code != http.StatusUnauthorized {
		t.Fatalf("无令牌期望 401，实际为 %d", code)
	}
	if code := columns(userToken); code != http.StatusForbidden {
		t.Fatalf("普通用户期望 403，实际为 %d", code)
	}
	if code := columns(adminToken); code != http.StatusOK {
		t.Fatalf("管理员期望 200，实际为 %d", code)
	}
	if code := columns("not-a-token"); code != http.StatusUnauthorized {
		t.Fatalf("非法令牌期望 401，实际为 %d", code)
	}
}

// 测试内容：渲染进程失败时发布仍返回 201，帖子无可视化图片。
func TestPublish_RendererFailureStillCreated(t *testing.T) {
	a := newTestApp(t, failRenderScript, http.StatusOK)
	adminToken := a.registerAndLogin(t, "boss", "admin", "")

	w := a.publish(t, adminToken, "季度报表", "q1.csv", sampleCSV)
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		PostID uint `json:"postId"`
	}
	decode(t, w, &created)
	if created.PostID == 0 {
		t.Fatalf("期望有效 postId，实际为 %s", w.Body.String())
	}

	detail := a.do(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", created.PostID), adminToken, nil)
	if detail.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", detail.Code)
	}
	var got map[string]any
	decode(t, detail, &got)
	if got["visualizationImagePath"] != nil {
		t.Fatalf("期望图片路径为空，实际为 %v", got["visualizationImagePath"])
	}
	if got["title"] != "季度报表" {
		t.Fatalf("非预期标题: %v", got["title"])
	}
}

// 测试内容：短信网关持续失败时发布仍返回 201，且确实尝试了发送。
func TestPublish_NotifierFailureStillCreated(t *testing.T) {
	a := newTestApp(t, okRenderScript, http.StatusInternalServerError)
	adminToken := a.registerAndLogin(t, "boss", "admin", "")
	a.registerAndLogin(t, "alice", "user", "01011112222")

	w := a.publish(t, adminToken, "周报", "week.csv", sampleCSV)
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", w.Code, w.Body.String())
	}
	a.app.Publish.Wait()

	if hits := atomic.LoadInt32(a.smsHits); hits != 2 {
		t.Fatalf("期望重试 2 次，实际为 %d", hits)
	}
}

// 测试内容：渲染成功时详情返回图片地址，静态目录可访问并带缓存头。
func TestPublish_SuccessServesVisualization(t *testing.T) {
	a := newTestApp(t, okRenderScript, http.StatusOK)
	adminToken := a.registerAndLogin(t, "boss", "admin", "")

	w := a.publish(t, adminToken, "月报", "month.csv", sampleCSV)
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		PostID uint `json:"postId"`
	}
	decode(t, w, &created)

	detail := a.do(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", created.PostID), adminToken, nil)
	var got struct {
		SourceFileURL    string  `json:"sourceFileUrl"`
		VisualizationURL *string `json:"visualizationUrl"`
	}
	decode(t, detail, &got)
	if got.VisualizationURL == nil || !strings.HasPrefix(*got.VisualizationURL, "/visible/") {
		t.Fatalf("期望图片地址，实际为 %s", detail.Body.String())
	}

	img := a.do(t, http.MethodGet, *got.VisualizationURL, "", nil)
	if img.Code != http.StatusOK || img.Body.String() != "png" {
		t.Fatalf("静态图片访问失败: %d %q", img.Code, img.Body.String())
	}
	if img.Header().Get("Cache-Control") == "" {
		t.Fatalf("期望 Cache-Control 头")
	}

	data := a.do(t, http.MethodGet, fmt.Sprintf("/api/posts/%d/data", created.PostID), adminToken, nil)
	if data.Code != http.StatusOK {
		t.Fatalf("数据预览期望 200，实际为 %d", data.Code)
	}
	var preview struct {
		SheetNames []string                    `json:"sheetNames"`
		Sheets     map[string][]map[string]any `json:"sheets"`
	}
	decode(t, data, &preview)
	if len(preview.SheetNames) != 1 || len(preview.Sheets[preview.SheetNames[0]]) != 2 {
		t.Fatalf("非预期预览: %s", data.Body.String())
	}

	list := a.do(t, http.MethodGet, "/api/posts", adminToken, nil)
	var items []map[string]any
	decode(t, list, &items)
	if len(items) != 1 || items[0]["username"] != "boss" {
		t.Fatalf("非预期列表: %s", list.Body.String())
	}
	var detailTime map[string]any
	decode(t, detail, &detailTime)
	listCreated, ok := items[0]["createdAt"].(string)
	if !ok || listCreated != detailTime["createdAt"] {
		t.Fatalf("列表与详情的 createdAt 编码不一致: %v vs %v", items[0]["createdAt"], detailTime["createdAt"])
	}
}

// 测试内容：不支持的扩展名在任何写入前被拒绝。
func TestPublish_RejectsUnsupportedFile(t *testing.T) {
	a := newTestApp(t, okRenderScript, http.StatusOK)
	adminToken := a.registerAndLogin(t, "boss", "admin", "")

	w := a.publish(t, adminToken, "脚本", "run.exe", []byte("MZ"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w.Code)
	}
	entries, _ := os.ReadDir(filepath.Join(a.root, "uploads"))
	if len(entries) != 0 {
		t.Fatalf("期望未落盘文件，实际为 %d 个", len(entries))
	}

	tooLarge := a.publish(t, adminToken, "大文件", "big.csv", bytes.Repeat([]byte("a"), 3<<20))
	if tooLarge.Code != http.StatusBadRequest {
		t.Fatalf("超限期望 400，实际为 %d", tooLarge.Code)
	}
}

// 测试内容：评论仅作者或管理员可修改删除，结果反映在帖子详情中。
func TestComments_Ownership(t *testing.T) {
	a := newTestApp(t, failRenderScript, http.StatusOK)
	adminToken := a.registerAndLogin(t, "boss", "admin", "")
	aliceToken := a.registerAndLogin(t, "alice", "user", "")
	bobToken := a.registerAndLogin(t, "bob", "user", "")

	w := a.publish(t, adminToken, "讨论", "talk.csv", sampleCSV)
	var created struct {
		PostID uint `json:"postId"`
	}
	decode(t, w, &created)
	postPath := fmt.Sprintf("/api/posts/%d", created.PostID)

	empty := a.do(t, http.MethodPost, postPath+"/comments", aliceToken, gin.H{"content": "   "})
	if empty.Code != http.StatusBadRequest {
		t.Fatalf("空评论期望 400，实际为 %d", empty.Code)
	}

	cw := a.do(t, http.MethodPost, postPath+"/comments", aliceToken, gin.H{"content": "第一条"})
	if cw.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d: %s", cw.Code, cw.Body.String())
	}
	var comment struct {
		CommentID uint `json:"commentId"`
	}
	decode(t, cw, &comment)
	commentPath := fmt.Sprintf("/api/comments/%d", comment.CommentID)

	if code := a.do(t, http.MethodPut, commentPath, bobToken, gin.H{"content": "篡改"}).Code; code != http.StatusForbidden {
		t.Fatalf("非作者修改期望 403，实际为 %d", code)
	}
	if code := a.do(t, http.MethodDelete, commentPath, bobToken, nil).Code; code != http.StatusForbidden {
		t.Fatalf("非作者删除期望 403，实际为 %d", code)
	}
	if code := a.do(t, http.MethodPut, commentPath, aliceToken, gin.H{"content": "已修改"}).Code; code != http.StatusOK {
		t.Fatalf("作者修改期望 200，实际为 %d", code)
	}

	var detail struct {
		Comments []struct {
			Content  string `json:"content"`
			Username string `json:"username"`
		} `json:"comments"`
	}
	decode(t, a.do(t, http.MethodGet, postPath, bobToken, nil), &detail)
	if len(detail.Comments) != 1 || detail.Comments[0].Content != "已修改" || detail.Comments[0].Username != "alice" {
		t.Fatalf("非预期评论: %+v", detail.Comments)
	}

	if code := a.do(t, http.MethodDelete, commentPath, adminToken, nil).Code; code != http.StatusOK {
		t.Fatalf("管理员删除期望 200，实际为 %d", code)
	}
	detail.Comments = nil
	decode(t, a.do(t, http.MethodGet, postPath, bobToken, nil), &detail)
	if len(detail.Comments) != 0 {
		t.Fatalf("期望评论已删除，实际为 %+v", detail.Comments)
	}
}

// 测试内容：两个管理员并发发布得到不同的帖子与文件路径。
func TestPublish_ConcurrentAdmins(t *testing.T) {
	a := newTestApp(t, failRenderScript, http.StatusOK)
	tokens := []string{
		a.registerAndLogin(t, "boss1", "admin", ""),
		a.registerAndLogin(t, "boss2", "admin", ""),
	}

	type result struct {
		PostID         uint   `json:"postId"`
		SourceFilePath string `json:"sourceFilePath"`
	}
	results := make([]result, len(tokens))
	codes := make([]int, len(tokens))
	var wg sync.WaitGroup
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			body, ct := testutils.BuildMultipart(t, map[string][]string{"title": {fmt.Sprintf("并发 %d", i)}},
				testutils.FormFile{Field: "file", Filename: "same.csv", ContentType: "text/csv", Data: sampleCSV})
			req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", body)
			req.Header.Set("Content-Type", ct)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			a.engine.ServeHTTP(w, req)
			codes[i] = w.Code
			_ = json.Unmarshal(w.Body.Bytes(), &results[i])
		}(i, token)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusCreated {
			t.Fatalf("请求 %d 期望 201，实际为 %d", i, code)
		}
	}
	if results[0].PostID == results[1].PostID {
		t.Fatalf("帖子 ID 重复: %d", results[0].PostID)
	}
	if results[0].SourceFilePath == "" || results[0].SourceFilePath == results[1].SourceFilePath {
		t.Fatalf("文件路径冲突: %q %q", results[0].SourceFilePath, results[1].SourceFilePath)
	}
}

// 测试内容：修改密码后旧密码失效，新密码可登录；过短密码被拒绝。
func TestChangePassword(t *testing.T) {
	a := newTestApp(t, okRenderScript, http.StatusOK)
	token := a.registerAndLogin(t, "alice", "user", "")

	if code := a.do(t, http.MethodPut, "/api/users/password", token, gin.H{"newPassword": "short"}).Code; code != http.StatusBadRequest {
		t.Fatalf("过短密码期望 400，实际为 %d", code)
	}
	if code := a.do(t, http.MethodPut, "/api/users/password", token, gin.H{"newPassword": "brandnew123"}).Code; code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", code)
	}
	if code := a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "alice", "password": "password123"}).Code; code != http.StatusUnauthorized {
		t.Fatalf("旧密码期望 401，实际为 %d", code)
	}
	if code := a.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "alice", "password": "brandnew123"}).Code; code != http.StatusOK {
		t.Fatalf("新密码期望 200，实际为 %d", code)
	}
}

// 测试内容：管理员可修改标题并删除帖子，删除后详情返回 404。
func TestAdminPostManage(t *testing.T) {
	a := newTestApp(t, failRenderScript, http.StatusOK)
	adminToken := a.registerAndLogin(t, "boss", "admin", "")

	var created struct {
		PostID uint `json:"postId"`
	}
	decode(t, a.publish(t, adminToken, "旧标题", "t.csv", sampleCSV), &created)
	path := fmt.Sprintf("/api/admin/posts/%d", created.PostID)

	if code := a.do(t, http.MethodPut, path, adminToken, gin.H{"title": "新标题"}).Code; code != http.StatusOK {
		t.Fatalf("修改标题期望 200，实际为 %d", code)
	}
	if code := a.do(t, http.MethodPut, path, adminToken, gin.H{"title": " "}).Code; code != http.StatusBadRequest {
		t.Fatalf("空标题期望 400，实际为 %d", code)
	}
	if code := a.do(t, http.MethodDelete, path, adminToken, nil).Code; code != http.StatusOK {
		t.Fatalf("删除期望 200，实际为 %d", code)
	}
	if code := a.do(t, http.MethodGet, fmt.Sprintf("/api/posts/%d", created.PostID), adminToken, nil).Code; code != http.StatusNotFound {
		t.Fatalf("删除后期望 404，实际为 %d", code)
	}
	if code := a.do(t, http.MethodGet, "/api/posts/abc", adminToken, nil).Code; code != http.StatusBadRequest {
		t.Fatalf("非法 ID 期望 400，实际为 %d", code)
	}
}

// 测试内容：翻译接口需要登录，参数错误返回 400，上游失败返回 502。
func TestTranslate_Errors(t *testing.T) {
	a := newTestApp(t, okRenderScript, http.StatusOK)
	token := a.registerAndLogin(t, "alice", "user", "")

	if code := a.do(t, http.MethodPost, "/api/translate", "", gin.H{"text": "안녕", "targetLang": "en"}).Code; code != http.StatusUnauthorized {
		t.Fatalf("未登录期望 401，实际为 %d", code)
	}
	if code := a.do(t, http.MethodPost, "/api/translate", token, gin.H{"targetLang": "en"}).Code; code != http.StatusBadRequest {
		t.Fatalf("缺少文本期望 400，实际为 %d", code)
	}
	if code := a.do(t, http.MethodPost, "/api/translate", token, gin.H{"text": "안녕", "targetLang": "not a tag!"}).Code; code != http.StatusBadRequest {
		t.Fatalf("非法语言期望 400，实际为 %d", code)
	}
	if code := a.do(t, http.MethodPost, "/api/translate", token, gin.H{"text": "안녕", "targetLang": "en"}).Code; code != http.StatusBadGateway {
		t.Fatalf("上游失败期望 502，实际为 %d", code)
	}
}

// 测试内容：导出路由文件包含核心接口。
func TestExportAPI(t *testing.T) {
	a := newTestApp(t, okRenderScript, http.StatusOK)
	target := filepath.Join(t.TempDir(), "routes.json")
	if err := exportAPI(a.engine, target); err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	raw, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("读取导出文件失败: %v", err)
	}
	var routes []routeInfo
	if err := json.Unmarshal(raw, &routes); err != nil {
		t.Fatalf("解析导出文件失败: %v", err)
	}
	have := make(map[string]bool)
	for _, r := range routes {
		have[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"POST /api/auth/find-id",
		"POST /api/admin/posts",
		"PUT /api/admin/posts/:id",
		"DELETE /api/admin/posts/:id",
		"POST /api/admin/sheets/columns",
		"GET /api/admin/stats",
		"GET /api/posts",
		"GET /api/posts/:id",
		"GET /api/posts/:id/data",
		"POST /api/posts/:id/comments",
		"PUT /api/comments/:id",
		"DELETE /api/comments/:id",
		"PUT /api/users/password",
		"POST /api/translate",
	} {
		if !have[want] {
			t.Fatalf("缺少路由: %s", want)
		}
	}
}

// 测试内容：静态目录必须位于安全子目录。
func TestCheckSecurePath(t *testing.T) {
	if err := checkSecurePath("public/uploads"); err != nil {
		t.Fatalf("期望允许 public/uploads，实际为 %v", err)
	}
	if err := checkSecurePath("."); err == nil {
		t.Fatalf("期望拒绝项目根目录")
	}
	if err := checkSecurePath("internal/config"); err == nil {
		t.Fatalf("期望拒绝源码目录")
	}
	if err := checkSecurePath(t.TempDir()); err != nil {
		t.Fatalf("工作目录之外的路径不做限制，实际为 %v", err)
	}
}
