package admin

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"autoviz-server/internal/config"
	"autoviz-server/internal/repository"
	"autoviz-server/internal/service"
	"autoviz-server/internal/testutils"
)

type adminFixture struct {
	repos   *repository.Repositories
	upload  *service.UploadService
	posts   *service.PostService
	adminID uint
}

func setupAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewPostRepository(gdb),
		repository.NewCommentRepository(gdb),
	)
	root := t.TempDir()
	upload := service.NewUploadService(config.UploadConfig{
		Path:              root + "/uploads",
		URLPrefix:         "/uploads/",
		VisiblePath:       root + "/visible",
		VisibleURLPrefix:  "/visible/",
		MaxSizeMB:         20,
		AllowedExtensions: ".xlsx,.xls,.csv",
	})
	credentials := service.NewCredentialService(repos.User)
	adminID, err := credentials.Register(service.RegisterInput{Username: "admin1", Password: "password123", Role: "admin"})
	if err != nil {
		t.Fatalf("注册管理员失败: %v", err)
	}
	if _, err := credentials.Register(service.RegisterInput{Username: "alice", Password: "password123", Phone: "01000000002", Role: "user"}); err != nil {
		t.Fatalf("注册用户失败: %v", err)
	}
	return &adminFixture{
		repos:   repos,
		upload:  upload,
		posts:   service.NewPostService(repos.Post, repos.Comment, upload),
		adminID: adminID,
	}
}

func (f *adminFixture) publishUseCase(renderer service.Renderer, senders ...service.Sender) *PublishUseCase {
	var notification *service.NotificationService
	if len(senders) > 0 {
		notification = service.NewNotificationService(f.repos.User, senders, service.NewMemoryIdempotencyStore(), service.NotificationOptions{RetryAttempts: 1})
	}
	return NewPublishUseCase(f.upload, f.posts, service.NewVisualizationService(renderer, f.upload), nil, notification)
}

// writingRenderer 写出一个占位图片
type writingRenderer struct {
	mu      sync.Mutex
	columns [][]string
}

func (r *writingRenderer) Render(_ context.Context, _, outputPath string, columns []string) service.RenderOutcome {
	r.mu.Lock()
	r.columns = append(r.columns, columns)
	r.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return service.RenderOutcome{Err: err}
	}
	if err := os.WriteFile(outputPath, []byte("png"), 0644); err != nil {
		return service.RenderOutcome{Err: err}
	}
	return service.RenderOutcome{OK: true}
}

type failingRenderer struct{}

func (failingRenderer) Render(context.Context, string, string, []string) service.RenderOutcome {
	return service.RenderOutcome{Err: errors.New("exit status 1")}
}

type panickingRenderer struct{}

func (panickingRenderer) Render(context.Context, string, string, []string) service.RenderOutcome {
	panic("renderer crashed")
}

type countingSender struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (s *countingSender) Name() string          { return "fake" }
func (s *countingSender) NeedsRecipients() bool { return true }
func (s *countingSender) Send(context.Context, []string, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.fail {
		return errors.New("gateway down")
	}
	return nil
}
