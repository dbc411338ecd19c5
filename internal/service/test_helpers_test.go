package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"autoviz-server/internal/config"
	"autoviz-server/internal/repository"
	"autoviz-server/internal/testutils"
)

type testEnv struct {
	repos       *repository.Repositories
	credentials *CredentialService
	upload      *UploadService
	posts       *PostService
	comments    *CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gdb := testutils.SetupDB(t)
	repos := repository.NewRepositories(
		repository.NewUserRepository(gdb),
		repository.NewPostRepository(gdb),
		repository.NewCommentRepository(gdb),
	)
	upload := NewUploadService(testUploadConfig(t))
	return &testEnv{
		repos:       repos,
		credentials: NewCredentialService(repos.User),
		upload:      upload,
		posts:       NewPostService(repos.Post, repos.Comment, upload),
		comments:    NewCommentService(repos.Comment, repos.Post),
	}
}

func testUploadConfig(t *testing.T) config.UploadConfig {
	t.Helper()
	root := t.TempDir()
	return config.UploadConfig{
		Path:              root + "/uploads",
		URLPrefix:         "/uploads/",
		VisiblePath:       root + "/visible",
		VisibleURLPrefix:  "/visible/",
		MaxSizeMB:         20,
		AllowedExtensions: ".xlsx,.xls,.csv",
	}
}

func (e *testEnv) mustRegister(t *testing.T, username, phone, role string) uint {
	t.Helper()
	id, err := e.credentials.Register(RegisterInput{Username: username, Password: "password123", Phone: phone, Role: role})
	if err != nil {
		t.Fatalf("注册 %s 失败: %v", username, err)
	}
	return id
}

// fakeSender 记录调用并按预设返回错误
type fakeSender struct {
	mu         sync.Mutex
	name       string
	needsPhone bool
	failTimes  int
	calls      int
	recipients [][]string
	texts      []string
}

func (f *fakeSender) Name() string { return f.name }

func (f *fakeSender) NeedsRecipients() bool { return f.needsPhone }

func (f *fakeSender) Send(_ context.Context, recipients []string, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.recipients = append(f.recipients, append([]string(nil), recipients...))
	f.texts = append(f.texts, text)
	if f.failTimes < 0 || f.calls <= f.failTimes {
		return errors.New("send failed")
	}
	return nil
}

func (f *fakeSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
