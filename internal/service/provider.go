package service

import (
	"net/http"
	"time"

	"autoviz-server/internal/config"
	repo "autoviz-server/internal/repository"
)

type CredentialService struct {
	userStore repo.UserStore
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

type UploadService struct {
	cfg config.UploadConfig
}

type VisualizationService struct {
	renderer Renderer
	upload   *UploadService
}

type NotificationService struct {
	userStore     repo.UserStore
	senders       []Sender
	idem          IdempotencyStore
	message       string
	retryAttempts int
	backoff       time.Duration
}

type TranslateService struct {
	cfg    config.TranslateConfig
	client *http.Client
}

type SheetService struct {
	upload *UploadService
}

type PostService struct {
	postStore    repo.PostStore
	commentStore repo.CommentStore
	upload       *UploadService
}

type CommentService struct {
	commentStore repo.CommentStore
	postStore    repo.PostStore
}

func NewCredentialService(userStore repo.UserStore) *CredentialService {
	return &CredentialService{userStore: userStore}
}

// NewTokenService 签名密钥在启动时注入，之后不可变
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func NewUploadService(cfg config.UploadConfig) *UploadService {
	return &UploadService{cfg: cfg}
}

func NewVisualizationService(renderer Renderer, upload *UploadService) *VisualizationService {
	return &VisualizationService{renderer: renderer, upload: upload}
}

type NotificationOptions struct {
	Message       string
	RetryAttempts int
	Backoff       time.Duration
}

func NewNotificationService(userStore repo.UserStore, senders []Sender, idem IdempotencyStore, opts NotificationOptions) *NotificationService {
	if idem == nil {
		idem = NewMemoryIdempotencyStore()
	}
	return &NotificationService{
		userStore:     userStore,
		senders:       senders,
		idem:          idem,
		message:       opts.Message,
		retryAttempts: opts.RetryAttempts,
		backoff:       opts.Backoff,
	}
}

func NewTranslateService(cfg config.TranslateConfig, client *http.Client) *TranslateService {
	if client == nil {
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &TranslateService{cfg: cfg, client: client}
}

func NewSheetService(upload *UploadService) *SheetService {
	return &SheetService{upload: upload}
}

func NewPostService(postStore repo.PostStore, commentStore repo.CommentStore, upload *UploadService) *PostService {
	return &PostService{postStore: postStore, commentStore: commentStore, upload: upload}
}

func NewCommentService(commentStore repo.CommentStore, postStore repo.PostStore) *CommentService {
	return &CommentService{commentStore: commentStore, postStore: postStore}
}

type StatService struct {
	userStore    repo.UserStore
	postStore    repo.PostStore
	commentStore repo.CommentStore
	upload       *UploadService
}

func NewStatService(userStore repo.UserStore, postStore repo.PostStore, commentStore repo.CommentStore, upload *UploadService) *StatService {
	return &StatService{userStore: userStore, postStore: postStore, commentStore: commentStore, upload: upload}
}
