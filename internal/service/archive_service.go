package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	appconfig "autoviz-server/internal/config"
	"autoviz-server/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter s3.Client 的最小子集
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ArchiveService 将发布产物备份到对象存储
type ArchiveService struct {
	client ObjectPutter
	bucket string
}

func NewArchiveService(client ObjectPutter, bucket string) *ArchiveService {
	return &ArchiveService{client: client, bucket: bucket}
}

// NewS3Client 按配置创建 S3 客户端，兼容 MinIO 等自定义端点
func NewS3Client(ctx context.Context, cfg appconfig.S3Config) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// ObjectKey posts/<id>/<文件名>
func ObjectKey(postID uint, path string) string {
	return fmt.Sprintf("posts/%d/%s", postID, filepath.Base(path))
}

// Archive 上传给定文件，空路径跳过
func (s *ArchiveService) Archive(ctx context.Context, postID uint, paths ...string) error {
	if s == nil || s.client == nil {
		return nil
	}
	var errs []error
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.put(ctx, postID, p); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	logger.Debugf("[publish] post=%d step=archive 已归档 %d 个文件", postID, len(paths))
	return nil
}

func (s *ArchiveService) put(ctx context.Context, postID uint, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(ObjectKey(postID, path)),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", path, err)
	}
	return nil
}
