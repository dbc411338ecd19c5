package service

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"autoviz-server/internal/common"
	"autoviz-server/internal/consts"
	"autoviz-server/internal/logger"
	"autoviz-server/internal/utils"
)

// 声明的 Content-Type 到扩展名的映射，用于文件名缺少扩展名时识别
var sheetContentTypes = map[string]string{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": ".xlsx",
	"application/vnd.ms-excel": ".xls",
	"text/csv":                 ".csv",
	"application/csv":          ".csv",
}

// StoredFile 已落盘的上传文件
type StoredFile struct {
	Name string // 生成的文件名
	Path string // 相对工作目录的存储路径
	Ext  string
	Size int64
}

func (s *UploadService) allowedExt(ext string) bool {
	for _, allow := range strings.Split(s.cfg.AllowedExtensions, ",") {
		if strings.TrimSpace(strings.ToLower(allow)) == ext {
			return true
		}
	}
	return false
}

func (s *UploadService) maxBytes() int64 {
	maxMB := s.cfg.MaxSizeMB
	if maxMB <= 0 {
		maxMB = 20
	}
	return int64(maxMB) * 1024 * 1024
}

// Validate 仅依据扩展名/声明类型与大小校验，不解析内容。返回小写扩展名。
func (s *UploadService) Validate(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", common.NewValidationError("请选择要上传的文件")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.allowedExt(ext) {
		mediaType, _, _ := mime.ParseMediaType(file.Header.Get("Content-Type"))
		mapped, ok := sheetContentTypes[mediaType]
		if !ok || ext != "" || !s.allowedExt(mapped) {
			return "", common.NewUnsupportedMediaError("仅支持 xlsx、xls、csv 文件")
		}
		ext = mapped
	}

	if file.Size > s.maxBytes() {
		return "", common.NewPayloadTooLargeError(fmt.Sprintf("文件大小不能超过 %dMB", s.maxBytes()/1024/1024))
	}
	return ext, nil
}

// Save 校验并以不冲突的文件名写入上传目录，返回前确保已刷盘。
func (s *UploadService) Save(file *multipart.FileHeader) (*StoredFile, error) {
	ext, err := s.Validate(file)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.Path, 0755); err != nil {
		logger.Errorf("创建上传目录失败: %v", err)
		return nil, common.NewInternalError("文件保存失败")
	}

	name := utils.GenerateStoredFilename("upload" + ext)
	dstPath, err := utils.SecureJoin(s.cfg.Path, name)
	if err != nil {
		return nil, common.NewInternalError("文件保存失败")
	}

	src, err := file.Open()
	if err != nil {
		return nil, common.NewValidationError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	written, err := writeFileSynced(dstPath, src)
	if err != nil {
		_ = os.Remove(dstPath)
		logger.Errorf("写入上传文件失败 %s: %v", dstPath, err)
		return nil, common.NewInternalError("文件保存失败")
	}

	return &StoredFile{
		Name: name,
		Path: filepath.ToSlash(filepath.Join(s.cfg.Path, name)),
		Ext:  ext,
		Size: written,
	}, nil
}

func writeFileSynced(path string, src io.Reader) (int64, error) {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, src)
	if err != nil {
		_ = out.Close()
		return n, err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return n, err
	}
	return n, out.Close()
}

// Remove 删除已保存的上传文件，用于持久化失败时回收。
func (s *UploadService) Remove(stored *StoredFile) {
	if stored == nil {
		return
	}
	if err := os.Remove(stored.Path); err != nil && !os.IsNotExist(err) {
		logger.Warningf("清理上传文件失败 %s: %v", stored.Path, err)
	}
}

// VisiblePathFor 由上传文件名推导可视化图片路径：同名主干、.png、visible 目录。
func (s *UploadService) VisiblePathFor(storedPath string) string {
	return filepath.ToSlash(filepath.Join(s.cfg.VisiblePath, utils.SwapExt(storedPath, consts.VisualizationExt)))
}

func (s *UploadService) SourceURL(storedPath string) string {
	return joinURL(s.cfg.URLPrefix, filepath.Base(storedPath))
}

func (s *UploadService) VisibleURL(imagePath string) string {
	return joinURL(s.cfg.VisibleURLPrefix, filepath.Base(imagePath))
}

func joinURL(prefix, name string) string {
	if prefix == "" {
		prefix = "/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix + name
}

// DiskUsage 统计上传目录与可视化目录的文件总大小，目录不存在时计为 0
func (s *UploadService) DiskUsage() (int64, error) {
	var total int64
	for _, root := range []string{s.cfg.Path, s.cfg.VisiblePath} {
		if root == "" {
			continue
		}
		err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			total += info.Size()
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return 0, err
		}
	}
	return total, nil
}
