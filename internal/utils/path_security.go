package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SecureJoin 将存储层记录的相对路径拼接到 basePath 下。
// 绝对路径、越界路径以及链路上的符号链接都会被拒绝，返回目标的绝对路径。
func SecureJoin(basePath, relativePath string) (string, error) {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return "", fmt.Errorf("路径解析失败: %w", err)
	}

	cleanRel := filepath.Clean(filepath.FromSlash(relativePath))
	if cleanRel == "." {
		cleanRel = ""
	}
	if filepath.IsAbs(cleanRel) {
		return "", fmt.Errorf("非法路径: 不允许绝对路径")
	}

	targetAbs := filepath.Join(baseAbs, cleanRel)
	if err := ensureWithinBase(baseAbs, targetAbs); err != nil {
		return "", err
	}

	// 从目标逐级向上检查到基目录，已存在的节点不能是符号链接
	for current := targetAbs; current != baseAbs; current = filepath.Dir(current) {
		info, statErr := os.Lstat(current)
		if statErr == nil && info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("检测到符号链接穿透风险: %s", current)
		}
		if statErr != nil && !os.IsNotExist(statErr) {
			return "", fmt.Errorf("检查路径失败: %w", statErr)
		}
	}

	return targetAbs, nil
}

func ensureWithinBase(baseAbs, targetAbs string) error {
	rel, err := filepath.Rel(baseAbs, targetAbs)
	if err != nil {
		return fmt.Errorf("非法路径: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("非法路径: 目标超出基目录")
	}
	return nil
}
