package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// RenderOutcome 渲染结果，失败时 Err 说明原因
type RenderOutcome struct {
	OK       bool
	Err      error
	Duration time.Duration
}

// Renderer 将表格渲染为图片
type Renderer interface {
	Render(ctx context.Context, inputPath, outputPath string, columns []string) RenderOutcome
}

// SubprocessRenderer 通过外部进程渲染：<command> <input> <output> <col1,col2,...>
type SubprocessRenderer struct {
	name    string
	args    []string
	timeout time.Duration
}

func NewSubprocessRenderer(name string, args []string, timeout time.Duration) *SubprocessRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SubprocessRenderer{name: name, args: args, timeout: timeout}
}

// ParseRenderCommand 按空白拆分配置中的命令行
func ParseRenderCommand(command string) (string, []string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

func (r *SubprocessRenderer) Render(ctx context.Context, inputPath, outputPath string, columns []string) RenderOutcome {
	start := time.Now()
	fail := func(err error) RenderOutcome {
		return RenderOutcome{OK: false, Err: err, Duration: time.Since(start)}
	}

	if r.name == "" {
		return fail(errors.New("render command not configured"))
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fail(fmt.Errorf("create output dir: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := make([]string, 0, len(r.args)+3)
	args = append(args, r.args...)
	args = append(args, inputPath, outputPath, strings.Join(columns, ","))

	cmd := exec.CommandContext(ctx, r.name, args...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	// 子进程残留时不无限等待输出管道
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fail(fmt.Errorf("render timed out after %s", r.timeout))
		}
		return fail(fmt.Errorf("render process failed: %w: %s", err, tail(output.String(), 512)))
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return fail(errors.New("render process exited without producing an image"))
	}
	return RenderOutcome{OK: true, Duration: time.Since(start)}
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
