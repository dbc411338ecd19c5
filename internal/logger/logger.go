// Package logger 提供基于 go-logging 的分级日志，支持控制台与文件双输出。
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
)

const (
	moduleName  = "autoviz"
	logFileName = "autoviz.log"
	timeFormat  = "2006/01/02 15:04:05"
)

var (
	logger  = logging.MustGetLogger(moduleName)
	logFile *os.File
)

// ParseLevel 将配置中的级别字符串转换为 logging.Level，无法识别时回退为 INFO。
func ParseLevel(level string) logging.Level {
	lv, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(level)))
	if err != nil {
		return logging.INFO
	}
	return lv
}

// InitLogger 初始化日志后端。
// 控制台使用配置的级别；folder 非空时额外写入文件，文件始终记录 DEBUG 级别。
func InitLogger(level logging.Level, folder string) {
	backends := make([]logging.Backend, 0, 2)

	console := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), newFormatter())
	leveledConsole := logging.AddModuleLevel(console)
	leveledConsole.SetLevel(level, moduleName)
	backends = append(backends, leveledConsole)

	if folder != "" {
		if fileBackend := initFileBackend(folder); fileBackend != nil {
			leveledFile := logging.AddModuleLevel(fileBackend)
			leveledFile.SetLevel(logging.DEBUG, moduleName)
			backends = append(backends, leveledFile)
		}
	}

	logger.SetBackend(logging.MultiLogger(backends...))
}

func initFileBackend(folder string) logging.Backend {
	if err := os.MkdirAll(folder, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log folder %s: %v\n", folder, err)
		return nil
	}

	logPath := filepath.Join(folder, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o660)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logPath, err)
		return nil
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	return logging.NewBackendFormatter(logging.NewLogBackend(file, "", 0), newFormatter())
}

func newFormatter() logging.Formatter {
	return logging.MustStringFormatter(`%{time:` + timeFormat + `} %{level:.4s} - %{message}`)
}

// CloseLogger 关闭日志文件，应在停机时调用。
func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
