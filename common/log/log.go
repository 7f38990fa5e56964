package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// 未调用 InitLog 时也能用，引擎在测试中会直接打日志
var logger = log.NewWithOptions(os.Stdout, log.Options{Level: log.InfoLevel})

func InitLog(appName string, logLevel string) {
	// 使用 os.Stdout 而不是 os.Stderr，避免 IDE 控制台把所有日志标红
	InitLogWithWriter(os.Stdout, appName, logLevel)
}

// InitLogWithWriter 指定输出，drill 交互模式下日志写到 stderr，不打断提示符
func InitLogWithWriter(w io.Writer, appName string, logLevel string) {
	logger = log.New(w)
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetReportCaller(true)
	SetLevel(logLevel)
}

// SetLevel 配置热更新时调用，默认 info
func SetLevel(logLevel string) {
	switch strings.ToLower(logLevel) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		logger.Fatal(format)
	} else {
		logger.Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		logger.Info(format)
	} else {
		logger.Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		logger.Warn(format)
	} else {
		logger.Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		logger.Error(format)
	} else {
		logger.Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		logger.Debug(format)
	} else {
		logger.Debugf(format, args...)
	}
}
