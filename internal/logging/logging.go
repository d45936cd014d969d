package logging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB   = 100
	defaultMaxBackups  = 3
	defaultMaxAgeDays  = 7
	timestampLayout    = "2006-01-02 15:04:05.000"
	developmentLevel   = "debug"
	fileDirPermissions = 0o755
)

// Config selects the log level and the optional rolling file sink.
type Config struct {
	Level      string
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New builds a JSON zap logger writing to stdout and, when FilePath is set, to a rolling file.
func New(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timestampLayout),
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
	}
	if path := strings.TrimSpace(cfg.FilePath); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), fileDirPermissions); err != nil {
			return nil, err
		}
		rolling := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    valueOrDefault(cfg.MaxSizeMB, defaultMaxSizeMB),
			MaxBackups: valueOrDefault(cfg.MaxBackups, defaultMaxBackups),
			MaxAge:     valueOrDefault(cfg.MaxAgeDays, defaultMaxAgeDays),
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(rolling), level))
	}
	options := []zap.Option{zap.AddCaller()}
	if strings.EqualFold(cfg.Level, developmentLevel) {
		options = append(options, zap.Development())
	}
	return zap.New(zapcore.NewTee(cores...), options...), nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(raw string) (zapcore.Level, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(strings.ToLower(trimmed))
}

func valueOrDefault(value int, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

func durationMillis(elapsed time.Duration) float64 {
	return float64(elapsed) / float64(time.Millisecond)
}
