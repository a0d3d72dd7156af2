// Package logger provides structured logging using Zap.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	sugar    *zap.SugaredLogger
	once     sync.Once
	fallback sync.Once
)

// Config controls the global logger. Only Env is required.
type Config struct {
	Env string

	// FilePath enables an additional rotating JSON log file.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init initializes the global logger for the given configuration.
// For "production", it uses a JSON encoder. For all other environments,
// it uses a human-readable console encoder.
func Init(cfg Config) {
	once.Do(func() {
		sugar = buildOrNop(cfg)
	})
}

func buildOrNop(cfg Config) *zap.SugaredLogger {
	base, err := build(cfg)
	if err != nil {
		// Fallback to nop logger if initialization fails.
		base = zap.NewNop()
	}
	return base.Sugar()
}

func build(cfg Config) (*zap.Logger, error) {
	var base *zap.Logger
	var err error

	if cfg.Env == "production" {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	if cfg.FilePath == "" {
		return base, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    withDefault(cfg.MaxSizeMB, 100),
		MaxBackups: withDefault(cfg.MaxBackups, 5),
		MaxAge:     withDefault(cfg.MaxAgeDays, 30),
		Compress:   true,
	}
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)

	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	})), nil
}

func withDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Get returns the global sugared logger.
// If Init has not been called, it returns a console logger for $ENV. That
// logger is replaced by the first Init call.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		fallback.Do(func() {
			if sugar == nil {
				sugar = buildOrNop(Config{Env: os.Getenv("ENV")})
			}
		})
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
