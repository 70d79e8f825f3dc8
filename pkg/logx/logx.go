// Package logx is a thin process-wide logging facade backed by zap.
package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors the zap levels the application cares about.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var (
	atomicLevel = zap.NewAtomicLevelAt(LevelInfo)
	sugar       = newLogger().Sugar()
)

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap only fails on invalid config, which is static here.
		panic(err)
	}
	return logger
}

// SetLevel changes the minimum level of the process logger.
func SetLevel(level Level) { atomicLevel.SetLevel(level) }

func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }

func Info(args ...any)                 { sugar.Info(args...) }
func Infof(format string, args ...any) { sugar.Infof(format, args...) }

func Warn(args ...any)                 { sugar.Warn(args...) }
func Warnf(format string, args ...any) { sugar.Warnf(format, args...) }

func Error(args ...any)                 { sugar.Error(args...) }
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }

func Fatalf(format string, args ...any) { sugar.Fatalf(format, args...) }
