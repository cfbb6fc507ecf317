// Package logutil 는 zap 로거를 설정한다.
package logutil

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig 로그 설정. Filename 이 비어 있으면 표준에러 (표준출력은 명령 결과 전용).
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// DefaultConfig info 레벨 콘솔 출력
func DefaultConfig() LogConfig {
	return LogConfig{
		Level:   zapcore.InfoLevel.String(),
		Format:  "console",
		MaxSize: 512,
	}
}

// SetupLogger 로거를 만들고 전역 로거로 등록
func SetupLogger(cfg LogConfig) (*zap.Logger, error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// NewLogger 설정으로 로거 생성
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := cfg.getLevel()
	if err != nil {
		return nil, err
	}
	encoder, err := cfg.getEncoder()
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(encoder, cfg.getSyncer(), level)
	return zap.New(core, cfg.getOptions()...), nil
}

// GetGlobalLogger 전역 로거
func GetGlobalLogger() *zap.Logger {
	return zap.L()
}

func (cfg *LogConfig) getLevel() (zap.AtomicLevel, error) {
	if cfg.Level == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return level, errors.Wrapf(err, "log level %q", cfg.Level)
	}
	return level, nil
}

func (cfg *LogConfig) getEncoder() (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch cfg.Format {
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig), nil
	default:
		return nil, errors.Newf("unsupported log format %q", cfg.Format)
	}
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
	})
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}
