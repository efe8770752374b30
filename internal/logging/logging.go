package logging

import (
	"github.com/plus3/stackfall/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger. An unparsable level falls back to info.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	return zapConfig(cfg).Build()
}

// ToFile is New with every output redirected to path. The terminal host uses
// it so log lines do not tear the screen.
func ToFile(cfg config.LoggingConfig, path string) (*zap.Logger, error) {
	zapCfg := zapConfig(cfg)
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapCfg.Build()
}

func zapConfig(cfg config.LoggingConfig) zap.Config {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg
}
