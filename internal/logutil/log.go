package logutil

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"sync/atomic"
)

// Log formats
const (
	// JSONLogFormat - One JSON object per log line
	JSONLogFormat = "json"
	// TextLogFormat - Human readable console lines
	TextLogFormat = "text"
	// DefaultLogFormat - Format used when none is configured
	DefaultLogFormat = TextLogFormat
	// DefaultLogLevel - Level used when none is configured
	DefaultLogLevel = "info"
)

var bgLogger atomic.Pointer[zap.Logger]

func init() {
	bgLogger.Store(zap.NewNop())
}

// LogConfig - Logger configuration
//   - Level is one of debug, info, warn, error
//   - Format is either json or text
type LogConfig struct {
	Level  string `toml:"level" json:"level"`
	Format string `toml:"format" json:"format"`
}

// NewLogConfig - Returns a LogConfig, empty values are replaced by the defaults
func NewLogConfig(level, format string) *LogConfig {
	if level == "" {
		level = DefaultLogLevel
	}
	if format == "" {
		format = DefaultLogFormat
	}
	return &LogConfig{Level: level, Format: format}
}

// InitZapLogger - Builds a zap logger from cfg and installs it as the background logger
func InitZapLogger(cfg *LogConfig) (err error) {
	logger, err := NewZapLogger(cfg)
	if err != nil {
		return
	}
	bgLogger.Store(logger)

	return
}

// Validate - Checks level and format without building a logger
func (cfg *LogConfig) Validate() (err error) {
	_, err = cfg.parse()
	return
}

// parse - Returns the level of cfg, or an error if level or format is unknown
func (cfg *LogConfig) parse() (level zapcore.Level, err error) {
	level, err = zapcore.ParseLevel(cfg.Level)
	if err != nil {
		err = fmt.Errorf("invalid log level '%s': %s", cfg.Level, err)
		return
	}

	if cfg.Format != JSONLogFormat && cfg.Format != TextLogFormat {
		err = fmt.Errorf("invalid log format '%s', use %s or %s", cfg.Format, JSONLogFormat, TextLogFormat)
		return
	}

	return
}

// NewZapLogger - Builds a zap logger writing to stderr
func NewZapLogger(cfg *LogConfig) (logger *zap.Logger, err error) {
	level, err := cfg.parse()
	if err != nil {
		return
	}

	var zc zap.Config
	if cfg.Format == JSONLogFormat {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.Development = false
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// BgLogger - Returns the background logger, a no-op logger until InitZapLogger has been called
func BgLogger() *zap.Logger {
	return bgLogger.Load()
}

// ReplaceBgLogger - Installs logger as background logger and returns a function restoring the previous one
func ReplaceBgLogger(logger *zap.Logger) (restore func()) {
	prev := bgLogger.Swap(logger)
	return func() { bgLogger.Store(prev) }
}
