package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger. Diagnostics always go to stderr;
// when logDir is non-empty a rotating JSON log file is written there too,
// so scheduled runs keep a history without any external log shipping.
func NewLogger(logDir string) (*zap.Logger, error) {
	consoleCfg := zap.NewProductionEncoderConfig()
	consoleCfg.TimeKey = "ts"
	consoleCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleCfg),
		zapcore.Lock(os.Stderr),
		zap.InfoLevel,
	)
	if logDir == "" {
		return zap.New(console), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "urlcheck.log"),
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})
	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.TimeKey = "ts"
	file := zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), w, zap.InfoLevel)

	return zap.New(zapcore.NewTee(console, file)), nil
}
