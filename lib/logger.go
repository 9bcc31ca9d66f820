package lib

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger bundles both zap flavors; services mostly use the sugared one,
// middlewares take the desugared logger for structured fields
type Logger struct {
	Zap        *zap.SugaredLogger
	DesugarZap *zap.Logger
}

// NewLogger builds the application logger from config: console output in
// development plus a rotated file sink in the configured directory
func NewLogger(config Config) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(config.Log.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if config.Log.Format == "console" || config.Log.Development {
		devConfig := zap.NewDevelopmentEncoderConfig()
		devConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(devConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(config.Log.Directory, config.Name+".log"),
		MaxSize:    100, // megabytes
		MaxBackups: 10,
		MaxAge:     30, // days
		Compress:   true,
	})

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	options := []zap.Option{zap.AddCaller()}
	if config.Log.Development {
		options = append(options, zap.Development())
	}

	logger := zap.New(zapcore.NewTee(cores...), options...)

	return Logger{
		Zap:        logger.Sugar(),
		DesugarZap: logger,
	}
}
