package lib

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger es el logger estructurado global del servicio. Por defecto no emite
// nada (útil en tests); InitLogger lo reemplaza en el arranque.
var Logger = zap.NewNop()

// InitLogger configures the global structured logger with the given level.
func InitLogger(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		panic("Failed to build logger: " + err.Error())
	}

	Logger = logger
}
