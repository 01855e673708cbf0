package logger

import (
	"go.uber.org/zap"
)

type LoggerAdapter struct {
	log *zap.Logger
}

func NewLoggerAdapter(env string) *LoggerAdapter {
	var log *zap.Logger
	if env == "production" {
		log, _ = zap.NewProduction()
	} else {
		log, _ = zap.NewDevelopment()
	}
	return &LoggerAdapter{log: log}
}

func (a *LoggerAdapter) Debug(message string, fields map[string]interface{}) {
	a.log.Debug(message, toZapFields(fields)...)
}

func (a *LoggerAdapter) Info(message string, fields map[string]interface{}) {
	a.log.Info(message, toZapFields(fields)...)
}

func (a *LoggerAdapter) Warn(message string, fields map[string]interface{}) {
	a.log.Warn(message, toZapFields(fields)...)
}

func (a *LoggerAdapter) Error(message string, fields map[string]interface{}) {
	a.log.Error(message, toZapFields(fields)...)
}

func (a *LoggerAdapter) Sync() error {
	return a.log.Sync()
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}
