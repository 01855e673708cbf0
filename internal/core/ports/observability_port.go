package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type LoggerPort interface {
	Debug(message string, fields map[string]interface{})
	Info(message string, fields map[string]interface{})
	Warn(message string, fields map[string]interface{})
	Error(message string, fields map[string]interface{})
}

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
}
