package http

import (
	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope shape.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func newErrorResponse(c *gin.Context, status int, message string, errs ...error) {
	resp := errorResponse{Success: false, Message: message}
	if len(errs) > 0 && errs[0] != nil {
		resp.Error = errs[0].Error()
	}
	c.AbortWithStatusJSON(status, resp)
}

func newDataResponse(c *gin.Context, status int, message string, data any) {
	c.JSON(status, successResponse{Success: true, Message: message, Data: data})
}

func newListResponse(c *gin.Context, status int, count int, data any) {
	c.JSON(status, successResponse{Success: true, Count: &count, Data: data})
}
