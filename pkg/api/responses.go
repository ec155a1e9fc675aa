package api

import "github.com/gin-gonic/gin"

// envelope is the uniform response body: code 0 means success, any other
// code mirrors the HTTP status.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(200, envelope{Code: 0, Message: "ok", Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope{Code: status, Message: message})
}
