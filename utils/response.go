package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint returns. Extra payload keys
// (user, note, notes, accessToken) are merged in at the top level.
type Response struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func envelope(isError bool, message string, extra gin.H) gin.H {
	body := gin.H{
		"error":   isError,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

// Success responses

func Success(c *gin.Context, message string, extra gin.H) {
	c.JSON(http.StatusOK, envelope(false, message, extra))
}

func Created(c *gin.Context, message string, extra gin.H) {
	c.JSON(http.StatusCreated, envelope(false, message, extra))
}

// Error responses

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope(true, message, nil))
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, envelope(true, message, nil))
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, envelope(true, message, nil))
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, envelope(true, message, nil))
}

// InternalError surfaces the underlying error text as a details field
func InternalError(c *gin.Context, message string, err error) {
	extra := gin.H{}
	if err != nil {
		extra["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, envelope(true, message, extra))
}
