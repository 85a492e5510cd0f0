package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// All responses share the {success, data?, message?} envelope the SPA expects.

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// Fail is the single responder for error paths: it maps the error kind to a
// status code and emits {success:false, message}. Validation errors also carry
// their per-field messages.
func Fail(c *gin.Context, err error) {
	status := StatusOf(err)

	var appErr *AppError
	if errors.As(err, &appErr) {
		if status >= http.StatusInternalServerError {
			log.Printf("ERROR %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		body := gin.H{"success": false, "message": appErr.Error()}
		if len(appErr.Fields) > 0 {
			body["errors"] = appErr.Fields
		}
		c.JSON(status, body)
		return
	}

	log.Printf("ERROR %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
}
