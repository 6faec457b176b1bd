package utils

import "github.com/gin-gonic/gin"

// Detail writes the structured error body shared by every failure path.
// The error kind is implied by the status code; no stack traces or internal
// paths belong in msg.
func Detail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"detail": msg,
	})
}
