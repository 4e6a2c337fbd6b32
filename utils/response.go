package utils

import (
	"github.com/gin-gonic/gin"
)

// BidMessage sends the flat {status, message} body the bid-placement
// endpoint uses. The status field mirrors the HTTP status on purpose: web
// clients decide the bid outcome from the message text, not the code.
func BidMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
	})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	})
}
