package utils

import "github.com/gin-gonic/gin"

// All handler responses share one envelope: {"status":"success","data":...}
// on success and {"status":"fail","message":...} on failure.

func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"status": "success",
		"data":   data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"status":  "fail",
		"message": message,
	})
}
