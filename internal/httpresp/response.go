package httpresp

import "github.com/gin-gonic/gin"

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// Success writes the `{success, message}` envelope the frontend expects from
// every mutating endpoint.
func Success(c *gin.Context, message string) {
	c.JSON(200, gin.H{"success": true, "message": message})
}
