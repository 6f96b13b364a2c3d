package stub

import "github.com/gin-gonic/gin"

func respondOK(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondList(c *gin.Context, data any, total, page, pages int) {
	c.JSON(200, gin.H{
		"success": true,
		"data":    data,
		"total":   total,
		"page":    page,
		"pages":   pages,
	})
}

func respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
