package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the standard {success:true, ...payload} envelope.
func JSONSuccess(c *gin.Context, code int, payload gin.H) {
	out := gin.H{"success": true}
	for k, v := range payload {
		out[k] = v
	}
	c.JSON(code, out)
}

// JSONError writes {success:false, message}.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}
