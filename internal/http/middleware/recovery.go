// README: Recovery middleware: panics become a 500 with an apology reply.
package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery catches panics from request handling and answers with the
// generic apology body so the widget can still render a chat message.
func Recovery(apology string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": fmt.Sprintf("%v", r),
					"reply": apology,
				})
			}
		}()
		c.Next()
	}
}
