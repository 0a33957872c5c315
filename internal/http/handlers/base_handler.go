// README: Base handler utilities (JSON helpers, error body shape).
package handlers

import "github.com/gin-gonic/gin"

// errorResponse is the failure body: a machine message plus a user-facing
// apology the widget can render as chat text.
type errorResponse struct {
	Error string `json:"error"`
	Reply string `json:"reply"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg, reply string) {
	writeJSON(c, status, errorResponse{Error: msg, Reply: reply})
}
