// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"festivalchat/internal/http/handlers"
	"festivalchat/internal/http/middleware"
)

// NewRouter assembles the transport: middleware chain, chat endpoint, tool
// introspection, status probe, and static widget files.
func NewRouter(chatHandler *handlers.ChatHandler, apology string) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery(apology), middleware.CORS())

	r.POST("/chat", chatHandler.Chat)
	r.GET("/tools", chatHandler.Tools)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Festival Chatbot API running"})
	})

	r.Static("/widget", "./widget")

	return r
}
