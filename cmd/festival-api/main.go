// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"festivalchat/internal/ai"
	"festivalchat/internal/backend"
	"festivalchat/internal/config"
	httptransport "festivalchat/internal/http"
	"festivalchat/internal/http/handlers"
	"festivalchat/internal/modules/chat"
	"festivalchat/internal/modules/shaping"
)

func main() {
	// Load .env for local development; absence is fine in production.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	gateway := backend.NewClient(cfg.Backend.BaseURL)
	shaper := shaping.NewService(shaping.DefaultConfig())
	chatSvc := chat.NewService(provider, gateway, shaper, cfg.Chat.Mode, cfg.Chat.HistoryWindow)

	apology := shaper.Phrases().Apology
	chatHandler := handlers.NewChatHandler(chatSvc, apology)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: httptransport.NewRouter(chatHandler, apology)}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("server running on %s (mode %s, backend %s)", cfg.HTTP.Addr, cfg.Chat.Mode, cfg.Backend.BaseURL)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
