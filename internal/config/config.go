// README: Config loader with env defaults for HTTP, festival backend, and Gemini settings.
package config

import (
	"os"
	"strconv"
)

// Chat modes select how the LLM is driven for a turn.
const (
	// ModeExtract runs a single-shot entity extraction and lets the server
	// resolve identifiers and fetch events itself.
	ModeExtract = "extract"
	// ModeTools hands the backend tool catalog to the model and lets it
	// issue the search calls.
	ModeTools = "tools"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Backend struct {
		BaseURL string
	}
	Chat struct {
		// Mode is ModeExtract or ModeTools.
		Mode string
		// HistoryWindow caps how many trailing history messages are
		// forwarded to the model.
		HistoryWindow int
	}
	AI struct {
		GeminiKey string
		Model     string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("FESTIVAL_HTTP_ADDR", ":3000")
	cfg.Backend.BaseURL = envOrDefault("FESTIVAL_BACKEND_URL", "https://fest-proxy-production.up.railway.app")
	cfg.Chat.Mode = envOrDefault("FESTIVAL_CHAT_MODE", ModeTools)
	cfg.Chat.HistoryWindow = envOrDefaultInt("FESTIVAL_HISTORY_WINDOW", 16)
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("FESTIVAL_GEMINI_MODEL", "gemini-2.0-flash")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
