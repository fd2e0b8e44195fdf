// README: Config loader with env defaults for HTTP, Redis, CORS, and the Gemini model.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	AI struct {
		GeminiKey string
		Model     string
	}
	CORS struct {
		Origins []string
	}
}

// Load reads .env (if present) and builds the configuration from environment
// variables. GEMINI_API_KEY may be empty; the outbound call fails at request
// time in that case rather than blocking startup.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIPPLANNER_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("TRIPPLANNER_REDIS_ADDR", "localhost:6379")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.Model = envOrDefault("TRIPPLANNER_GEMINI_MODEL", "gemini-2.0-flash")
	cfg.CORS.Origins = envOrDefaultList("TRIPPLANNER_CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
