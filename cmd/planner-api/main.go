// README: Entry point; loads config, wires the Gemini provider and stores, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rdrudra99/tripplanner/internal/ai"
	"github.com/Rdrudra99/tripplanner/internal/config"
	httptransport "github.com/Rdrudra99/tripplanner/internal/http"
	"github.com/Rdrudra99/tripplanner/internal/infra"
	"github.com/Rdrudra99/tripplanner/internal/modules/intake"
	"github.com/Rdrudra99/tripplanner/internal/modules/planner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AI.GeminiKey == "" {
		log.Println("GEMINI_API_KEY not set — trip planning requests will fail until configured")
	}

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	intakeSvc := intake.NewService(intake.NewRedisStore(redisClient))
	plannerSvc := planner.NewService(provider)

	handler := httptransport.NewRouter(intakeSvc, plannerSvc, cfg.CORS.Origins)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("trip planner API listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
