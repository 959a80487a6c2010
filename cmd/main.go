package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	gommon "github.com/labstack/gommon/log"

	"reelsmith/pkg/analysis"
	"reelsmith/pkg/inference"
	"reelsmith/pkg/ratelimit"
	"reelsmith/pkg/server"
	"reelsmith/pkg/tiktok"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	openAI := inference.NewOpenAIInferencer(apiKey, model)
	if apiKey == "" {
		openAI.ChangeBaseURL("http://localhost:1234/v1")
		openAI.SetModel("")
	}
	var inf inference.Inferencer = openAI

	if grokKey := os.Getenv("GROK_API_KEY"); grokKey != "" {
		inf = inference.NewGrokInferencer(grokKey, os.Getenv("GROK_MODEL"))
	}
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		gemini, err := inference.NewGeminiInferencer(geminiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatal("failed creating gemini client", "error", err)
		}
		inf = gemini
	}

	analyzer := analysis.NewAnalyzer(inf)
	if interval := envDuration("COMPLETION_PACING", 0); interval > 0 {
		analyzer.SetPacing(interval)
	}

	limiter := ratelimit.NewMemory(
		envInt("RATE_LIMIT", 10),
		envDuration("RATE_WINDOW", time.Minute),
	)

	publisher := tiktok.New(tiktok.Config{
		ClientKey:   os.Getenv("TIKTOK_CLIENT_KEY"),
		RedirectURI: os.Getenv("TIKTOK_REDIRECT_URI"),
	})

	srv := server.NewServer(ctx, analyzer, limiter, publisher)
	srv.Echo.Logger.SetLevel(gommon.INFO)

	addr := ":8080"
	if envAddr := os.Getenv("PORT"); envAddr != "" {
		addr = ":" + envAddr
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
		done()
		close(finishedShutDown)
	}()

	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
	}
	<-finishedShutDown
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
