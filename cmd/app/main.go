package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/config"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/repository"
	aiAdapters "github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/adapters/ai"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/adapters/speech"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/logging"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/memstore"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/metrics"
	red "github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/redis"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/roles"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/transcode"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/web"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "developer mode (noop AI/speech adapters, no keys needed)")
	flag.Parse()

	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Runtime.Dev {
		log.Printf("[DEV MODE] Enabled")
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- Role catalog ----
	catalog, err := roles.Default()
	if err != nil {
		log.Fatalf("role catalog: %v", err)
	}
	logger.Info().Strs("roles", catalog.IDs()).Str("default", catalog.DefaultID()).Msg("role catalog loaded")

	// ---- Session store (redis when configured, in-memory otherwise) ----
	var store repository.SessionStore
	var limiter web.TurnLimiter
	if cfg.Redis.URL != "" {
		client, err := red.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer client.Close()
		store = red.NewSessionStore(client, cfg.Redis.TTL)
		limiter = red.NewRateLimiter(client)
		logger.Info().Str("addr", cfg.Redis.URL).Msg("session store: redis")
	} else {
		store = memstore.New()
		logger.Info().Msg("session store: in-memory")
	}

	// ---- Generation adapter ----
	var gen adapter.GenerationAdapter
	switch {
	case cfg.Runtime.Dev:
		gen = aiAdapters.NewNoopAdapter()
	case cfg.AI.Provider == "gemini":
		gen, err = aiAdapters.NewGeminiAdapter(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiURL, cfg.AI.Model, cfg.AI.MaxOutputTokens, cfg.AI.ThinkingBudget)
		if err != nil {
			log.Fatalf("gemini adapter: %v", err)
		}
	case cfg.AI.Provider == "openai":
		gen, err = aiAdapters.NewOpenAIAdapter(cfg.AI.OpenAIKey, cfg.AI.Model, cfg.AI.MaxOutputTokens)
		if err != nil {
			log.Fatalf("openai adapter: %v", err)
		}
	default:
		log.Fatalf("ai.provider %q is not supported", cfg.AI.Provider)
	}
	gen = aiAdapters.NewLimited(aiAdapters.WithMetrics(gen, cfg.AI.Provider), cfg.AI.ConcurrentLimit)
	logger.Info().Str("provider", cfg.AI.Provider).Str("model", gen.ModelName()).Msg("generation adapter ready")

	// ---- Speech adapters ----
	var stt adapter.Transcriber
	var tts adapter.Synthesizer
	if cfg.Runtime.Dev {
		stt = speech.NewNoopTranscriber()
		tts = speech.NewNoopSynthesizer()
	} else {
		stt, err = speech.NewWhisperTranscriber(cfg.Speech.OpenAIKey, cfg.Speech.STTModel, cfg.Speech.Language)
		if err != nil {
			log.Fatalf("transcriber: %v", err)
		}
		tts, err = speech.NewTTSSynthesizer(cfg.Speech.OpenAIKey, cfg.Speech.TTSModel, cfg.Speech.Voice)
		if err != nil {
			log.Fatalf("synthesizer: %v", err)
		}
	}
	transcoder := transcode.New(cfg.Speech.FFmpegPath, cfg.Speech.SampleRate)

	// ---- Use case + HTTP ----
	prompts := usecase.PromptBuilder{
		TargetLanguage:   cfg.Tutor.TargetLanguage,
		FeedbackLanguage: cfg.Tutor.FeedbackLanguage,
	}
	conv := usecase.NewConversationUseCase(catalog, store, gen, tts, prompts, logger)

	srv := web.NewServer(conv, transcoder, stt, limiter, cfg.Redis.TurnsPerMinute, logger)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	// ---- Graceful shutdown ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	logger.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
