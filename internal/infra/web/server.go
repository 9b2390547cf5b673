package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/usecase"
)

// TurnLimiter caps turns per conversation per window. Satisfied by the redis
// rate limiter; nil disables limiting.
type TurnLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type Server struct {
	conv       usecase.ConversationUseCase
	transcoder adapter.Transcoder
	stt        adapter.Transcriber
	limiter    TurnLimiter
	turnLimit  int
	log        *zerolog.Logger
}

func NewServer(
	conv usecase.ConversationUseCase,
	transcoder adapter.Transcoder,
	stt adapter.Transcriber,
	limiter TurnLimiter,
	turnsPerMinute int,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		conv:       conv,
		transcoder: transcoder,
		stt:        stt,
		limiter:    limiter,
		turnLimit:  turnsPerMinute,
		log:        logger,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(TraceID(), RequestLog(s.log))

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat-audio", s.handleChatAudio)
		r.Put("/reset", s.handleReset)
	})
	return r
}
