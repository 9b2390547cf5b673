package web

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/logging"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/metrics"
	red "github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/redis"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/usecase"
)

// Browser recordings of a single utterance stay well under this.
const maxUploadBytes = 20 << 20

type turnResponse struct {
	Status   string  `json:"status"`
	TurnID   string  `json:"turn_id"`
	UserText string  `json:"user_text"`
	RawText  string  `json:"raw_text"`
	Feedback *string `json:"feedback"`
	Reply    string  `json:"reply"`
	Audio    string  `json:"audio"` // base64-encoded MP3
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleChatAudio runs one full voice turn: multipart audio in, transcript +
// correction + reply + synthesized audio out.
func (s *Server) handleChatAudio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No audio file provided"})
		return
	}
	file, _, err := r.FormFile("audio")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No audio file provided"})
		return
	}
	defer file.Close()

	roleID := r.FormValue("context")
	feedback := r.FormValue("liveFeedback") == "true"
	convID := r.FormValue("conversation_id")
	if convID == "" {
		convID = usecase.DefaultConversationID
	}
	ctx = logging.WithConversationID(ctx, convID)
	l := logging.With(ctx, s.log)

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, red.ConversationTurnKey(convID), s.turnLimit, time.Minute)
		if err != nil {
			// Fail open: a broken limiter must not take down the tutor.
			l.Warn().Err(err).Msg("rate limiter unavailable")
		} else if !allowed {
			metrics.ObserveTurn(roleID, feedback, "rate_limited")
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: domain.ErrRateLimited.Error()})
			return
		}
	}

	wav, err := s.transcoder.ToWAV(ctx, file)
	if err != nil {
		l.Error().Err(err).Msg("transcode failed")
		metrics.ObserveTurn(roleID, feedback, "transcode_error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Audio could not be processed"})
		return
	}

	transcript, err := s.stt.Transcribe(ctx, wav)
	if err != nil {
		l.Error().Err(err).Msg("transcription failed")
		metrics.ObserveTurn(roleID, feedback, "stt_error")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "Transcription failed"})
		return
	}
	if strings.TrimSpace(transcript) == "" {
		metrics.ObserveTurn(roleID, feedback, "no_speech")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No speech detected. Try speaking louder."})
		return
	}

	res, err := s.conv.HandleTurn(ctx, convID, transcript, roleID, feedback)
	switch {
	case errors.Is(err, domain.ErrGenerationFailed):
		l.Error().Err(err).Msg("generation failed")
		metrics.ObserveTurn(roleID, feedback, "generation_error")
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "The tutor is unavailable right now"})
		return
	case err != nil:
		l.Error().Err(err).Msg("turn failed")
		metrics.ObserveTurn(roleID, feedback, "error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal error"})
		return
	}

	if feedback && !res.HasCorrection {
		// Model skipped the reply marker; the whole text became the reply.
		metrics.ParseFallback()
	}
	metrics.ObserveTurn(roleID, feedback, "success")

	var fb *string
	if res.HasCorrection {
		fb = &res.Correction
	}
	writeJSON(w, http.StatusOK, turnResponse{
		Status:   "success",
		TurnID:   res.TurnID,
		UserText: res.Transcript,
		RawText:  res.RawText,
		Feedback: fb,
		Reply:    res.Reply,
		Audio:    base64.StdEncoding.EncodeToString(res.Audio),
	})
}

// handleReset restores the conversation to the default role with an empty
// history.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	convID := r.FormValue("conversation_id")
	ctx := logging.WithConversationID(r.Context(), convID)

	if err := s.conv.Reset(ctx, convID); err != nil {
		logging.With(ctx, s.log).Error().Err(err).Msg("reset failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal error"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
