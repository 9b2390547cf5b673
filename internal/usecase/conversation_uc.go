package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/model"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/repository"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/logging"
)

// DefaultConversationID is used when the caller does not name a conversation
// (single-user deployments).
const DefaultConversationID = "default"

// Compile-time check
var _ ConversationUseCase = (*conversationUC)(nil)

// TurnResult is the composite outcome of one completed exchange, ready for
// the HTTP layer to serialize.
type TurnResult struct {
	TurnID        string
	Transcript    string
	RawText       string
	Correction    string
	HasCorrection bool
	Reply         string
	Audio         []byte
}

type ConversationUseCase interface {
	// HandleTurn runs one full exchange: role switch, prompt build,
	// generation, parsing, history commit, synthesis. The session is
	// mutated only after generation and parsing succeed, so a failed turn
	// can be retried without corrupting or duplicating history.
	HandleTurn(ctx context.Context, convID, transcript, roleID string, feedback bool) (*TurnResult, error)

	// Reset restores the conversation to the default role with an empty
	// history.
	Reset(ctx context.Context, convID string) error
}

type conversationUC struct {
	catalog *model.RoleCatalog
	store   repository.SessionStore
	gen     adapter.GenerationAdapter
	tts     adapter.Synthesizer
	prompts PromptBuilder
	locks   sync.Map // conversation id -> *sync.Mutex
	log     *zerolog.Logger
}

func NewConversationUseCase(
	catalog *model.RoleCatalog,
	store repository.SessionStore,
	gen adapter.GenerationAdapter,
	tts adapter.Synthesizer,
	prompts PromptBuilder,
	logger *zerolog.Logger,
) *conversationUC {
	return &conversationUC{
		catalog: catalog,
		store:   store,
		gen:     gen,
		tts:     tts,
		prompts: prompts,
		log:     logger,
	}
}

// lock serializes whole turns per conversation: read snapshot, external
// calls, commit. Returns the unlock func.
func (c *conversationUC) lock(convID string) func() {
	v, _ := c.locks.LoadOrStore(convID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (c *conversationUC) HandleTurn(ctx context.Context, convID, transcript, roleID string, feedback bool) (*TurnResult, error) {
	defer logging.TraceDuration(c.log, "ConversationUC.HandleTurn")()

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, domain.ErrNoSpeech
	}
	if convID == "" {
		convID = DefaultConversationID
	}

	raw, parsed, err := c.exchange(ctx, convID, transcript, roleID, feedback)
	if err != nil {
		return nil, err
	}

	audio, err := c.tts.Synthesize(ctx, parsed.Reply)
	if err != nil {
		return nil, fmt.Errorf("synthesize reply: %w", err)
	}

	return &TurnResult{
		TurnID:        ulid.Make().String(),
		Transcript:    transcript,
		RawText:       raw,
		Correction:    parsed.Correction,
		HasCorrection: parsed.HasCorrection,
		Reply:         parsed.Reply,
		Audio:         audio,
	}, nil
}

// exchange holds the conversation lock for the read-generate-commit cycle.
// Synthesis happens outside the lock; it does not touch the session.
func (c *conversationUC) exchange(ctx context.Context, convID, transcript, roleID string, feedback bool) (string, ParsedReply, error) {
	unlock := c.lock(convID)
	defer unlock()

	sess, err := c.store.Get(ctx, convID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		sess = model.NewSession(convID, c.catalog.DefaultID())
	case err != nil:
		return "", ParsedReply{}, fmt.Errorf("load session: %w", err)
	}

	// Unknown role ids resolve to the default role; the switch compares
	// resolved ids so a bogus id does not wipe a default-role history.
	role := c.catalog.Lookup(roleID)
	sess.SwitchRole(role.ID)

	history := sess.HistorySnapshot()
	prompt := c.prompts.Build(role, history, transcript, feedback)

	c.log.Debug().
		Str("conversation_id", convID).
		Str("role", role.ID).
		Bool("feedback", feedback).
		Int("history_len", len(history)).
		Int("prompt_tokens_est", estimatePromptTokens(prompt)).
		Msg("prompt built")

	start := time.Now()
	raw, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return "", ParsedReply{}, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	raw = strings.TrimSpace(raw)

	parsed := ParseReply(raw, feedback)

	sess.AppendPair(transcript, parsed.Reply)
	if err := c.store.Save(ctx, sess); err != nil {
		return "", ParsedReply{}, fmt.Errorf("save session: %w", err)
	}

	c.log.Info().
		Str("conversation_id", convID).
		Str("role", role.ID).
		Str("model", c.gen.ModelName()).
		Bool("correction", parsed.HasCorrection).
		Dur("generation", time.Since(start)).
		Msg("exchange completed")

	return raw, parsed, nil
}

func (c *conversationUC) Reset(ctx context.Context, convID string) error {
	if convID == "" {
		convID = DefaultConversationID
	}
	unlock := c.lock(convID)
	defer unlock()

	sess := model.NewSession(convID, c.catalog.DefaultID())
	if err := c.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	c.log.Info().Str("conversation_id", convID).Msg("session reset")
	return nil
}
