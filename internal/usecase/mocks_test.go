package usecase

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/model"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/adapter"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/ports/repository"
)

// ---- generation fake ----

type fakeGen struct {
	reply   string
	err     error
	prompts []string
}

var _ adapter.GenerationAdapter = (*fakeGen)(nil)

func (f *fakeGen) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGen) ModelName() string { return "fake-model" }

// ---- synthesizer fake ----

type fakeSynth struct {
	audio  []byte
	err    error
	inputs []string
}

var _ adapter.Synthesizer = (*fakeSynth)(nil)

func (f *fakeSynth) Synthesize(_ context.Context, text string) ([]byte, error) {
	f.inputs = append(f.inputs, text)
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

// ---- session store fake ----

type memSessionStore struct {
	sessions map[string]*model.Session
	saveErr  error
}

var _ repository.SessionStore = (*memSessionStore)(nil)

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*model.Session)}
}

func (m *memSessionStore) Get(_ context.Context, id string) (*model.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.Clone(), nil
}

func (m *memSessionStore) Save(_ context.Context, s *model.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[s.ID] = s.Clone()
	return nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

// ---- helpers ----

func testCatalog(t *testing.T) *model.RoleCatalog {
	t.Helper()
	c, err := model.NewRoleCatalog("tutor", []model.Role{
		{ID: "tutor", Description: "You are a friendly tutor.", Redirections: []string{"r1", "r2", "r3"}},
		{ID: "waiter", Description: "You are a polite waiter.", Redirections: []string{"r4", "r5", "r6"}},
	})
	if err != nil {
		t.Fatalf("NewRoleCatalog: %v", err)
	}
	return c
}

func newTestUC(t *testing.T, store repository.SessionStore, gen *fakeGen, synth *fakeSynth) ConversationUseCase {
	t.Helper()
	logger := zerolog.Nop()
	return NewConversationUseCase(testCatalog(t), store, gen, synth, testBuilder(), &logger)
}
