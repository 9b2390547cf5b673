package model

import "time"

// HistoryCap bounds the rolling transcript. Turns arrive in (user, reply)
// pairs, so trimming always drops whole pairs from the front.
const HistoryCap = 50

// SpeakerUser tags the learner's side of a turn; replies are tagged with the
// active role identifier.
const SpeakerUser = "User"

// Turn is one utterance recorded in the history. Immutable once created.
type Turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Session holds one conversation's state: the active role and the bounded
// turn history. Mutations go through SwitchRole, Reset and AppendPair only.
type Session struct {
	ID        string    `json:"id"`
	RoleID    string    `json:"role_id"`
	History   []Turn    `json:"history"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSession(id, roleID string) *Session {
	return &Session{
		ID:        id,
		RoleID:    roleID,
		History:   make([]Turn, 0, 8),
		UpdatedAt: time.Now(),
	}
}

func (s *Session) CurrentRole() string { return s.RoleID }

// HistorySnapshot returns a copy of the turn sequence in chronological
// order, safe to hand to the prompt builder.
func (s *Session) HistorySnapshot() []Turn {
	out := make([]Turn, len(s.History))
	copy(out, s.History)
	return out
}

// SwitchRole activates a different role and clears the history, since prior
// turns belong to the old scenario. Switching to the current role is a no-op.
func (s *Session) SwitchRole(roleID string) {
	if roleID == s.RoleID {
		return
	}
	s.RoleID = roleID
	s.History = s.History[:0]
	s.UpdatedAt = time.Now()
}

// Reset restores the session to its initial state: the given default role
// and an empty history.
func (s *Session) Reset(defaultRoleID string) {
	s.RoleID = defaultRoleID
	s.History = s.History[:0]
	s.UpdatedAt = time.Now()
}

// AppendPair records one completed exchange: the user's turn followed by the
// role's reply. When the history exceeds HistoryCap it is trimmed from the
// front in whole pairs, so a user turn is never separated from its reply.
func (s *Session) AppendPair(userText, replyText string) {
	s.History = append(s.History,
		Turn{Speaker: SpeakerUser, Text: userText},
		Turn{Speaker: s.RoleID, Text: replyText},
	)
	for len(s.History) > HistoryCap {
		s.History = s.History[2:]
	}
	s.UpdatedAt = time.Now()
}

// Clone returns a deep copy, used by stores so callers can mutate freely
// before committing.
func (s *Session) Clone() *Session {
	cp := *s
	cp.History = make([]Turn, len(s.History))
	copy(cp.History, s.History)
	return &cp
}
