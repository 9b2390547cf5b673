package model

import (
	"fmt"
	"testing"
)

func TestAppendPairKeepsPairsAligned(t *testing.T) {
	s := NewSession("c1", "tutor")

	for i := 0; i < 30; i++ {
		s.AppendPair(fmt.Sprintf("vraag-%d", i), fmt.Sprintf("antwoord-%d", i))
	}

	got := s.HistorySnapshot()
	if len(got) != HistoryCap {
		t.Fatalf("history length = %d, want %d", len(got), HistoryCap)
	}

	// 30 exchanges, cap 50 -> the 25 most recent pairs survive, so the
	// oldest retained exchange is number 5.
	if got[0].Speaker != SpeakerUser || got[0].Text != "vraag-5" {
		t.Fatalf("oldest retained turn = %+v, want user turn vraag-5", got[0])
	}
	if last := got[len(got)-1]; last.Speaker != "tutor" || last.Text != "antwoord-29" {
		t.Fatalf("newest retained turn = %+v, want tutor turn antwoord-29", last)
	}

	// Eviction must never split a pair: even indexes are user turns, odd
	// indexes are replies.
	for i, turn := range got {
		if i%2 == 0 && turn.Speaker != SpeakerUser {
			t.Fatalf("turn %d speaker = %q, want %q", i, turn.Speaker, SpeakerUser)
		}
		if i%2 == 1 && turn.Speaker != "tutor" {
			t.Fatalf("turn %d speaker = %q, want tutor", i, turn.Speaker)
		}
	}
}

func TestAppendPairNoTrimUnderCap(t *testing.T) {
	s := NewSession("c1", "tutor")
	for i := 0; i < 25; i++ {
		s.AppendPair("q", "a")
	}
	if got := len(s.HistorySnapshot()); got != 50 {
		t.Fatalf("history length = %d, want 50 (exactly at cap, nothing evicted)", got)
	}
}

func TestSwitchRole(t *testing.T) {
	s := NewSession("c1", "tutor")
	s.AppendPair("hallo", "hoi")

	// Same role: no-op on history.
	s.SwitchRole("tutor")
	if got := len(s.HistorySnapshot()); got != 2 {
		t.Fatalf("history length after same-role switch = %d, want 2", got)
	}

	// Different role: history cleared.
	s.SwitchRole("waiter")
	if s.CurrentRole() != "waiter" {
		t.Fatalf("role = %q, want waiter", s.CurrentRole())
	}
	if got := len(s.HistorySnapshot()); got != 0 {
		t.Fatalf("history length after role switch = %d, want 0", got)
	}
}

func TestReset(t *testing.T) {
	s := NewSession("c1", "tutor")
	s.SwitchRole("doctor")
	s.AppendPair("au", "waar doet het pijn?")

	s.Reset("tutor")
	if s.CurrentRole() != "tutor" {
		t.Fatalf("role after reset = %q, want tutor", s.CurrentRole())
	}
	if got := len(s.HistorySnapshot()); got != 0 {
		t.Fatalf("history length after reset = %d, want 0", got)
	}
}

func TestHistorySnapshotIsACopy(t *testing.T) {
	s := NewSession("c1", "tutor")
	s.AppendPair("een", "twee")

	snap := s.HistorySnapshot()
	snap[0].Text = "mutated"

	if s.HistorySnapshot()[0].Text != "een" {
		t.Fatal("mutating a snapshot leaked into the session history")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := NewSession("c1", "tutor")
	s.AppendPair("een", "twee")

	cp := s.Clone()
	cp.AppendPair("drie", "vier")

	if got := len(s.HistorySnapshot()); got != 2 {
		t.Fatalf("original history length = %d after mutating clone, want 2", got)
	}
}
