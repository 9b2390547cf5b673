package ai

import (
	"context"
	"errors"
	"testing"
)

type slowGen struct {
	started chan struct{}
	release chan struct{}
}

func (g *slowGen) Generate(_ context.Context, _ string) (string, error) {
	g.started <- struct{}{}
	<-g.release
	return "klaar", nil
}

func (g *slowGen) ModelName() string { return "slow-model" }

func TestLimitedAcquireHonorsContext(t *testing.T) {
	gen := &slowGen{started: make(chan struct{}, 1), release: make(chan struct{})}
	limited := NewLimited(gen, 1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := limited.Generate(context.Background(), "eerste"); err != nil {
			t.Errorf("first call: %v", err)
		}
	}()
	<-gen.started // the single slot is now held

	// A cancelled caller must not queue behind the held slot.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := limited.Generate(ctx, "tweede"); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	close(gen.release)
	<-done
}

func TestLimitedZeroIsUnlimited(t *testing.T) {
	gen := &slowGen{started: make(chan struct{}, 1), release: make(chan struct{})}
	if limited := NewLimited(gen, 0); limited != gen {
		t.Fatal("a non-positive limit must return the inner adapter unchanged")
	}
}
