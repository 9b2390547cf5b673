package usecase

import (
	"strings"
	"testing"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/model"
	"github.com/Strife-01/language-learning-voice-chat-bot/internal/infra/roles"
)

func testBuilder() PromptBuilder {
	return PromptBuilder{TargetLanguage: "Dutch", FeedbackLanguage: "English"}
}

func TestBuildContainsRoleContentVerbatim(t *testing.T) {
	catalog, err := roles.Default()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	b := testBuilder()

	for _, id := range catalog.IDs() {
		role := catalog.Lookup(id)
		prompt := b.Build(role, nil, "Hallo", true)

		if !strings.Contains(prompt, role.Description) {
			t.Errorf("role %s: prompt is missing the role description", id)
		}
		for _, phrase := range role.Redirections {
			if !strings.Contains(prompt, phrase) {
				t.Errorf("role %s: prompt is missing redirection phrase %q", id, phrase)
			}
		}
	}
}

func TestBuildEmptyHistoryMarker(t *testing.T) {
	role := model.Role{ID: "tutor", Description: "desc", Redirections: []string{"a", "b", "c"}}
	prompt := testBuilder().Build(role, nil, "Hallo", false)

	if !strings.Contains(prompt, "No previous conversation.") {
		t.Fatal("prompt is missing the empty-history marker")
	}
}

func TestBuildRendersHistoryChronologically(t *testing.T) {
	role := model.Role{ID: "waiter", Description: "desc", Redirections: []string{"a", "b", "c"}}
	history := []model.Turn{
		{Speaker: model.SpeakerUser, Text: "Een koffie graag"},
		{Speaker: "waiter", Text: "Komt eraan!"},
	}
	prompt := testBuilder().Build(role, history, "En een koekje", false)

	first := strings.Index(prompt, "User: Een koffie graag")
	second := strings.Index(prompt, "waiter: Komt eraan!")
	if first < 0 || second < 0 {
		t.Fatalf("prompt is missing history lines:\n%s", prompt)
	}
	if first > second {
		t.Fatal("history lines are out of chronological order")
	}
	if strings.Contains(prompt, "No previous conversation.") {
		t.Fatal("empty-history marker present despite non-empty history")
	}
	if !strings.Contains(prompt, "NEW USER INPUT: 'En een koekje'") {
		t.Fatal("prompt is missing the new user input")
	}
}

func TestBuildTaskBlocks(t *testing.T) {
	role := model.Role{ID: "tutor", Description: "desc", Redirections: []string{"a", "b", "c"}}
	b := testBuilder()

	withFeedback := b.Build(role, nil, "Hallo", true)
	if !strings.Contains(withFeedback, FeedbackMarker) || !strings.Contains(withFeedback, ReplyMarker) {
		t.Fatal("feedback task block must spell out the two-section format")
	}
	if !strings.Contains(withFeedback, "In English, briefly and concisely correct errors") {
		t.Fatal("feedback task block must put corrections in the feedback language")
	}
	if !strings.Contains(withFeedback, "microphone noise") {
		t.Fatal("feedback task block must treat near-misses as transcription noise")
	}

	without := b.Build(role, nil, "Hallo", false)
	if strings.Contains(without, FeedbackMarker) {
		t.Fatal("non-feedback task block must not mention the correction section")
	}
	if !strings.Contains(without, "Ignore grammatical errors") {
		t.Fatal("non-feedback task block must tell the model to ignore errors")
	}
	if !strings.Contains(without, "Do not output any English.") {
		t.Fatal("non-feedback task block must forbid the feedback language")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	role := model.Role{ID: "tutor", Description: "desc", Redirections: []string{"a", "b", "c"}}
	history := []model.Turn{{Speaker: model.SpeakerUser, Text: "hoi"}, {Speaker: "tutor", Text: "hallo"}}
	b := testBuilder()

	p1 := b.Build(role, history, "Hoe gaat het?", true)
	p2 := b.Build(role, history, "Hoe gaat het?", true)
	if p1 != p2 {
		t.Fatal("Build is not deterministic for identical inputs")
	}
}
