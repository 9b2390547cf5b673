package usecase

import (
	"fmt"
	"strings"

	"github.com/Strife-01/language-learning-voice-chat-bot/internal/domain/model"
)

// noHistoryMarker stands in for the transcript on the first exchange.
const noHistoryMarker = "No previous conversation."

// PromptBuilder composes the single instruction string handed to the
// generation collaborator. Pure and deterministic: same inputs, same output,
// no I/O.
type PromptBuilder struct {
	TargetLanguage   string // language being practiced, e.g. "Dutch"
	FeedbackLanguage string // language corrections are written in, e.g. "English"
}

// Build assembles, in order: the role's persona, the fixed formatting rules
// with the role's redirection phrases, the history transcript, the new user
// utterance, and the mode-specific task block.
func (b PromptBuilder) Build(role model.Role, history []model.Turn, userText string, feedback bool) string {
	var sb strings.Builder

	sb.WriteString(role.Description)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "CONTEXT: The user is a beginner level %s learner. Match their tone naturally.\n", b.TargetLanguage)
	sb.WriteString("CRITICAL FORMATTING RULES (Optimized for Text-to-Speech):\n")
	sb.WriteString("1. Do NOT use markdown (bold, italics, headers).\n")
	sb.WriteString("2. Do NOT use lists or complex symbols.\n")
	sb.WriteString("3. Use only plain text and newlines.\n")
	sb.WriteString("4. IF THE USER IS OFF-TOPIC: You must steer them back on topic. For example, the following phrases may be used:\n")
	for i, phrase := range role.Redirections {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%q", phrase)
	}

	sb.WriteString("\n\nCONVERSATION HISTORY\n")
	if len(history) == 0 {
		sb.WriteString(noHistoryMarker)
	} else {
		for i, t := range history {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "%s: %s", t.Speaker, t.Text)
		}
	}

	fmt.Fprintf(&sb, "\n\nNEW USER INPUT: '%s'\n\nTASK:\n", userText)

	if feedback {
		fmt.Fprintf(&sb, "1. Analyze input for grammatical errors. If the errors can be caused by microphone noise or input errors, interpret it as likely intended based on the context (e.g. \"acht\" instead of \"nacht\"). If the user input is in %s, provide the %s translation.\n", b.FeedbackLanguage, b.TargetLanguage)
		fmt.Fprintf(&sb, "2. %s: In %s, briefly and concisely correct errors without fluffing. If perfect, keep this empty.\n", FeedbackMarker, b.FeedbackLanguage)
		fmt.Fprintf(&sb, "3. %s: In %s, respond naturally to the content.\n", ReplyMarker, b.TargetLanguage)
		sb.WriteString("4. FORMAT: You must strictly follow this format:\n")
		fmt.Fprintf(&sb, "%s\n(%s correction here)\n\n%s\n(%s response here)", FeedbackMarker, b.FeedbackLanguage, ReplyMarker, b.TargetLanguage)
	} else {
		sb.WriteString("1. Ignore grammatical errors to prioritize flow.\n")
		fmt.Fprintf(&sb, "2. Respond naturally in %s.\n", b.TargetLanguage)
		fmt.Fprintf(&sb, "3. Do not output any %s.", b.FeedbackLanguage)
	}

	return sb.String()
}
