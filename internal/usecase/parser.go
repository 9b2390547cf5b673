package usecase

import (
	"regexp"
	"strings"
)

// The two-section output grammar: an optional correction section labelled
// with FeedbackMarker, then the spoken reply after ReplyMarker. Markers are
// matched case-insensitively; a missing reply marker degrades to "the whole
// text is the reply" and is not an error.
const (
	FeedbackMarker = "[Feedback]"
	ReplyMarker    = "[Reply]"

	// PlaceholderReply is substituted whenever the reply would be empty, so
	// the synthesis collaborator is never invoked with empty input.
	PlaceholderReply = "Sorry, I am silent."
)

// Markers are located on the raw text itself; lowering a copy first would
// shift byte offsets for characters whose case folding changes length.
var (
	replyMarkerRe    = regexp.MustCompile(`(?i)\[reply\]`)
	feedbackMarkerRe = regexp.MustCompile(`(?i)^\[feedback\]`)
)

// ParsedReply is the structured result of one generation call. Correction is
// meaningful only when HasCorrection is set; an empty correction with
// HasCorrection=true means "no errors to report".
type ParsedReply struct {
	Correction    string
	HasCorrection bool
	Reply         string
}

// ParseReply splits raw model output per the two-section grammar. In
// non-feedback mode the raw text is the reply verbatim and no correction is
// ever present.
func ParseReply(raw string, feedback bool) ParsedReply {
	out := ParsedReply{Reply: strings.TrimSpace(raw)}

	if feedback {
		if loc := replyMarkerRe.FindStringIndex(raw); loc != nil {
			correction := strings.TrimSpace(raw[:loc[0]])
			if lbl := feedbackMarkerRe.FindStringIndex(correction); lbl != nil {
				correction = strings.TrimSpace(correction[lbl[1]:])
			}
			out.Correction = correction
			out.HasCorrection = true
			out.Reply = strings.TrimSpace(raw[loc[1]:])
		}
	}

	if out.Reply == "" {
		out.Reply = PlaceholderReply
	}
	return out
}
