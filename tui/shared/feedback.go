package shared

import (
	"errors"
	"time"

	"github.com/dylan/matchdrag/matching"
)

// FeedbackLevel controls styling and auto-clear duration.
type FeedbackLevel int

const (
	FeedbackInfo    FeedbackLevel = iota // transient, auto-clears 4s
	FeedbackWarning                      // yellow, auto-clears 8s
	FeedbackError                        // red, auto-clears 12s
)

// FeedbackTTL returns the auto-clear duration for a given level.
func FeedbackTTL(level FeedbackLevel) time.Duration {
	switch level {
	case FeedbackInfo:
		return 4 * time.Second
	case FeedbackWarning:
		return 8 * time.Second
	default:
		return 12 * time.Second
	}
}

// Feedback represents a user-facing feedback message.
type Feedback struct {
	Level     FeedbackLevel
	Message   string
	Detail    string // full error text, shown under the status bar
	Timestamp time.Time
}

// FeedbackMsg delivers a feedback message to the app.
type FeedbackMsg struct {
	Feedback Feedback
}

// ClearFeedbackMsg clears the feedback shown at Timestamp, if still current.
type ClearFeedbackMsg struct {
	Timestamp time.Time
}

// InfoFeedback is a transient notice.
func InfoFeedback(msg string, now time.Time) Feedback {
	return Feedback{Level: FeedbackInfo, Message: msg, Timestamp: now}
}

// FeedbackForGesture turns a rejected gesture into status bar feedback.
// Invariant failures are errors; everything else is a warning.
func FeedbackForGesture(err error, now time.Time) Feedback {
	fb := Feedback{Level: FeedbackWarning, Detail: err.Error(), Timestamp: now}
	switch {
	case errors.Is(err, matching.ErrInvariant):
		fb.Level = FeedbackError
		fb.Message = "Move reverted: board became inconsistent"
	case errors.Is(err, matching.ErrNotDraggable):
		fb.Message = "Empty slots cannot be dragged"
	case errors.Is(err, matching.ErrMalformedID):
		fb.Message = "Ignored unrecognised gesture"
	default:
		fb.Message = "Ignored invalid drop"
	}
	return fb
}
