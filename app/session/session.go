// Package session holds the state of one roster view: the current groups,
// the last load error, the upload attempt counter and the copy feedback
// indicator. It has no UI or I/O of its own; screens drive it with messages.
package session

import (
	"time"

	"github.com/Guerrilla-Interactive/tenis-grupos/app/roster"
)

// DefaultFeedbackWindow is how long the "copied" indicator stays visible.
const DefaultFeedbackWindow = 2 * time.Second

// State is the coarse lifecycle of a session.
type State int

const (
	StateEmpty State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Feedback is the transient "copied" indicator for one group.
type Feedback struct {
	Label   string
	Expires time.Time
	Token   uint64
	Active  bool
}

// Session is the component-local state of a roster view.
type Session struct {
	Groups []roster.Group
	Err    string
	Status State
	// Source is the file the shown groups came from; Pending is the file
	// being loaded and becomes Source only if its load succeeds.
	Source   string
	Pending  string
	Attempt  uint64
	Feedback Feedback

	// hasGroups remembers whether Groups came from a successful load, so a
	// failed upload after a good one reports Error while still showing them.
	hasGroups bool
	tokens    uint64
}

// New returns an empty session.
func New() *Session {
	return &Session{Status: StateEmpty}
}

// BeginUpload starts a new upload attempt and returns its id. Results for
// earlier attempts are ignored from now on.
func (s *Session) BeginUpload(source string) uint64 {
	s.Attempt++
	s.Pending = source
	s.Status = StateLoading
	return s.Attempt
}

// ApplyResult records the outcome of an upload attempt. It returns false and
// changes nothing when attempt is not the most recent one. On failure the
// error message is set and the current groups are kept; on success the
// groups are replaced wholesale and the error cleared.
func (s *Session) ApplyResult(attempt uint64, groups []roster.Group, err error) bool {
	if attempt != s.Attempt {
		return false
	}
	pending := s.Pending
	s.Pending = ""
	if err != nil {
		s.Err = roster.UserMessage(err)
		s.Status = StateError
		return true
	}
	s.Groups = groups
	s.Source = pending
	s.hasGroups = true
	s.Err = ""
	s.Status = StateLoaded
	s.ClearFeedback()
	return true
}

// HasGroups reports whether a successful load has populated Groups.
func (s *Session) HasGroups() bool { return s.hasGroups && len(s.Groups) > 0 }

// StartFeedback shows the indicator for label, replacing any indicator
// already shown, and returns the token the expiry must present.
func (s *Session) StartFeedback(label string, now time.Time, window time.Duration) uint64 {
	if window <= 0 {
		window = DefaultFeedbackWindow
	}
	s.tokens++
	s.Feedback = Feedback{
		Label:   label,
		Expires: now.Add(window),
		Token:   s.tokens,
		Active:  true,
	}
	return s.tokens
}

// ExpireFeedback hides the indicator if token still identifies it. Expiries
// belonging to an indicator that was since replaced are ignored.
func (s *Session) ExpireFeedback(token uint64) bool {
	if !s.Feedback.Active || s.Feedback.Token != token {
		return false
	}
	s.ClearFeedback()
	return true
}

// ClearFeedback hides the indicator unconditionally.
func (s *Session) ClearFeedback() {
	s.Feedback = Feedback{}
}

// FeedbackFor reports whether the indicator is showing for label.
func (s *Session) FeedbackFor(label string) bool {
	return s.Feedback.Active && s.Feedback.Label == label
}
