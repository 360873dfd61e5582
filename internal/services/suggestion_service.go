package services

import (
	"context"
	"log"
	"sync"
	"time"

	"solace/internal/models/response_models"
)

const (
	// minSuggestionLength is the least text that carries enough signal to
	// classify. Anything shorter clears a pending suggestion immediately.
	minSuggestionLength = 20

	defaultDebounceDelay        = 2000 * time.Millisecond
	defaultConfirmationDuration = 3000 * time.Millisecond
)

// SuggestionServiceInterface watches in-progress entry text per session and
// proposes a mood correction after the typing settles. It never blocks or
// alters submission; the two only share the selected-mood value the client
// holds.
type SuggestionServiceInterface interface {
	UpdateDraft(sessionID, text string, selectedMood int)
	Suggestion(sessionID string) response_models.MoodSuggestionResponse
	Accept(sessionID string) (MoodLevel, bool)
	Dismiss(sessionID string) bool
	CloseSession(sessionID string)
}

type draftSession struct {
	text         string
	selectedMood MoodLevel

	timer      *time.Timer
	generation int // invalidates timers superseded by newer keystrokes

	suggestion    *MoodLevel
	confirmation  string // transient "accepted"/"dismissed"
	confirmTimer  *time.Timer
	confirmEpoch  int
}

type SuggestionService struct {
	classifier MoodClassifierInterface

	debounceDelay        time.Duration
	confirmationDuration time.Duration

	mu       sync.Mutex
	sessions map[string]*draftSession
}

func NewSuggestionService(classifier MoodClassifierInterface) *SuggestionService {
	return &SuggestionService{
		classifier:           classifier,
		debounceDelay:        defaultDebounceDelay,
		confirmationDuration: defaultConfirmationDuration,
		sessions:             make(map[string]*draftSession),
	}
}

// NewSuggestionServiceWithDelays exists for tests that cannot wait out the
// production debounce window.
func NewSuggestionServiceWithDelays(classifier MoodClassifierInterface, debounce, confirmation time.Duration) *SuggestionService {
	s := NewSuggestionService(classifier)
	s.debounceDelay = debounce
	s.confirmationDuration = confirmation
	return s
}

// UpdateDraft registers the latest text state. Below the length threshold any
// pending suggestion and timer are cleared; above it, the debounce window
// restarts and only the newest timer may fire.
func (s *SuggestionService) UpdateDraft(sessionID, text string, selectedMood int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &draftSession{}
		s.sessions[sessionID] = sess
	}

	sess.text = text
	sess.selectedMood = ClampMoodLevel(selectedMood)

	if sess.timer != nil {
		sess.timer.Stop()
		sess.timer = nil
	}
	sess.generation++

	if len([]rune(text)) < minSuggestionLength {
		sess.suggestion = nil
		return
	}

	gen := sess.generation
	sess.timer = time.AfterFunc(s.debounceDelay, func() {
		s.classifyDraft(sessionID, gen)
	})
}

func (s *SuggestionService) classifyDraft(sessionID string, generation int) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok || sess.generation != generation {
		// Session closed or a newer keystroke superseded this timer.
		s.mu.Unlock()
		return
	}
	text := sess.text
	selected := sess.selectedMood
	s.mu.Unlock()

	cls, err := s.classifier.Classify(context.Background(), text, "")
	if err != nil || cls.Degraded {
		if err != nil {
			log.Printf("Draft classification skipped for %s: %v", sessionID, err)
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok = s.sessions[sessionID]
	if !ok || sess.generation != generation {
		return
	}
	if cls.Level != selected {
		level := cls.Level
		sess.suggestion = &level
	}
}

func (s *SuggestionService) Suggestion(sessionID string) response_models.MoodSuggestionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.MoodSuggestionResponse{}
	}

	resp := response_models.MoodSuggestionResponse{Confirmation: sess.confirmation}
	if sess.suggestion != nil {
		resp.Pending = true
		resp.SuggestedMood = int(*sess.suggestion)
		resp.SuggestedLabel = sess.suggestion.Label()
	}
	return resp
}

// Accept adopts the suggested mood. Dismiss keeps the prior selection. Both
// clear the suggestion the same way and show a transient confirmation for the
// same fixed duration; the only asymmetry is which mood value survives.
func (s *SuggestionService) Accept(sessionID string) (MoodLevel, bool) {
	return s.resolve(sessionID, true)
}

func (s *SuggestionService) Dismiss(sessionID string) bool {
	_, ok := s.resolve(sessionID, false)
	return ok
}

func (s *SuggestionService) resolve(sessionID string, accept bool) (MoodLevel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.suggestion == nil {
		return 0, false
	}

	if accept {
		sess.selectedMood = *sess.suggestion
		sess.confirmation = "accepted"
	} else {
		sess.confirmation = "dismissed"
	}
	sess.suggestion = nil

	if sess.confirmTimer != nil {
		sess.confirmTimer.Stop()
	}
	sess.confirmEpoch++
	epoch := sess.confirmEpoch
	sess.confirmTimer = time.AfterFunc(s.confirmationDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if cur, ok := s.sessions[sessionID]; ok && cur.confirmEpoch == epoch {
			cur.confirmation = ""
		}
	})

	return sess.selectedMood, true
}

// CloseSession cancels pending timers so a late classification never lands on
// a view that no longer exists.
func (s *SuggestionService) CloseSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	if sess.timer != nil {
		sess.timer.Stop()
	}
	if sess.confirmTimer != nil {
		sess.confirmTimer.Stop()
	}
	delete(s.sessions, sessionID)
}
