package response_models

// Stage names reported in DegradedStages.
const (
	StageClassifying = "classifying"
	StageAffirming   = "affirming"
	StageQuoting     = "quoting"
)

type EnrichedContent struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution,omitempty"`
	Source      string `json:"source"` // "ai" or "fallback"
	Degraded    bool   `json:"degraded"`
	Note        string `json:"note,omitempty"` // user-facing: quota vs. outage wording
}

// EnrichmentResult is the per-submission aggregate returned to the UI. It is
// never persisted.
type EnrichmentResult struct {
	EntryID        string          `json:"entry_id"`
	FinalMood      int             `json:"final_mood"`
	FinalMoodLabel string          `json:"final_mood_label"`
	Affirmation    EnrichedContent `json:"affirmation"`
	Quote          EnrichedContent `json:"quote"`
	DegradedStages []string        `json:"degraded_stages"`
	Streak         int             `json:"streak"`
	SuccessMessage string          `json:"success_message"`
}
