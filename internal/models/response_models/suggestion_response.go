package response_models

type MoodSuggestionResponse struct {
	Pending        bool   `json:"pending"`
	SuggestedMood  int    `json:"suggested_mood,omitempty"`
	SuggestedLabel string `json:"suggested_label,omitempty"`
	Confirmation   string `json:"confirmation,omitempty"` // transient "accepted"/"dismissed"
}
