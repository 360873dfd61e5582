package request_models

type SubmitEntryRequest struct {
	Content      string `json:"content" binding:"required"`
	Title        string `json:"title"`
	SelectedMood int    `json:"selected_mood"` // 1-5, the user's manual pick before writing
	PhotoRef     string `json:"photo_ref"`

	// Quotes the client already displayed, so the generator can avoid repeats.
	PreviouslyShownQuotes []string `json:"previously_shown_quotes"`
}
