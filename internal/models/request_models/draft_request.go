package request_models

// UpdateDraftRequest mirrors one keystroke batch from the editor. The server
// debounces classification over these updates per session.
type UpdateDraftRequest struct {
	Text         string `json:"text"`
	SelectedMood int    `json:"selected_mood"`
}
