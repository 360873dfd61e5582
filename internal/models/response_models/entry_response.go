package response_models

type EntryResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Title     string `json:"title,omitempty"`
	MoodLabel string `json:"mood_label"`
	MoodLevel int    `json:"mood_level"`
	PhotoRef  string `json:"photo_ref,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type RelatedEntryResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title,omitempty"`
	MoodLabel string  `json:"mood_label"`
	Snippet   string  `json:"snippet"`
	CreatedAt string  `json:"created_at"`
	Distance  float64 `json:"distance"`
}
