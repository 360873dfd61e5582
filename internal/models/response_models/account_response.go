package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type PromptResponse struct {
	Prompt string `json:"prompt"`
}
