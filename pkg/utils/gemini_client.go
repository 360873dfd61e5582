package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiContentClient implements AIContentClientInterface on the Gemini free
// tier. Responses are forced to JSON but still run through CleanJSONResponse
// because the free models occasionally wrap output in markdown fences anyway.
type GeminiContentClient struct {
	client *genai.Client
	model  string
}

func NewGeminiContentClient(apiKey, model string) (*GeminiContentClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiContentClient{client: client, model: model}, nil
}

func (c *GeminiContentClient) generate(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.4)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(maxTokens)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}
	content := CleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: response is not valid json")
	}
	return content, nil
}

func (c *GeminiContentClient) AnalyzeMood(ctx context.Context, text, userName string) (*MoodAnalysisResult, error) {
	prompt := fmt.Sprintf(`Read this journal entry and name the writer's dominant mood in one lowercase word.
Return JSON only, exact keys: {"mood_label":"...","confidence":0.0}

Writer: %s
Entry:
%s`, orAnonymous(userName), text)

	content, err := c.generate(ctx, prompt, 60)
	if err != nil {
		return nil, err
	}
	var out MoodAnalysisResult
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("gemini: decode mood analysis: %w", err)
	}
	if strings.TrimSpace(out.MoodLabel) == "" {
		return nil, fmt.Errorf("gemini: empty mood label")
	}
	return &out, nil
}

func (c *GeminiContentClient) GenerateAffirmation(ctx context.Context, entryText, moodLabel, userName string) (*AffirmationResult, error) {
	prompt := fmt.Sprintf(`Write one short, warm, personal affirmation (max two sentences) for a journaling app. No medical advice.
Return JSON only, exact keys: {"affirmation_text":"..."}

Writer: %s
Current mood: %s
Their entry:
%s`, orAnonymous(userName), moodLabel, entryText)

	content, err := c.generate(ctx, prompt, 120)
	if err != nil {
		return nil, err
	}
	var out AffirmationResult
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("gemini: decode affirmation: %w", err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return nil, fmt.Errorf("gemini: empty affirmation")
	}
	out.Source = "ai"
	return &out, nil
}

func (c *GeminiContentClient) GenerateQuote(ctx context.Context, moodLabel, entryText, userName string, previouslyShown []string) (*QuoteResult, error) {
	var b strings.Builder
	b.WriteString(`Pick one short real quote that fits the reader's mood, with its author.
Return JSON only, exact keys: {"quote":"...","attribution":"..."}

`)
	fmt.Fprintf(&b, "Reader: %s\nMood: %s\n", orAnonymous(userName), moodLabel)
	if entryText != "" {
		fmt.Fprintf(&b, "Context from their entry:\n%s\n", entryText)
	}
	if len(previouslyShown) > 0 {
		fmt.Fprintf(&b, "Do not repeat any of these quotes:\n- %s\n", strings.Join(previouslyShown, "\n- "))
	}

	content, err := c.generate(ctx, b.String(), 150)
	if err != nil {
		return nil, err
	}
	var out QuoteResult
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("gemini: decode quote: %w", err)
	}
	if strings.TrimSpace(out.Quote) == "" {
		return nil, fmt.Errorf("gemini: empty quote")
	}
	out.Source = "ai"
	return &out, nil
}

func (c *GeminiContentClient) Close() error {
	return c.client.Close()
}
