package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAIContentClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIContentClient(apiKey, model string) *OpenAIContentClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIContentClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIContentClient) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.4,
		MaxTokens:   maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	content := CleanJSONResponse(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("openai: response is not valid json")
	}
	return content, nil
}

func (c *OpenAIContentClient) AnalyzeMood(ctx context.Context, text, userName string) (*MoodAnalysisResult, error) {
	system := `You read a short journal entry and name the writer's dominant mood in one lowercase word. Return JSON only: {"mood_label":"...","confidence":0.0}`
	user := fmt.Sprintf("Writer: %s\nEntry:\n%s", orAnonymous(userName), text)

	content, err := c.complete(ctx, system, user, 60)
	if err != nil {
		return nil, err
	}
	var out MoodAnalysisResult
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("openai: decode mood analysis: %w", err)
	}
	if strings.TrimSpace(out.MoodLabel) == "" {
		return nil, fmt.Errorf("openai: empty mood label")
	}
	return &out, nil
}

func (c *OpenAIContentClient) GenerateAffirmation(ctx context.Context, entryText, moodLabel, userName string) (*AffirmationResult, error) {
	system := `You write one short, warm, personal affirmation (max two sentences) for a journaling app. Never give medical advice. Return JSON only: {"affirmation_text":"..."}`
	user := fmt.Sprintf("Writer: %s\nCurrent mood: %s\nTheir entry:\n%s", orAnonymous(userName), moodLabel, entryText)

	content, err := c.complete(ctx, system, user, 120)
	if err != nil {
		return nil, err
	}
	var out AffirmationResult
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("openai: decode affirmation: %w", err)
	}
	if strings.TrimSpace(out.Text) == "" {
		return nil, fmt.Errorf("openai: empty affirmation")
	}
	out.Source = "ai"
	return &out, nil
}

func (c *OpenAIContentClient) GenerateQuote(ctx context.Context, moodLabel, entryText, userName string, previouslyShown []string) (*QuoteResult, error) {
	system := `You pick one short real quote that fits the reader's mood, with its author. Return JSON only: {"quote":"...","attribution":"..."}`
	var b strings.Builder
	fmt.Fprintf(&b, "Reader: %s\nMood: %s\n", orAnonymous(userName), moodLabel)
	if entryText != "" {
		fmt.Fprintf(&b, "Context from their entry:\n%s\n", entryText)
	}
	if len(previouslyShown) > 0 {
		fmt.Fprintf(&b, "Do not repeat any of these quotes:\n- %s\n", strings.Join(previouslyShown, "\n- "))
	}

	content, err := c.complete(ctx, system, b.String(), 150)
	if err != nil {
		return nil, err
	}
	var out QuoteResult
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("openai: decode quote: %w", err)
	}
	if strings.TrimSpace(out.Quote) == "" {
		return nil, fmt.Errorf("openai: empty quote")
	}
	out.Source = "ai"
	return &out, nil
}

func orAnonymous(name string) string {
	if strings.TrimSpace(name) == "" {
		return "anonymous"
	}
	return name
}

// EmbeddingClientInterface generates vectors for related-entry search.
type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey string) *OpenAIEmbeddingClient {
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  openai.SmallEmbedding3,
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
