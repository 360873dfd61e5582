package ai_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"solace/pkg/utils"
)

var Module = fx.Provide(
	provideContentClient, provideEmbeddingClient)

// provideContentClient builds the chat client behind mood classification,
// affirmations and quotes. AI_PROVIDER selects openai (default) or gemini.
func provideContentClient() (utils.AIContentClientInterface, error) {
	provider := strings.ToLower(os.Getenv("AI_PROVIDER"))

	var apiKey, model string
	switch provider {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = os.Getenv("GEMINI_MODEL")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
	}

	if apiKey == "" {
		log.Fatalf("Missing API key for AI provider %q", provider)
	}

	return utils.NewAIContentClient(provider, apiKey, model)
}

// provideEmbeddingClient is optional: without an OpenAI key the related-entries
// search is simply disabled and everything else keeps working.
func provideEmbeddingClient() utils.EmbeddingClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set, related-entry search disabled")
		return nil
	}
	return utils.NewOpenAIEmbeddingClient(apiKey)
}
