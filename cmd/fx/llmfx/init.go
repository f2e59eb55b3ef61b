package llmfx

import (
	"log"

	"go.uber.org/fx"

	"wander/pkg/llm"
)

var Module = fx.Provide(
	provideLLMClient)

func provideLLMClient() llm.Client {
	client, err := llm.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	return client
}
