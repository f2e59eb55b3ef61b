package chatfx

import (
	"go.uber.org/fx"

	"wander/internal/services"
	"wander/pkg/llm"
)

var Module = fx.Provide(
	provideChatService)

func provideChatService(client llm.Client) services.ChatService {
	return services.NewChatService(client)
}
