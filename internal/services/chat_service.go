package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/pkg/llm"
	"wander/pkg/utils"
)

// Context sections are excerpted, not embedded whole; a 30-day itinerary
// would otherwise dominate the prompt.
const (
	itineraryContextLimit = 1000
	budgetContextLimit    = 500
)

type ChatService interface {
	Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error)
}

type chatService struct {
	llm llm.Client
}

func NewChatService(client llm.Client) ChatService {
	return &chatService{llm: client}
}

func (s *chatService) Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, utils.ErrInvalidInput
	}

	text, err := s.llm.GenerateJSON(ctx, buildChatPrompt(req))
	if err != nil {
		log.Printf("chat: model call failed: %v", err)
		return nil, utils.ErrLLMFailure
	}

	var resp response_models.ChatResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil || resp.Response == "" {
		// The model answered in prose; pass it through as the reply.
		return &response_models.ChatResponse{Response: strings.TrimSpace(text)}, nil
	}
	return &resp, nil
}

func buildChatPrompt(req request_models.ChatRequest) string {
	var b strings.Builder

	b.WriteString("You are a friendly travel assistant helping a user refine their trip plan.\n\n")

	trip := req.CurrentTrip
	if trip.Country != "" {
		fmt.Fprintf(&b, "CURRENT TRIP: %d days in %s", trip.Days, trip.Country)
		if trip.Locations != "" {
			fmt.Fprintf(&b, " (visiting %s)", trip.Locations)
		}
		b.WriteString("\n")
	}
	if excerpt := excerptJSON(trip.Itinerary, itineraryContextLimit); excerpt != "" {
		fmt.Fprintf(&b, "\nITINERARY (excerpt):\n%s\n", excerpt)
	}
	if excerpt := excerptJSON(trip.Budget, budgetContextLimit); excerpt != "" {
		fmt.Fprintf(&b, "\nBUDGET (excerpt):\n%s\n", excerpt)
	}

	fmt.Fprintf(&b, "\nUSER MESSAGE: %s\n", req.Message)

	b.WriteString(`
Answer the user's question about their trip. Be specific and practical.
If they ask to change the itinerary or budget, describe the change you
would make; do not pretend the change has already been applied.

Return ONLY valid JSON:
{
  "response": "your answer, markdown **bold** allowed",
  "changes": {
    "type": "itinerary" | "budget" | "none",
    "description": "one-line summary of the requested change, if any",
    "update_itinerary": false,
    "update_budget": false,
    "suggestions": ["up to 3 short follow-up questions the user might ask"]
  }
}
Omit "changes" entirely when the message is a plain question.`)

	return b.String()
}

func excerptJSON(raw json.RawMessage, limit int) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}
