package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/request_models"
	"wander/pkg/utils"
)

type stubLLM struct {
	response string
	err      error
	prompt   string
}

func (s *stubLLM) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.response, s.err
}

func TestChatStructuredResponse(t *testing.T) {
	llm := &stubLLM{response: `{"response": "Try the night market on day 2.", "changes": {"type": "none", "suggestions": ["What about day 3?"]}}`}
	svc := NewChatService(llm)

	resp, err := svc.Chat(context.Background(), request_models.ChatRequest{
		Message:     "What should I do in the evening?",
		CurrentTrip: request_models.TripContext{Country: "Taiwan", Days: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, "Try the night market on day 2.", resp.Response)
	require.NotNil(t, resp.Changes)
	assert.Equal(t, []string{"What about day 3?"}, resp.Changes.Suggestions)
}

func TestChatProseFallback(t *testing.T) {
	llm := &stubLLM{response: "Just pack light and bring an umbrella."}
	svc := NewChatService(llm)

	resp, err := svc.Chat(context.Background(), request_models.ChatRequest{Message: "Any packing tips?"})
	require.NoError(t, err)
	assert.Equal(t, "Just pack light and bring an umbrella.", resp.Response)
	assert.Nil(t, resp.Changes)
}

func TestChatLLMFailure(t *testing.T) {
	llm := &stubLLM{err: errors.New("timeout")}
	svc := NewChatService(llm)

	_, err := svc.Chat(context.Background(), request_models.ChatRequest{Message: "hello"})
	assert.ErrorIs(t, err, utils.ErrLLMFailure)
}

func TestChatEmptyMessageRejected(t *testing.T) {
	svc := NewChatService(&stubLLM{})

	_, err := svc.Chat(context.Background(), request_models.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestChatPromptTruncatesContext(t *testing.T) {
	llm := &stubLLM{response: `{"response": "ok"}`}
	svc := NewChatService(llm)

	huge, _ := json.Marshal(strings.Repeat("x", itineraryContextLimit*3))
	_, err := svc.Chat(context.Background(), request_models.ChatRequest{
		Message: "shorten day 1",
		CurrentTrip: request_models.TripContext{
			Country:   "Japan",
			Days:      3,
			Itinerary: huge,
		},
	})
	require.NoError(t, err)
	assert.Contains(t, llm.prompt, "ITINERARY (excerpt):")
	assert.Contains(t, llm.prompt, "...")
	assert.Less(t, len(llm.prompt), itineraryContextLimit*3)
}
