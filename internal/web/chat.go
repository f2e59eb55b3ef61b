package web

import (
	"sync"
	"time"
)

const chatGreeting = "Hi! I'm your travel assistant. Ask me anything about your trip, or tell me what you'd like to change."

const chatFailureMessage = "Sorry, I'm having trouble processing your request right now. Please try again."

// How long after the reply the suggestion bubble appears. Pacing only.
const suggestionDelay = 800 * time.Millisecond

type ChatMessage struct {
	Role      string // "user" or "assistant"
	Content   string
	Timestamp time.Time
}

// Transcript is the append-only chat message list for one open overlay.
type Transcript struct {
	mu       sync.Mutex
	messages []ChatMessage
}

func NewTranscript() *Transcript {
	t := &Transcript{}
	t.append("assistant", chatGreeting)
	return t
}

// AppendUser records the outgoing message before the backend call is made,
// so the transcript shows it even if the call fails.
func (t *Transcript) AppendUser(content string) {
	t.append("user", content)
}

func (t *Transcript) AppendAssistant(content string) {
	t.append("assistant", content)
}

// AppendFailure adds the fixed failure bubble used for any backend error.
func (t *Transcript) AppendFailure() {
	t.append("assistant", chatFailureMessage)
}

// AppendSuggestions schedules a follow-up message listing the assistant's
// suggestions after a short delay.
func (t *Transcript) AppendSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	content := "You could also ask:"
	for _, s := range suggestions {
		content += "\n• " + s
	}
	time.AfterFunc(suggestionDelay, func() {
		t.append("assistant", content)
	})
}

func (t *Transcript) append(role, content string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// Messages returns a copy of the transcript in append order.
func (t *Transcript) Messages() []ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ChatMessage, len(t.messages))
	copy(out, t.messages)
	return out
}
