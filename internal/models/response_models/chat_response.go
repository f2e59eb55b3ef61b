package response_models

// ChatResponse is the wire shape of POST /chat.
type ChatResponse struct {
	Response string       `json:"response"`
	Changes  *ChatChanges `json:"changes,omitempty"`
}

type ChatChanges struct {
	Type            string   `json:"type"`
	Description     string   `json:"description,omitempty"`
	UpdateItinerary bool     `json:"update_itinerary"`
	UpdateBudget    bool     `json:"update_budget"`
	Suggestions     []string `json:"suggestions,omitempty"`
}
