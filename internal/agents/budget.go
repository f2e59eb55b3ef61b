package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/pkg/llm"
)

type BudgetAgent struct {
	llm llm.Client
}

func NewBudgetAgent(client llm.Client) *BudgetAgent {
	return &BudgetAgent{llm: client}
}

// Generate estimates costs in the destination currency and converts them to
// the origin currency. Unparseable model output becomes a raw section.
func (a *BudgetAgent) Generate(ctx context.Context, req request_models.PlanRequest) (response_models.BudgetSection, error) {
	origin := req.Origin
	if origin == "" {
		origin = "United States"
	}

	budgetLocation := req.Country
	var multiLocationNote string
	if locs := strings.TrimSpace(req.Locations); locs != "" {
		budgetLocation = fmt.Sprintf("%s in %s", locs, req.Country)
		multiLocationNote = fmt.Sprintf("\nMULTI-LOCATION NOTE: average costs across these locations: %s\n", locs)
	}

	prompt := fmt.Sprintf(`You are a travel budget expert. Create a detailed budget estimate for traveling to %[1]s for %[2]d days.
The traveler is coming from %[3]s.%[4]s
First determine the local currency of %[1]s, calculate realistic current
costs in that currency, then convert every amount to %[3]s's currency at
current exchange rates. "min" and "max" must be NUMBERS in the origin
currency; each "note" shows the conversion, e.g. "¥15,000-30,000 -> $100-200 USD".
The "currency" field is the origin currency symbol. Compute total_budget as
(hotel_per_night x %[2]d) + (food_per_day x %[2]d) + transport_total + activities_total.

Return ONLY a valid JSON object with this exact structure:
{
  "city": "%[1]s",
  "days": %[2]d,
  "destination_currency_code": "THREE_LETTER_CODE",
  "destination_symbol": "SYMBOL",
  "origin_currency_code": "THREE_LETTER_CODE",
  "origin_symbol": "SYMBOL",
  "exchange_rate": 1.23,
  "currency": "$",
  "hotel_per_night": {"min": 100, "max": 200, "note": "..."},
  "food_per_day": {"min": 40, "max": 80, "note": "..."},
  "transport_total": {"min": 50, "max": 100, "note": "..."},
  "activities_total": {"min": 100, "max": 200, "note": "..."},
  "total_budget": {"min": 500, "max": 1000, "note": "..."},
  "disclaimer": "Prices are estimates and may vary."
}`, budgetLocation, req.Days, origin, multiLocationNote)

	text, err := a.llm.GenerateJSON(ctx, prompt)
	if err != nil {
		return response_models.BudgetSection{}, err
	}

	var est response_models.BudgetEstimate
	if err := json.Unmarshal([]byte(text), &est); err != nil || est == (response_models.BudgetEstimate{}) {
		return response_models.BudgetSection{Raw: text}, nil
	}
	return response_models.BudgetSection{Estimate: &est}, nil
}
