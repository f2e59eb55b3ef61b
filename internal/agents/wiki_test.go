package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/response_models"
)

func TestExtractAttractionName(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Visit the Eiffel Tower", "Eiffel Tower"},
		{"Visit the Eiffel Tower for sunset views", "Eiffel Tower"},
		{"Explore Senso-ji Temple", "Senso-ji Temple"},
		{"See the Statue of Liberty at noon", "Statue of Liberty"},
		{"Walk through Ueno Park", "Ueno Park"},
		{"Check out Shibuya Crossing and take photos", "Shibuya Crossing"},
		{"Have lunch at a local cafe", ""},
		{"Visit a local market", ""},
		{"Relax at the hotel", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractAttractionName(tc.text), "text=%q", tc.text)
	}
}

func TestWikipediaURL(t *testing.T) {
	assert.Equal(t, "https://en.wikipedia.org/wiki/Eiffel_Tower", WikipediaURL("Eiffel Tower"))
	assert.Equal(t, "https://en.wikipedia.org/wiki/Senso-ji_Temple", WikipediaURL("Senso-ji Temple"))
}

func TestWikiAgentEnrich(t *testing.T) {
	agent := NewWikiAgent()

	section := response_models.ItinerarySection{
		Days: map[string]response_models.DayItinerary{
			"day1": {
				Location: "Paris",
				Morning: response_models.ActivityList{Items: []response_models.Activity{
					{Text: "Visit the Eiffel Tower"},
					{Text: "Grab a croissant nearby"},
				}},
			},
		},
	}

	enriched := agent.Enrich(section)
	day := enriched.Days["day1"]

	assert.Equal(t, "https://en.wikipedia.org/wiki/Paris", day.LocationWiki)
	require.Len(t, day.Morning.Items, 2)
	assert.Equal(t, "Eiffel Tower", day.Morning.Items[0].AttractionName)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Eiffel_Tower", day.Morning.Items[0].Wiki)
	assert.Empty(t, day.Morning.Items[1].Wiki)
}

func TestWikiAgentEnrichRawPassthrough(t *testing.T) {
	agent := NewWikiAgent()
	section := response_models.ItinerarySection{Raw: "not json"}

	enriched := agent.Enrich(section)

	assert.Equal(t, "not json", enriched.Raw)
	assert.Nil(t, enriched.Days)
}
