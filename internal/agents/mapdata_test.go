package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/response_models"
)

func TestCollectMapCandidatesOrderAndDedupe(t *testing.T) {
	section := response_models.ItinerarySection{
		Days: map[string]response_models.DayItinerary{
			"day1": {
				Location: "Tokyo",
				Morning: response_models.ActivityList{Items: []response_models.Activity{
					{Text: "Visit Tokyo Skytree", AttractionName: "Tokyo Skytree"},
				}},
			},
			"day2": {
				Location: "Tokyo",
				Afternoon: response_models.ActivityList{Items: []response_models.Activity{
					{Text: "Visit Tokyo Skytree again", AttractionName: "Tokyo Skytree"},
					{Text: "See Meiji Shrine", AttractionName: "Meiji Shrine"},
				}},
			},
		},
	}

	candidates := collectMapCandidates("Japan", section)
	require.Len(t, candidates, 3)
	assert.Equal(t, "Tokyo", candidates[0].name)
	assert.Equal(t, "city", candidates[0].typ)
	assert.Equal(t, "Tokyo, Japan", candidates[0].query)
	assert.Equal(t, "Tokyo Skytree", candidates[1].name)
	assert.Equal(t, "attraction", candidates[1].typ)
	assert.Equal(t, "Tokyo Skytree, Tokyo, Japan", candidates[1].query)
	assert.Equal(t, "Meiji Shrine", candidates[2].name)
}

func TestCollectMapCandidatesCapsAtLimit(t *testing.T) {
	days := make(map[string]response_models.DayItinerary)
	for i := 0; i < 12; i++ {
		days[dayKey(i+1)] = response_models.DayItinerary{Location: cityName(i)}
	}
	section := response_models.ItinerarySection{Days: days}

	candidates := collectMapCandidates("Japan", section)
	assert.Greater(t, len(candidates), maxMapAttractions)
}

func TestCollectMapCandidatesRawItinerary(t *testing.T) {
	section := response_models.ItinerarySection{Raw: "free text"}
	assert.Nil(t, collectMapCandidates("Japan", section))
}

func dayKey(n int) string {
	return "day" + string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func cityName(i int) string {
	return "City " + string(rune('A'+i))
}
