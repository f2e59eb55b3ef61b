package response_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedDayKeysNumeric(t *testing.T) {
	section := ItinerarySection{Days: map[string]DayItinerary{
		"day10": {}, "day2": {}, "day1": {}, "day3": {},
	}}
	assert.Equal(t, []string{"day1", "day2", "day3", "day10"}, section.SortedDayKeys())
}

func TestSortedDayKeysNonNumericLast(t *testing.T) {
	section := ItinerarySection{Days: map[string]DayItinerary{
		"extra": {}, "day2": {}, "day1": {},
	}}
	assert.Equal(t, []string{"day1", "day2", "extra"}, section.SortedDayKeys())
}

func TestItineraryUnmarshalStructured(t *testing.T) {
	var section ItinerarySection
	require.NoError(t, json.Unmarshal([]byte(`{"day1": {"location": "Tokyo"}}`), &section))
	assert.False(t, section.IsRaw())
	assert.Equal(t, "Tokyo", section.Days["day1"].Location)
}

func TestItineraryUnmarshalRawTag(t *testing.T) {
	var section ItinerarySection
	require.NoError(t, json.Unmarshal([]byte(`{"raw": "Day 1: explore the city"}`), &section))
	assert.True(t, section.IsRaw())
	assert.Equal(t, "Day 1: explore the city", section.Raw)
	assert.Empty(t, section.Days)
}

func TestItineraryUnmarshalBareString(t *testing.T) {
	var section ItinerarySection
	require.NoError(t, json.Unmarshal([]byte(`"just some text"`), &section))
	assert.True(t, section.IsRaw())
}

func TestItineraryRawRoundTrip(t *testing.T) {
	section := ItinerarySection{Raw: "unparsed"}
	data, err := json.Marshal(section)
	require.NoError(t, err)

	var back ItinerarySection
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "unparsed", back.Raw)
}

func TestActivityListShapes(t *testing.T) {
	var list ActivityList
	require.NoError(t, json.Unmarshal([]byte(`"a single string"`), &list))
	assert.Equal(t, "a single string", list.Text)

	list = ActivityList{}
	require.NoError(t, json.Unmarshal([]byte(`["first", "second"]`), &list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, "first", list.Items[0].Text)

	list = ActivityList{}
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"text": "Visit the Louvre", "attractionName": "Louvre", "wiki": "https://en.wikipedia.org/wiki/Louvre"}]`), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Louvre", list.Items[0].AttractionName)
}

func TestActivityListUnknownShapeDegrades(t *testing.T) {
	var list ActivityList
	require.NoError(t, json.Unmarshal([]byte(`42`), &list))
	assert.True(t, list.IsZero())
}

func TestBudgetUnmarshalStructured(t *testing.T) {
	var section BudgetSection
	require.NoError(t, json.Unmarshal(
		[]byte(`{"city": "Tokyo", "days": 3, "currency": "$", "total_budget": {"min": 500, "max": 900}}`), &section))
	require.NotNil(t, section.Estimate)
	assert.Equal(t, "$", section.Estimate.CurrencySymbol())
	assert.Equal(t, 500.0, section.Estimate.TotalBudget.Min)
}

func TestBudgetUnmarshalRaw(t *testing.T) {
	var section BudgetSection
	require.NoError(t, json.Unmarshal([]byte(`{"raw": "roughly $1000"}`), &section))
	assert.True(t, section.IsRaw())
}

func TestBudgetUnmarshalBareString(t *testing.T) {
	var section BudgetSection
	require.NoError(t, json.Unmarshal([]byte(`"roughly $1000 all in"`), &section))
	assert.True(t, section.IsRaw())
	assert.Equal(t, "roughly $1000 all in", section.Raw)
}

func TestBudgetCurrencyDefaultsToDollar(t *testing.T) {
	est := &BudgetEstimate{}
	assert.Equal(t, "$", est.CurrencySymbol())
	var nilEst *BudgetEstimate
	assert.Equal(t, "$", nilEst.CurrencySymbol())
}

func TestMalformedInnerDaySkipped(t *testing.T) {
	var section ItinerarySection
	require.NoError(t, json.Unmarshal(
		[]byte(`{"day1": {"location": "Tokyo"}, "day2": 42}`), &section))
	assert.Contains(t, section.Days, "day1")
	assert.NotContains(t, section.Days, "day2")
}
