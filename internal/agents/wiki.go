package agents

import (
	"net/url"
	"regexp"
	"strings"

	"wander/internal/models/response_models"
)

// WikiAgent annotates itinerary activities with Wikipedia links. It is pure
// string work: no network calls, links are built optimistically from the
// extracted attraction name.
type WikiAgent struct{}

func NewWikiAgent() *WikiAgent {
	return &WikiAgent{}
}

// Leading verb phrases that precede an attraction name in activity text.
var attractionVerbRe = regexp.MustCompile(`(?i)^(?:visit|explore|see|tour|discover|experience|walk (?:through|around|along)|stroll (?:through|around|along)|wander (?:through|around)|admire|check out|head to|go to|climb|hike|enjoy)\s+(?:the\s+)?`)

// Trailing clauses that follow the name: "for lunch", "at sunset", "(tickets
// required)", "and then...".
var attractionTailRe = regexp.MustCompile(`(?i)\s+(?:for|at|in|with|and|to|before|after|during|where|which|-|\().*$`)

// Attraction names are title-cased multiword phrases; anything else is
// ordinary prose.
var titleCaseRe = regexp.MustCompile(`^[A-Z][\w'-]*(?:\s+(?:[A-Z][\w'-]*|of|the|de|la|du|des|el|di|da|van|von|and|&))+$`)

// Enrich fills Wiki and AttractionName on every activity whose text yields a
// recognizable attraction, and LocationWiki per day. Raw itineraries pass
// through untouched.
func (a *WikiAgent) Enrich(section response_models.ItinerarySection) response_models.ItinerarySection {
	if section.IsRaw() || len(section.Days) == 0 {
		return section
	}

	for key, day := range section.Days {
		if day.Location != "" {
			day.LocationWiki = WikipediaURL(day.Location)
		}
		day.Morning = a.enrichList(day.Morning)
		day.Afternoon = a.enrichList(day.Afternoon)
		day.Evening = a.enrichList(day.Evening)
		section.Days[key] = day
	}
	return section
}

func (a *WikiAgent) enrichList(list response_models.ActivityList) response_models.ActivityList {
	for i, item := range list.Items {
		if item.Wiki != "" {
			continue
		}
		name := ExtractAttractionName(item.Text)
		if name == "" {
			continue
		}
		list.Items[i].AttractionName = name
		list.Items[i].Wiki = WikipediaURL(name)
	}
	return list
}

// ExtractAttractionName pulls a proper-noun attraction out of an activity
// sentence, e.g. "Visit the Eiffel Tower for sunset views" -> "Eiffel Tower".
// Returns "" when no confident match exists.
func ExtractAttractionName(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	stripped := attractionVerbRe.ReplaceAllString(text, "")
	if stripped == text {
		return ""
	}

	name := attractionTailRe.ReplaceAllString(stripped, "")
	name = strings.Trim(name, " .,!?:;\"'")

	if len(name) < 4 || len(name) > 60 {
		return ""
	}
	if !titleCaseRe.MatchString(name) {
		return ""
	}
	return name
}

// WikipediaURL builds an English Wikipedia article URL for a place name.
func WikipediaURL(name string) string {
	title := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return "https://en.wikipedia.org/wiki/" + url.PathEscape(title)
}
