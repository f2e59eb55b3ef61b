package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
)

const newsDataURL = "https://newsdata.io/api/1/latest"

const maxNewsArticles = 5

// NewsData.io filters by ISO country code, not country name.
var newsCountryCodes = map[string]string{
	"japan": "jp", "france": "fr", "italy": "it", "spain": "es",
	"germany": "de", "united kingdom": "gb", "uk": "gb", "england": "gb",
	"united states": "us", "usa": "us", "america": "us",
	"thailand": "th", "vietnam": "vn", "china": "cn", "india": "in",
	"south korea": "kr", "korea": "kr", "indonesia": "id",
	"australia": "au", "new zealand": "nz", "canada": "ca",
	"mexico": "mx", "brazil": "br", "argentina": "ar", "peru": "pe",
	"portugal": "pt", "netherlands": "nl", "belgium": "be",
	"switzerland": "ch", "austria": "at", "greece": "gr",
	"turkey": "tr", "egypt": "eg", "morocco": "ma",
	"south africa": "za", "kenya": "ke",
	"uae": "ae", "united arab emirates": "ae", "dubai": "ae",
	"singapore": "sg", "malaysia": "my", "philippines": "ph",
	"ireland": "ie", "iceland": "is", "norway": "no", "sweden": "se",
	"denmark": "dk", "finland": "fi", "poland": "pl",
	"czech republic": "cz", "czechia": "cz", "hungary": "hu",
	"croatia": "hr", "russia": "ru", "israel": "il",
	"saudi arabia": "sa", "qatar": "qa", "colombia": "co", "chile": "cl",
	"cuba": "cu", "costa rica": "cr", "taiwan": "tw", "hong kong": "hk",
	"sri lanka": "lk", "nepal": "np", "cambodia": "kh", "laos": "la",
	"myanmar": "mm", "jordan": "jo", "tunisia": "tn",
}

type NewsAgent struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewNewsAgent(apiKey string) *NewsAgent {
	return &NewsAgent{
		apiKey:  apiKey,
		baseURL: newsDataURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Generate fetches recent headlines for the destination country. A missing
// API key, unknown country, or provider failure all yield nil; the trip
// response simply omits the news section.
func (a *NewsAgent) Generate(ctx context.Context, req request_models.PlanRequest) []response_models.NewsArticle {
	if a.apiKey == "" {
		return nil
	}

	country := strings.ToLower(strings.TrimSpace(req.Country))

	params := url.Values{}
	params.Set("apikey", a.apiKey)
	params.Set("language", "en")
	if code, ok := newsCountryCodes[country]; ok {
		params.Set("country", code)
		params.Set("category", "tourism,lifestyle,top")
	} else {
		params.Set("q", req.Country+" travel")
	}

	req2, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}
	resp, err := a.http.Do(req2)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Link        string   `json:"link"`
			SourceName  string   `json:"source_name"`
			SourceID    string   `json:"source_id"`
			PubDate     string   `json:"pubDate"`
			ImageURL    string   `json:"image_url"`
			Creator     []string `json:"creator"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Status != "success" {
		return nil
	}

	articles := make([]response_models.NewsArticle, 0, maxNewsArticles)
	for _, r := range payload.Results {
		if r.Title == "" || r.Link == "" {
			continue
		}
		source := r.SourceName
		if source == "" {
			source = r.SourceID
		}
		articles = append(articles, response_models.NewsArticle{
			Title:       r.Title,
			Description: truncateDescription(r.Description),
			URL:         r.Link,
			Source:      source,
			PublishedAt: r.PubDate,
			ImageURL:    r.ImageURL,
		})
		if len(articles) == maxNewsArticles {
			break
		}
	}
	if len(articles) == 0 {
		return nil
	}
	return articles
}

func truncateDescription(s string) string {
	const limit = 200
	if len(s) <= limit {
		return s
	}
	// Cut on a rune boundary so a multi-byte character is never split.
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s...", strings.TrimSpace(s[:cut]))
}
