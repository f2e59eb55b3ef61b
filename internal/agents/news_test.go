package agents

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/request_models"
)

func TestNewsAgentKnownCountryUsesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jp", r.URL.Query().Get("country"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{"status": "success", "results": [
			{"title": "Festival season opens", "link": "https://example.com/1", "source_name": "Example News", "pubDate": "2025-06-01"},
			{"title": "", "link": "https://example.com/skip"},
			{"title": "New rail line", "link": "https://example.com/2", "source_id": "example"}
		]}`))
	}))
	defer srv.Close()

	agent := &NewsAgent{apiKey: "test-key", baseURL: srv.URL, http: &http.Client{Timeout: time.Second}}
	articles := agent.Generate(context.Background(), request_models.PlanRequest{Country: "Japan"})
	require.Len(t, articles, 2)
	assert.Equal(t, "Festival season opens", articles[0].Title)
	assert.Equal(t, "Example News", articles[0].Source)
	assert.Equal(t, "example", articles[1].Source)
}

func TestNewsAgentUnknownCountryFallsBackToQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("country"))
		assert.Equal(t, "Freedonia travel", r.URL.Query().Get("q"))
		w.Write([]byte(`{"status": "success", "results": []}`))
	}))
	defer srv.Close()

	agent := &NewsAgent{apiKey: "k", baseURL: srv.URL, http: &http.Client{Timeout: time.Second}}
	assert.Nil(t, agent.Generate(context.Background(), request_models.PlanRequest{Country: "Freedonia"}))
}

func TestNewsAgentCapsAtFive(t *testing.T) {
	var items []string
	for i := 0; i < 8; i++ {
		items = append(items, `{"title": "t", "link": "https://example.com"}`)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "results": [` + strings.Join(items, ",") + `]}`))
	}))
	defer srv.Close()

	agent := &NewsAgent{apiKey: "k", baseURL: srv.URL, http: &http.Client{Timeout: time.Second}}
	articles := agent.Generate(context.Background(), request_models.PlanRequest{Country: "Japan"})
	assert.Len(t, articles, maxNewsArticles)
}

func TestNewsAgentNoKeyNoCall(t *testing.T) {
	agent := NewNewsAgent("")
	assert.Nil(t, agent.Generate(context.Background(), request_models.PlanRequest{Country: "Japan"}))
}

func TestTruncateDescription(t *testing.T) {
	assert.Equal(t, "short", truncateDescription("short"))
	long := strings.Repeat("a", 250)
	got := truncateDescription(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), 203)
}

func TestTruncateDescriptionKeepsRunesIntact(t *testing.T) {
	// "日" is 3 bytes; 250 of them force a cut mid-sequence at byte 200.
	long := strings.Repeat("日", 250)
	got := truncateDescription(long)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}
