package external

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/assistbot/internal/core"
)

const DefaultTopN = 3

// Search queries the Google Custom Search JSON API.
type Search struct {
	fetcher
	cfg core.SearchConfig
}

func NewSearch(cfg core.SearchConfig, timeout time.Duration) *Search {
	return &Search{
		fetcher: newFetcher(timeout),
		cfg:     cfg,
	}
}

type searchResponse struct {
	Items *[]struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Query returns at most topN hits in provider order.
// A response without items is a successful, empty result.
func (s *Search) Query(ctx context.Context, query string, topN int) core.Result[[]core.SearchHit] {
	if s.cfg.GetGoogleAPIKey() == "" || s.cfg.GetSearchEngineID() == "" {
		return core.Fail[[]core.SearchHit](core.ErrUnavailable, "search api key or engine id not configured")
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	params := url.Values{}
	params.Set("key", s.cfg.GetGoogleAPIKey())
	params.Set("cx", s.cfg.GetSearchEngineID())
	params.Set("q", query)

	resp, err := s.get(ctx, "search", s.cfg.GetSearchBaseURL(), "/customsearch/v1", params)
	if err != nil {
		return transportFailure[[]core.SearchHit](err)
	}
	if !resp.ok() {
		return statusFailure[[]core.SearchHit](resp)
	}

	var data searchResponse
	if err := json.Unmarshal(resp.body, &data); err != nil {
		return core.Fail[[]core.SearchHit](core.ErrMalformed, "invalid search response: %v", err)
	}
	if data.Items == nil {
		return core.Ok([]core.SearchHit{})
	}

	items := *data.Items
	if len(items) > topN {
		items = items[:topN]
	}

	hits := make([]core.SearchHit, 0, len(items))
	for _, item := range items {
		hits = append(hits, core.SearchHit{
			Title:   plainText(item.Title),
			Link:    item.Link,
			Snippet: plainText(item.Snippet),
		})
	}
	return core.Ok(hits)
}

// plainText decodes entities and strips stray markup from provider strings.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	text, err := html2text.FromString(s, html2text.Options{OmitLinks: true})
	if err != nil {
		return s
	}
	return strings.TrimSpace(text)
}
