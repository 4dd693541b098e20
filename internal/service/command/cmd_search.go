package command

import (
	"context"
	"strings"

	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/log"
)

const (
	searchHeader    = "Here are some search results:"
	searchNoResults = "No results found for your search."
)

type SearchCommand struct {
	meta
	provider  core.SearchProvider
	topN      int
	formatter *ResponseFormatter
}

func NewSearchCommand(provider core.SearchProvider, topN int) *SearchCommand {
	return &SearchCommand{
		meta: meta{
			name:        "search",
			description: "Search the web",
			usage:       "/search <query>",
			minArgs:     1,
			argHint:     "a search query",
		},
		provider:  provider,
		topN:      topN,
		formatter: NewResponseFormatter(),
	}
}

// Handle replies with a header followed by one message per hit.
func (c *SearchCommand) Handle(ctx context.Context, req core.Request) []core.OutboundMessage {
	query := strings.Join(req.Args, " ")

	res := c.provider.Query(ctx, query, c.topN)
	if !res.IsOk() {
		log.FromCtx(ctx).Warn().
			Str("query", query).
			Stringer("kind", res.Err().Kind).
			Str("reason", res.Err().Message).
			Msg("search failed")
		return []core.OutboundMessage{core.Text(c.formatter.Failure("search", query, res.Err()))}
	}

	hits := res.Value()
	if len(hits) == 0 {
		return []core.OutboundMessage{core.Text(searchNoResults)}
	}

	msgs := make([]core.OutboundMessage, 0, len(hits)+1)
	msgs = append(msgs, core.Text(searchHeader))
	for _, hit := range hits {
		msgs = append(msgs, core.Text(c.formatter.SearchHit(hit)))
	}
	return msgs
}
