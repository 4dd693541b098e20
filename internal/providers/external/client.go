package external

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/assistbot/internal/core"
	"github.com/sandevgo/assistbot/pkg/log"
)

const (
	maxResponseSize = 1 << 20 // 1MB limit
	DefaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 200
)

// response is a raw provider reply; the body is read whatever the status.
type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= 200 && r.status < 300
}

type fetcher struct {
	client *http.Client
}

func newFetcher(timeout time.Duration) fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return fetcher{client: &http.Client{Timeout: timeout}}
}

// get issues a single GET. Only transport failures are returned as errors.
func (f fetcher) get(ctx context.Context, provider, base, path string, params url.Values) (response, error) {
	logger := log.FromCtx(ctx)

	endpoint, err := url.JoinPath(base, path)
	if err != nil {
		return response{}, fmt.Errorf("invalid %s url: %w", provider, err)
	}
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return response{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", core.AssistUserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return response{}, fmt.Errorf("failed to read body: %w", err)
	}

	logger.Debug().
		Str("provider", provider).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("provider call finished")

	return response{status: resp.StatusCode, body: body}, nil
}

// transportFailure maps a client error to ErrTransport, collapsing timeouts to "timeout".
func transportFailure[T any](err error) core.Result[T] {
	if isTimeout(err) {
		return core.Fail[T](core.ErrTransport, "timeout")
	}
	return core.Fail[T](core.ErrTransport, "%s", err.Error())
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func statusFailure[T any](r response) core.Result[T] {
	msg := truncate(strings.TrimSpace(string(r.body)), maxErrorBodyLen)
	if msg == "" {
		return core.Fail[T](core.ErrTransport, "HTTP %d", r.status)
	}
	return core.Fail[T](core.ErrTransport, "HTTP %d: %s", r.status, msg)
}

// truncate cuts s to at most n bytes without splitting a character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
