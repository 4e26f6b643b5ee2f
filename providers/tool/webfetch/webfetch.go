// Package webfetch provides the web_fetch capability: it downloads a page
// and hands the model a Markdown rendering of its HTML, which reads far
// better in a scratch-pad than raw markup.
package webfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/reactor/providers/tool"
)

const (
	// DefaultTimeout bounds the whole request when the model supplies none.
	DefaultTimeout = 30 * time.Second
	// MaxBodySize caps the response body (2MB); observations larger than
	// this would blow the context budget anyway.
	MaxBodySize = 2 * 1024 * 1024
	// userAgent identifies the capability to servers.
	userAgent = "reactor-webfetch/1.0"
)

// Input holds the parameters passed by the language model.
type Input struct {
	// URL is the page to fetch. Partial URLs like "example.com" are
	// normalised by prepending "https://".
	URL string `json:"url"`

	// TimeoutSeconds overrides the default request timeout when positive.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`
}

// New returns the web_fetch capability backed by http.DefaultTransport.
func New() *tool.Tool[Input, string] {
	return NewWithClient(nil)
}

// NewWithClient returns the web_fetch capability using the given HTTP
// client, which tests use to point at a local server. A nil client selects a
// default with [DefaultTimeout].
func NewWithClient(client *http.Client) *tool.Tool[Input, string] {
	f := fetcher{client: client}
	return tool.New("web_fetch", f.fetch,
		tool.WithDescription("Fetches a web page and returns its content converted to Markdown."),
	)
}

type fetcher struct {
	client *http.Client
}

func (f fetcher) fetch(ctx context.Context, in Input) (string, error) {
	url := strings.TrimSpace(in.URL)
	if url == "" {
		return "", fmt.Errorf("url cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	timeout := DefaultTimeout
	if in.TimeoutSeconds > 0 {
		timeout = time.Duration(in.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := f.client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status fetching %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) > MaxBodySize {
		return "", fmt.Errorf("response body exceeds %d bytes", MaxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return markdown, nil
}
