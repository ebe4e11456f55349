// Package duckduckgo provides a web-search adapter backed by the
// DuckDuckGo HTML interface. No API key is required.
package duckduckgo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
	"github.com/custodia-labs/scribe-cli/internal/core/ports/driven"
)

// Ensure Service implements the interface.
var _ driven.WebSearchService = (*Service)(nil)

// Default configuration values.
const (
	DefaultBaseURL           = "https://html.duckduckgo.com/html/"
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 1.0
	DefaultBurstSize         = 2

	// maxResponseBytes caps how much of the result page is read.
	maxResponseBytes = 1 << 20
)

// Config holds configuration for the DuckDuckGo search service.
type Config struct {
	// BaseURL is the search endpoint (default: DuckDuckGo HTML).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond is the sustained rate limit (default: 1/s).
	// DuckDuckGo throttles aggressive scrapers; stay conservative.
	RequestsPerSecond float64

	// BurstSize is the maximum burst size (default: 2).
	BurstSize int
}

// Service performs web searches against the DuckDuckGo HTML interface.
type Service struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewService creates a new DuckDuckGo search service.
func NewService(cfg Config) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = DefaultBurstSize
	}

	return &Service{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Search returns up to limit results ordered by rank.
func (s *Service) Search(
	ctx context.Context, query string, limit int,
) ([]domain.WebResult, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.WebResult{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	searchURL := s.baseURL + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search error (status %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return parseResults(string(body), limit)
}

// Close releases resources.
func (s *Service) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

// parseResults extracts search results from the DuckDuckGo result page.
// Each hit is a div whose class contains both "result" and "results_links".
func parseResults(page string, limit int) ([]domain.WebResult, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse result page: %w", err)
	}

	results := make([]domain.WebResult, 0, limit)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(results) >= limit {
			return
		}

		if n.Type == html.ElementNode && n.Data == "div" {
			class := attrValue(n, "class")
			if strings.Contains(class, "result") && strings.Contains(class, "results_links") {
				if r, ok := extractResult(n); ok {
					results = append(results, r)
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return results, nil
}

// extractResult pulls title, link, and snippet out of a result div.
func extractResult(n *html.Node) (domain.WebResult, bool) {
	var result domain.WebResult

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			class := attrValue(n, "class")
			switch {
			case strings.Contains(class, "result__a"):
				result.Link = cleanRedirect(attrValue(n, "href"))
				result.Title = strings.TrimSpace(textContent(n))
			case strings.Contains(class, "result__snippet"):
				result.Snippet = strings.TrimSpace(textContent(n))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return result, result.Title != "" && result.Link != ""
}

// cleanRedirect unwraps DuckDuckGo redirect URLs to the target link.
func cleanRedirect(link string) string {
	const redirectPrefix = "//duckduckgo.com/l/?uddg="
	if !strings.HasPrefix(link, redirectPrefix) {
		return link
	}

	decoded, err := url.QueryUnescape(strings.TrimPrefix(link, redirectPrefix))
	if err != nil {
		return link
	}
	if idx := strings.Index(decoded, "&"); idx > 0 {
		decoded = decoded[:idx]
	}
	return decoded
}

// attrValue returns the value of an attribute on a node.
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent concatenates all text under a node.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
