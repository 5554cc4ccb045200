package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobfit/backend/config"
	"github.com/jobfit/backend/models"
	"github.com/jobfit/backend/utils"
)

const maxPageBytes = 4 << 20

// noiseSelectors are removed from fetched pages before extraction
var noiseSelectors = []string{
	"script:not([type='application/ld+json'])",
	"style", "noscript", "svg", "iframe", "link", "meta",
	"header", "footer", "nav", "form",
	"[aria-hidden='true']", ".cookie-banner", "#cookie-consent",
}

// FetchPageTool fetches a job page and strips it down to the content worth extracting
type FetchPageTool struct {
	client *http.Client
}

// NewFetchPageTool creates a new page fetcher tool
func NewFetchPageTool(cfg *config.Config) *FetchPageTool {
	return &FetchPageTool{
		client: utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, cfg.HTTPMaxRetries),
	}
}

func (t *FetchPageTool) Name() string {
	return "fetch_job_page"
}

func (t *FetchPageTool) Description() string {
	return `Fetch a job posting URL and return its cleaned HTML.
Scripts, styles and page chrome are removed; JSON-LD job data is kept.
Input should be a URL string.`
}

func (t *FetchPageTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "The URL to fetch HTML content from",
			},
		},
		"required": []string{"url"},
	}
}

// FetchInput represents the input for the fetch tool
type FetchInput struct {
	URL string `json:"url"`
}

func (t *FetchPageTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var fetchInput FetchInput
	if err := json.Unmarshal(input, &fetchInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	page, err := t.Fetch(ctx, fetchInput.URL)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("fetch failed: %v", err))
	}

	return NewSuccessResult(page)
}

// Fetch downloads and cleans a single page
func (t *FetchPageTool) Fetch(ctx context.Context, rawURL string) (*models.FetchPageResponse, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid URL: %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	title, html, err := cleanHTML(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, err
	}

	return &models.FetchPageResponse{
		URL:   rawURL,
		Title: title,
		HTML:  html,
	}, nil
}

// cleanHTML drops noise elements and returns the page title and the cleaned body markup
func cleanHTML(r io.Reader) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title, _ = doc.Find("meta[property='og:title']").Attr("content")
	}

	// JSON-LD usually sits in <head>; keep it alongside the body content
	var ldJSON []string
	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			ldJSON = append(ldJSON, text)
		}
	})

	doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	doc.Find("script").Remove()

	content := doc.Find("main, article, [role='main']").First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}
	body, err := content.Html()
	if err != nil {
		return "", "", fmt.Errorf("failed to render HTML: %w", err)
	}

	var sb strings.Builder
	for _, block := range ldJSON {
		sb.WriteString(`<script type="application/ld+json">`)
		sb.WriteString(block)
		sb.WriteString("</script>\n")
	}
	sb.WriteString(collapseBlankLines(body))

	return strings.TrimSpace(title), strings.TrimSpace(sb.String()), nil
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimRight(line, " \t\r"))
	}
	return strings.Join(out, "\n")
}
