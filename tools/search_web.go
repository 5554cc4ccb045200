package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jobfit/backend/config"
	"github.com/jobfit/backend/models"
	"github.com/jobfit/backend/utils"
)

const (
	pseEndpoint    = "https://www.googleapis.com/customsearch/v1"
	psePageSize    = 10
	pseMaxPerSite  = 30
	defaultJobWord = "job"
)

// SearchWebTool searches for job postings using Google Programmable Search Engine
type SearchWebTool struct {
	apiKey     string
	engineID   string
	endpoint   string
	maxResults int
	sites      []string
	client     *http.Client
	limiter    *rate.Limiter
}

// NewSearchWebTool creates a new web search tool. PSE page requests are
// throttled to cfg.SearchRatePerSecond.
func NewSearchWebTool(cfg *config.Config) *SearchWebTool {
	ratePerSecond := cfg.SearchRatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return &SearchWebTool{
		apiKey:     cfg.PSEAPIKey,
		engineID:   cfg.PSEEngineID,
		endpoint:   pseEndpoint,
		maxResults: cfg.MaxJobResults,
		sites:      jobPortalSites,
		client:     utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, cfg.HTTPMaxRetries),
		limiter:    rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

func (t *SearchWebTool) Name() string {
	return "search_web_for_jobs"
}

func (t *SearchWebTool) Description() string {
	return `Search the web for job postings using Google Programmable Search Engine.
Input should include a query string and optional filters.
Returns a list of URLs to job postings.`
}

func (t *SearchWebTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query for finding jobs (e.g., 'Golang developer Berlin remote')",
			},
			"filters": filtersSchema(),
		},
		"required": []string{"query"},
	}
}

// SearchInput represents the input for the search tool
type SearchInput struct {
	Query   string              `json:"query"`
	Filters models.MatchFilters `json:"filters"`
}

// PSEResponse represents the Google PSE API response
type PSEResponse struct {
	Items []PSEItem `json:"items"`
}

// PSEItem represents a single search result
type PSEItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

func (t *SearchWebTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var searchInput SearchInput
	if err := json.Unmarshal(input, &searchInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if strings.TrimSpace(searchInput.Query) == "" {
		return NewErrorResult("query is required")
	}

	response, err := t.Search(ctx, searchInput.Query, searchInput.Filters)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("search failed: %v", err))
	}

	return NewSuccessResult(response)
}

// Search runs the query against every job portal and returns unique job detail URLs
func (t *SearchWebTool) Search(ctx context.Context, query string, filters models.MatchFilters) (*models.WebSearchResponse, error) {
	if t.apiKey == "" || t.engineID == "" {
		return nil, fmt.Errorf("programmable search engine is not configured")
	}

	items, err := t.search(ctx, buildQuery(query, filters))
	if err != nil {
		return nil, err
	}

	response := &models.WebSearchResponse{
		URLs:    make([]string, 0, len(items)),
		Results: make([]models.JobSearchResult, 0, len(items)),
	}
	for _, item := range items {
		response.URLs = append(response.URLs, item.Link)
		response.Results = append(response.Results, models.JobSearchResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}
	return response, nil
}

// Job portal site filters for Google PSE
var jobPortalSites = []string{
	"site:linkedin.com/jobs/view",
	"site:boards.greenhouse.io",
	"site:jobs.lever.co",
	"site:jobs.ashbyhq.com",
	"site:indeed.com",
	"site:weworkremotely.com/remote-jobs",
}

// buildQuery appends the first location and location type hints to the query
func buildQuery(query string, filters models.MatchFilters) string {
	parts := []string{strings.TrimSpace(query)}

	if !strings.Contains(strings.ToLower(query), defaultJobWord) {
		parts = append(parts, defaultJobWord)
	}

	for _, loc := range filters.Locations {
		loc = strings.TrimSpace(loc)
		if loc == "" || strings.EqualFold(loc, "any") {
			continue
		}
		parts = append(parts, loc)
		break
	}

	if len(filters.LocationTypes) > 0 {
		switch models.NormalizeLocationType(filters.LocationTypes[0]) {
		case models.LocationTypeRemote:
			parts = append(parts, "remote")
		case models.LocationTypeHybrid:
			parts = append(parts, "hybrid")
		}
	}

	return strings.Join(parts, " ")
}

func (t *SearchWebTool) search(ctx context.Context, query string) ([]PSEItem, error) {
	var allItems []PSEItem
	seen := make(map[string]bool)
	var lastErr error

	log.Printf("[Search] Starting search with base query: %s", query)

	for _, siteFilter := range t.sites {
		siteQuery := query + " " + siteFilter

		for start := 1; start <= pseMaxPerSite; start += psePageSize {
			if t.maxResults > 0 && len(allItems) >= t.maxResults {
				log.Printf("[Search] Reached result limit %d", t.maxResults)
				return allItems, nil
			}
			if err := t.limiter.Wait(ctx); err != nil {
				return allItems, err
			}

			items, err := t.searchPage(ctx, siteQuery, start, psePageSize)
			if err != nil {
				log.Printf("[Search] Error for %s: %v", siteFilter, err)
				lastErr = err
				break
			}

			for _, item := range items {
				if !seen[item.Link] && isPreferredDetailURL(item.Link) {
					seen[item.Link] = true
					allItems = append(allItems, item)
				}
			}

			if len(items) < psePageSize {
				break
			}
		}
	}

	log.Printf("[Search] Total unique URLs found: %d", len(allItems))
	if len(allItems) == 0 && lastErr != nil {
		return nil, lastErr
	}
	if t.maxResults > 0 && len(allItems) > t.maxResults {
		allItems = allItems[:t.maxResults]
	}
	return allItems, nil
}

// isPreferredDetailURL filters URLs so that for certain sites we only keep detailed job pages
func isPreferredDetailURL(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return true
	}

	host := strings.ToLower(u.Host)
	path := strings.ToLower(u.Path)

	switch {
	case strings.Contains(host, "indeed"):
		return u.Query().Get("jk") != "" || u.Query().Get("vjk") != ""
	case strings.Contains(host, "linkedin"):
		return strings.Contains(path, "/jobs/view/")
	case strings.Contains(host, "greenhouse"), strings.Contains(host, "lever.co"), strings.Contains(host, "ashbyhq"):
		// board index pages have a single path segment
		return strings.Count(strings.Trim(path, "/"), "/") >= 1
	}

	return true
}

// searchPage fetches a single page of results
func (t *SearchWebTool) searchPage(ctx context.Context, query string, start, num int) ([]PSEItem, error) {
	params := url.Values{}
	params.Set("key", t.apiKey)
	params.Set("cx", t.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))
	params.Set("start", strconv.Itoa(start))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PSE API error (status %d): %s", resp.StatusCode, string(body))
	}

	var pseResp PSEResponse
	if err := json.Unmarshal(body, &pseResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return pseResp.Items, nil
}
