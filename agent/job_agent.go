package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jobfit/backend/config"
	"github.com/jobfit/backend/models"
	"github.com/jobfit/backend/storage"
)

// Job pool sources
const (
	SourceRequest  = "request"
	SourceLive     = "live"
	SourceCache    = "cache"
	SourceFallback = "fallback"
)

const (
	// DefaultCacheMaxAge is how long a cached pool counts as fresh
	DefaultCacheMaxAge = 24 * time.Hour

	defaultMaxConcurrent = 5
	maxPagesToExtract    = 20
)

// Searcher finds candidate job page URLs
type Searcher interface {
	Search(ctx context.Context, query string, filters models.MatchFilters) (*models.WebSearchResponse, error)
}

// PageFetcher downloads a job page
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*models.FetchPageResponse, error)
}

// Extractor turns a fetched page into a job posting
type Extractor interface {
	Extract(ctx context.Context, html, url string) (*models.JobPosting, error)
}

// PoolCache stores job pools per query
type PoolCache interface {
	Put(ctx context.Context, query string, jobs []*models.JobPosting) error
	Get(ctx context.Context, query string, maxAge time.Duration) (*storage.CachedPool, error)
	Latest(ctx context.Context) (*storage.CachedPool, error)
}

// Deps are the collaborators of a JobAgent. A nil Searcher disables live
// search and a nil Cache disables caching.
type Deps struct {
	Searcher  Searcher
	Fetcher   PageFetcher
	Extractor Extractor
	Cache     PoolCache
}

// JobAgent assembles the job pool for a query: live search first, then the
// cache, then the fallback pool.
type JobAgent struct {
	searcher      Searcher
	fetcher       PageFetcher
	extractor     Extractor
	cache         PoolCache
	fallbackPath  string
	cacheMaxAge   time.Duration
	maxConcurrent int
}

// NewJobAgent creates a new job agent
func NewJobAgent(cfg *config.Config, deps Deps) *JobAgent {
	a := &JobAgent{
		fetcher:       deps.Fetcher,
		extractor:     deps.Extractor,
		cache:         deps.Cache,
		fallbackPath:  cfg.FallbackJobsPath,
		cacheMaxAge:   DefaultCacheMaxAge,
		maxConcurrent: defaultMaxConcurrent,
	}
	if deps.Searcher != nil && deps.Fetcher != nil && deps.Extractor != nil {
		a.searcher = deps.Searcher
	}
	return a
}

// LiveSearchEnabled reports whether the agent can search the web
func (a *JobAgent) LiveSearchEnabled() bool {
	return a.searcher != nil
}

// SearchStats provides statistics about how a job pool was assembled
type SearchStats struct {
	Source        string `json:"source"`
	URLsFound     int    `json:"urlsFound"`
	PagesFetched  int    `json:"pagesFetched"`
	JobsExtracted int    `json:"jobsExtracted"`
	FetchErrors   int    `json:"fetchErrors"`
	ExtractErrors int    `json:"extractErrors"`
}

// FetchJobs returns the job pool for query. Live results are cached; when
// live search is disabled, fails or finds nothing, the pool comes from the
// fresh cache, then the most recent cached pool of any query, then the
// fallback file and finally the built-in pool.
func (a *JobAgent) FetchJobs(ctx context.Context, query string, filters models.MatchFilters) ([]*models.JobPosting, SearchStats, error) {
	var stats SearchStats

	if a.searcher != nil {
		jobs, err := a.fetchLive(ctx, query, filters, &stats)
		switch {
		case err == nil && len(jobs) > 0:
			stats.Source = SourceLive
			if a.cache != nil {
				if err := a.cache.Put(ctx, query, jobs); err != nil {
					log.Printf("[Agent] Warning: failed to cache %d jobs: %v", len(jobs), err)
				}
			}
			return jobs, stats, nil
		case ctx.Err() != nil:
			return nil, stats, ctx.Err()
		case err != nil:
			log.Printf("[Agent] Live search failed, falling back: %v", err)
		default:
			log.Printf("[Agent] Live search found no jobs for %q, falling back", query)
		}
	}

	jobs, source, err := a.fallbackPool(ctx, query)
	if err != nil {
		return nil, stats, err
	}
	stats.Source = source
	return jobs, stats, nil
}

func (a *JobAgent) fetchLive(ctx context.Context, query string, filters models.MatchFilters, stats *SearchStats) ([]*models.JobPosting, error) {
	log.Printf("[Agent] Starting live search with query=%q", query)

	searchResp, err := a.searcher.Search(ctx, query, filters)
	if err != nil {
		return nil, fmt.Errorf("web search failed: %w", err)
	}
	stats.URLsFound = len(searchResp.URLs)
	log.Printf("[Agent] Found %d URLs from web search", len(searchResp.URLs))

	urls := searchResp.URLs
	if len(urls) > maxPagesToExtract {
		log.Printf("[Agent] Limiting pages to extract from %d to %d", len(urls), maxPagesToExtract)
		urls = urls[:maxPagesToExtract]
	}

	results := make([]*models.JobPosting, len(urls))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrent)

	for i, pageURL := range urls {
		i, pageURL := i, pageURL
		g.Go(func() error {
			page, err := a.fetcher.Fetch(gCtx, pageURL)
			if err != nil {
				log.Printf("[Agent] Failed to fetch %s: %v", pageURL, err)
				mu.Lock()
				stats.FetchErrors++
				mu.Unlock()
				return nil
			}
			mu.Lock()
			stats.PagesFetched++
			mu.Unlock()

			job, err := a.extractor.Extract(gCtx, page.HTML, pageURL)
			if err != nil || job == nil {
				log.Printf("[Agent] Failed to extract job from %s: %v", pageURL, err)
				mu.Lock()
				stats.ExtractErrors++
				mu.Unlock()
				return nil
			}
			if job.ID == "" {
				job.ID = pageURL
			}
			if job.URL == "" {
				job.URL = pageURL
			}
			results[i] = job
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jobs := make([]*models.JobPosting, 0, len(results))
	for _, job := range results {
		if job != nil {
			jobs = append(jobs, job)
		}
	}
	stats.JobsExtracted = len(jobs)
	log.Printf("[Agent] Extracted %d jobs from %d pages", len(jobs), stats.PagesFetched)

	return jobs, nil
}

func (a *JobAgent) fallbackPool(ctx context.Context, query string) ([]*models.JobPosting, string, error) {
	if a.cache != nil {
		pool, err := a.cache.Get(ctx, query, a.cacheMaxAge)
		if err == nil && len(pool.Jobs) > 0 {
			log.Printf("[Agent] Serving %d cached jobs for %q", len(pool.Jobs), query)
			return pool.Jobs, SourceCache, nil
		}
		if err != nil && !errors.Is(err, storage.ErrCacheMiss) {
			log.Printf("[Agent] Warning: job cache lookup failed: %v", err)
		}

		pool, err = a.cache.Latest(ctx)
		if err == nil && len(pool.Jobs) > 0 {
			log.Printf("[Agent] Serving %d jobs from latest cached query %q", len(pool.Jobs), pool.Query)
			return pool.Jobs, SourceCache, nil
		}
	}

	if a.fallbackPath != "" {
		jobs, err := LoadJobPoolFile(a.fallbackPath)
		if err == nil {
			log.Printf("[Agent] Serving %d jobs from %s", len(jobs), a.fallbackPath)
			return jobs, SourceFallback, nil
		}
		log.Printf("[Agent] Warning: failed to load fallback jobs: %v", err)
	}

	jobs, err := DefaultJobPool()
	if err != nil {
		return nil, "", err
	}
	return jobs, SourceFallback, nil
}
