package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jobfit/backend/models"
)

// ErrCacheMiss is returned when no fresh cached pool exists for a query
var ErrCacheMiss = errors.New("job cache miss")

// JobCache keeps the last job pool fetched for each search query in SQLite.
// It backs the job source when live search is unavailable.
type JobCache struct {
	db  *sql.DB
	now func() time.Time
}

// CachedPool is a job pool with the time it was fetched
type CachedPool struct {
	Query     string
	Jobs      []*models.JobPosting
	FetchedAt time.Time
}

// OpenJobCache opens (or creates) the cache database at path
func OpenJobCache(path string) (*JobCache, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("job cache: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("job cache: ping: %w", err)
	}

	if err := initJobCacheSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("job cache: init schema: %w", err)
	}

	return &JobCache{db: db, now: time.Now}, nil
}

func initJobCacheSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS job_pools (
		query      TEXT PRIMARY KEY,
		jobs       TEXT NOT NULL,
		job_count  INTEGER NOT NULL,
		fetched_at INTEGER NOT NULL
	)`)
	return err
}

// Close closes the database
func (c *JobCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Put replaces the cached pool for query
func (c *JobCache) Put(ctx context.Context, query string, jobs []*models.JobPosting) error {
	payload, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("job cache: encode jobs: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO job_pools (query, jobs, job_count, fetched_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(query) DO UPDATE SET jobs = excluded.jobs, job_count = excluded.job_count, fetched_at = excluded.fetched_at`,
		CacheKey(query), string(payload), len(jobs), c.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("job cache: upsert: %w", err)
	}
	return nil
}

// Get returns the pool cached for query when it is younger than maxAge.
// A zero maxAge accepts any age.
func (c *JobCache) Get(ctx context.Context, query string, maxAge time.Duration) (*CachedPool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT query, jobs, fetched_at FROM job_pools WHERE query = ?`, CacheKey(query))

	pool, err := scanPool(row)
	if err != nil {
		return nil, err
	}
	if maxAge > 0 && c.now().Sub(pool.FetchedAt) > maxAge {
		return nil, ErrCacheMiss
	}
	return pool, nil
}

// Latest returns the most recently fetched non-empty pool regardless of query
func (c *JobCache) Latest(ctx context.Context) (*CachedPool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT query, jobs, fetched_at FROM job_pools WHERE job_count > 0 ORDER BY fetched_at DESC LIMIT 1`)
	return scanPool(row)
}

func scanPool(row *sql.Row) (*CachedPool, error) {
	var (
		query     string
		payload   string
		fetchedAt int64
	)
	if err := row.Scan(&query, &payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("job cache: scan: %w", err)
	}

	var jobs []*models.JobPosting
	if err := json.Unmarshal([]byte(payload), &jobs); err != nil {
		return nil, fmt.Errorf("job cache: decode jobs: %w", err)
	}

	return &CachedPool{
		Query:     query,
		Jobs:      jobs,
		FetchedAt: time.Unix(0, fetchedAt),
	}, nil
}

// CacheKey normalizes a search query: lowercase, single spaced
func CacheKey(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
