package agent

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/models"
)

//go:embed default_jobs.json
var defaultJobsJSON []byte

// DefaultJobPool returns the built-in job pool served when no other source is available
func DefaultJobPool() ([]*models.JobPosting, error) {
	jobs, err := ParseJobPool(defaultJobsJSON)
	if err != nil {
		return nil, fmt.Errorf("built-in job pool: %w", err)
	}
	return jobs, nil
}

// LoadJobPoolFile reads a job pool from a JSON file
func LoadJobPoolFile(path string) ([]*models.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job pool %s: %w", path, err)
	}
	jobs, err := ParseJobPool(data)
	if err != nil {
		return nil, fmt.Errorf("job pool %s: %w", path, err)
	}
	return jobs, nil
}

// ParseJobPool decodes either a bare array of postings or an object with a
// "jobs" array. A null entry fails with matching.ErrNilJob and every job
// must have an id.
func ParseJobPool(data []byte) ([]*models.JobPosting, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty job pool")
	}

	var jobs []*models.JobPosting
	if data[0] == '[' {
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, fmt.Errorf("failed to parse job pool: %w", err)
		}
	} else {
		var wrapper struct {
			Jobs []*models.JobPosting `json:"jobs"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("failed to parse job pool: %w", err)
		}
		jobs = wrapper.Jobs
	}

	out := make([]*models.JobPosting, 0, len(jobs))
	for i, job := range jobs {
		if job == nil {
			return nil, fmt.Errorf("job at index %d: %w", i, matching.ErrNilJob)
		}
		if job.ID == "" {
			return nil, fmt.Errorf("job at index %d has no id", i)
		}
		out = append(out, job)
	}
	return out, nil
}
