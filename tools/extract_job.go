package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jobfit/backend/models"
)

// JobExtractor turns a job page into a structured posting
type JobExtractor interface {
	ExtractJobFromHTML(ctx context.Context, html, url string) (*models.JobPosting, error)
}

// ExtractJobTool extracts job posting information from HTML using Gemini
type ExtractJobTool struct {
	extractor JobExtractor
}

// NewExtractJobTool creates a new job extraction tool
func NewExtractJobTool(extractor JobExtractor) *ExtractJobTool {
	return &ExtractJobTool{
		extractor: extractor,
	}
}

func (t *ExtractJobTool) Name() string {
	return "extract_job_from_html"
}

func (t *ExtractJobTool) Description() string {
	return `Extract structured job posting information from HTML content using AI.
Input should include HTML content and the source URL.
Returns a JobPosting with title, company, location, salary and the
required and preferred skill lists used for matching.`
}

func (t *ExtractJobTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"html": map[string]interface{}{
				"type":        "string",
				"description": "HTML content of the job posting page",
			},
			"url": map[string]interface{}{
				"type":        "string",
				"description": "Source URL of the job posting",
			},
		},
		"required": []string{"html", "url"},
	}
}

// ExtractJobInput represents the input for job extraction
type ExtractJobInput struct {
	HTML string `json:"html"`
	URL  string `json:"url"`
}

func (t *ExtractJobTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var extractInput ExtractJobInput
	if err := json.Unmarshal(input, &extractInput); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if extractInput.HTML == "" {
		return NewErrorResult("html is required")
	}

	job, err := t.Extract(ctx, extractInput.HTML, extractInput.URL)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("extraction failed: %v", err))
	}

	return NewSuccessResult(models.ExtractJobResponse{Job: job})
}

// Extract returns the posting described by html
func (t *ExtractJobTool) Extract(ctx context.Context, html, url string) (*models.JobPosting, error) {
	if t.extractor == nil {
		return nil, errors.New("job extraction is not configured")
	}
	return t.extractor.ExtractJobFromHTML(ctx, html, url)
}
