package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/google/uuid"

	"github.com/jobfit/backend/config"
	"github.com/jobfit/backend/models"
)

const maxHTMLChars = 50000

// ErrNotJobPosting is returned when the page does not describe a job
var ErrNotJobPosting = errors.New("not a job posting page")

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(0.1)
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)
	model.ResponseMIMEType = "application/json"

	return &Client{
		client:    client,
		model:     model,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

const skillsPrompt = `Extract the professional skills from this CV/resume.
Include programming languages, frameworks, databases, cloud platforms, tools,
methodologies and domain skills. Use the canonical name of each technology
(e.g. "Node.js", "PostgreSQL", "Kubernetes"). Do not invent skills that are not
supported by the document.

Return a JSON object: {"skills": ["skill1", "skill2"]}`

// ExtractSkills returns the skills found in CV text. The list is not
// normalized; callers pass it through the matching normalizer.
func (c *Client) ExtractSkills(ctx context.Context, cvText string) ([]string, error) {
	prompt := fmt.Sprintf("%s\n\nCV TEXT:\n%s", skillsPrompt, cvText)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	skills, err := parseSkills(extractText(resp))
	if err != nil {
		return nil, err
	}
	log.Printf("[Gemini] Extracted %d skills from CV text", len(skills))
	return skills, nil
}

// ExtractSkillsFromPDF sends the PDF to Gemini directly, for scans and
// layouts that plain text extraction cannot read
func (c *Client) ExtractSkillsFromPDF(ctx context.Context, pdfData []byte) ([]string, error) {
	blob := genai.Blob{
		MIMEType: "application/pdf",
		Data:     pdfData,
	}

	resp, err := c.model.GenerateContent(ctx, blob, genai.Text(skillsPrompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	skills, err := parseSkills(extractText(resp))
	if err != nil {
		return nil, err
	}
	log.Printf("[Gemini] Extracted %d skills from CV PDF", len(skills))
	return skills, nil
}

// ExtractJobFromHTML extracts a job posting, including its required and
// preferred skills, from page content
func (c *Client) ExtractJobFromHTML(ctx context.Context, html, url string) (*models.JobPosting, error) {
	if len(html) > maxHTMLChars {
		html = html[:maxHTMLChars]
	}

	prompt := fmt.Sprintf(`Extract job posting information from this page content.
Return a JSON object with the following fields:

{
  "title": "Job title",
  "company": "Company name",
  "description": "Job description (summarize, max 500 chars)",
  "location": "Job location",
  "locationType": "On-site|Hybrid|Remote|",
  "remote": false,
  "type": "Full-time|Part-time|Contract|Internship|Freelance",
  "salary": "Salary range as written, empty if not mentioned",
  "datePosted": "Date posted if available",
  "requiredSkills": ["skills listed as required or must-have"],
  "preferredSkills": ["skills listed as preferred, nice-to-have or a plus"],
  "experienceLevel": "entry|mid|senior|lead",
  "benefits": ["benefit"]
}

Use canonical technology names for skills. A skill appears in at most one list.

URL: %s

CONTENT:
%s

If this is not a job posting page, return {"error": "not_a_job_posting"}.`, url, html)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return parseJob(extractText(resp), url)
}

func parseSkills(text string) ([]string, error) {
	text = cleanJSON(text)
	if text == "" {
		return nil, errors.New("no response from Gemini")
	}

	var out struct {
		Skills models.FlexibleStringSlice `json:"skills"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		// some responses are a bare array
		var bare models.FlexibleStringSlice
		if arrErr := json.Unmarshal([]byte(text), &bare); arrErr != nil {
			log.Printf("[Gemini] Failed to parse skills response: %s", text)
			return nil, fmt.Errorf("failed to parse skills JSON: %w", err)
		}
		return []string(bare), nil
	}
	if out.Skills == nil {
		return []string{}, nil
	}
	return []string(out.Skills), nil
}

func parseJob(text, url string) (*models.JobPosting, error) {
	text = cleanJSON(text)
	if text == "" {
		return nil, errors.New("no response from Gemini")
	}

	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(text), &errResp); err == nil && errResp.Error == "not_a_job_posting" {
		return nil, ErrNotJobPosting
	}

	var job models.JobPosting
	if err := json.Unmarshal([]byte(text), &job); err != nil {
		log.Printf("[Gemini] Failed to parse job response: %s", text)
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	if strings.TrimSpace(job.Title) == "" {
		return nil, ErrNotJobPosting
	}

	job.ID = JobID(url)
	job.URL = url
	job.Source = "web"
	job.Type = models.NormalizeEmploymentType(job.Type)
	job.LocationType = models.NormalizeLocationType(job.LocationType)
	if job.RequiredSkills == nil {
		job.RequiredSkills = models.FlexibleStringSlice{}
	}
	if job.PreferredSkills == nil {
		job.PreferredSkills = models.FlexibleStringSlice{}
	}
	return &job, nil
}

// JobID derives a stable job ID from its URL
func JobID(url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strings.TrimSpace(url))).String()
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
