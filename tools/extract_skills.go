package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/models"
)

// SkillExtractor reads skills out of free CV text
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, cvText string) ([]string, error)
}

// ExtractSkillsTool extracts a normalized skill list from CV text
type ExtractSkillsTool struct {
	extractor SkillExtractor
}

// NewExtractSkillsTool creates a new skill extraction tool
func NewExtractSkillsTool(extractor SkillExtractor) *ExtractSkillsTool {
	return &ExtractSkillsTool{extractor: extractor}
}

func (t *ExtractSkillsTool) Name() string {
	return "extract_skills"
}

func (t *ExtractSkillsTool) Description() string {
	return `Extract the professional skills listed in CV/resume text.
Returns a deduplicated skill list ready to be used for job matching.`
}

func (t *ExtractSkillsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"cvText": map[string]interface{}{
				"type":        "string",
				"description": "Plain text content of the CV",
			},
		},
		"required": []string{"cvText"},
	}
}

func (t *ExtractSkillsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var req models.SkillExtractRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	skills, err := t.Extract(ctx, req.CVText)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("skill extraction failed: %v", err))
	}

	return NewSuccessResult(models.SkillExtractResponse{Skills: skills, Count: len(skills)})
}

// Extract returns the normalized skills found in cvText
func (t *ExtractSkillsTool) Extract(ctx context.Context, cvText string) ([]string, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, errors.New("cvText is required")
	}
	if t.extractor == nil {
		return nil, errors.New("skill extraction is not configured")
	}

	raw, err := t.extractor.ExtractSkills(ctx, cvText)
	if err != nil {
		return nil, err
	}
	return matching.NewSkillSet(raw).Skills(), nil
}
