package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/models"
)

func jobsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Job postings; each needs an id and requiredSkills/preferredSkills lists",
		"items":       map[string]interface{}{"type": "object"},
	}
}

// RankJobsInput is the input for rank_jobs
type RankJobsInput struct {
	Skills  []string             `json:"skills"`
	Jobs    []*models.JobPosting `json:"jobs"`
	Filters models.MatchFilters  `json:"filters"`
	TopN    int                  `json:"topN,omitempty"`
	Limit   int                  `json:"limit,omitempty"`
}

// RankJobsTool ranks a job pool against a skill set and reports the skill gaps
type RankJobsTool struct {
	engine *matching.Engine
}

// NewRankJobsTool creates a new ranking tool
func NewRankJobsTool(engine *matching.Engine) *RankJobsTool {
	return &RankJobsTool{engine: engine}
}

func (t *RankJobsTool) Name() string {
	return "rank_jobs"
}

func (t *RankJobsTool) Description() string {
	return `Rank job postings by how well a skill set matches their required and
preferred skills. Applies the optional filters first. Returns the ranked jobs
with per-job analysis, a skill gap report and learning recommendations.`
}

func (t *RankJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"skills":  stringArraySchema("The user's skills"),
			"jobs":    jobsSchema(),
			"filters": filtersSchema(),
			"topN": map[string]interface{}{
				"type":        "integer",
				"description": "Number of top ranked jobs used for gap analysis (default 10)",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of ranked jobs to return (default all)",
			},
		},
		"required": []string{"skills", "jobs"},
	}
}

func (t *RankJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in RankJobsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	result, err := t.engine.Match(in.Skills, in.Jobs, in.Filters, matching.MatchOptions{
		TopN:  in.TopN,
		Limit: in.Limit,
	})
	if err != nil {
		return NewErrorResult(fmt.Sprintf("ranking failed: %v", err))
	}

	return NewSuccessResult(result)
}

// AnalyzeGapsInput is the input for analyze_skill_gaps
type AnalyzeGapsInput struct {
	Skills          []string             `json:"skills"`
	Jobs            []*models.JobPosting `json:"jobs"`
	Filters         models.MatchFilters  `json:"filters"`
	TopN            int                  `json:"topN,omitempty"`
	Recommendations int                  `json:"recommendations,omitempty"`
}

// AnalyzeGapsTool reports the skills most often missing from the best matching jobs
type AnalyzeGapsTool struct {
	engine *matching.Engine
}

// NewAnalyzeGapsTool creates a new gap analysis tool
func NewAnalyzeGapsTool(engine *matching.Engine) *AnalyzeGapsTool {
	return &AnalyzeGapsTool{engine: engine}
}

func (t *AnalyzeGapsTool) Name() string {
	return "analyze_skill_gaps"
}

func (t *AnalyzeGapsTool) Description() string {
	return `Find the skills a user is most often missing across their top matching
jobs, weighted by whether the jobs require or merely prefer them, and suggest
what to learn next.`
}

func (t *AnalyzeGapsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"skills":  stringArraySchema("The user's skills"),
			"jobs":    jobsSchema(),
			"filters": filtersSchema(),
			"topN": map[string]interface{}{
				"type":        "integer",
				"description": "Number of top ranked jobs to analyze (default 10)",
			},
			"recommendations": map[string]interface{}{
				"type":        "integer",
				"description": "Number of learning recommendations (default 5)",
			},
		},
		"required": []string{"skills", "jobs"},
	}
}

func (t *AnalyzeGapsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in AnalyzeGapsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	ranked, err := t.engine.Rank(in.Skills, in.Jobs, in.Filters)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("gap analysis failed: %v", err))
	}

	topN := in.TopN
	if topN <= 0 {
		topN = matching.DefaultGapTopN
	}
	report, recs := t.engine.AnalyzeGaps(ranked, topN, in.Recommendations)

	return NewSuccessResult(models.GapResponse{GapReport: report, Recommendations: recs})
}

// ScoreJobInput is the input for score_job_match
type ScoreJobInput struct {
	Skills []string           `json:"skills"`
	Job    *models.JobPosting `json:"job"`
}

// ScoreJobTool scores a single job against a skill set
type ScoreJobTool struct {
	engine *matching.Engine
}

// NewScoreJobTool creates a new job scoring tool
func NewScoreJobTool(engine *matching.Engine) *ScoreJobTool {
	return &ScoreJobTool{engine: engine}
}

func (t *ScoreJobTool) Name() string {
	return "score_job_match"
}

func (t *ScoreJobTool) Description() string {
	return `Score how well a skill set matches one job posting.
Returns the required, preferred and overall match percentages together with
the matched and missing skills.`
}

func (t *ScoreJobTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"skills": stringArraySchema("The user's skills"),
			"job": map[string]interface{}{
				"type":        "object",
				"description": "The job posting to score",
			},
		},
		"required": []string{"skills", "job"},
	}
}

func (t *ScoreJobTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ScoreJobInput
	if err := json.Unmarshal(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	analysis, err := t.engine.Score(in.Skills, in.Job)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("scoring failed: %v", err))
	}

	return NewSuccessResult(analysis)
}
