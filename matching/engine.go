package matching

import (
	"github.com/jobfit/backend/models"
)

// Defaults for MatchOptions
const (
	DefaultGapTopN         = 10
	DefaultRecommendations = 5
)

// MatchOptions tunes a single Match call. Zero values take the defaults.
type MatchOptions struct {
	TopN            int // ranked jobs fed to gap analysis
	Recommendations int // gap entries turned into recommendations
	Limit           int // truncate returned jobs, 0 = all
}

// MatchResult is the complete output of one match request
type MatchResult struct {
	UserSkills      []string                `json:"userSkills"`
	Jobs            models.RankedJobList    `json:"jobs"`
	GapReport       models.GapReport        `json:"gapReport"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

// Engine wires the normalizer, ranker, aggregator and recommender together
type Engine struct {
	policy      Policy
	scorer      *Scorer
	ranker      *Ranker
	aggregator  *Aggregator
	recommender *Recommender
}

// NewEngine creates an engine for the given policy and catalog
func NewEngine(policy Policy, catalog Catalog) *Engine {
	scorer := NewScorer(policy)
	return &Engine{
		policy:      policy,
		scorer:      scorer,
		ranker:      NewRanker(scorer),
		aggregator:  NewAggregator(policy),
		recommender: NewRecommender(catalog),
	}
}

// Policy returns the engine's scoring policy
func (e *Engine) Policy() Policy {
	return e.policy
}

// Score scores a single job against raw skill strings
func (e *Engine) Score(rawSkills []string, job *models.JobPosting) (models.MatchAnalysis, error) {
	return e.scorer.Score(NewSkillSet(rawSkills), job)
}

// Rank normalizes rawSkills and ranks jobs
func (e *Engine) Rank(rawSkills []string, jobs []*models.JobPosting, filters models.MatchFilters) (models.RankedJobList, error) {
	return e.ranker.Rank(NewSkillSet(rawSkills), jobs, filters)
}

// AnalyzeGaps runs gap analysis and recommendations over an already ranked list
func (e *Engine) AnalyzeGaps(ranked models.RankedJobList, topN, recommendations int) (models.GapReport, []models.Recommendation) {
	if recommendations <= 0 {
		recommendations = DefaultRecommendations
	}
	report := e.aggregator.AnalyzeGaps(ranked, topN)

	top := report.TopMissingSkills
	if len(top) > recommendations {
		top = top[:recommendations]
	}
	return report, e.recommender.Recommend(top)
}

// Match ranks jobs for the skills, analyzes gaps over the top matches and
// derives recommendations for the most frequent gaps.
func (e *Engine) Match(rawSkills []string, jobs []*models.JobPosting, filters models.MatchFilters, opts MatchOptions) (*MatchResult, error) {
	if opts.TopN <= 0 {
		opts.TopN = DefaultGapTopN
	}

	skills := NewSkillSet(rawSkills)
	ranked, err := e.ranker.Rank(skills, jobs, filters)
	if err != nil {
		return nil, err
	}

	report, recs := e.AnalyzeGaps(ranked, opts.TopN, opts.Recommendations)

	if opts.Limit > 0 && len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}

	return &MatchResult{
		UserSkills:      skills.Skills(),
		Jobs:            ranked,
		GapReport:       report,
		Recommendations: recs,
	}, nil
}
