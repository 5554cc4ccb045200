package matching

import (
	"fmt"
	"sort"

	"github.com/jobfit/backend/models"
)

// Ranker filters a job pool by the user's preferences and orders the
// survivors by overall score.
type Ranker struct {
	scorer *Scorer
}

// NewRanker creates a ranker that scores with the given scorer
func NewRanker(scorer *Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank applies the filters, scores every remaining job and sorts the result
// by OverallScore, highest first. Equal scores keep their input order.
// A nil job anywhere in the pool fails the whole call.
func (r *Ranker) Rank(user SkillSet, jobs []*models.JobPosting, filters models.MatchFilters) (models.RankedJobList, error) {
	for i, job := range jobs {
		if job == nil {
			return nil, fmt.Errorf("job at index %d: %w", i, ErrNilJob)
		}
	}

	candidates := filterJobs(jobs, filters)

	ranked := make(models.RankedJobList, 0, len(candidates))
	for _, job := range candidates {
		analysis, err := r.scorer.Score(user, job)
		if err != nil {
			return nil, fmt.Errorf("failed to score job %s: %w", job.ID, err)
		}
		ranked = append(ranked, models.RankedJob{
			JobPosting: *job,
			Analysis:   analysis,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Analysis.OverallScore > ranked[j].Analysis.OverallScore
	})

	return ranked, nil
}
