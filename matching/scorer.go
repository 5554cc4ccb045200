package matching

import (
	"github.com/jobfit/backend/models"
)

// Scorer computes a job's match analysis against a skill set
type Scorer struct {
	policy Policy
}

// NewScorer creates a scorer for the given policy
func NewScorer(policy Policy) *Scorer {
	return &Scorer{policy: policy}
}

// Score partitions the job's required and preferred skills into matched and
// missing, then derives the match percentages and the overall score.
//
// A job that lists no required (or preferred) skills counts as a full match
// on that list. An empty user skill set short-circuits to a zero analysis
// with every listed skill reported missing.
func (s *Scorer) Score(user SkillSet, job *models.JobPosting) (models.MatchAnalysis, error) {
	if job == nil {
		return models.MatchAnalysis{}, ErrNilJob
	}

	required := NewSkillSet(job.RequiredSkills).Skills()
	preferred := NewSkillSet(job.PreferredSkills).Skills()

	if user.Len() == 0 {
		return models.MatchAnalysis{
			MatchedRequiredSkills:  []string{},
			MatchedPreferredSkills: []string{},
			MissingRequiredSkills:  required,
			MissingPreferredSkills: preferred,
			TotalRequiredSkills:    len(required),
			TotalPreferredSkills:   len(preferred),
		}, nil
	}

	matchedReq, missingReq := partition(user, required)
	matchedPref, missingPref := partition(user, preferred)

	reqPct := matchPct(len(matchedReq), len(required))
	prefPct := matchPct(len(matchedPref), len(preferred))
	matchPercentage := roundHalfUp(float64(reqPct)*s.policy.RequiredWeight + float64(prefPct)*s.policy.PreferredWeight)

	totalMatched := len(matchedReq) + len(matchedPref)
	totalListed := len(required) + len(preferred)
	bonus := 0.0
	if totalListed > 0 {
		bonus = float64(totalMatched) / float64(totalListed) * s.policy.CoverageBonus
	}

	overall := roundHalfUp(float64(matchPercentage) + bonus)
	if overall > 100 {
		overall = 100
	}

	return models.MatchAnalysis{
		MatchPercentage:         matchPercentage,
		RequiredSkillsMatchPct:  reqPct,
		PreferredSkillsMatchPct: prefPct,
		OverallScore:            overall,
		MatchedRequiredSkills:   matchedReq,
		MatchedPreferredSkills:  matchedPref,
		MissingRequiredSkills:   missingReq,
		MissingPreferredSkills:  missingPref,
		TotalRequiredSkills:     len(required),
		TotalPreferredSkills:    len(preferred),
		TotalMatchedSkills:      totalMatched,
	}, nil
}

// partition splits listed into skills the user has and skills they lack,
// preserving the listed order in both halves.
func partition(user SkillSet, listed []string) (matched, missing []string) {
	matched = make([]string, 0, len(listed))
	missing = make([]string, 0, len(listed))
	for _, skill := range listed {
		if user.Contains(skill) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

// matchPct is matched/total as a rounded percentage; an empty list is a
// vacuous full match.
func matchPct(matched, total int) int {
	if total == 0 {
		return 100
	}
	return roundHalfUp(float64(matched) / float64(total) * 100)
}
