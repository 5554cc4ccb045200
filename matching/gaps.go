package matching

import (
	"sort"

	"github.com/jobfit/backend/models"
)

// Aggregator tallies missing skills across the best ranked jobs
type Aggregator struct {
	policy Policy
}

// NewAggregator creates an aggregator for the given policy
func NewAggregator(policy Policy) *Aggregator {
	return &Aggregator{policy: policy}
}

type gapTally struct {
	skill      string
	frequency  int
	importance string
}

// AnalyzeGaps looks at the first topN ranked jobs. Every missing required
// skill adds RequiredGapWeight to that skill's frequency and every missing
// preferred skill adds PreferredGapWeight.
//
// In sticky mode a skill keeps the importance it had the first time it was
// seen, even if a later job lists it in the other category. In max-severity
// mode a required occurrence always wins.
//
// AverageMatchPercentage is the mean MatchPercentage of the analyzed jobs,
// or nil when none were analyzed.
func (a *Aggregator) AnalyzeGaps(ranked models.RankedJobList, topN int) models.GapReport {
	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	slice := ranked[:topN]

	// insertion-ordered: order holds keys in first-seen order
	tallies := make(map[string]*gapTally)
	var order []string

	add := func(skill, importance string, weight int) {
		key := skillKey(skill)
		if key == "" {
			return
		}
		t, ok := tallies[key]
		if !ok {
			t = &gapTally{skill: skill, importance: importance}
			tallies[key] = t
			order = append(order, key)
		} else if a.policy.ImportanceMode == ImportanceMaxSeverity && importance == models.ImportanceRequired {
			t.importance = models.ImportanceRequired
		}
		t.frequency += weight
	}

	sum := 0
	for _, job := range slice {
		for _, skill := range job.Analysis.MissingRequiredSkills {
			add(skill, models.ImportanceRequired, a.policy.RequiredGapWeight)
		}
		for _, skill := range job.Analysis.MissingPreferredSkills {
			add(skill, models.ImportancePreferred, a.policy.PreferredGapWeight)
		}
		sum += job.Analysis.MatchPercentage
	}

	entries := make([]models.SkillGapEntry, 0, len(order))
	for _, key := range order {
		t := tallies[key]
		divisor := a.policy.PreferredGapWeight
		if t.importance == models.ImportanceRequired {
			divisor = a.policy.RequiredGapWeight
		}
		entries = append(entries, models.SkillGapEntry{
			Skill:            t.skill,
			Frequency:        t.frequency,
			Importance:       t.importance,
			OpportunityCount: t.frequency / divisor,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Frequency > entries[j].Frequency
	})
	if len(entries) > a.policy.TopMissingSkills {
		entries = entries[:a.policy.TopMissingSkills]
	}

	report := models.GapReport{
		TopMissingSkills:  entries,
		TotalJobsAnalyzed: len(slice),
	}
	if len(slice) > 0 {
		avg := float64(sum) / float64(len(slice))
		report.AverageMatchPercentage = &avg
	}
	return report
}
