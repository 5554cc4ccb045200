package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobfit/backend/models"
)

func rankedWithGaps(matchPct int, missingReq, missingPref []string) models.RankedJob {
	return models.RankedJob{
		Analysis: models.MatchAnalysis{
			MatchPercentage:        matchPct,
			MissingRequiredSkills:  missingReq,
			MissingPreferredSkills: missingPref,
		},
	}
}

func TestAnalyzeGaps_StickyImportance(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	ranked := models.RankedJobList{
		rankedWithGaps(50, []string{"Docker"}, nil),
		rankedWithGaps(80, nil, []string{"Docker"}),
	}

	report := agg.AnalyzeGaps(ranked, 10)

	require.Len(t, report.TopMissingSkills, 1)
	entry := report.TopMissingSkills[0]
	assert.Equal(t, "Docker", entry.Skill)
	assert.Equal(t, 3, entry.Frequency)
	assert.Equal(t, models.ImportanceRequired, entry.Importance)
	assert.Equal(t, 1, entry.OpportunityCount)
	assert.Equal(t, 2, report.TotalJobsAnalyzed)
	require.NotNil(t, report.AverageMatchPercentage)
	assert.InDelta(t, 65.0, *report.AverageMatchPercentage, 1e-9)
}

func TestAnalyzeGaps_StickyKeepsFirstPreferred(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	ranked := models.RankedJobList{
		rankedWithGaps(0, nil, []string{"Docker"}),
		rankedWithGaps(0, []string{"docker"}, nil),
	}

	report := agg.AnalyzeGaps(ranked, 10)

	require.Len(t, report.TopMissingSkills, 1)
	entry := report.TopMissingSkills[0]
	assert.Equal(t, "Docker", entry.Skill)
	assert.Equal(t, 3, entry.Frequency)
	assert.Equal(t, models.ImportancePreferred, entry.Importance)
	assert.Equal(t, 3, entry.OpportunityCount)
}

func TestAnalyzeGaps_MaxSeverity(t *testing.T) {
	policy := DefaultPolicy()
	policy.ImportanceMode = ImportanceMaxSeverity
	agg := NewAggregator(policy)
	ranked := models.RankedJobList{
		rankedWithGaps(0, nil, []string{"Docker"}),
		rankedWithGaps(0, []string{"Docker"}, nil),
	}

	report := agg.AnalyzeGaps(ranked, 10)

	require.Len(t, report.TopMissingSkills, 1)
	assert.Equal(t, models.ImportanceRequired, report.TopMissingSkills[0].Importance)
	assert.Equal(t, 1, report.TopMissingSkills[0].OpportunityCount)
}

func TestAnalyzeGaps_OrderingAndTies(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	ranked := models.RankedJobList{
		rankedWithGaps(40, []string{"Kafka"}, []string{"AWS", "GraphQL"}),
		rankedWithGaps(30, []string{"SQL"}, []string{"GraphQL"}),
		rankedWithGaps(20, []string{"Kafka"}, nil),
	}

	report := agg.AnalyzeGaps(ranked, 10)

	var skills []string
	for _, e := range report.TopMissingSkills {
		skills = append(skills, e.Skill)
	}
	// Kafka 4; GraphQL 2 and SQL 2 tie in first-seen order; AWS 1
	assert.Equal(t, []string{"Kafka", "GraphQL", "SQL", "AWS"}, skills)
	assert.Equal(t, 2, report.TopMissingSkills[0].OpportunityCount)
}

func TestAnalyzeGaps_OnlyTopN(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	ranked := models.RankedJobList{
		rankedWithGaps(90, []string{"Go"}, nil),
		rankedWithGaps(10, []string{"Rust"}, nil),
	}

	report := agg.AnalyzeGaps(ranked, 1)

	assert.Equal(t, 1, report.TotalJobsAnalyzed)
	require.Len(t, report.TopMissingSkills, 1)
	assert.Equal(t, "Go", report.TopMissingSkills[0].Skill)
	assert.InDelta(t, 90.0, *report.AverageMatchPercentage, 1e-9)
}

func TestAnalyzeGaps_TopNLargerThanList(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	ranked := models.RankedJobList{rankedWithGaps(47, []string{"SQL"}, nil)}

	report := agg.AnalyzeGaps(ranked, 50)

	assert.Equal(t, 1, report.TotalJobsAnalyzed)
}

func TestAnalyzeGaps_CapsAtTenEntries(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())
	missing := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	ranked := models.RankedJobList{rankedWithGaps(0, missing, nil)}

	report := agg.AnalyzeGaps(ranked, 10)

	require.Len(t, report.TopMissingSkills, 10)
	assert.Equal(t, "a", report.TopMissingSkills[0].Skill)
	assert.Equal(t, "j", report.TopMissingSkills[9].Skill)
}

func TestAnalyzeGaps_EmptySlice(t *testing.T) {
	agg := NewAggregator(DefaultPolicy())

	for _, ranked := range []models.RankedJobList{nil, {}} {
		report := agg.AnalyzeGaps(ranked, 10)
		assert.Equal(t, 0, report.TotalJobsAnalyzed)
		assert.Empty(t, report.TopMissingSkills)
		assert.Nil(t, report.AverageMatchPercentage)
	}

	report := agg.AnalyzeGaps(models.RankedJobList{rankedWithGaps(50, nil, nil)}, 0)
	assert.Nil(t, report.AverageMatchPercentage)
}
