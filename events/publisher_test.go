package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobfit/backend/config"
	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/models"
)

func TestNewMatchCompleted(t *testing.T) {
	result := &matching.MatchResult{
		UserSkills: []string{"Go", "SQL"},
		Jobs: models.RankedJobList{
			{JobPosting: models.JobPosting{ID: "best"}, Analysis: models.MatchAnalysis{OverallScore: 88}},
			{JobPosting: models.JobPosting{ID: "second"}, Analysis: models.MatchAnalysis{OverallScore: 40}},
		},
		GapReport: models.GapReport{TopMissingSkills: []models.SkillGapEntry{
			{Skill: "Docker"}, {Skill: "AWS"}, {Skill: "Kafka"}, {Skill: "Redis"}, {Skill: "gRPC"}, {Skill: "Rust"},
		}},
	}

	event := NewMatchCompleted("req-1", "user@example.com", "live", result)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, 2, event.SkillCount)
	assert.Equal(t, 2, event.JobCount)
	assert.Equal(t, "best", event.TopJobID)
	assert.Equal(t, 88, event.TopScore)
	assert.Equal(t, []string{"Docker", "AWS", "Kafka", "Redis", "gRPC"}, event.TopGapSkills)
	assert.False(t, event.OccurredAt.IsZero())

	body, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"topGapSkills":["Docker"`)
}

func TestNewMatchCompleted_EmptyResult(t *testing.T) {
	event := NewMatchCompleted("", "", "fallback", &matching.MatchResult{})
	assert.Equal(t, 0, event.JobCount)
	assert.Empty(t, event.TopJobID)
	assert.NotNil(t, event.TopGapSkills)

	a := NewMatchCompleted("", "", "fallback", nil)
	b := NewMatchCompleted("", "", "fallback", nil)
	assert.NotEqual(t, a.EventID, b.EventID)
}

func TestNewPublisher_DisabledWithoutURL(t *testing.T) {
	p, err := NewPublisher(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)
	assert.NoError(t, p.PublishMatchCompleted(context.Background(), MatchCompleted{}))
	assert.NoError(t, p.Close())
}
