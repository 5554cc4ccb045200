package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleStringSlice(t *testing.T) {
	tests := []struct {
		name string
		json string
		want []string
	}{
		{"array", `["Go","SQL"]`, []string{"Go", "SQL"}},
		{"mixed array", `["Go",42,null,"SQL"]`, []string{"Go", "SQL"}},
		{"single string", `"Go"`, []string{"Go"}},
		{"blank string", `"  "`, []string{}},
		{"null", `null`, []string{}},
		{"object", `{"skill":"Go"}`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var job JobPosting
			err := json.Unmarshal([]byte(`{"id":"1","requiredSkills":`+tt.json+`}`), &job)
			require.NoError(t, err)
			assert.Equal(t, tt.want, []string(job.RequiredSkills))
		})
	}
}

func TestJobPosting_NumericID(t *testing.T) {
	var jobs []*JobPosting
	err := json.Unmarshal([]byte(`[{"id": 42, "requiredSkills": ["Go"]}, {"id": "go-1"}, {"id": 7.5}, {"title": "no id"}]`), &jobs)
	require.NoError(t, err)
	require.Len(t, jobs, 4)
	assert.Equal(t, "42", jobs[0].ID)
	assert.Equal(t, []string{"Go"}, []string(jobs[0].RequiredSkills))
	assert.Equal(t, "go-1", jobs[1].ID)
	assert.Equal(t, "7.5", jobs[2].ID)
	assert.Equal(t, "", jobs[3].ID)
	assert.Equal(t, "no id", jobs[3].Title)

	var job JobPosting
	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &job))
	assert.Error(t, json.Unmarshal([]byte(`{"id": {"n": 1}}`), &job))
}

func TestRankedJob_DecodesAnalysis(t *testing.T) {
	var ranked RankedJob
	err := json.Unmarshal([]byte(`{"id": 9, "title": "Go Engineer", "analysis": {"overallScore": 88, "matchPercentage": 80}}`), &ranked)
	require.NoError(t, err)
	assert.Equal(t, "9", ranked.ID)
	assert.Equal(t, "Go Engineer", ranked.Title)
	assert.Equal(t, 88, ranked.Analysis.OverallScore)
	assert.Equal(t, 80, ranked.Analysis.MatchPercentage)
}

func TestEffectiveLocationType(t *testing.T) {
	assert.Equal(t, LocationTypeHybrid, (&JobPosting{LocationType: LocationTypeHybrid, Remote: true}).EffectiveLocationType())
	assert.Equal(t, LocationTypeRemote, (&JobPosting{Remote: true}).EffectiveLocationType())
	assert.Equal(t, LocationTypeInPerson, (&JobPosting{}).EffectiveLocationType())
}

func TestIsRemote(t *testing.T) {
	assert.True(t, (&JobPosting{Remote: true}).IsRemote())
	assert.True(t, (&JobPosting{LocationType: "remote"}).IsRemote())
	assert.False(t, (&JobPosting{LocationType: LocationTypeOnSite}).IsRemote())
}

func TestNormalizeEmploymentType(t *testing.T) {
	assert.Equal(t, EmploymentFullTime, NormalizeEmploymentType(" Full Time "))
	assert.Equal(t, EmploymentContract, NormalizeEmploymentType("contractor"))
	assert.Equal(t, EmploymentInternship, NormalizeEmploymentType("intern"))
	assert.Equal(t, "Temporary", NormalizeEmploymentType("Temporary"))
}

func TestNormalizeLocationType(t *testing.T) {
	assert.Equal(t, LocationTypeRemote, NormalizeLocationType("WFH"))
	assert.Equal(t, LocationTypeOnSite, NormalizeLocationType("work from office"))
	assert.Equal(t, LocationTypeHybrid, NormalizeLocationType("Flexible"))
	assert.Equal(t, "", NormalizeLocationType("moon base"))
}

func TestValidTrackedStatus(t *testing.T) {
	assert.True(t, ValidTrackedStatus("Interview"))
	assert.False(t, ValidTrackedStatus("ghosted"))
	assert.False(t, ValidTrackedStatus(""))
}
