package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobfit/backend/agent"
	"github.com/jobfit/backend/models"
)

func testPool() []*models.JobPosting {
	return []*models.JobPosting{
		{
			ID:              "java-1",
			Title:           "Backend Engineer",
			Company:         "Acme",
			RequiredSkills:  models.FlexibleStringSlice{"Java", "Go"},
			PreferredSkills: models.FlexibleStringSlice{},
		},
		{
			ID:              "go-1",
			Title:           "Go Engineer",
			Company:         "Globex",
			RequiredSkills:  models.FlexibleStringSlice{"Go", "SQL"},
			PreferredSkills: models.FlexibleStringSlice{"Docker"},
		},
	}
}

func gapSkills(report models.GapReport) []string {
	out := make([]string, 0, len(report.TopMissingSkills))
	for _, entry := range report.TopMissingSkills {
		out = append(out, entry.Skill)
	}
	return out
}

func TestMatch_RequestJobs(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/match", "", models.MatchRequest{
		Skills: []string{"go", "sql"},
		Jobs:   testPool(),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.MatchResponse
	decode(t, w, &resp)
	assert.Equal(t, agent.SourceRequest, resp.Source)
	assert.Equal(t, []string{"go", "sql"}, resp.UserSkills)
	require.Len(t, resp.Jobs, 2)
	assert.Equal(t, "go-1", resp.Jobs[0].ID)
	assert.Equal(t, 100, resp.Jobs[0].Analysis.RequiredSkillsMatchPct)
	assert.Equal(t, 2, resp.TotalResults)
	assert.ElementsMatch(t, []string{"Java", "Docker"}, gapSkills(resp.GapReport))
	assert.Empty(t, env.jobs.queries)

	require.Len(t, env.publisher.events, 1)
	event := env.publisher.events[0]
	assert.Equal(t, agent.SourceRequest, event.Source)
	assert.Equal(t, "go-1", event.TopJobID)
	assert.Equal(t, 2, event.JobCount)
	assert.Empty(t, event.UserEmail)
}

func TestMatch_Limit(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/match", "", models.MatchRequest{
		Skills: []string{"Go"},
		Jobs:   testPool(),
		Limit:  1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MatchResponse
	decode(t, w, &resp)
	assert.Len(t, resp.Jobs, 1)
	assert.Equal(t, 2, resp.GapReport.TotalJobsAnalyzed)
}

func TestMatch_ProfileDefaultsAndJobSource(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedUser(t, "jane@example.com", []string{"Go", "SQL", "Docker", "Kubernetes"})
	env.jobs.jobs = testPool()

	w := env.do(http.MethodPost, "/api/match", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.MatchResponse
	decode(t, w, &resp)
	assert.Equal(t, agent.SourceCache, resp.Source)
	assert.Equal(t, []string{"Go", "SQL", "Docker", "Kubernetes"}, resp.UserSkills)
	require.Len(t, resp.Jobs, 2)
	assert.Equal(t, "go-1", resp.Jobs[0].ID)

	require.Len(t, env.jobs.queries, 1)
	assert.Equal(t, "Go SQL Docker", env.jobs.queries[0])

	require.Len(t, env.publisher.events, 1)
	assert.Equal(t, "jane@example.com", env.publisher.events[0].UserEmail)
}

func TestMatch_ExplicitQuery(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.jobs = testPool()

	w := env.do(http.MethodPost, "/api/match", "", models.MatchRequest{
		Skills: []string{"Go"},
		Query:  " golang jakarta ",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"golang jakarta"}, env.jobs.queries)
}

func TestMatch_JobSourceError(t *testing.T) {
	env := newTestEnv(t)
	env.jobs.err = errors.New("search quota exceeded")

	w := env.do(http.MethodPost, "/api/match", "", models.MatchRequest{Skills: []string{"Go"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, env.publisher.events)
}

func TestMatch_NilJob(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/match", "", `{"skills":["Go"],"jobs":[{"id":"a","requiredSkills":["Go"]},null]}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	decode(t, w, &resp)
	assert.Contains(t, resp.Details, "index 1")
}

func TestMatch_InvalidBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/match", "", `{"skills":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGaps(t *testing.T) {
	env := newTestEnv(t)

	t.Run("report", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/gaps", "", models.GapRequest{
			Skills:          []string{"Go"},
			Jobs:            testPool(),
			Recommendations: 1,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp models.GapResponse
		decode(t, w, &resp)
		assert.Equal(t, 2, resp.GapReport.TotalJobsAnalyzed)
		require.NotNil(t, resp.GapReport.AverageMatchPercentage)
		assert.ElementsMatch(t, []string{"Java", "SQL", "Docker"}, gapSkills(resp.GapReport))
		assert.Len(t, resp.Recommendations, 1)
	})

	t.Run("missing jobs", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/gaps", "", map[string]interface{}{"skills": []string{"Go"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty pool", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/gaps", "", `{"skills":["Go"],"jobs":[]}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.GapResponse
		decode(t, w, &resp)
		assert.Zero(t, resp.GapReport.TotalJobsAnalyzed)
		assert.Nil(t, resp.GapReport.AverageMatchPercentage)
	})
}

func TestQueryFromSkills(t *testing.T) {
	assert.Equal(t, "", queryFromSkills(nil))
	assert.Equal(t, "Go", queryFromSkills([]string{" Go ", "go"}))
	assert.Equal(t, "Go SQL Docker", queryFromSkills([]string{"Go", "SQL", "Docker", "AWS"}))
}
