package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/models"
	"github.com/jobfit/backend/tools"
)

func TestExtractSkills(t *testing.T) {
	env := newTestEnv(t)
	env.skills.skills = []string{"Go", " go ", "Terraform", ""}

	t.Run("json text", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/skills/extract", "", models.SkillExtractRequest{CVText: "Go and Terraform"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp models.SkillExtractResponse
		decode(t, w, &resp)
		assert.Equal(t, []string{"Go", "Terraform"}, resp.Skills)
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("form text", func(t *testing.T) {
		w := env.upload("/api/skills/extract", "", map[string]string{"cv_text": "Go and Terraform"}, "", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("file", func(t *testing.T) {
		w := env.upload("/api/skills/extract", "", nil, "resume.md", []byte("# Jane\nGo, Terraform"))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("empty text", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/skills/extract", "", models.SkillExtractRequest{CVText: "   "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty form", func(t *testing.T) {
		w := env.upload("/api/skills/extract", "", map[string]string{"cv_text": ""}, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("extractor failure", func(t *testing.T) {
		env.skills.err = errors.New("quota exceeded")
		defer func() { env.skills.err = nil }()

		w := env.do(http.MethodPost, "/api/skills/extract", "", models.SkillExtractRequest{CVText: "Go"})
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestExtractSkills_NotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	Routes{Skills: NewSkillHandler(NewCVReader(nil))}.Register(router, nil)
	env := &testEnv{router: router}

	w := env.do(http.MethodPost, "/api/skills/extract", "", models.SkillExtractRequest{CVText: "Go"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCVReader_PDFWithoutText(t *testing.T) {
	skills := &fakeSkills{skills: []string{"Go", "GO", "Rust"}}
	reader := NewCVReader(skills)

	got, err := reader.SkillsFromFile(context.Background(), "scan.pdf", []byte("%PDF-1.4\n%%EOF"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Rust"}, got)
	assert.Equal(t, 1, skills.pdfCalls)
}

func TestCVErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, cvErrorStatus(errUnsupportedFormat))
	assert.Equal(t, http.StatusBadRequest, cvErrorStatus(errCVTooLarge))
	assert.Equal(t, http.StatusServiceUnavailable, cvErrorStatus(errSkillsUnavailable))
	assert.Equal(t, http.StatusBadGateway, cvErrorStatus(errors.New("upstream")))
}

func TestToolsList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := matching.NewEngine(matching.DefaultPolicy(), nil)
	registry := tools.NewToolRegistry(
		tools.NewScoreJobTool(engine),
		tools.NewRankJobsTool(engine),
	)

	router := gin.New()
	Routes{Tools: NewToolsHandler(registry)}.Register(router, nil)
	env := &testEnv{router: router}

	w := env.do(http.MethodGet, "/api/tools", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var defs []tools.Definition
	decode(t, w, &defs)
	require.Len(t, defs, 2)
	assert.Equal(t, "rank_jobs", defs[0].Name)
	assert.Equal(t, "score_job_match", defs[1].Name)
}
