package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobfit/backend/agent"
	"github.com/jobfit/backend/auth"
	"github.com/jobfit/backend/events"
	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/models"
)

const querySkillCount = 3

// MatchHandler ranks jobs and analyzes skill gaps
type MatchHandler struct {
	engine      *matching.Engine
	jobs        JobSource
	users       UserStore
	publisher   events.Publisher
	defaultTopN int
}

// NewMatchHandler creates a new match handler. users may be nil when
// accounts are disabled.
func NewMatchHandler(engine *matching.Engine, jobs JobSource, users UserStore, publisher events.Publisher, defaultTopN int) *MatchHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if defaultTopN <= 0 {
		defaultTopN = matching.DefaultGapTopN
	}
	return &MatchHandler{
		engine:      engine,
		jobs:        jobs,
		users:       users,
		publisher:   publisher,
		defaultTopN: defaultTopN,
	}
}

// Match ranks a job pool against the user's skills
// @Summary Match jobs
// @Description Rank jobs by skill match. Skills default to the authenticated user's profile skills and jobs default to the job source results for the query. Returns ranked jobs, a skill gap report over the top matches and learning recommendations.
// @Tags Matching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.MatchRequest false "Match request"
// @Success 200 {object} models.MatchResponse "Ranked jobs"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 502 {object} models.ErrorResponse "Job source failed"
// @Router /match [post]
func (h *MatchHandler) Match(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	skills := req.Skills
	filters := models.MatchFilters{}
	if req.Filters != nil {
		filters = *req.Filters
	}

	claims := auth.GetAuthClaims(c)
	if claims != nil && h.users != nil && (skills == nil || req.Filters == nil) {
		user, err := h.users.GetUserByEmail(ctx, claims.Email)
		if err != nil {
			log.Printf("[MatchHandler] Failed to load profile for %s: %v", claims.Email, err)
		} else {
			if skills == nil {
				skills = user.Skills
			}
			if req.Filters == nil {
				filters = user.Preferences
			}
		}
	}

	jobs := req.Jobs
	source := agent.SourceRequest
	if len(jobs) == 0 {
		if h.jobs == nil {
			respondError(c, http.StatusBadRequest, "Jobs are required", "no job source is configured")
			return
		}

		query := strings.TrimSpace(req.Query)
		if query == "" {
			query = queryFromSkills(skills)
		}

		var stats agent.SearchStats
		var err error
		jobs, stats, err = h.jobs.FetchJobs(ctx, query, filters)
		if err != nil {
			log.Printf("[MatchHandler] Job source failed for %q: %v", query, err)
			respondError(c, http.StatusBadGateway, "Failed to fetch jobs", err.Error())
			return
		}
		source = stats.Source
	}

	result, err := h.engine.Match(skills, jobs, filters, matching.MatchOptions{
		TopN:  h.topN(req.TopN),
		Limit: req.Limit,
	})
	if err != nil {
		if errors.Is(err, matching.ErrNilJob) {
			respondError(c, http.StatusBadRequest, "Invalid job list", err.Error())
			return
		}
		log.Printf("[MatchHandler] Match failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Match failed", "")
		return
	}

	requestID := auth.GetRequestID(c)
	email := ""
	if claims != nil {
		email = claims.Email
	}
	event := events.NewMatchCompleted(requestID, email, source, result)
	if err := h.publisher.PublishMatchCompleted(ctx, event); err != nil {
		log.Printf("[MatchHandler] Failed to publish %s: %v", events.RoutingKeyMatchCompleted, err)
	}

	log.Printf("[MatchHandler] Ranked %d jobs from %s for %d skills", len(result.Jobs), source, len(result.UserSkills))
	c.JSON(http.StatusOK, models.MatchResponse{
		RequestID:       requestID,
		UserSkills:      result.UserSkills,
		Jobs:            result.Jobs,
		GapReport:       result.GapReport,
		Recommendations: result.Recommendations,
		TotalResults:    len(result.Jobs),
		Source:          source,
		Message:         fmt.Sprintf("Found %d matching jobs", len(result.Jobs)),
	})
}

// Gaps analyzes the skills missing across the best matching jobs
// @Summary Analyze skill gaps
// @Description Rank the given jobs and report the skills most often missing among the top matches, with learning recommendations
// @Tags Matching
// @Accept json
// @Produce json
// @Param request body models.GapRequest true "Gap analysis request"
// @Success 200 {object} models.GapResponse "Gap report"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Router /gaps [post]
func (h *MatchHandler) Gaps(c *gin.Context) {
	var req models.GapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	filters := models.MatchFilters{}
	if req.Filters != nil {
		filters = *req.Filters
	}

	ranked, err := h.engine.Rank(req.Skills, req.Jobs, filters)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid job list", err.Error())
		return
	}

	report, recs := h.engine.AnalyzeGaps(ranked, h.topN(req.TopN), req.Recommendations)
	c.JSON(http.StatusOK, models.GapResponse{
		GapReport:       report,
		Recommendations: recs,
	})
}

func (h *MatchHandler) topN(requested int) int {
	if requested > 0 {
		return requested
	}
	return h.defaultTopN
}

// queryFromSkills builds a search query from the leading skills
func queryFromSkills(skills []string) string {
	normalized := normalizeSkills(skills)
	if len(normalized) > querySkillCount {
		normalized = normalized[:querySkillCount]
	}
	return strings.Join(normalized, " ")
}
