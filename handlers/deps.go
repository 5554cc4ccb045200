package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobfit/backend/agent"
	"github.com/jobfit/backend/auth"
	"github.com/jobfit/backend/models"
)

// UserStore persists user accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	UpdateUser(ctx context.Context, email string, updates map[string]interface{}) error
	UpdateUserCV(ctx context.Context, email, cvURL string, skills []string) error
	UpdateUserProfile(ctx context.Context, email string, req models.UpdateProfileRequest) error
}

// TrackedJobStore persists a user's saved and applied jobs
type TrackedJobStore interface {
	UpsertTrackedJob(ctx context.Context, email string, tracked *models.TrackedJob) error
	ListTrackedJobs(ctx context.Context, email string) ([]models.TrackedJob, error)
	DeleteTrackedJob(ctx context.Context, email, jobID string) error
}

// GoogleVerifier verifies Google Sign-In ID tokens
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleUserInfo, error)
}

// SkillExtractor reads skills out of CV text or a PDF
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, cvText string) ([]string, error)
	ExtractSkillsFromPDF(ctx context.Context, pdfData []byte) ([]string, error)
}

// JobSource supplies the job pool for a query
type JobSource interface {
	FetchJobs(ctx context.Context, query string, filters models.MatchFilters) ([]*models.JobPosting, agent.SearchStats, error)
}

func respondError(c *gin.Context, status int, message, details string) {
	c.JSON(status, models.ErrorResponse{
		Error:   message,
		Code:    status,
		Details: details,
	})
}

// requireClaims returns the JWT claims or writes a 401
func requireClaims(c *gin.Context) (*auth.Claims, bool) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", "")
		return nil, false
	}
	return claims, true
}
