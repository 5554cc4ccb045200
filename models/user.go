package models

import (
	"strings"
	"time"
)

// Auth providers
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// User represents a user in Firestore
// @Description User account information
type User struct {
	ID          string       `json:"id" firestore:"-" example:"user@example.com"`
	Email       string       `json:"email" firestore:"email" example:"user@example.com"`
	Name        string       `json:"name" firestore:"name" example:"Jane Doe"`
	Password    string       `json:"-" firestore:"password"` // Hashed password, never sent to client
	CVUrl       string       `json:"cvUrl" firestore:"cvUrl" example:"gs://bucket/cvs/user@example.com/resume.pdf"`
	Skills      []string     `json:"skills" firestore:"skills"`
	Preferences MatchFilters `json:"preferences" firestore:"preferences"`
	Provider    string       `json:"provider" firestore:"provider" example:"email"` // "email" or "google"
	GoogleID    string       `json:"-" firestore:"googleId,omitempty"`
	CreatedAt   time.Time    `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" firestore:"updatedAt"`
}

// Tracked job statuses
const (
	TrackedStatusSaved     = "saved"
	TrackedStatusApplied   = "applied"
	TrackedStatusInterview = "interview"
	TrackedStatusOffer     = "offer"
	TrackedStatusRejected  = "rejected"
)

// ValidTrackedStatus reports whether status is a known tracked job status
func ValidTrackedStatus(status string) bool {
	switch strings.ToLower(status) {
	case TrackedStatusSaved, TrackedStatusApplied, TrackedStatusInterview, TrackedStatusOffer, TrackedStatusRejected:
		return true
	}
	return false
}

// TrackedJob is a job the user bookmarked, keyed by job ID per user
// @Description Saved or applied job
type TrackedJob struct {
	JobID     string     `json:"jobId" firestore:"jobId" example:"job-123"`
	Status    string     `json:"status" firestore:"status" example:"applied"`
	Notes     string     `json:"notes,omitempty" firestore:"notes,omitempty"`
	Job       JobPosting `json:"job" firestore:"job"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" firestore:"updatedAt"`
}
