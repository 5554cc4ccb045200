package models

// RegisterRequest represents registration request
// @Description User registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
}

// LoginRequest represents login request
// @Description User login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// UpdateProfileRequest represents profile update request. Nil fields are left unchanged.
// @Description Profile update request
type UpdateProfileRequest struct {
	Name        *string       `json:"name,omitempty" example:"Jane Smith"`
	Skills      []string      `json:"skills,omitempty"`
	Preferences *MatchFilters `json:"preferences,omitempty"`
}

// AuthResponse represents authentication response
// @Description Authentication response with JWT token
type AuthResponse struct {
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Login successful"`
}

// ProfileResponse represents user profile response
// @Description User profile response
type ProfileResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message,omitempty" example:"Profile updated successfully"`
}

// CVUploadResponse represents CV upload response
// @Description CV upload response with the skills extracted from it
type CVUploadResponse struct {
	CVUrl   string   `json:"cvUrl" example:"gs://bucket/cvs/user@example.com/resume.pdf"`
	Skills  []string `json:"skills"`
	Message string   `json:"message" example:"CV uploaded successfully"`
}

// MatchRequest ranks a job pool against a skill set.
// Skills default to the authenticated user's stored skills and jobs default
// to the job source results for Query.
// @Description Job matching request
type MatchRequest struct {
	Skills  []string      `json:"skills,omitempty" example:"React,Node.js"`
	Jobs    []*JobPosting `json:"jobs,omitempty"`
	Query   string        `json:"query,omitempty" example:"golang developer jakarta"`
	Filters *MatchFilters `json:"filters,omitempty"`
	TopN    int           `json:"topN,omitempty" example:"10"`
	Limit   int           `json:"limit,omitempty" example:"20"`
}

// MatchResponse is the result of a match request
// @Description Ranked jobs with skill gap report and learning recommendations
type MatchResponse struct {
	RequestID       string           `json:"requestId" example:"3f2c1d9e-8b7a-4c5d-9e1f-2a3b4c5d6e7f"`
	UserSkills      []string         `json:"userSkills"`
	Jobs            RankedJobList    `json:"jobs"`
	GapReport       GapReport        `json:"gapReport"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalResults    int              `json:"totalResults" example:"10"`
	Source          string           `json:"source,omitempty" example:"live"` // request, live, cache, fallback
	Message         string           `json:"message,omitempty" example:"Found 10 matching jobs"`
}

// GapRequest runs gap analysis over a job pool
// @Description Skill gap analysis request
type GapRequest struct {
	Skills          []string      `json:"skills" example:"React,Node.js"`
	Jobs            []*JobPosting `json:"jobs" binding:"required"`
	Filters         *MatchFilters `json:"filters,omitempty"`
	TopN            int           `json:"topN,omitempty" example:"10"`
	Recommendations int           `json:"recommendations,omitempty" example:"5"`
}

// GapResponse is the result of a gap analysis request
// @Description Skill gap report with learning recommendations
type GapResponse struct {
	GapReport       GapReport        `json:"gapReport"`
	Recommendations []Recommendation `json:"recommendations"`
}

// SkillExtractRequest extracts skills from CV text
// @Description Skill extraction request
type SkillExtractRequest struct {
	CVText string `json:"cvText" example:"Jane Doe\nSoftware Engineer with 5 years in Go, PostgreSQL..."`
}

// SkillExtractResponse holds normalized skills
// @Description Extracted skill list
type SkillExtractResponse struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count" example:"12"`
}

// TrackJobRequest upserts a tracked job
// @Description Tracked job upsert request
type TrackJobRequest struct {
	Status string      `json:"status" binding:"required" example:"applied"`
	Notes  string      `json:"notes,omitempty"`
	Job    *JobPosting `json:"job,omitempty"`
}

// TrackedJobsResponse lists a user's tracked jobs
// @Description Tracked jobs list
type TrackedJobsResponse struct {
	Jobs  []TrackedJob `json:"jobs"`
	Count int          `json:"count" example:"3"`
}

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"email is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// WebSearchResponse represents response from web search tool
type WebSearchResponse struct {
	URLs    []string          `json:"urls"`
	Results []JobSearchResult `json:"results,omitempty"`
}

// FetchPageResponse represents response from page fetch
type FetchPageResponse struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	HTML  string `json:"html"`
}

// ExtractJobResponse represents response from job extraction
type ExtractJobResponse struct {
	Job   *JobPosting `json:"job,omitempty"`
	Error string      `json:"error,omitempty"`
}
