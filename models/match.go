package models

import "encoding/json"

// MatchAnalysis is the scored comparison of one job's skill requirements
// against a user's skill set.
type MatchAnalysis struct {
	MatchPercentage         int `json:"matchPercentage"`
	RequiredSkillsMatchPct  int `json:"requiredSkillsMatchPct"`
	PreferredSkillsMatchPct int `json:"preferredSkillsMatchPct"`
	OverallScore            int `json:"overallScore"` // ranking key

	MatchedRequiredSkills  []string `json:"matchedRequiredSkills"`
	MatchedPreferredSkills []string `json:"matchedPreferredSkills"`
	MissingRequiredSkills  []string `json:"missingRequiredSkills"`
	MissingPreferredSkills []string `json:"missingPreferredSkills"`

	TotalRequiredSkills  int `json:"totalRequiredSkills"`
	TotalPreferredSkills int `json:"totalPreferredSkills"`
	TotalMatchedSkills   int `json:"totalMatchedSkills"`
}

// RankedJob is a JobPosting with its match analysis
type RankedJob struct {
	JobPosting
	Analysis MatchAnalysis `json:"analysis"`
}

// UnmarshalJSON decodes the posting fields and the analysis separately so
// JobPosting's own decoder does not swallow the analysis.
func (r *RankedJob) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.JobPosting); err != nil {
		return err
	}
	var aux struct {
		Analysis MatchAnalysis `json:"analysis"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Analysis = aux.Analysis
	return nil
}

// RankedJobList is ordered by Analysis.OverallScore, highest first
type RankedJobList []RankedJob

// Importance values for skill gaps
const (
	ImportanceRequired  = "required"
	ImportancePreferred = "preferred"
)

// SkillGapEntry aggregates one missing skill across a set of ranked jobs
type SkillGapEntry struct {
	Skill            string `json:"skill"`
	Frequency        int    `json:"frequency"`
	Importance       string `json:"importance"`
	OpportunityCount int    `json:"opportunityCount"`
}

// GapReport summarizes missing skills across the top ranked jobs.
// AverageMatchPercentage is nil when no job was analyzed.
type GapReport struct {
	TopMissingSkills       []SkillGapEntry `json:"topMissingSkills"`
	TotalJobsAnalyzed      int             `json:"totalJobsAnalyzed"`
	AverageMatchPercentage *float64        `json:"averageMatchPercentage"`
}

// Priority values for recommendations
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Recommendation is learning guidance derived from a SkillGapEntry
type Recommendation struct {
	Skill                 string   `json:"skill"`
	Priority              string   `json:"priority"`
	Impact                string   `json:"impact"`
	LearningPath          string   `json:"learningPath"`
	EstimatedLearningTime string   `json:"estimatedLearningTime"`
	Resources             []string `json:"resources"`
}

// MatchFilters are the user's search preferences. Absent fields mean "no filter".
type MatchFilters struct {
	Locations       []string `json:"locations,omitempty" firestore:"locations,omitempty"`
	LocationTypes   []string `json:"locationTypes,omitempty" firestore:"locationTypes,omitempty"` // On-site, Hybrid, Remote
	EmploymentTypes []string `json:"employmentTypes,omitempty" firestore:"employmentTypes,omitempty"`
	DesiredPay      *string  `json:"desiredPay,omitempty" firestore:"desiredPay,omitempty"`
	MinSalary       *int     `json:"minSalary,omitempty" firestore:"minSalary,omitempty"`
}
