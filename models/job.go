package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexibleStringSlice can unmarshal from a []string, a mixed array, a single
// string or null. Non-string array members are dropped.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	var arr []interface{}
	if err := json.Unmarshal(data, &arr); err == nil {
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		*f = out
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if strings.TrimSpace(str) != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// Anything else (null, numbers, objects) is treated as an empty list
	*f = []string{}
	return nil
}

// JobPosting represents one open position as delivered by a job source.
// Only ID and the two skill lists are interpreted by the matching engine;
// every other field is carried through unchanged.
type JobPosting struct {
	ID           string `json:"id" firestore:"id"`
	Title        string `json:"title" firestore:"title"`
	Company      string `json:"company" firestore:"company"`
	Description  string `json:"description,omitempty" firestore:"description,omitempty"`
	Location     string `json:"location" firestore:"location"`
	LocationType string `json:"locationType,omitempty" firestore:"locationType,omitempty"` // On-site, Hybrid, Remote
	Remote       bool   `json:"remote,omitempty" firestore:"remote,omitempty"`
	Type         string `json:"type,omitempty" firestore:"type,omitempty"` // Full-time, Part-time, Contract, ...
	Salary       string `json:"salary,omitempty" firestore:"salary,omitempty"`
	URL          string `json:"url,omitempty" firestore:"url,omitempty"`
	Source       string `json:"source,omitempty" firestore:"source,omitempty"`
	DatePosted   string `json:"datePosted,omitempty" firestore:"datePosted,omitempty"`

	RequiredSkills  FlexibleStringSlice `json:"requiredSkills" firestore:"requiredSkills"`
	PreferredSkills FlexibleStringSlice `json:"preferredSkills" firestore:"preferredSkills"`

	ExperienceLevel string              `json:"experienceLevel,omitempty" firestore:"experienceLevel,omitempty"` // entry, mid, senior, lead
	Benefits        FlexibleStringSlice `json:"benefits,omitempty" firestore:"benefits,omitempty"`
}

// UnmarshalJSON accepts the id as a JSON string or number. A numeric id
// keeps its literal text, so 42 becomes "42".
func (j *JobPosting) UnmarshalJSON(data []byte) error {
	type plain JobPosting
	aux := struct {
		ID json.RawMessage `json:"id"`
		*plain
	}{plain: (*plain)(j)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := parseJobID(aux.ID)
	if err != nil {
		return err
	}
	j.ID = id
	return nil
}

func parseJobID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("job id must be a string or number, got %s", raw)
	}
	return n.String(), nil
}

// JobSearchResult represents a single search result from PSE
type JobSearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// LocationType constants
const (
	LocationTypeOnSite   = "On-site"
	LocationTypeHybrid   = "Hybrid"
	LocationTypeRemote   = "Remote"
	LocationTypeInPerson = "In-Person" // effective type when nothing else is known
)

// EmploymentType constants
const (
	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentInternship = "Internship"
	EmploymentFreelance  = "Freelance"
)

// ExperienceLevel constants
const (
	ExperienceLevelEntry  = "entry"
	ExperienceLevelMid    = "mid"
	ExperienceLevelSenior = "senior"
	ExperienceLevelLead   = "lead"
)

// NormalizeEmploymentType normalizes various employment type strings to standard values
func NormalizeEmploymentType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "full-time", "full time", "fulltime", "full_time":
		return EmploymentFullTime
	case "part-time", "part time", "parttime", "part_time":
		return EmploymentPartTime
	case "contract", "contractor":
		return EmploymentContract
	case "internship", "intern":
		return EmploymentInternship
	case "freelance":
		return EmploymentFreelance
	default:
		return raw
	}
}

// NormalizeLocationType normalizes various work-site strings to standard values.
// Unrecognized values return "".
func NormalizeLocationType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "remote", "work from home", "wfh":
		return LocationTypeRemote
	case "onsite", "on-site", "on site", "office", "wfo", "work from office":
		return LocationTypeOnSite
	case "hybrid", "flexible":
		return LocationTypeHybrid
	default:
		return ""
	}
}

// EffectiveLocationType returns the explicit location type, "Remote" when only
// the remote flag is set, and "In-Person" otherwise.
func (j *JobPosting) EffectiveLocationType() string {
	if j.LocationType != "" {
		return j.LocationType
	}
	if j.Remote {
		return LocationTypeRemote
	}
	return LocationTypeInPerson
}

// IsRemote reports whether the job is flagged remote or has a remote location type.
func (j *JobPosting) IsRemote() bool {
	return j.Remote || strings.EqualFold(j.LocationType, LocationTypeRemote)
}
