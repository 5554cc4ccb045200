// Package matching ranks job postings against a user's skill set and derives
// skill-gap statistics and learning recommendations from the best matches.
//
// Every operation in this package is a pure function of its explicit inputs:
// nothing is cached between calls and no input is mutated, so a single Engine
// can serve concurrent requests without locking.
package matching

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNilJob is returned when a job pool contains a nil posting. A nil posting
// is an integration bug upstream and is never silently skipped.
var ErrNilJob = errors.New("job posting is nil")

// Importance modes for skill-gap classification
const (
	// ImportanceSticky keeps the importance of the first job that listed the skill.
	ImportanceSticky = "sticky"
	// ImportanceMaxSeverity upgrades a skill to required as soon as any job requires it.
	ImportanceMaxSeverity = "max-severity"
)

// Policy holds the tunable constants of the scoring and gap algorithms.
type Policy struct {
	// RequiredWeight and PreferredWeight blend the two skill-match
	// percentages into matchPercentage. They must sum to 1.
	RequiredWeight  float64 `yaml:"required_weight" json:"requiredWeight"`
	PreferredWeight float64 `yaml:"preferred_weight" json:"preferredWeight"`

	// CoverageBonus is the maximum uplift awarded for covering every listed skill.
	CoverageBonus float64 `yaml:"coverage_bonus" json:"coverageBonus"`

	// Gap tally weights per missing occurrence
	RequiredGapWeight  int `yaml:"required_gap_weight" json:"requiredGapWeight"`
	PreferredGapWeight int `yaml:"preferred_gap_weight" json:"preferredGapWeight"`

	// TopMissingSkills caps GapReport.TopMissingSkills
	TopMissingSkills int `yaml:"top_missing_skills" json:"topMissingSkills"`

	ImportanceMode string `yaml:"importance_mode" json:"importanceMode"`
}

// DefaultPolicy returns the production scoring policy: required skills
// dominate at 70%, a 20 point coverage bonus, 2/1 gap weights and the top
// 10 gaps reported.
func DefaultPolicy() Policy {
	return Policy{
		RequiredWeight:     0.7,
		PreferredWeight:    0.3,
		CoverageBonus:      20,
		RequiredGapWeight:  2,
		PreferredGapWeight: 1,
		TopMissingSkills:   10,
		ImportanceMode:     ImportanceSticky,
	}
}

// LoadPolicy reads a YAML policy file. Fields absent from the file keep
// their DefaultPolicy values. An empty path returns DefaultPolicy.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return policy, fmt.Errorf("failed to parse policy YAML: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return policy, err
	}
	return policy, nil
}

// Validate checks that the policy is internally consistent.
func (p Policy) Validate() error {
	if p.RequiredWeight < 0 || p.PreferredWeight < 0 {
		return fmt.Errorf("policy error: skill weights must be non-negative")
	}
	if math.Abs(p.RequiredWeight+p.PreferredWeight-1) > 0.001 {
		return fmt.Errorf("policy error: required_weight + preferred_weight must equal 1, got %.3f",
			p.RequiredWeight+p.PreferredWeight)
	}
	if p.CoverageBonus < 0 {
		return fmt.Errorf("policy error: coverage_bonus must be non-negative")
	}
	if p.RequiredGapWeight <= 0 || p.PreferredGapWeight <= 0 {
		return fmt.Errorf("policy error: gap weights must be positive")
	}
	if p.TopMissingSkills <= 0 {
		return fmt.Errorf("policy error: top_missing_skills must be positive")
	}
	switch p.ImportanceMode {
	case ImportanceSticky, ImportanceMaxSeverity:
	default:
		return fmt.Errorf("policy error: unknown importance_mode %q", p.ImportanceMode)
	}
	return nil
}

// roundHalfUp rounds to the nearest integer with halves going up. The small
// epsilon absorbs binary representation error (e.g. 57.49999999 from 0.7*x).
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5 + 1e-9))
}
