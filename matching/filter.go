package matching

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jobfit/backend/models"
)

// salaryPattern matches a 1-3 digit group, an optional thousands group
// separated by a comma or space, and an optional "k" multiplier. The
// trailing non-digit keeps "80000" from being read as 800.
var salaryPattern = regexp.MustCompile(`(\d{1,3})(?:[,\s]?(\d{3}))?([kK])?(?:\D|$)`)

// ParseSalary extracts the first salary figure from free text using a
// lenient heuristic: "$80,000" is 80000, "120 000 - 150 000" is 120000,
// "95k" is 95000 and "$8,000/month" is 8000. A bare single digit or a zero
// figure is not a salary. It reports false when no figure can be found.
func ParseSalary(text string) (int, bool) {
	for _, m := range salaryPattern.FindAllStringSubmatchIndex(text, -1) {
		// skip matches that start inside a longer number
		if m[0] > 0 && isDigit(text[m[0]-1]) {
			continue
		}

		lead := text[m[2]:m[3]]
		thousands := ""
		if m[4] >= 0 {
			thousands = text[m[4]:m[5]]
		}
		hasK := m[6] >= 0

		if thousands == "" && !hasK && len(lead) < 2 {
			continue
		}

		value, err := strconv.Atoi(lead + thousands)
		if err != nil {
			continue
		}
		if thousands == "" && hasK {
			value *= 1000
		}
		if value == 0 {
			continue
		}
		return value, true
	}
	return 0, false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// filterJobs applies the location, location-type, employment-type and
// minimum-salary filters in that order. Each stage narrows the output of the
// previous one; an unset filter passes every job through.
func filterJobs(jobs []*models.JobPosting, f models.MatchFilters) []*models.JobPosting {
	out := jobs

	if locations := activeLocations(f.Locations); len(locations) > 0 {
		out = keep(out, func(j *models.JobPosting) bool { return matchesLocation(j, locations) })
	}

	if types := nonEmpty(f.LocationTypes); len(types) > 0 {
		out = keep(out, func(j *models.JobPosting) bool {
			return equalsAnyFold(j.EffectiveLocationType(), types)
		})
	}

	if types := nonEmpty(f.EmploymentTypes); len(types) > 0 {
		out = keep(out, func(j *models.JobPosting) bool {
			return equalsAnyFold(j.Type, types)
		})
	}

	if minimum, ok := effectiveMinSalary(f); ok {
		out = keep(out, func(j *models.JobPosting) bool {
			salary, ok := ParseSalary(j.Salary)
			// unparseable salary text is kept
			return !ok || salary >= minimum
		})
	}

	return out
}

// effectiveMinSalary resolves the minimum from desiredPay when it parses,
// falling back to the explicit minSalary.
func effectiveMinSalary(f models.MatchFilters) (int, bool) {
	if f.DesiredPay != nil {
		if v, ok := ParseSalary(*f.DesiredPay); ok {
			return v, true
		}
	}
	if f.MinSalary != nil {
		return *f.MinSalary, true
	}
	return 0, false
}

// activeLocations returns the trimmed location tokens, or nil when the list
// is empty or contains the "any" sentinel.
func activeLocations(locations []string) []string {
	out := nonEmpty(locations)
	for _, loc := range out {
		if strings.EqualFold(loc, "any") {
			return nil
		}
	}
	return out
}

func matchesLocation(job *models.JobPosting, locations []string) bool {
	jobLocation := strings.ToLower(job.Location)
	for _, loc := range locations {
		if strings.Contains(jobLocation, strings.ToLower(loc)) {
			return true
		}
		if strings.EqualFold(loc, "remote") && job.IsRemote() {
			return true
		}
	}
	return false
}

func keep(jobs []*models.JobPosting, pred func(*models.JobPosting) bool) []*models.JobPosting {
	out := make([]*models.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if pred(j) {
			out = append(out, j)
		}
	}
	return out
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func equalsAnyFold(value string, candidates []string) bool {
	value = strings.TrimSpace(value)
	for _, c := range candidates {
		if strings.EqualFold(value, c) {
			return true
		}
	}
	return false
}
