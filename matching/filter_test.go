package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobfit/backend/models"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"$80,000", 80000, true},
		{"80000", 80000, true},
		{"$120,000 - $150,000", 120000, true},
		{"120 000 - 150 000 EUR", 120000, true},
		{"$100,000+", 100000, true},
		{"95k", 95000, true},
		{"$95K - $120K", 95000, true},
		{"Up to 60k per year", 60000, true},
		{"45", 45, true},
		{"Competitive", 0, false},
		{"", 0, false},
		{"5", 0, false},
		{"8000", 8000, true},
		{"$8,000/month", 8000, true},
		{"5 years, $80,000", 80000, true},
		{"5k", 5000, true},
		{"$0", 0, false},
		{"1234567", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSalary(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func filterIDs(jobs []*models.JobPosting) []string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func filterPool() []*models.JobPosting {
	return []*models.JobPosting{
		{ID: "sf", Location: "San Francisco, CA", LocationType: models.LocationTypeOnSite, Type: "Full-time", Salary: "$150,000 - $180,000"},
		{ID: "remote-us", Location: "United States", Remote: true, Type: "Contract", Salary: "$70,000"},
		{ID: "jakarta", Location: "Jakarta, Indonesia", LocationType: models.LocationTypeHybrid, Type: "full-time", Salary: "Competitive"},
		{ID: "nyc", Location: "New York, NY", Type: "Part-time", Salary: "90k"},
		{ID: "anywhere", Location: "Remote", LocationType: models.LocationTypeRemote, Type: "Full-time"},
	}
}

func TestFilterJobs(t *testing.T) {
	tests := []struct {
		name    string
		filters models.MatchFilters
		want    []string
	}{
		{
			name: "no filters",
			want: []string{"sf", "remote-us", "jakarta", "nyc", "anywhere"},
		},
		{
			name:    "location substring is case-insensitive",
			filters: models.MatchFilters{Locations: []string{"san francisco", "JAKARTA"}},
			want:    []string{"sf", "jakarta"},
		},
		{
			name:    "remote token matches remote jobs",
			filters: models.MatchFilters{Locations: []string{"remote"}},
			want:    []string{"remote-us", "anywhere"},
		},
		{
			name:    "any sentinel disables location filter",
			filters: models.MatchFilters{Locations: []string{"Tokyo", "Any"}},
			want:    []string{"sf", "remote-us", "jakarta", "nyc", "anywhere"},
		},
		{
			name:    "location type uses effective type",
			filters: models.MatchFilters{LocationTypes: []string{"remote"}},
			want:    []string{"remote-us", "anywhere"},
		},
		{
			name:    "in-person is the effective type of untyped jobs",
			filters: models.MatchFilters{LocationTypes: []string{"In-Person"}},
			want:    []string{"nyc"},
		},
		{
			name:    "employment type",
			filters: models.MatchFilters{EmploymentTypes: []string{"Full-time"}},
			want:    []string{"sf", "jakarta", "anywhere"},
		},
		{
			name:    "min salary keeps unparseable salaries",
			filters: models.MatchFilters{MinSalary: intPtr(85000)},
			want:    []string{"sf", "jakarta", "nyc", "anywhere"},
		},
		{
			name:    "desired pay takes precedence over min salary",
			filters: models.MatchFilters{DesiredPay: strPtr("$100,000"), MinSalary: intPtr(60000)},
			want:    []string{"sf", "jakarta", "anywhere"},
		},
		{
			name:    "unparseable desired pay falls back to min salary",
			filters: models.MatchFilters{DesiredPay: strPtr("negotiable"), MinSalary: intPtr(60000)},
			want:    []string{"sf", "remote-us", "jakarta", "nyc", "anywhere"},
		},
		{
			name: "filters narrow in order",
			filters: models.MatchFilters{
				Locations:       []string{"remote", "San Francisco"},
				LocationTypes:   []string{"Remote", "On-site"},
				EmploymentTypes: []string{"full-time"},
				MinSalary:       intPtr(100000),
			},
			want: []string{"sf", "anywhere"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterJobs(filterPool(), tt.filters)
			assert.Equal(t, tt.want, filterIDs(got))
		})
	}
}
