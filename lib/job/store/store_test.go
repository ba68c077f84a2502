package jobstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	jobsapimodels "job-portal-backend/models/api/jobs"
	dbmodels "job-portal-backend/models/db"
)

func TestMatchesFilter(t *testing.T) {
	rec := dbmodels.JobPost{
		Title:        "Senior Go Developer",
		Description:  "Backend services",
		Requirements: "5 years of Go",
		Salary:       120000,
		Category:     "Engineering",
		Location:     "Berlin, Germany",
		CompanyName:  "Acme Corp",
	}

	t.Run("empty filter matches everything", func(t *testing.T) {
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{}))
	})

	t.Run("search is case-insensitive across four fields", func(t *testing.T) {
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{Search: "go developer"}))
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{Search: "ACME"}))
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{Search: "backend"}))
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{Search: "years of go"}))
		require.False(t, MatchesFilter(rec, jobsapimodels.JobFilter{Search: "python"}))
	})

	t.Run("category is an exact match", func(t *testing.T) {
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{Category: "Engineering"}))
		require.False(t, MatchesFilter(rec, jobsapimodels.JobFilter{Category: "engineering"}))
		require.False(t, MatchesFilter(rec, jobsapimodels.JobFilter{Category: "Sales"}))
	})

	t.Run("location is a case-insensitive substring", func(t *testing.T) {
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{Location: "berlin"}))
		require.False(t, MatchesFilter(rec, jobsapimodels.JobFilter{Location: "Paris"}))
	})

	t.Run("min salary is a lower bound", func(t *testing.T) {
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{MinSalary: "120000"}))
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{MinSalary: "100000"}))
		require.False(t, MatchesFilter(rec, jobsapimodels.JobFilter{MinSalary: "150000"}))
	})

	t.Run("non-numeric min salary is ignored", func(t *testing.T) {
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{MinSalary: "a lot"}))
	})

	t.Run("filters compose with AND", func(t *testing.T) {
		require.True(t, MatchesFilter(rec, jobsapimodels.JobFilter{
			Search:    "go",
			Category:  "Engineering",
			Location:  "germany",
			MinSalary: "100000",
		}))
		require.False(t, MatchesFilter(rec, jobsapimodels.JobFilter{
			Search:    "go",
			Category:  "Engineering",
			Location:  "germany",
			MinSalary: "200000",
		}))
	})
}
