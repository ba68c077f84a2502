package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	adminapimodels "job-portal-backend/models/api/admin"
)

type stubAnalytics struct {
	categories []adminapimodels.CategoryCount
	statuses   []adminapimodels.StatusCount
	days       []adminapimodels.DayCount
	salaries   []float64
	employers  []adminapimodels.EmployerJobCount
}

func (f stubAnalytics) CategoryCounts() ([]adminapimodels.CategoryCount, error) {
	return f.categories, nil
}

func (f stubAnalytics) StatusDistribution() ([]adminapimodels.StatusCount, error) {
	return f.statuses, nil
}

func (f stubAnalytics) ApplicationsPerDay() ([]adminapimodels.DayCount, error) {
	return f.days, nil
}

func (f stubAnalytics) Salaries() ([]float64, error) {
	return f.salaries, nil
}

func (f stubAnalytics) TopEmployers() ([]adminapimodels.EmployerJobCount, error) {
	return f.employers, nil
}

func (f stubAnalytics) CategoryAnalytics() ([]adminapimodels.CategoryAnalytics, float64, error) {
	return nil, 0, nil
}

func (f stubAnalytics) RoleCounts() (map[string]int64, error) {
	return nil, nil
}

func TestGenerateAll(t *testing.T) {
	t.Run("every chart renders to its fixed file name", func(t *testing.T) {
		dir := t.TempDir()
		handler := NewInstance(stubAnalytics{
			categories: []adminapimodels.CategoryCount{
				{Category: "Engineering", Count: 5},
				{Category: "Sales", Count: 2},
			},
			statuses: []adminapimodels.StatusCount{
				{Status: "Pending", Count: 4},
				{Status: "Accepted", Count: 3},
			},
			days: []adminapimodels.DayCount{
				{Day: "2024-05-10", Count: 2},
				{Day: "2024-05-11", Count: 5},
			},
			salaries: []float64{30000, 55000, 90000, 120000},
			employers: []adminapimodels.EmployerJobCount{
				{EmployerID: "employer-1", JobCount: 7, Name: "Acme Corp"},
				{EmployerID: "employer-2", JobCount: 3, Name: "Globex"},
			},
		}, dir)

		plots := handler.GenerateAll()
		require.Equal(t, 5, len(plots))
		for _, key := range []string{
			KeyJobCategories,
			KeyApplicationStatus,
			KeyApplicationsOverTime,
			KeySalaryDistribution,
			KeyTopEmployers,
		} {
			path, ok := plots[key]
			require.True(t, ok, key)
			require.Equal(t, filepath.Join(dir, key+".png"), path)

			info, err := os.Stat(path)
			require.Nil(t, err, key)
			require.Greater(t, info.Size(), int64(0), key)
		}
	})

	t.Run("charts with no data are omitted", func(t *testing.T) {
		dir := t.TempDir()
		handler := NewInstance(stubAnalytics{}, dir)

		plots := handler.GenerateAll()
		require.Empty(t, plots)

		entries, err := os.ReadDir(dir)
		require.Nil(t, err)
		require.Empty(t, entries)
	})
}
