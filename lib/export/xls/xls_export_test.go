package xlsexport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	adminapimodels "job-portal-backend/models/api/admin"
)

func TestExportAnalytics(t *testing.T) {
	data := adminapimodels.AnalyticsData{
		CategoryAnalytics: []adminapimodels.CategoryAnalytics{
			{Category: "Engineering", AvgSalary: 90000, Count: 3},
			{Category: "Sales", AvgSalary: 60000, Count: 2},
		},
		OverallAvgSalary: 75000,
		UserCounts: map[string]int64{
			"job_seeker": 12,
			"employer":   4,
		},
	}

	buf, err := ExportAnalytics(data)
	require.Nil(t, err)
	require.NotNil(t, buf)
	require.Greater(t, buf.Len(), 0)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()

	t.Run("category sheet holds rows and the overall average", func(t *testing.T) {
		header, err := f.GetCellValue(categorySheet, "A1")
		require.Nil(t, err)
		require.Equal(t, "Category", header)

		first, err := f.GetCellValue(categorySheet, "A2")
		require.Nil(t, err)
		require.Equal(t, "Engineering", first)

		label, err := f.GetCellValue(categorySheet, "A4")
		require.Nil(t, err)
		require.Equal(t, "Overall Average", label)

		value, err := f.GetCellValue(categorySheet, "B4")
		require.Nil(t, err)
		require.Equal(t, "75000", value)
	})

	t.Run("users sheet lists roles alphabetically", func(t *testing.T) {
		role, err := f.GetCellValue(usersSheet, "A2")
		require.Nil(t, err)
		require.Equal(t, "employer", role)

		count, err := f.GetCellValue(usersSheet, "B3")
		require.Nil(t, err)
		require.Equal(t, "12", count)
	})
}
