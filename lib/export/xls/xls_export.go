package xlsexport

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	adminapimodels "job-portal-backend/models/api/admin"
)

const (
	categorySheet = "Salary by Category"
	usersSheet    = "Users"
)

// ExportAnalytics renders the admin analytics snapshot as an xlsx workbook.
func ExportAnalytics(data adminapimodels.AnalyticsData) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(categorySheet)
	if err != nil {
		return nil, errors.Wrap(err, "create category sheet")
	}
	f.SetActiveSheet(idx)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "drop default sheet")
	}

	if err = fillCategorySheet(f, data); err != nil {
		return nil, err
	}
	if err = fillUsersSheet(f, data.UserCounts); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return buf, nil
}

func fillCategorySheet(f *excelize.File, data adminapimodels.AnalyticsData) error {
	row, err := writeHeader(f, categorySheet, 0, []string{"Category", "Average Salary", "Job Count"})
	if err != nil {
		return errors.Wrap(err, "category header")
	}

	style, err := applyDataCellStyle(f)
	if err != nil {
		return errors.Wrap(err, "data cell style")
	}

	for _, rec := range data.CategoryAnalytics {
		row++
		if err = writeStyledRow(f, categorySheet, row, style,
			rec.Category, rec.AvgSalary, rec.Count); err != nil {
			return errors.Wrap(err, "category row")
		}
	}

	row++
	if err = writeStyledRow(f, categorySheet, row, style,
		"Overall Average", data.OverallAvgSalary, ""); err != nil {
		return errors.Wrap(err, "overall average row")
	}
	return nil
}

func fillUsersSheet(f *excelize.File, counts map[string]int64) error {
	if _, err := f.NewSheet(usersSheet); err != nil {
		return errors.Wrap(err, "create users sheet")
	}
	row, err := writeHeader(f, usersSheet, 0, []string{"Role", "Count"})
	if err != nil {
		return errors.Wrap(err, "users header")
	}

	style, err := applyDataCellStyle(f)
	if err != nil {
		return errors.Wrap(err, "data cell style")
	}

	roles := make([]string, 0, len(counts))
	for role := range counts {
		roles = append(roles, role)
	}
	sort.Strings(roles)

	for _, role := range roles {
		row++
		if err = writeStyledRow(f, usersSheet, row, style, role, counts[role]); err != nil {
			return errors.Wrap(err, "users row")
		}
	}
	return nil
}

func applyDataCellStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Family: "Times New Roman",
			Size:   11,
		},
	})
}

func writeStyledRow(f *excelize.File, sheet string, row, style int, values ...interface{}) error {
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(values), row)
	if err != nil {
		return err
	}
	if err = f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return err
	}
	for idx, value := range values {
		if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
			return err
		}
	}
	return nil
}
