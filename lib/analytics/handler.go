package analytics

import (
	"job-portal-backend/db"
	applicationstore "job-portal-backend/lib/application/store"
	jobstore "job-portal-backend/lib/job/store"
	userstore "job-portal-backend/lib/user/store"
	"job-portal-backend/models"
	adminapimodels "job-portal-backend/models/api/admin"

	"github.com/pkg/errors"
)

// Provider produces the numeric summaries behind the admin pages. It does
// no rendering, the charts package turns these into images.
type Provider interface {
	CategoryCounts() (list []adminapimodels.CategoryCount, err error)
	StatusDistribution() (list []adminapimodels.StatusCount, err error)
	ApplicationsPerDay() (list []adminapimodels.DayCount, err error)
	Salaries() (list []float64, err error)
	TopEmployers() (list []adminapimodels.EmployerJobCount, err error)
	CategoryAnalytics() (list []adminapimodels.CategoryAnalytics, overallAvgSalary float64, err error)
	RoleCounts() (counts map[string]int64, err error)
}

const topEmployersLimit = 10

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		userstore.NewInstance(db.DB),
		jobstore.NewInstance(db.DB),
		applicationstore.NewInstance(db.DB),
	)
}

func NewInstance(userStore userstore.Provider, jobStore jobstore.Provider,
	applicationStore applicationstore.Provider) Provider {
	return impl{
		userStore:        userStore,
		jobStore:         jobStore,
		applicationStore: applicationStore,
	}
}

type impl struct {
	userStore        userstore.Provider
	jobStore         jobstore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) CategoryCounts() (list []adminapimodels.CategoryCount, err error) {
	return i.jobStore.CategoryCounts()
}

func (i impl) StatusDistribution() (list []adminapimodels.StatusCount, err error) {
	return i.applicationStore.StatusCounts()
}

func (i impl) ApplicationsPerDay() (list []adminapimodels.DayCount, err error) {
	return i.applicationStore.CountsByDay()
}

func (i impl) Salaries() (list []float64, err error) {
	return i.jobStore.Salaries()
}

func (i impl) TopEmployers() (list []adminapimodels.EmployerJobCount, err error) {
	list, err = i.jobStore.TopEmployers(topEmployersLimit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, rec := range list {
		ids = append(ids, rec.EmployerID)
	}
	employers, err := i.userStore.ListByIDs(ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve employer names")
	}
	nameByID := make(map[string]string, len(employers))
	for _, rec := range employers {
		nameByID[rec.ID] = rec.Name
	}
	for idx := range list {
		if name, ok := nameByID[list[idx].EmployerID]; ok {
			list[idx].Name = name
		} else {
			list[idx].Name = list[idx].EmployerID
		}
	}
	return list, nil
}

func (i impl) CategoryAnalytics() (list []adminapimodels.CategoryAnalytics, overallAvgSalary float64, err error) {
	list, err = i.jobStore.CategoryStats()
	if err != nil {
		return nil, 0, err
	}
	return list, OverallAverage(list), nil
}

// OverallAverage is the unweighted mean of the per-category averages, not a
// weighted global average. The skew for uneven categories is a known,
// deliberately preserved property of this report.
func OverallAverage(list []adminapimodels.CategoryAnalytics) float64 {
	if len(list) == 0 {
		return 0
	}
	var total float64
	for _, rec := range list {
		total += rec.AvgSalary
	}
	return total / float64(len(list))
}

// RoleCounts covers job seekers and employers; admin accounts are excluded
// from the report.
func (i impl) RoleCounts() (counts map[string]int64, err error) {
	counts = map[string]int64{}
	for _, role := range []models.UserRole{models.UserRoleJobSeeker, models.UserRoleEmployer} {
		count, err := i.userStore.CountByRole(role)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count users by role")
		}
		counts[string(role)] = count
	}
	return counts, nil
}

type HistogramBin struct {
	Low   float64
	High  float64
	Count int64
}

// Histogram splits values into bins of equal width between the minimum and
// maximum value, the way the salary distribution chart bins its data. All
// identical values land in a single full-range bin.
func Histogram(values []float64, bins int) []HistogramBin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}
	low, high := values[0], values[0]
	for _, v := range values {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	if low == high {
		return []HistogramBin{{Low: low, High: high, Count: int64(len(values))}}
	}
	width := (high - low) / float64(bins)
	result := make([]HistogramBin, bins)
	for idx := range result {
		result[idx].Low = low + float64(idx)*width
		result[idx].High = result[idx].Low + width
	}
	for _, v := range values {
		idx := int((v - low) / width)
		if idx >= bins { // the maximum falls into the last bin
			idx = bins - 1
		}
		result[idx].Count++
	}
	return result
}
