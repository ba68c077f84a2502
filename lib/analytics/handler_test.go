package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"job-portal-backend/models"
	adminapimodels "job-portal-backend/models/api/admin"
	jobsapimodels "job-portal-backend/models/api/jobs"
	dbmodels "job-portal-backend/models/db"
)

type stubUserStore struct {
	users      map[string]dbmodels.User
	roleCounts map[models.UserRole]int64
}

func (f stubUserStore) Create(rec dbmodels.User) (string, error)                  { return "", nil }
func (f stubUserStore) Update(userID string, updMap map[string]interface{}) error { return nil }
func (f stubUserStore) GetByID(userID string) (*dbmodels.User, error)             { return nil, nil }
func (f stubUserStore) FindByEmail(email string) (*dbmodels.User, error)          { return nil, nil }
func (f stubUserStore) ExistByEmail(email string) (bool, error)                   { return false, nil }
func (f stubUserStore) ListByIDs(ids []string) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	for _, id := range ids {
		if rec, ok := f.users[id]; ok {
			list = append(list, rec)
		}
	}
	return list, nil
}
func (f stubUserStore) ListRecent(limit int) ([]dbmodels.User, error) { return nil, nil }
func (f stubUserStore) Count() (int64, error)                         { return 0, nil }
func (f stubUserStore) CountByRole(role models.UserRole) (int64, error) {
	return f.roleCounts[role], nil
}

type stubJobStore struct {
	stats     []adminapimodels.CategoryAnalytics
	employers []adminapimodels.EmployerJobCount
}

func (f stubJobStore) Create(rec dbmodels.JobPost) (string, error)      { return "", nil }
func (f stubJobStore) GetByID(id string) (*dbmodels.JobPost, error)     { return nil, nil }
func (f stubJobStore) List(filter jobsapimodels.JobFilter) ([]dbmodels.JobPost, error) {
	return nil, nil
}
func (f stubJobStore) ListByEmployer(employerID string) ([]dbmodels.JobPostExt, error) {
	return nil, nil
}
func (f stubJobStore) ListRecent(limit int) ([]dbmodels.JobPost, error) { return nil, nil }
func (f stubJobStore) Count() (int64, error)                            { return 0, nil }
func (f stubJobStore) CategoryCounts() ([]adminapimodels.CategoryCount, error) {
	return nil, nil
}
func (f stubJobStore) CategoryStats() ([]adminapimodels.CategoryAnalytics, error) {
	return f.stats, nil
}
func (f stubJobStore) Salaries() ([]float64, error) { return nil, nil }
func (f stubJobStore) TopEmployers(limit int) ([]adminapimodels.EmployerJobCount, error) {
	if len(f.employers) > limit {
		return f.employers[:limit], nil
	}
	return f.employers, nil
}

type stubApplicationStore struct{}

func (f stubApplicationStore) Create(rec dbmodels.Application) (string, error)  { return "", nil }
func (f stubApplicationStore) GetByID(id string) (*dbmodels.Application, error) { return nil, nil }
func (f stubApplicationStore) Exists(jobID, jobSeekerID string) (bool, error)   { return false, nil }
func (f stubApplicationStore) ListByJobSeeker(jobSeekerID string) ([]dbmodels.Application, error) {
	return nil, nil
}
func (f stubApplicationStore) ListByJobIDs(jobIDs []string) ([]dbmodels.Application, error) {
	return nil, nil
}
func (f stubApplicationStore) ListRecent(limit int) ([]dbmodels.Application, error) {
	return nil, nil
}
func (f stubApplicationStore) Count() (int64, error) { return 0, nil }
func (f stubApplicationStore) UpdateStatus(id string, status models.ApplicationStatus) error {
	return nil
}
func (f stubApplicationStore) StatusCounts() ([]adminapimodels.StatusCount, error) {
	return nil, nil
}
func (f stubApplicationStore) CountsByDay() ([]adminapimodels.DayCount, error) {
	return nil, nil
}

func TestOverallAverage(t *testing.T) {
	t.Run("empty input averages to zero", func(t *testing.T) {
		require.Equal(t, float64(0), OverallAverage(nil))
	})

	t.Run("mean is unweighted by category size", func(t *testing.T) {
		list := []adminapimodels.CategoryAnalytics{
			{Category: "Engineering", AvgSalary: 100000, Count: 99},
			{Category: "Sales", AvgSalary: 50000, Count: 1},
		}
		// (100000 + 50000) / 2, the job counts do not weight the mean
		require.Equal(t, float64(75000), OverallAverage(list))
	})
}

func TestCategoryAnalytics(t *testing.T) {
	handler := NewInstance(stubUserStore{}, stubJobStore{
		stats: []adminapimodels.CategoryAnalytics{
			{Category: "Engineering", AvgSalary: 90000, Count: 3},
			{Category: "Sales", AvgSalary: 60000, Count: 2},
			{Category: "Support", AvgSalary: 30000, Count: 5},
		},
	}, stubApplicationStore{})

	list, overall, err := handler.CategoryAnalytics()
	require.Nil(t, err)
	require.Equal(t, 3, len(list))
	require.Equal(t, float64(60000), overall)
}

func TestTopEmployers(t *testing.T) {
	t.Run("names resolve with the id as fallback", func(t *testing.T) {
		eve := dbmodels.User{Name: "Eve", Role: models.UserRoleEmployer}
		eve.ID = "employer-1"
		handler := NewInstance(
			stubUserStore{users: map[string]dbmodels.User{"employer-1": eve}},
			stubJobStore{employers: []adminapimodels.EmployerJobCount{
				{EmployerID: "employer-1", JobCount: 7},
				{EmployerID: "employer-2", JobCount: 3},
			}},
			stubApplicationStore{},
		)

		list, err := handler.TopEmployers()
		require.Nil(t, err)
		require.Equal(t, 2, len(list))
		require.Equal(t, "Eve", list[0].Name)
		require.Equal(t, "employer-2", list[1].Name)
	})
}

func TestRoleCounts(t *testing.T) {
	handler := NewInstance(stubUserStore{roleCounts: map[models.UserRole]int64{
		models.UserRoleJobSeeker: 12,
		models.UserRoleEmployer:  4,
		models.UserRoleAdmin:     1,
	}}, stubJobStore{}, stubApplicationStore{})

	counts, err := handler.RoleCounts()
	require.Nil(t, err)
	require.Equal(t, int64(12), counts["job_seeker"])
	require.Equal(t, int64(4), counts["employer"])
	// admin accounts stay out of the report
	_, reported := counts["admin"]
	require.False(t, reported)
}

func TestHistogram(t *testing.T) {
	t.Run("empty input yields no bins", func(t *testing.T) {
		require.Nil(t, Histogram(nil, 20))
	})

	t.Run("values spread over equal-width bins", func(t *testing.T) {
		bins := Histogram([]float64{0, 5, 10}, 2)
		require.Equal(t, 2, len(bins))
		require.Equal(t, int64(1), bins[0].Count)
		// the maximum lands in the last bin
		require.Equal(t, int64(2), bins[1].Count)
	})

	t.Run("identical values collapse into a single bin", func(t *testing.T) {
		bins := Histogram([]float64{42, 42, 42}, 20)
		require.Equal(t, 1, len(bins))
		require.Equal(t, int64(3), bins[0].Count)
	})
}
