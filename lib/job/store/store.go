package jobstore

import (
	adminapimodels "job-portal-backend/models/api/admin"
	jobsapimodels "job-portal-backend/models/api/jobs"
	dbmodels "job-portal-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.JobPost) (id string, err error)
	GetByID(id string) (rec *dbmodels.JobPost, err error)
	List(filter jobsapimodels.JobFilter) (list []dbmodels.JobPost, err error)
	ListByEmployer(employerID string) (list []dbmodels.JobPostExt, err error)
	ListRecent(limit int) (list []dbmodels.JobPost, err error)
	Count() (int64, error)
	CategoryCounts() (list []adminapimodels.CategoryCount, err error)
	CategoryStats() (list []adminapimodels.CategoryAnalytics, err error)
	Salaries() (list []float64, err error)
	TopEmployers(limit int) (list []adminapimodels.EmployerJobCount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobPost) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.JobPost, err error) {
	err = i.db.
		Model(dbmodels.JobPost{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List(filter jobsapimodels.JobFilter) (list []dbmodels.JobPost, err error) {
	list = []dbmodels.JobPost{}
	tx := i.db.Model(dbmodels.JobPost{})
	i.addFilter(tx, filter)
	err = tx.
		Order("date_posted desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

// addFilter composes the dashboard filters with AND; MatchesFilter is the
// in-memory equivalent and the two must stay in step.
func (i impl) addFilter(tx *gorm.DB, filter jobsapimodels.JobFilter) {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(title) like ? OR LOWER(company_name) like ? OR LOWER(description) like ? OR LOWER(requirements) like ?",
			pattern, pattern, pattern, pattern)
	}
	if filter.Category != "" {
		tx.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		tx.Where("LOWER(location) like ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if minSalary, ok := filter.MinSalaryValue(); ok {
		tx.Where("salary >= ?", minSalary)
	}
}

func (i impl) ListByEmployer(employerID string) (list []dbmodels.JobPostExt, err error) {
	list = []dbmodels.JobPostExt{}
	err = i.db.
		Model(dbmodels.JobPost{}).
		Select("job_posts.*, (select count(*) from applications a where a.job_id = job_posts.id) as applications_count").
		Where("employer_id = ?", employerID).
		Order("date_posted desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRecent(limit int) (list []dbmodels.JobPost, err error) {
	err = i.db.
		Model(dbmodels.JobPost{}).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(dbmodels.JobPost{}).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) CategoryCounts() (list []adminapimodels.CategoryCount, err error) {
	err = i.db.
		Model(dbmodels.JobPost{}).
		Select("category, count(*) as count").
		Group("category").
		Order("count desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CategoryStats() (list []adminapimodels.CategoryAnalytics, err error) {
	err = i.db.
		Model(dbmodels.JobPost{}).
		Select("category, avg(salary) as avg_salary, count(*) as count").
		Group("category").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Salaries() (list []float64, err error) {
	err = i.db.
		Model(dbmodels.JobPost{}).
		Pluck("salary", &list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) TopEmployers(limit int) (list []adminapimodels.EmployerJobCount, err error) {
	err = i.db.
		Model(dbmodels.JobPost{}).
		Select("employer_id, count(*) as job_count").
		Group("employer_id").
		Order("job_count desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// MatchesFilter applies the dashboard filter to a single job the way the SQL
// in addFilter does: the search text matches any of title, company name,
// description or requirements case-insensitively, category is exact,
// location is a case-insensitive substring, min salary is a numeric floor
// and silently ignored when it does not parse.
func MatchesFilter(rec dbmodels.JobPost, filter jobsapimodels.JobFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(rec.Title), needle) &&
			!strings.Contains(strings.ToLower(rec.CompanyName), needle) &&
			!strings.Contains(strings.ToLower(rec.Description), needle) &&
			!strings.Contains(strings.ToLower(rec.Requirements), needle) {
			return false
		}
	}
	if filter.Category != "" && rec.Category != filter.Category {
		return false
	}
	if filter.Location != "" &&
		!strings.Contains(strings.ToLower(rec.Location), strings.ToLower(filter.Location)) {
		return false
	}
	if minSalary, ok := filter.MinSalaryValue(); ok && rec.Salary < minSalary {
		return false
	}
	return true
}
