package applicationstore

import (
	"job-portal-backend/models"
	adminapimodels "job-portal-backend/models/api/admin"
	dbmodels "job-portal-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	Exists(jobID, jobSeekerID string) (bool, error)
	ListByJobSeeker(jobSeekerID string) (list []dbmodels.Application, err error)
	ListByJobIDs(jobIDs []string) (list []dbmodels.Application, err error)
	ListRecent(limit int) (list []dbmodels.Application, err error)
	Count() (int64, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
	StatusCounts() (list []adminapimodels.StatusCount, err error)
	CountsByDay() (list []adminapimodels.DayCount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Application, err error) {
	err = i.db.
		Model(dbmodels.Application{}).
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

func (i impl) Exists(jobID, jobSeekerID string) (bool, error) {
	var count int64
	err := i.db.
		Model(dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Where("job_seeker_id = ?", jobSeekerID).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (i impl) ListByJobSeeker(jobSeekerID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(dbmodels.Application{}).
		Where("job_seeker_id = ?", jobSeekerID).
		Order("date_applied desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByJobIDs(jobIDs []string) (list []dbmodels.Application, err error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}
	list = []dbmodels.Application{}
	err = i.db.
		Model(dbmodels.Application{}).
		Where("job_id in (?)", jobIDs).
		Order("date_applied desc").
		Find(&list).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return list, nil
}

func (i impl) ListRecent(limit int) (list []dbmodels.Application, err error) {
	err = i.db.
		Model(dbmodels.Application{}).
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
		Model(dbmodels.Application{}).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) UpdateStatus(id string, status models.ApplicationStatus) error {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("application not found")
	}
	return nil
}

func (i impl) StatusCounts() (list []adminapimodels.StatusCount, err error) {
	err = i.db.
		Model(dbmodels.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Order("count desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountsByDay() (list []adminapimodels.DayCount, err error) {
	err = i.db.
		Model(dbmodels.Application{}).
		Select("to_char(date_applied, 'YYYY-MM-DD') as day, count(*) as count").
		Group("day").
		Order("day asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
