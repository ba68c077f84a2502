package dbmodels

import (
	"job-portal-backend/models"
	applicationsapimodels "job-portal-backend/models/api/applications"
	"time"
)

type Application struct {
	BaseModel
	JobID       string                   `gorm:"type:varchar(64);index"`
	JobSeekerID string                   `gorm:"type:varchar(64);index"`
	Status      models.ApplicationStatus `gorm:"type:varchar(100)"`
	DateApplied time.Time
}

func (r Application) ToModel() applicationsapimodels.ApplicationView {
	return applicationsapimodels.ApplicationView{
		ID:          r.ID,
		JobID:       r.JobID,
		JobSeekerID: r.JobSeekerID,
		Status:      string(r.Status),
		DateApplied: r.DateApplied,
	}
}
