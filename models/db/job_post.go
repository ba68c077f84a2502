package dbmodels

import (
	jobsapimodels "job-portal-backend/models/api/jobs"
	"time"
)

type JobPost struct {
	BaseModel
	Title        string  `gorm:"type:varchar(255)"`
	Description  string
	Requirements string
	Salary       float64
	Category     string `gorm:"type:varchar(150);index"`
	Location     string `gorm:"type:varchar(255)"`

	CompanyName    string `gorm:"type:varchar(255)"`
	CompanyAddress string `gorm:"type:varchar(255)"`
	CompanyWebsite string `gorm:"type:varchar(255)"`
	ContactPerson  string `gorm:"type:varchar(150)"`
	ContactEmail   string `gorm:"type:varchar(255)"`
	ContactPhone   string `gorm:"type:varchar(50)"`

	EmployerID string    `gorm:"type:varchar(64);index"`
	DatePosted time.Time
}

func (r JobPost) ToModel() jobsapimodels.JobView {
	return jobsapimodels.JobView{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		Requirements:   r.Requirements,
		Salary:         r.Salary,
		Category:       r.Category,
		Location:       r.Location,
		CompanyName:    r.CompanyName,
		CompanyAddress: r.CompanyAddress,
		CompanyWebsite: r.CompanyWebsite,
		ContactPerson:  r.ContactPerson,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		EmployerID:     r.EmployerID,
		DatePosted:     r.DatePosted,
	}
}

// JobPostExt is a job row annotated with its live application count.
type JobPostExt struct {
	JobPost
	ApplicationsCount int64
}

func (r JobPostExt) ToModel() jobsapimodels.EmployerJobView {
	return jobsapimodels.EmployerJobView{
		JobView:           r.JobPost.ToModel(),
		ApplicationsCount: r.ApplicationsCount,
	}
}
