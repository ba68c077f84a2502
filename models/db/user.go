package dbmodels

import (
	"job-portal-backend/models"
	usersapimodels "job-portal-backend/models/api/users"
)

type User struct {
	BaseModel
	Name     string          `gorm:"type:varchar(150)"`
	Email    string          `gorm:"type:varchar(255);index"`
	Password string          `gorm:"type:varchar(128)"`
	Role     models.UserRole `gorm:"type:varchar(50)"`

	// free-text profile, present for job seekers only
	Education  string
	Experience string
	Skills     string

	// resume reference; empty until the first upload
	ResumeFileID   string `gorm:"type:varchar(64)"`
	ResumeFilename string `gorm:"type:varchar(255)"`
}

func (r User) ToModel() usersapimodels.UserView {
	return usersapimodels.UserView{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
		Role:  string(r.Role),
		Profile: usersapimodels.Profile{
			Education:  r.Education,
			Experience: r.Experience,
			Skills:     r.Skills,
		},
		ResumeFilename: r.ResumeFilename,
		HasResume:      r.ResumeFileID != "",
	}
}

// ProfileComplete reports whether every free-text profile field is filled.
// Applying for a job additionally requires an uploaded resume.
func (r User) ProfileComplete() bool {
	return r.Education != "" && r.Experience != "" && r.Skills != ""
}
