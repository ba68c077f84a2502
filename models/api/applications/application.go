package applicationsapimodels

import (
	jobsapimodels "job-portal-backend/models/api/jobs"
	usersapimodels "job-portal-backend/models/api/users"
	"time"

	"github.com/pkg/errors"
)

type ApplicationView struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	JobSeekerID string    `json:"job_seeker_id"`
	Status      string    `json:"status"`
	DateApplied time.Time `json:"date_applied"`

	// enrichment for display, filled by the handlers
	JobTitle string `json:"job_title,omitempty"`
	Company  string `json:"company,omitempty"`
}

// EmployerApplicationView is an application as the employer dashboard shows
// it, enriched with the applicant's identity.
type EmployerApplicationView struct {
	ApplicationView
	JobSeekerName  string `json:"job_seeker_name"`
	JobSeekerEmail string `json:"job_seeker_email"`
}

type StatusUpdateRequest struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
}

func (r StatusUpdateRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("Invalid application ID")
	}
	if r.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

// ApplicantDetail is the single-application view for the owning employer.
type ApplicantDetail struct {
	Application ApplicationView         `json:"application"`
	JobSeeker   usersapimodels.UserView `json:"job_seeker"`
	Job         jobsapimodels.JobView   `json:"job"`
}
