package jobseekerapimodels

import (
	applicationsapimodels "job-portal-backend/models/api/applications"
	jobsapimodels "job-portal-backend/models/api/jobs"
	usersapimodels "job-portal-backend/models/api/users"
)

type DashboardData struct {
	User         usersapimodels.UserView                 `json:"user"`
	Jobs         []jobsapimodels.JobView                 `json:"jobs"`
	Applications []applicationsapimodels.ApplicationView `json:"applications"`
}
