package employerapimodels

import (
	applicationsapimodels "job-portal-backend/models/api/applications"
	jobsapimodels "job-portal-backend/models/api/jobs"
)

type DashboardData struct {
	Jobs         []jobsapimodels.EmployerJobView                 `json:"jobs"`
	Applications []applicationsapimodels.EmployerApplicationView `json:"applications"`
}
