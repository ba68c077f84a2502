package adminapimodels

import (
	applicationsapimodels "job-portal-backend/models/api/applications"
	jobsapimodels "job-portal-backend/models/api/jobs"
	usersapimodels "job-portal-backend/models/api/users"
)

type DashboardData struct {
	TotalUsers         int64 `json:"total_users"`
	TotalJobPosts      int64 `json:"total_job_posts"`
	TotalApplications  int64 `json:"total_applications"`

	RecentUsers        []usersapimodels.UserView                   `json:"recent_users"`
	RecentJobs         []jobsapimodels.JobView                     `json:"recent_jobs"`
	RecentApplications []applicationsapimodels.ApplicationView     `json:"recent_applications"`

	// chart key -> rendered image path; failed charts are absent
	PlotPaths map[string]string `json:"plot_paths"`
}

// aggregation rows feeding the admin charts

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DayCount struct {
	// calendar day in YYYY-MM-DD form
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type EmployerJobCount struct {
	EmployerID string `json:"employer_id"`
	JobCount   int64  `json:"job_count"`
	// display name, resolved from the users collection; falls back to the id
	Name string `json:"name" gorm:"-"`
}

type CategoryAnalytics struct {
	Category  string  `json:"category"`
	AvgSalary float64 `json:"avg_salary"`
	Count     int64   `json:"count"`
}

type AnalyticsData struct {
	CategoryAnalytics []CategoryAnalytics `json:"category_analytics"`
	// unweighted mean of the per-category averages
	OverallAvgSalary float64           `json:"overall_avg_salary"`
	UserCounts       map[string]int64  `json:"user_counts"`
	PlotPaths        map[string]string `json:"plot_paths"`
}
