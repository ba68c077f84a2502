package admin

import (
	"bytes"
	"job-portal-backend/db"
	"job-portal-backend/lib/analytics"
	applicationstore "job-portal-backend/lib/application/store"
	"job-portal-backend/lib/charts"
	xlsexport "job-portal-backend/lib/export/xls"
	jobstore "job-portal-backend/lib/job/store"
	userstore "job-portal-backend/lib/user/store"
	initchecker "job-portal-backend/lib/utils/init-checker"
	adminapimodels "job-portal-backend/models/api/admin"
	applicationsapimodels "job-portal-backend/models/api/applications"
	jobsapimodels "job-portal-backend/models/api/jobs"
	usersapimodels "job-portal-backend/models/api/users"

	"github.com/pkg/errors"
)

const recentLimit = 5

type Provider interface {
	Dashboard() (data adminapimodels.DashboardData, err error)
	Analytics() (data adminapimodels.AnalyticsData, err error)
	AnalyticsExportToXls() (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		userStore:        userstore.NewInstance(db.DB),
		jobStore:         jobstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		analytics:        analytics.Instance,
		charts:           charts.Instance,
	}
	initchecker.CheckInit(
		"analytics", instance.analytics,
		"charts", instance.charts,
	)
	Instance = instance
}

func NewInstance(userStore userstore.Provider, jobStore jobstore.Provider,
	applicationStore applicationstore.Provider, analyticsProvider analytics.Provider,
	chartsProvider charts.Provider) Provider {
	return impl{
		userStore:        userStore,
		jobStore:         jobStore,
		applicationStore: applicationStore,
		analytics:        analyticsProvider,
		charts:           chartsProvider,
	}
}

type impl struct {
	userStore        userstore.Provider
	jobStore         jobstore.Provider
	applicationStore applicationstore.Provider
	analytics        analytics.Provider
	charts           charts.Provider
}

func (i impl) Dashboard() (data adminapimodels.DashboardData, err error) {
	if data.TotalUsers, err = i.userStore.Count(); err != nil {
		return data, errors.Wrap(err, "failed to count users")
	}
	if data.TotalJobPosts, err = i.jobStore.Count(); err != nil {
		return data, errors.Wrap(err, "failed to count job posts")
	}
	if data.TotalApplications, err = i.applicationStore.Count(); err != nil {
		return data, errors.Wrap(err, "failed to count applications")
	}

	users, err := i.userStore.ListRecent(recentLimit)
	if err != nil {
		return data, errors.Wrap(err, "failed to list recent users")
	}
	data.RecentUsers = make([]usersapimodels.UserView, 0, len(users))
	for _, rec := range users {
		data.RecentUsers = append(data.RecentUsers, rec.ToModel())
	}

	jobs, err := i.jobStore.ListRecent(recentLimit)
	if err != nil {
		return data, errors.Wrap(err, "failed to list recent jobs")
	}
	data.RecentJobs = make([]jobsapimodels.JobView, 0, len(jobs))
	for _, rec := range jobs {
		data.RecentJobs = append(data.RecentJobs, rec.ToModel())
	}

	applications, err := i.applicationStore.ListRecent(recentLimit)
	if err != nil {
		return data, errors.Wrap(err, "failed to list recent applications")
	}
	data.RecentApplications = make([]applicationsapimodels.ApplicationView, 0, len(applications))
	for _, rec := range applications {
		data.RecentApplications = append(data.RecentApplications, rec.ToModel())
	}

	data.PlotPaths = i.charts.GenerateAll()
	return data, nil
}

func (i impl) Analytics() (data adminapimodels.AnalyticsData, err error) {
	data.CategoryAnalytics, data.OverallAvgSalary, err = i.analytics.CategoryAnalytics()
	if err != nil {
		return data, errors.Wrap(err, "failed to aggregate categories")
	}
	data.UserCounts, err = i.analytics.RoleCounts()
	if err != nil {
		return data, errors.Wrap(err, "failed to count users by role")
	}
	data.PlotPaths = i.charts.GenerateAll()
	return data, nil
}

func (i impl) AnalyticsExportToXls() (*bytes.Buffer, error) {
	data, err := i.Analytics()
	if err != nil {
		return nil, err
	}
	return xlsexport.ExportAnalytics(data)
}
