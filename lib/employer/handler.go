package employer

import (
	"job-portal-backend/db"
	applicationstore "job-portal-backend/lib/application/store"
	pdfexport "job-portal-backend/lib/export/pdf"
	jobstore "job-portal-backend/lib/job/store"
	"job-portal-backend/lib/notify"
	userstore "job-portal-backend/lib/user/store"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/models"
	applicationsapimodels "job-portal-backend/models/api/applications"
	employerapimodels "job-portal-backend/models/api/employer"
	jobsapimodels "job-portal-backend/models/api/jobs"
	dbmodels "job-portal-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	PostJob(employerID string, request jobsapimodels.JobCreateRequest) (id string, err error)
	Dashboard(employerID string) (data employerapimodels.DashboardData, err error)
	UpdateStatus(employerID string, request applicationsapimodels.StatusUpdateRequest) error
	ViewApplicant(employerID, applicationID string) (detail applicationsapimodels.ApplicantDetail, err error)
	ApplicantPDF(employerID, applicationID string) (pdfFile []byte, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		userStore:        userstore.NewInstance(db.DB),
		jobStore:         jobstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		notifier:         notify.Instance,
	}
	initchecker.CheckInit(
		"notifier", instance.notifier,
	)
	Instance = instance
}

func NewInstance(userStore userstore.Provider, jobStore jobstore.Provider,
	applicationStore applicationstore.Provider, notifier notify.Provider) Provider {
	return impl{
		userStore:        userStore,
		jobStore:         jobStore,
		applicationStore: applicationStore,
		notifier:         notifier,
	}
}

type impl struct {
	userStore        userstore.Provider
	jobStore         jobstore.Provider
	applicationStore applicationstore.Provider
	notifier         notify.Provider
}

// PostJob stamps the owner and the posting time; beyond the required-field
// and numeric-salary checks in Validate there is no further validation, a
// negative salary goes through as is.
func (i impl) PostJob(employerID string, request jobsapimodels.JobCreateRequest) (id string, err error) {
	salary, err := request.SalaryValue()
	if err != nil {
		return "", err
	}
	rec := dbmodels.JobPost{
		Title:          request.Title,
		Description:    request.Description,
		Requirements:   request.Requirements,
		Salary:         salary,
		Category:       request.Category,
		Location:       request.Location,
		CompanyName:    request.CompanyName,
		CompanyAddress: request.CompanyAddress,
		CompanyWebsite: request.CompanyWebsite,
		ContactPerson:  request.ContactPerson,
		ContactEmail:   request.ContactEmail,
		ContactPhone:   request.ContactPhone,
		EmployerID:     employerID,
		DatePosted:     time.Now().UTC(),
	}
	id, err = i.jobStore.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to create job post")
	}
	return id, nil
}

func (i impl) Dashboard(employerID string) (data employerapimodels.DashboardData, err error) {
	jobs, err := i.jobStore.ListByEmployer(employerID)
	if err != nil {
		return data, errors.Wrap(err, "failed to list jobs")
	}
	data.Jobs = make([]jobsapimodels.EmployerJobView, 0, len(jobs))
	jobByID := make(map[string]dbmodels.JobPost, len(jobs))
	jobIDs := make([]string, 0, len(jobs))
	for _, job := range jobs {
		data.Jobs = append(data.Jobs, job.ToModel())
		jobByID[job.ID] = job.JobPost
		jobIDs = append(jobIDs, job.ID)
	}

	applications, err := i.applicationStore.ListByJobIDs(jobIDs)
	if err != nil {
		return data, errors.Wrap(err, "failed to list applications")
	}
	seekerIDs := make([]string, 0, len(applications))
	for _, rec := range applications {
		seekerIDs = append(seekerIDs, rec.JobSeekerID)
	}
	seekers, err := i.userStore.ListByIDs(seekerIDs)
	if err != nil {
		return data, errors.Wrap(err, "failed to list applicants")
	}
	seekerByID := make(map[string]dbmodels.User, len(seekers))
	for _, seeker := range seekers {
		seekerByID[seeker.ID] = seeker
	}
	for _, rec := range applications {
		view := applicationsapimodels.EmployerApplicationView{
			ApplicationView: rec.ToModel(),
		}
		if seeker, ok := seekerByID[rec.JobSeekerID]; ok {
			view.JobSeekerName = seeker.Name
			view.JobSeekerEmail = seeker.Email
		}
		if job, ok := jobByID[rec.JobID]; ok {
			view.JobTitle = job.Title
		}
		data.Applications = append(data.Applications, view)
	}
	return data, nil
}

// UpdateStatus writes the status string as given; only the exact literals
// "Accepted" and "Rejected" change the notification wording.
func (i impl) UpdateStatus(employerID string, request applicationsapimodels.StatusUpdateRequest) error {
	application, job, err := i.loadOwned(employerID, request.ApplicationID)
	if err != nil {
		return err
	}
	err = i.applicationStore.UpdateStatus(application.ID, models.ApplicationStatus(request.Status))
	if err != nil {
		return errors.Wrap(err, "failed to update application status")
	}
	seeker, err := i.userStore.GetByID(application.JobSeekerID)
	if err != nil {
		log.WithError(err).Error("failed to load job seeker for notification")
		return nil
	}
	if seeker != nil {
		i.notifier.StatusChanged(seeker.Name, seeker.Email, job.Title, request.Status, application.DateApplied)
	}
	return nil
}

func (i impl) ViewApplicant(employerID, applicationID string) (detail applicationsapimodels.ApplicantDetail, err error) {
	application, job, err := i.loadOwned(employerID, applicationID)
	if err != nil {
		return detail, err
	}
	seeker, err := i.userStore.GetByID(application.JobSeekerID)
	if err != nil {
		return detail, errors.Wrap(err, "failed to load job seeker")
	}
	if seeker == nil {
		return detail, errors.New("Job seeker not found")
	}
	return applicationsapimodels.ApplicantDetail{
		Application: application.ToModel(),
		JobSeeker:   seeker.ToModel(),
		Job:         job.ToModel(),
	}, nil
}

func (i impl) ApplicantPDF(employerID, applicationID string) (pdfFile []byte, err error) {
	detail, err := i.ViewApplicant(employerID, applicationID)
	if err != nil {
		return nil, err
	}
	return pdfexport.GenerateApplicantSheet(detail)
}

// loadOwned resolves an application together with its job and enforces that
// the caller owns that job; any miss comes back as the same generic error.
func (i impl) loadOwned(employerID, applicationID string) (*dbmodels.Application, *dbmodels.JobPost, error) {
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load application")
	}
	if application == nil {
		return nil, nil, errors.New("Application not found")
	}
	job, err := i.jobStore.GetByID(application.JobID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load job")
	}
	if job == nil || job.EmployerID != employerID {
		return nil, nil, errors.New("Unauthorized access")
	}
	return application, job, nil
}
