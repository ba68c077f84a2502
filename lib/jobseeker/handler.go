package jobseeker

import (
	"context"
	"job-portal-backend/config"
	"job-portal-backend/db"
	applicationstore "job-portal-backend/lib/application/store"
	filestorage "job-portal-backend/lib/file-storage"
	jobstore "job-portal-backend/lib/job/store"
	"job-portal-backend/lib/notify"
	userstore "job-portal-backend/lib/user/store"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/models"
	jobsapimodels "job-portal-backend/models/api/jobs"
	jobseekerapimodels "job-portal-backend/models/api/jobseeker"
	usersapimodels "job-portal-backend/models/api/users"
	dbmodels "job-portal-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Dashboard(userID string, filter jobsapimodels.JobFilter) (data jobseekerapimodels.DashboardData, err error)
	GetProfile(userID string) (view usersapimodels.UserView, err error)
	UpdateProfile(userID string, request usersapimodels.ProfileUpdateRequest) error
	UploadResume(ctx context.Context, userID, fileName, contentType string, data []byte) error
	Apply(ctx context.Context, userID, jobID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		userStore:        userstore.NewInstance(db.DB),
		jobStore:         jobstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		fileStorage:      filestorage.Instance,
		notifier:         notify.Instance,
		allowedExts:      strings.Split(config.Conf.Files.AllowedExtensions, ","),
	}
	initchecker.CheckInit(
		"fileStorage", instance.fileStorage,
		"notifier", instance.notifier,
	)
	Instance = instance
}

func NewInstance(userStore userstore.Provider, jobStore jobstore.Provider,
	applicationStore applicationstore.Provider, fileStorage filestorage.Provider,
	notifier notify.Provider, allowedExts []string) Provider {
	return impl{
		userStore:        userStore,
		jobStore:         jobStore,
		applicationStore: applicationStore,
		fileStorage:      fileStorage,
		notifier:         notifier,
		allowedExts:      allowedExts,
	}
}

type impl struct {
	userStore        userstore.Provider
	jobStore         jobstore.Provider
	applicationStore applicationstore.Provider
	fileStorage      filestorage.Provider
	notifier         notify.Provider
	allowedExts      []string
}

func (i impl) Dashboard(userID string, filter jobsapimodels.JobFilter) (data jobseekerapimodels.DashboardData, err error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return data, errors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return data, errors.New("user not found")
	}
	data.User = user.ToModel()

	jobs, err := i.jobStore.List(filter)
	if err != nil {
		return data, errors.Wrap(err, "failed to list jobs")
	}
	data.Jobs = make([]jobsapimodels.JobView, 0, len(jobs))
	for _, job := range jobs {
		data.Jobs = append(data.Jobs, job.ToModel())
	}

	applications, err := i.applicationStore.ListByJobSeeker(userID)
	if err != nil {
		return data, errors.Wrap(err, "failed to list applications")
	}
	for _, rec := range applications {
		view := rec.ToModel()
		// display enrichment; a dangling job reference is tolerated
		job, err := i.jobStore.GetByID(rec.JobID)
		if err != nil {
			return data, errors.Wrap(err, "failed to load job for application")
		}
		if job != nil {
			view.JobTitle = job.Title
			view.Company = job.CompanyName
			if view.Company == "" {
				view.Company = "Unknown"
			}
		}
		data.Applications = append(data.Applications, view)
	}
	return data, nil
}

func (i impl) GetProfile(userID string) (view usersapimodels.UserView, err error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return view, errors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return view, errors.New("user not found")
	}
	return user.ToModel(), nil
}

// UpdateProfile overwrites the profile sub-record in full; name and email
// keep their stored values when the request omits them.
func (i impl) UpdateProfile(userID string, request usersapimodels.ProfileUpdateRequest) error {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return errors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return errors.New("user not found")
	}
	name := request.Name
	if name == "" {
		name = user.Name
	}
	email := request.Email
	if email == "" {
		email = user.Email
	}
	updMap := map[string]interface{}{
		"name":       name,
		"email":      email,
		"education":  request.Education,
		"experience": request.Experience,
		"skills":     request.Skills,
	}
	return i.userStore.Update(userID, updMap)
}

func (i impl) UploadResume(ctx context.Context, userID, fileName, contentType string, data []byte) error {
	if fileName == "" || len(data) == 0 {
		return errors.New("No file selected")
	}
	if !i.allowedFile(fileName) {
		return errors.New("Invalid file type")
	}
	fileID, err := i.fileStorage.UploadResume(ctx, userID, fileName, contentType, data)
	if err != nil {
		log.WithError(err).Error("failed to store resume")
		return errors.New("failed to store resume")
	}
	// the old blob stays orphaned in storage, only the reference moves
	updMap := map[string]interface{}{
		"resume_file_id":  fileID,
		"resume_filename": fileName,
	}
	return i.userStore.Update(userID, updMap)
}

func (i impl) allowedFile(fileName string) bool {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 {
		return false
	}
	ext := strings.ToLower(fileName[idx+1:])
	for _, allowed := range i.allowedExts {
		if ext == strings.ToLower(strings.TrimSpace(allowed)) {
			return true
		}
	}
	return false
}

// Apply checks its gates in order and writes nothing when any of them
// fails. The duplicate check is a pre-check query, so two concurrent
// applies can still race past it.
func (i impl) Apply(ctx context.Context, userID, jobID string) error {
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return errors.Wrap(err, "failed to load job")
	}
	if job == nil {
		return errors.New("Invalid job ID")
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return errors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return errors.New("user not found")
	}
	if !user.ProfileComplete() {
		return errors.New("Please complete your profile before applying for jobs.")
	}
	if user.ResumeFileID == "" {
		return errors.New("Please upload a resume before applying for jobs.")
	}
	applied, err := i.applicationStore.Exists(jobID, userID)
	if err != nil {
		return errors.Wrap(err, "failed to check existing application")
	}
	if applied {
		return errors.New("You have already applied for this job!")
	}

	rec := dbmodels.Application{
		JobID:       jobID,
		JobSeekerID: userID,
		Status:      models.ApplicationStatusPending,
		DateApplied: time.Now().UTC(),
	}
	applicationID, err := i.applicationStore.Create(rec)
	if err != nil {
		return errors.Wrap(err, "failed to create application")
	}

	// best-effort mail to both sides, never rolls the application back
	i.notifier.ApplicationReceived(user.Name, user.Email, job.Title, applicationID, rec.DateApplied)
	employer, err := i.userStore.GetByID(job.EmployerID)
	if err != nil {
		log.WithError(err).Error("failed to load employer for notification")
		return nil
	}
	if employer != nil {
		i.notifier.NewApplication(employer.Name, employer.Email, user.Name, user.Email, job.Title, applicationID, rec.DateApplied)
	}
	return nil
}
