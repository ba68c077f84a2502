package jobseeker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"job-portal-backend/models"
	adminapimodels "job-portal-backend/models/api/admin"
	jobsapimodels "job-portal-backend/models/api/jobs"
	usersapimodels "job-portal-backend/models/api/users"
	dbmodels "job-portal-backend/models/db"

	jobstore "job-portal-backend/lib/job/store"
)

type fakeUserStore struct {
	users map[string]dbmodels.User
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	f.users[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeUserStore) Update(userID string, updMap map[string]interface{}) error {
	rec, ok := f.users[userID]
	if !ok {
		return nil
	}
	for column, value := range updMap {
		str, _ := value.(string)
		switch column {
		case "name":
			rec.Name = str
		case "email":
			rec.Email = str
		case "education":
			rec.Education = str
		case "experience":
			rec.Experience = str
		case "skills":
			rec.Skills = str
		case "resume_file_id":
			rec.ResumeFileID = str
		case "resume_filename":
			rec.ResumeFilename = str
		}
	}
	f.users[userID] = rec
	return nil
}

func (f *fakeUserStore) GetByID(userID string) (*dbmodels.User, error) {
	if rec, ok := f.users[userID]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*dbmodels.User, error) {
	for _, rec := range f.users {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) ExistByEmail(email string) (bool, error) {
	rec, _ := f.FindByEmail(email)
	return rec != nil, nil
}

func (f *fakeUserStore) ListByIDs(ids []string) ([]dbmodels.User, error) {
	list := []dbmodels.User{}
	for _, id := range ids {
		if rec, ok := f.users[id]; ok {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeUserStore) ListRecent(limit int) ([]dbmodels.User, error) { return nil, nil }
func (f *fakeUserStore) Count() (int64, error)                         { return int64(len(f.users)), nil }
func (f *fakeUserStore) CountByRole(role models.UserRole) (int64, error) {
	return 0, nil
}

type fakeJobStore struct {
	jobs map[string]dbmodels.JobPost
}

func (f *fakeJobStore) Create(rec dbmodels.JobPost) (string, error) {
	f.jobs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeJobStore) GetByID(id string) (*dbmodels.JobPost, error) {
	if rec, ok := f.jobs[id]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (f *fakeJobStore) List(filter jobsapimodels.JobFilter) ([]dbmodels.JobPost, error) {
	list := []dbmodels.JobPost{}
	for _, rec := range f.jobs {
		if jobstore.MatchesFilter(rec, filter) {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeJobStore) ListByEmployer(employerID string) ([]dbmodels.JobPostExt, error) {
	return nil, nil
}
func (f *fakeJobStore) ListRecent(limit int) ([]dbmodels.JobPost, error) { return nil, nil }
func (f *fakeJobStore) Count() (int64, error)                            { return int64(len(f.jobs)), nil }
func (f *fakeJobStore) CategoryCounts() ([]adminapimodels.CategoryCount, error) {
	return nil, nil
}
func (f *fakeJobStore) CategoryStats() ([]adminapimodels.CategoryAnalytics, error) {
	return nil, nil
}
func (f *fakeJobStore) Salaries() ([]float64, error) { return nil, nil }
func (f *fakeJobStore) TopEmployers(limit int) ([]adminapimodels.EmployerJobCount, error) {
	return nil, nil
}

type fakeApplicationStore struct {
	applications []dbmodels.Application
}

func (f *fakeApplicationStore) Create(rec dbmodels.Application) (string, error) {
	if rec.ID == "" {
		rec.ID = "application-1"
	}
	f.applications = append(f.applications, rec)
	return rec.ID, nil
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.Application, error) {
	for _, rec := range f.applications {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationStore) Exists(jobID, jobSeekerID string) (bool, error) {
	for _, rec := range f.applications {
		if rec.JobID == jobID && rec.JobSeekerID == jobSeekerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationStore) ListByJobSeeker(jobSeekerID string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	for _, rec := range f.applications {
		if rec.JobSeekerID == jobSeekerID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeApplicationStore) ListByJobIDs(jobIDs []string) ([]dbmodels.Application, error) {
	return nil, nil
}
func (f *fakeApplicationStore) ListRecent(limit int) ([]dbmodels.Application, error) {
	return nil, nil
}
func (f *fakeApplicationStore) Count() (int64, error) {
	return int64(len(f.applications)), nil
}

func (f *fakeApplicationStore) UpdateStatus(id string, status models.ApplicationStatus) error {
	for idx := range f.applications {
		if f.applications[idx].ID == id {
			f.applications[idx].Status = status
		}
	}
	return nil
}

func (f *fakeApplicationStore) StatusCounts() ([]adminapimodels.StatusCount, error) {
	return nil, nil
}
func (f *fakeApplicationStore) CountsByDay() ([]adminapimodels.DayCount, error) {
	return nil, nil
}

type fakeFileStorage struct {
	nextID string
	blobs  map[string][]byte
}

func (f *fakeFileStorage) UploadResume(ctx context.Context, userID, fileName, contentType string, data []byte) (string, error) {
	f.blobs[f.nextID] = data
	return f.nextID, nil
}

func (f *fakeFileStorage) GetResume(ctx context.Context, fileID string) (*dbmodels.ResumeFile, []byte, error) {
	data, ok := f.blobs[fileID]
	if !ok {
		return nil, nil, nil
	}
	rec := dbmodels.ResumeFile{Name: "resume.pdf"}
	rec.ID = fileID
	return &rec, data, nil
}

func (f *fakeFileStorage) GetUserResume(ctx context.Context, userID string) (*dbmodels.ResumeFile, []byte, error) {
	return nil, nil, nil
}

type notification struct {
	kind      string
	recipient string
}

type fakeNotifier struct {
	sent []notification
}

func (f *fakeNotifier) ApplicationReceived(seekerName, seekerEmail, jobTitle, applicationID string, appliedAt time.Time) {
	f.sent = append(f.sent, notification{kind: "received", recipient: seekerEmail})
}

func (f *fakeNotifier) NewApplication(employerName, employerEmail, seekerName, seekerEmail, jobTitle, applicationID string, appliedAt time.Time) {
	f.sent = append(f.sent, notification{kind: "new", recipient: employerEmail})
}

func (f *fakeNotifier) StatusChanged(seekerName, seekerEmail, jobTitle, newStatus string, appliedAt time.Time) {
	f.sent = append(f.sent, notification{kind: "status", recipient: seekerEmail})
}

type fixture struct {
	userStore        *fakeUserStore
	jobStore         *fakeJobStore
	applicationStore *fakeApplicationStore
	fileStorage      *fakeFileStorage
	notifier         *fakeNotifier
	handler          Provider
}

func newFixture() *fixture {
	f := &fixture{
		userStore:        &fakeUserStore{users: map[string]dbmodels.User{}},
		jobStore:         &fakeJobStore{jobs: map[string]dbmodels.JobPost{}},
		applicationStore: &fakeApplicationStore{},
		fileStorage:      &fakeFileStorage{nextID: "file-1", blobs: map[string][]byte{}},
		notifier:         &fakeNotifier{},
	}
	f.handler = NewInstance(f.userStore, f.jobStore, f.applicationStore,
		f.fileStorage, f.notifier, []string{"pdf", "doc", "docx", "txt"})
	return f
}

func (f *fixture) addUser(rec dbmodels.User) {
	f.userStore.users[rec.ID] = rec
}

func (f *fixture) addJob(rec dbmodels.JobPost) {
	f.jobStore.jobs[rec.ID] = rec
}

func completeSeeker(id string) dbmodels.User {
	rec := dbmodels.User{
		Name:           "Alice",
		Email:          "alice@example.com",
		Role:           models.UserRoleJobSeeker,
		Education:      "BSc",
		Experience:     "3 years",
		Skills:         "Go, SQL",
		ResumeFileID:   "file-0",
		ResumeFilename: "resume.pdf",
	}
	rec.ID = id
	return rec
}

func sampleJob(id, employerID string) dbmodels.JobPost {
	rec := dbmodels.JobPost{
		Title:       "Go Developer",
		Category:    "Engineering",
		CompanyName: "Acme Corp",
		EmployerID:  employerID,
		DatePosted:  time.Now().UTC(),
	}
	rec.ID = id
	return rec
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown job is rejected", func(t *testing.T) {
		f := newFixture()
		f.addUser(completeSeeker("seeker-1"))

		err := f.handler.Apply(ctx, "seeker-1", "missing-job")
		require.NotNil(t, err)
		require.Equal(t, "Invalid job ID", err.Error())
		require.Empty(t, f.applicationStore.applications)
	})

	t.Run("incomplete profile is rejected", func(t *testing.T) {
		f := newFixture()
		seeker := completeSeeker("seeker-1")
		seeker.Skills = ""
		f.addUser(seeker)
		f.addJob(sampleJob("job-1", "employer-1"))

		err := f.handler.Apply(ctx, "seeker-1", "job-1")
		require.NotNil(t, err)
		require.Equal(t, "Please complete your profile before applying for jobs.", err.Error())
		require.Empty(t, f.applicationStore.applications)
	})

	t.Run("missing resume is rejected", func(t *testing.T) {
		f := newFixture()
		seeker := completeSeeker("seeker-1")
		seeker.ResumeFileID = ""
		f.addUser(seeker)
		f.addJob(sampleJob("job-1", "employer-1"))

		err := f.handler.Apply(ctx, "seeker-1", "job-1")
		require.NotNil(t, err)
		require.Equal(t, "Please upload a resume before applying for jobs.", err.Error())
		require.Empty(t, f.applicationStore.applications)
	})

	t.Run("successful apply creates a pending application and notifies both sides", func(t *testing.T) {
		f := newFixture()
		f.addUser(completeSeeker("seeker-1"))
		employer := dbmodels.User{Name: "Eve", Email: "eve@acme.example", Role: models.UserRoleEmployer}
		employer.ID = "employer-1"
		f.addUser(employer)
		f.addJob(sampleJob("job-1", "employer-1"))

		require.Nil(t, f.handler.Apply(ctx, "seeker-1", "job-1"))

		require.Equal(t, 1, len(f.applicationStore.applications))
		require.Equal(t, models.ApplicationStatusPending, f.applicationStore.applications[0].Status)

		require.Equal(t, 2, len(f.notifier.sent))
		require.Equal(t, "received", f.notifier.sent[0].kind)
		require.Equal(t, "alice@example.com", f.notifier.sent[0].recipient)
		require.Equal(t, "new", f.notifier.sent[1].kind)
		require.Equal(t, "eve@acme.example", f.notifier.sent[1].recipient)
	})

	t.Run("second apply for the same job is rejected", func(t *testing.T) {
		f := newFixture()
		f.addUser(completeSeeker("seeker-1"))
		f.addJob(sampleJob("job-1", "employer-1"))

		require.Nil(t, f.handler.Apply(ctx, "seeker-1", "job-1"))

		err := f.handler.Apply(ctx, "seeker-1", "job-1")
		require.NotNil(t, err)
		require.Equal(t, "You have already applied for this job!", err.Error())
		require.Equal(t, 1, len(f.applicationStore.applications))
	})
}

func TestUploadResume(t *testing.T) {
	ctx := context.Background()

	t.Run("empty upload is rejected", func(t *testing.T) {
		f := newFixture()
		f.addUser(completeSeeker("seeker-1"))

		err := f.handler.UploadResume(ctx, "seeker-1", "", "", nil)
		require.NotNil(t, err)
		require.Equal(t, "No file selected", err.Error())
	})

	t.Run("disallowed extension is rejected", func(t *testing.T) {
		f := newFixture()
		f.addUser(completeSeeker("seeker-1"))

		err := f.handler.UploadResume(ctx, "seeker-1", "virus.exe", "application/octet-stream", []byte("x"))
		require.NotNil(t, err)
		require.Equal(t, "Invalid file type", err.Error())
	})

	t.Run("upload moves the resume reference", func(t *testing.T) {
		f := newFixture()
		f.addUser(completeSeeker("seeker-1"))

		err := f.handler.UploadResume(ctx, "seeker-1", "New Resume.PDF", "application/pdf", []byte("content"))
		require.Nil(t, err)

		rec, err := f.userStore.GetByID("seeker-1")
		require.Nil(t, err)
		require.Equal(t, "file-1", rec.ResumeFileID)
		require.Equal(t, "New Resume.PDF", rec.ResumeFilename)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("omitted name and email keep stored values", func(t *testing.T) {
		f := newFixture()
		f.addUser(completeSeeker("seeker-1"))

		err := f.handler.UpdateProfile("seeker-1", usersapimodels.ProfileUpdateRequest{
			Education:  "MSc",
			Experience: "4 years",
			Skills:     "Go, Postgres",
		})
		require.Nil(t, err)

		rec, err := f.userStore.GetByID("seeker-1")
		require.Nil(t, err)
		require.Equal(t, "Alice", rec.Name)
		require.Equal(t, "alice@example.com", rec.Email)
		require.Equal(t, "MSc", rec.Education)
		require.Equal(t, "Go, Postgres", rec.Skills)
	})
}

func TestDashboard(t *testing.T) {
	t.Run("applications are enriched with job title and company", func(t *testing.T) {
		f := newFixture()
		f.addUser(completeSeeker("seeker-1"))
		f.addJob(sampleJob("job-1", "employer-1"))
		require.Nil(t, f.handler.Apply(context.Background(), "seeker-1", "job-1"))

		data, err := f.handler.Dashboard("seeker-1", jobsapimodels.JobFilter{})
		require.Nil(t, err)
		require.Equal(t, 1, len(data.Jobs))
		require.Equal(t, 1, len(data.Applications))
		require.Equal(t, "Go Developer", data.Applications[0].JobTitle)
		require.Equal(t, "Acme Corp", data.Applications[0].Company)
	})

	t.Run("filter narrows the job list", func(t *testing.T) {
		f := newFixture()
		f.addUser(completeSeeker("seeker-1"))
		f.addJob(sampleJob("job-1", "employer-1"))
		other := sampleJob("job-2", "employer-1")
		other.Title = "Sales Manager"
		other.Category = "Sales"
		f.addJob(other)

		data, err := f.handler.Dashboard("seeker-1", jobsapimodels.JobFilter{Category: "Sales"})
		require.Nil(t, err)
		require.Equal(t, 1, len(data.Jobs))
		require.Equal(t, "Sales Manager", data.Jobs[0].Title)
	})
}
