package models

type UserRole string

const (
	UserRoleJobSeeker UserRole = "job_seeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"
)

var roleHumanName = map[UserRole]string{
	UserRoleJobSeeker: "Job Seeker",
	UserRoleEmployer:  "Employer",
	UserRoleAdmin:     "Administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

// DashboardPath is where a freshly authenticated user of this role lands.
func (r UserRole) DashboardPath() string {
	switch r {
	case UserRoleJobSeeker:
		return "/api/v1/job_seeker/dashboard"
	case UserRoleEmployer:
		return "/api/v1/employer/dashboard"
	case UserRoleAdmin:
		return "/api/v1/admin/dashboard"
	}
	return "/"
}

type ApplicationStatus string

// Employers may write any status string; only these two get dedicated
// notification wording.
const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusAccepted ApplicationStatus = "Accepted"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)
