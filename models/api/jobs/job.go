package jobsapimodels

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type JobCreateRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	// salary arrives as form text; non-numeric input is a request error
	Salary   string `json:"salary"`
	Category string `json:"category"`
	Location string `json:"location"`

	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyWebsite string `json:"company_website"`
	ContactPerson  string `json:"contact_person"`
	ContactEmail   string `json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`
}

func (r JobCreateRequest) Validate() error {
	if r.Title == "" || r.Description == "" || r.Requirements == "" ||
		r.Salary == "" || r.Category == "" || r.Location == "" ||
		r.CompanyName == "" || r.CompanyAddress == "" {
		return errors.New("All fields are required!")
	}
	if _, err := r.SalaryValue(); err != nil {
		return err
	}
	return nil
}

func (r JobCreateRequest) SalaryValue() (float64, error) {
	v, err := strconv.ParseFloat(r.Salary, 64)
	if err != nil {
		return 0, errors.New("salary must be a number")
	}
	return v, nil
}

// JobFilter composes with logical AND across fields; empty fields are
// skipped. MinSalary that fails to parse is ignored, not an error.
type JobFilter struct {
	Search    string `query:"search"`
	Category  string `query:"category"`
	Location  string `query:"location"`
	MinSalary string `query:"min_salary"`
}

func (r JobFilter) MinSalaryValue() (value float64, ok bool) {
	if r.MinSalary == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(r.MinSalary, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

type JobView struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	Salary         float64   `json:"salary"`
	Category       string    `json:"category"`
	Location       string    `json:"location"`
	CompanyName    string    `json:"company_name"`
	CompanyAddress string    `json:"company_address"`
	CompanyWebsite string    `json:"company_website"`
	ContactPerson  string    `json:"contact_person"`
	ContactEmail   string    `json:"contact_email"`
	ContactPhone   string    `json:"contact_phone"`
	EmployerID     string    `json:"employer_id"`
	DatePosted     time.Time `json:"date_posted"`
}

type EmployerJobView struct {
	JobView
	ApplicationsCount int64 `json:"applications_count"`
}
