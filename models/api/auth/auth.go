package authapimodels

import (
	"job-portal-backend/models"

	"github.com/pkg/errors"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r RegisterRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Password == "" || r.Role == "" {
		return errors.New("All fields are required!")
	}
	if !models.UserRole(r.Role).IsValid() {
		return errors.New("Invalid role selected!")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

type JWTResponse struct {
	AccessToken   string `json:"access_token"`
	Role          string `json:"role"`
	Name          string `json:"name"`
	DashboardPath string `json:"dashboard_path"`
}
