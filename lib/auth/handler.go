package auth

import (
	"job-portal-backend/db"
	userstore "job-portal-backend/lib/user/store"
	authutils "job-portal-backend/lib/utils/auth-utils"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"job-portal-backend/models"
	authapimodels "job-portal-backend/models/api/auth"
	usersapimodels "job-portal-backend/models/api/users"
	dbmodels "job-portal-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) error
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Me(userID string) (view usersapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		userStore: userstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"userStore", instance.userStore,
	)
	Instance = instance
}

func NewInstance(userStore userstore.Provider) Provider {
	return impl{
		userStore: userStore,
	}
}

type impl struct {
	userStore userstore.Provider
}

// Register rejects duplicate emails with a pre-check; there is no unique
// constraint backing it up.
func (i impl) Register(request authapimodels.RegisterRequest) error {
	exist, err := i.userStore.ExistByEmail(request.Email)
	if err != nil {
		log.WithError(err).Error("failed to check email on registration")
		return errors.New("registration failed")
	}
	if exist {
		return errors.New("User with this email already exists!")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("failed to hash password")
		return errors.New("registration failed")
	}
	rec := dbmodels.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: string(hash),
		Role:     models.UserRole(request.Role),
	}
	_, err = i.userStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create user")
		return errors.New("registration failed")
	}
	return nil
}

// Login reports the same generic message for a missing user and for a wrong
// password so accounts cannot be enumerated.
func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	invalidCredentials := errors.New("Invalid email or password!")
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		log.WithError(err).Error("failed to look up user on login")
		return response, invalidCredentials
	}
	if user == nil {
		return response, invalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return response, invalidCredentials
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		log.WithError(err).Error("failed to issue token")
		return response, errors.New("login failed")
	}
	return authapimodels.JWTResponse{
		AccessToken:   token,
		Role:          string(user.Role),
		Name:          user.Name,
		DashboardPath: user.Role.DashboardPath(),
	}, nil
}

func (i impl) Me(userID string) (view usersapimodels.UserView, err error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return view, errors.Wrap(err, "failed to load user")
	}
	if user == nil {
		return view, errors.New("user not found")
	}
	return user.ToModel(), nil
}
