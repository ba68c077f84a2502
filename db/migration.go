package db

import (
	dbmodels "job-portal-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration of User failed")
	}
	if err := DB.AutoMigrate(&dbmodels.JobPost{}); err != nil {
		return errors.Wrap(err, "migration of JobPost failed")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "migration of Application failed")
	}
	if err := DB.AutoMigrate(&dbmodels.ResumeFile{}); err != nil {
		return errors.Wrap(err, "migration of ResumeFile failed")
	}
	log.Info("migrations finished")
	return nil
}
