package initializers

import (
	"context"

	"job-portal-backend/config"
	"job-portal-backend/fiberlog"
	"job-portal-backend/lib/admin"
	"job-portal-backend/lib/analytics"
	"job-portal-backend/lib/auth"
	"job-portal-backend/lib/charts"
	"job-portal-backend/lib/employer"
	filestorage "job-portal-backend/lib/file-storage"
	"job-portal-backend/lib/jobseeker"
	"job-portal-backend/lib/notify"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()

	filestorage.NewHandler()
	notify.NewHandler()
	auth.NewHandler()
	jobseeker.NewHandler()
	employer.NewHandler()
	analytics.NewHandler()
	charts.NewHandler()
	admin.NewHandler()
}
