package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"job-portal-backend/controllers"
	jobseekerhandler "job-portal-backend/lib/jobseeker"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	jobsapimodels "job-portal-backend/models/api/jobs"
	usersapimodels "job-portal-backend/models/api/users"
)

type jobSeekerApiController struct {
	controllers.BaseAPIController
}

func InitJobSeekerApiRouters(app *fiber.App) {
	controller := jobSeekerApiController{}
	app.Route("job_seeker", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.JobSeekerRequired())
		router.Get("dashboard", controller.dashboard)
		router.Get("profile", controller.getProfile)
		router.Put("profile", controller.updateProfile)
		router.Post("resume", controller.uploadResume)
		router.Post("apply/:jobID", controller.apply)
	})
}

// @Summary Job seeker dashboard
// @Tags Job seeker
// @Description Job list with filters plus the seeker's applications
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   search				query	string	false	"substring over title, company, description, requirements"
// @Param   category			query	string	false	"exact category"
// @Param   location			query	string	false	"location substring"
// @Param   min_salary			query	string	false	"minimum salary"
// @Success 200 {object} apimodels.Response{data=jobseekerapimodels.DashboardData}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_seeker/dashboard [get]
func (c *jobSeekerApiController) dashboard(ctx *fiber.Ctx) error {
	var filter jobsapimodels.JobFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := jobseekerhandler.Instance.Dashboard(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load job seeker dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Get profile
// @Tags Job seeker
// @Description Get profile
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=usersapimodels.UserView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_seeker/profile [get]
func (c *jobSeekerApiController) getProfile(ctx *fiber.Ctx) error {
	view, err := jobseekerhandler.Instance.GetProfile(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update profile
// @Tags Job seeker
// @Description Overwrites education, experience and skills; name and email keep stored values when omitted
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body				body	usersapimodels.ProfileUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_seeker/profile [put]
func (c *jobSeekerApiController) updateProfile(ctx *fiber.Ctx) error {
	var payload usersapimodels.ProfileUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := jobseekerhandler.Instance.UpdateProfile(middleware.GetUserID(ctx), payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Profile updated successfully!"))
}

// @Summary Upload resume
// @Tags Job seeker
// @Description Upload resume as multipart form field "resume"
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   resume				formData	file	true	"resume file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_seeker/resume [post]
func (c *jobSeekerApiController) uploadResume(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("No file selected"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read uploaded file")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read uploaded file")
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	err = jobseekerhandler.Instance.UploadResume(ctx.UserContext(), middleware.GetUserID(ctx),
		fileHeader.Filename, contentType, data)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Resume uploaded successfully!"))
}

// @Summary Apply for a job
// @Tags Job seeker
// @Description Apply for a job
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   jobID				path	string	true	"job id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_seeker/apply/{jobID} [post]
func (c *jobSeekerApiController) apply(ctx *fiber.Ctx) error {
	jobID := ctx.Params("jobID")
	if err := jobseekerhandler.Instance.Apply(ctx.UserContext(), middleware.GetUserID(ctx), jobID); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Application submitted successfully!"))
}
