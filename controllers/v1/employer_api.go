package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"job-portal-backend/controllers"
	employerhandler "job-portal-backend/lib/employer"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
	applicationsapimodels "job-portal-backend/models/api/applications"
	jobsapimodels "job-portal-backend/models/api/jobs"
)

type employerApiController struct {
	controllers.BaseAPIController
}

func InitEmployerApiRouters(app *fiber.App) {
	controller := employerApiController{}
	app.Route("employer", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.EmployerRequired())
		router.Get("dashboard", controller.dashboard)
		router.Post("jobs", controller.postJob)
		router.Put("applications/status", controller.updateStatus)
		router.Get("applications/:applicationID", controller.viewApplicant)
		router.Get("applications/:applicationID/export", controller.applicantExport)
	})
}

// @Summary Employer dashboard
// @Tags Employer
// @Description Posted jobs with application counts plus incoming applications
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=employerapimodels.DashboardData}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/dashboard [get]
func (c *employerApiController) dashboard(ctx *fiber.Ctx) error {
	data, err := employerhandler.Instance.Dashboard(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load employer dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Post a job
// @Tags Employer
// @Description Post a job
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body				body	jobsapimodels.JobCreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/jobs [post]
func (c *employerApiController) postJob(ctx *fiber.Ctx) error {
	var payload jobsapimodels.JobCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	_, err := employerhandler.Instance.PostJob(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to post job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Job posted successfully!"))
}

// @Summary Update application status
// @Tags Employer
// @Description Update the status of an application to one of the employer's jobs
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body				body	applicationsapimodels.StatusUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/applications/status [put]
func (c *employerApiController) updateStatus(ctx *fiber.Ctx) error {
	var payload applicationsapimodels.StatusUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := employerhandler.Instance.UpdateStatus(middleware.GetUserID(ctx), payload); err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Application status updated."))
}

// @Summary View applicant
// @Tags Employer
// @Description Single application with the applicant's profile, owner only
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   applicationID		path	string	true	"application id"
// @Success 200 {object} apimodels.Response{data=applicationsapimodels.ApplicantDetail}
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/applications/{applicationID} [get]
func (c *employerApiController) viewApplicant(ctx *fiber.Ctx) error {
	detail, err := employerhandler.Instance.ViewApplicant(middleware.GetUserID(ctx), ctx.Params("applicationID"))
	if err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(detail))
}

// @Summary Export applicant to PDF
// @Tags Employer
// @Description Export the applicant sheet as a PDF, owner only
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   applicationID		path	string	true	"application id"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employer/applications/{applicationID}/export [get]
func (c *employerApiController) applicantExport(ctx *fiber.Ctx) error {
	pdfFile, err := employerhandler.Instance.ApplicantPDF(middleware.GetUserID(ctx), ctx.Params("applicationID"))
	if err != nil {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("applicant-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(pdfFile)
}
