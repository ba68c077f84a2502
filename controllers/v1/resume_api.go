package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"job-portal-backend/controllers"
	filestorage "job-portal-backend/lib/file-storage"
	"job-portal-backend/middleware"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"
)

type resumeApiController struct {
	controllers.BaseAPIController
}

func InitResumeApiRouters(app *fiber.App) {
	controller := resumeApiController{}
	app.Route("resume", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get(":userID", controller.download)
	})
}

// @Summary Download a resume
// @Tags Resume
// @Description Download a user's resume. Allowed for the owner, any employer and admins
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   userID				path	string	true	"resume owner id"
// @Success 200
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/resume/{userID} [get]
func (c *resumeApiController) download(ctx *fiber.Ctx) error {
	ownerID := ctx.Params("userID")
	role := middleware.GetUserRole(ctx)
	if middleware.GetUserID(ctx) != ownerID &&
		role != models.UserRoleAdmin && role != models.UserRoleEmployer {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("Unauthorized access"))
	}
	rec, data, err := filestorage.Instance.GetUserResume(ctx.UserContext(), ownerID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load resume")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("Resume not found"))
	}
	contentType := rec.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.Name+`"`)
	return ctx.Send(data)
}
