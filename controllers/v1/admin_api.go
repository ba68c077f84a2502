package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"job-portal-backend/controllers"
	adminhandler "job-portal-backend/lib/admin"
	"job-portal-backend/middleware"
	apimodels "job-portal-backend/models/api"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("admin", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.AdminRequired())
		router.Get("dashboard", controller.dashboard)
		router.Get("analytics", controller.analytics)
		router.Put("analytics/export", controller.analyticsExport)
	})
}

// @Summary Admin dashboard
// @Tags Admin
// @Description Totals, recent records and rendered chart paths
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=adminapimodels.DashboardData}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/dashboard [get]
func (c *adminApiController) dashboard(ctx *fiber.Ctx) error {
	data, err := adminhandler.Instance.Dashboard()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load admin dashboard")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Salary analytics
// @Tags Admin
// @Description Per-category salary averages, user counts and chart paths
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=adminapimodels.AnalyticsData}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/analytics [get]
func (c *adminApiController) analytics(ctx *fiber.Ctx) error {
	data, err := adminhandler.Instance.Analytics()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to load analytics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Salary analytics. Export to Excel
// @Tags Admin
// @Description Salary analytics. Export to Excel
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/analytics/export [put]
func (c *adminApiController) analyticsExport(ctx *fiber.Ctx) error {
	data, err := adminhandler.Instance.AnalyticsExportToXls()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export analytics to Excel")
	}
	fileName := fmt.Sprintf("analytics-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
