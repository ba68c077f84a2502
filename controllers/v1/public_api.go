package apiv1

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"job-portal-backend/config"
	"job-portal-backend/controllers"
	"job-portal-backend/db"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"
)

type publicApiController struct {
	controllers.BaseAPIController
}

func InitPublicApiRouters(app *fiber.App) {
	controller := publicApiController{}
	app.Get("/", controller.landing)
	app.Get("/health", controller.health)
}

// @Summary Landing
// @Tags Public
// @Description Landing. A valid token redirects the client to its role dashboard path
// @Success 200 {object} apimodels.Response
// @router /api/v1/ [get]
func (c *publicApiController) landing(ctx *fiber.Ctx) error {
	if role, ok := roleFromBearer(ctx); ok {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{
			"dashboard_path": role.DashboardPath(),
		}))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("Welcome to the Job Portal API"))
}

// roleFromBearer validates an optional Authorization header; the landing page
// is the only route that accepts a request with or without a token.
func roleFromBearer(ctx *fiber.Ctx) (models.UserRole, bool) {
	header := ctx.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(config.Conf.Auth.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", false
	}
	str, _ := claims["role"].(string)
	role := models.UserRole(str)
	if !role.IsValid() {
		return "", false
	}
	return role, true
}

// @Summary Health check
// @Tags Public
// @Description Health check, verifies database connectivity
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/health [get]
func (c *publicApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "database is unreachable")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessage("ok"))
}
