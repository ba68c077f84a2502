package middleware

import (
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/models"
	apimodels "job-portal-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		return name.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// RoleRequired gates a route on an exact role match; the rejection carries
// no detail about the target resource.
func RoleRequired(role models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != role {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}

func JobSeekerRequired() fiber.Handler {
	return RoleRequired(models.UserRoleJobSeeker)
}

func EmployerRequired() fiber.Handler {
	return RoleRequired(models.UserRoleEmployer)
}

func AdminRequired() fiber.Handler {
	return RoleRequired(models.UserRoleAdmin)
}
