// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "ppdbku_backend/internals/route/details"

	"ppdbku_backend/internals/constants"
	authMiddleware "ppdbku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.AdmissionPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	routeDetails.AdmissionUserRoutes(user, db)

	// ===================== ADMIN (PANITIA) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(
			constants.RoleErrorCommittee("kelola PPDB"),
			constants.AdmissionAdminRoles...,
		),
	)
	routeDetails.AdmissionAdminRoutes(admin, db)
}
