// file: internals/route/details/admission_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appRoute "ppdbku_backend/internals/features/admission/applications/route"
	pathRoute "ppdbku_backend/internals/features/admission/paths/route"
	selRoute "ppdbku_backend/internals/features/admission/selection/route"
)

// PUBLIC: lihat jalur pendaftaran tanpa login
func AdmissionPublicRoutes(public fiber.Router, db *gorm.DB) {
	pathRoute.PathPublicRoutes(public, db)
}

// USER: pendaftar yang sudah login
func AdmissionUserRoutes(user fiber.Router, db *gorm.DB) {
	appRoute.ApplicationUserRoutes(user, db)
}

// ADMIN: panitia PPDB
func AdmissionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	pathRoute.PathAdminRoutes(admin, db)
	appRoute.ApplicationAdminRoutes(admin, db)
	selRoute.SelectionAdminRoutes(admin, db)
}
