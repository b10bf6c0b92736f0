// internals/features/admission/paths/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pathctrl "ppdbku_backend/internals/features/admission/paths/controller"
)

func PathAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := pathctrl.NewAdmissionPathController(db)

	grp := admin.Group("/admission-paths")
	{
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Patch)
		grp.Patch("/:id/status", h.UpdateStatus)
		grp.Delete("/:id", h.Delete)
	}
}
