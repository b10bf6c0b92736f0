// internals/features/admission/paths/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pathctrl "ppdbku_backend/internals/features/admission/paths/controller"
)

func PathPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := pathctrl.NewAdmissionPathController(db)

	grp := public.Group("/admission-paths")
	{
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
	}
}
