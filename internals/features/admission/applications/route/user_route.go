// internals/features/admission/applications/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appctrl "ppdbku_backend/internals/features/admission/applications/controller"
)

func ApplicationUserRoutes(user fiber.Router, db *gorm.DB) {
	h := appctrl.NewApplicationController(db)

	grp := user.Group("/applications")
	{
		grp.Post("/", h.Create)
	}
}
