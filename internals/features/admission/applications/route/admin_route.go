// internals/features/admission/applications/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appctrl "ppdbku_backend/internals/features/admission/applications/controller"
)

func ApplicationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	appHandler := appctrl.NewApplicationController(db)
	scoreHandler := appctrl.NewApplicationScoreController(db)

	grp := admin.Group("/applications")
	{
		grp.Get("/", appHandler.List)
		grp.Get("/:id", appHandler.GetByID)
		grp.Patch("/:id/verify", appHandler.Verify)

		grp.Put("/:id/score", scoreHandler.Upsert)
		grp.Patch("/:id/score/finalize", scoreHandler.FinalizeScore)
	}
}
