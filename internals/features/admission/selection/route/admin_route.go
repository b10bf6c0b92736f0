// internals/features/admission/selection/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	selctrl "ppdbku_backend/internals/features/admission/selection/controller"
	"ppdbku_backend/internals/middlewares"
)

func SelectionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := selctrl.NewSelectionController(db)

	grp := admin.Group("/:path_id/selection")
	{
		grp.Get("/draft", h.GetDraftRanking)
		grp.Post("/finalize", middlewares.FinalizeRateLimiter(), h.Finalize)
		grp.Get("/results", h.ListResults)
		grp.Get("/results/:id", h.GetResult)
	}
}
