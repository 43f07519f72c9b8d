package planRoutes

import (
	planControllers "belajaradmin/controllers/plan"
	"belajaradmin/middleware"
	planValidators "belajaradmin/validators/plan"

	"github.com/gofiber/fiber/v2"
)

// SetupPlanRoutes sets up subscription plan management routes
func SetupPlanRoutes(app *fiber.App) {
	planGroup := app.Group("/admin/subscription-plans", middleware.JWTMiddleware, middleware.AdminOnly)

	planGroup.Get("/", planControllers.ListPlans)
	planGroup.Get("/:id", planValidators.PlanID(), planControllers.GetPlan)
	planGroup.Post("/", planValidators.CreatePlan(), planControllers.CreatePlan)
	planGroup.Put("/:id", planValidators.UpdatePlan(), planControllers.UpdatePlan)
	planGroup.Delete("/:id", planValidators.PlanID(), planControllers.DeletePlan)
}
