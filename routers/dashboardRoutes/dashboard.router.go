package dashboardRoutes

import (
	dashboardControllers "belajaradmin/controllers/dashboard"
	paymentControllers "belajaradmin/controllers/payment"
	"belajaradmin/middleware"
	paymentValidators "belajaradmin/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up dashboard, payment and report routes
func SetupDashboardRoutes(app *fiber.App) {
	paymentGroup := app.Group("/admin/payments", middleware.JWTMiddleware, middleware.AdminOnly)
	paymentGroup.Get("/", paymentValidators.ListPayments(), paymentControllers.ListPayments)

	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnly)
	dashGroup.Get("/stats", dashboardControllers.Stats)

	reportGroup := app.Group("/admin/reports", middleware.JWTMiddleware, middleware.AdminOnly)
	reportGroup.Get("/revenue", dashboardControllers.RevenueReport)
	reportGroup.Get("/user-growth", dashboardControllers.UserGrowthReport)
	reportGroup.Get("/academic", dashboardControllers.AcademicReport)
}
