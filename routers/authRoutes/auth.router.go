package authRoutes

import (
	authControllers "belajaradmin/controllers/auth"
	"belajaradmin/middleware"
	authValidators "belajaradmin/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, middleware.AdminOnly, authControllers.Me)
}
