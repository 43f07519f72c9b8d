package userRoutes

import (
	userControllers "belajaradmin/controllers/user"
	"belajaradmin/middleware"
	userValidators "belajaradmin/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up parent and student management routes
func SetupUserRoutes(app *fiber.App) {
	parentGroup := app.Group("/admin/parents", middleware.JWTMiddleware, middleware.AdminOnly)

	parentGroup.Get("/", userControllers.ListParents)
	parentGroup.Get("/:id", userValidators.ParentID(), userControllers.GetParent)
	parentGroup.Post("/", userValidators.CreateParent(), userControllers.CreateParent)
	parentGroup.Put("/:id", userValidators.UpdateParent(), userControllers.UpdateParent)
	parentGroup.Delete("/:id", userValidators.ParentID(), userControllers.DeleteParent)

	studentGroup := app.Group("/admin/students", middleware.JWTMiddleware, middleware.AdminOnly)

	studentGroup.Get("/", userValidators.ListStudents(), userControllers.ListStudents)
	studentGroup.Get("/:id", userValidators.StudentID(), userControllers.GetStudent)
	studentGroup.Post("/", userValidators.CreateStudent(), userControllers.CreateStudent)
	studentGroup.Put("/:id", userValidators.UpdateStudent(), userControllers.UpdateStudent)
	studentGroup.Delete("/:id", userValidators.StudentID(), userControllers.DeleteStudent)

	// Inventory
	studentGroup.Get("/:id/inventory", userValidators.StudentID(), userControllers.ListInventory)
	studentGroup.Post("/:id/inventory", userValidators.GrantItem(), userControllers.GrantItem)
}
