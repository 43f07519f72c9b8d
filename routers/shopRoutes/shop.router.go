package shopRoutes

import (
	shopControllers "belajaradmin/controllers/shop"
	"belajaradmin/middleware"
	shopValidators "belajaradmin/validators/shop"

	"github.com/gofiber/fiber/v2"
)

// SetupShopRoutes sets up shop item management routes
func SetupShopRoutes(app *fiber.App) {
	itemGroup := app.Group("/admin/shop-items", middleware.JWTMiddleware, middleware.AdminOnly)

	itemGroup.Get("/", shopValidators.ListItems(), shopControllers.ListItems)
	itemGroup.Get("/:id", shopValidators.ItemID(), shopControllers.GetItem)
	itemGroup.Post("/", shopValidators.CreateItem(), shopControllers.CreateItem)
	itemGroup.Put("/:id", shopValidators.UpdateItem(), shopControllers.UpdateItem)
	itemGroup.Delete("/:id", shopValidators.ItemID(), shopControllers.DeleteItem)
}
