package shopController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/repository"
	"belajaradmin/store"

	shopValidator "belajaradmin/validators/shop"
)

// ListItems lists shop items, optionally filtered by slot type
func ListItems(c *fiber.Ctx) error {
	var filter repository.Filter
	if itemType, ok := c.Locals("filterItemType").(string); ok {
		filter = repository.Filter{"type": itemType}
	}

	items, err := store.ShopItems.List(c.Context(), filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch shop items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Shop items fetched successfully!", items)
}

// GetItem returns a single shop item
func GetItem(c *fiber.Ctx) error {
	itemID := c.Locals("itemID").(uint)

	item, err := store.ShopItems.GetByID(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shop item not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch shop item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Shop item fetched successfully!", item)
}

// CreateItem creates a new shop item
func CreateItem(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedItem").(*shopValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	item := models.ShopItem{
		Name:      reqData.Name,
		Type:      reqData.Type,
		CostCoins: *reqData.CostCoins,
		AssetURL:  reqData.AssetURL,
	}
	if reqData.IsPremium != nil {
		item.IsPremium = *reqData.IsPremium
	}

	if err := store.ShopItems.Create(c.Context(), &item); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create shop item!", nil)
	}

	store.LogActivity(adminName(c), "menambahkan item toko "+item.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Shop item created successfully!", item)
}

// UpdateItem merges the provided fields into an existing shop item
func UpdateItem(c *fiber.Ctx) error {
	itemID := c.Locals("itemID").(uint)

	reqData, ok := c.Locals("validatedItemUpdate").(*shopValidator.ItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	item, err := store.ShopItems.GetByID(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shop item not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch shop item!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		item.Name = reqData.Name
	}
	if reqData.Type != "" {
		item.Type = reqData.Type
	}
	if reqData.CostCoins != nil {
		item.CostCoins = *reqData.CostCoins
	}
	if reqData.AssetURL != "" {
		item.AssetURL = reqData.AssetURL
	}
	if reqData.IsPremium != nil {
		item.IsPremium = *reqData.IsPremium
	}

	if err := store.ShopItems.Update(c.Context(), &item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shop item not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update shop item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Shop item updated successfully!", item)
}

// DeleteItem removes a shop item from the catalogue. Inventory rows keep
// their snapshot of the item and are not touched.
func DeleteItem(c *fiber.Ctx) error {
	itemID := c.Locals("itemID").(uint)

	if err := store.ShopItems.Remove(c.Context(), itemID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shop item not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete shop item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Shop item deleted successfully!", nil)
}

func adminName(c *fiber.Ctx) string {
	if name, ok := c.Locals("adminName").(string); ok && name != "" {
		return name
	}
	return "Admin"
}
