package shopValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/utils"
)

// ItemRequest is the parsed create/update body for a shop item.
type ItemRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	CostCoins *int   `json:"costCoins"`
	AssetURL  string `json:"assetUrl"`
	IsPremium *bool  `json:"isPremium"`
}

var validItemTypes = map[string]bool{
	models.ItemHead:       true,
	models.ItemOutfit:     true,
	models.ItemBackground: true,
}

// CreateItem validates shop item creation
func CreateItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ItemRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Type = strings.TrimSpace(reqData.Type)
		reqData.AssetURL = strings.TrimSpace(reqData.AssetURL)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if !validItemTypes[reqData.Type] {
			errors["type"] = "Type must be head, outfit, or background!"
		}

		if reqData.CostCoins == nil {
			errors["costCoins"] = "Coin cost is required!"
		} else if *reqData.CostCoins < 0 {
			errors["costCoins"] = "Coin cost cannot be negative!"
		}

		if reqData.AssetURL == "" {
			errors["assetUrl"] = "Asset URL is required!"
		} else if !utils.IsAbsoluteHTTPURL(reqData.AssetURL) {
			errors["assetUrl"] = "Asset URL must be an absolute http(s) URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedItem", reqData)
		return c.Next()
	}
}

// UpdateItem validates a partial shop item update
func UpdateItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Item ID!", nil)
		}

		reqData := new(ItemRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Type = strings.TrimSpace(reqData.Type)
		reqData.AssetURL = strings.TrimSpace(reqData.AssetURL)

		if reqData.Name != "" && len(reqData.Name) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.Type != "" && !validItemTypes[reqData.Type] {
			errors["type"] = "Type must be head, outfit, or background!"
		}

		if reqData.CostCoins != nil && *reqData.CostCoins < 0 {
			errors["costCoins"] = "Coin cost cannot be negative!"
		}

		if reqData.AssetURL != "" && !utils.IsAbsoluteHTTPURL(reqData.AssetURL) {
			errors["assetUrl"] = "Asset URL must be an absolute http(s) URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("itemID", itemID)
		c.Locals("validatedItemUpdate", reqData)
		return c.Next()
	}
}

// ItemID validates the :id path parameter for get/delete
func ItemID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Item ID!", nil)
		}
		c.Locals("itemID", itemID)
		return c.Next()
	}
}

// ListItems validates the optional type query filter
func ListItems() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemType := strings.TrimSpace(c.Query("type"))
		if itemType != "" {
			if !validItemTypes[itemType] {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid type filter!", nil)
			}
			c.Locals("filterItemType", itemType)
		}
		return c.Next()
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
