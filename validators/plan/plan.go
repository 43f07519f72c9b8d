package planValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/utils"
)

// PlanRequest is the parsed create/update body for a subscription plan.
type PlanRequest struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	DurationDays  int      `json:"durationDays"`
	Features      []string `json:"features"`
	IsActive      *bool    `json:"isActive"`
	IsRecommended *bool    `json:"isRecommended"`
}

// CreatePlan validates subscription plan creation
func CreatePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PlanRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Slug = strings.TrimSpace(reqData.Slug)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		} else if len(reqData.Name) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.Slug == "" {
			reqData.Slug = utils.Slugify(reqData.Name)
		} else if !utils.IsValidSlug(reqData.Slug) {
			errors["slug"] = "Slug may only contain lowercase letters, digits and hyphens!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.OriginalPrice < 0 {
			errors["originalPrice"] = "Original price cannot be negative!"
		}
		if reqData.DurationDays <= 0 {
			errors["durationDays"] = "Duration must be a positive number of days!"
		}

		for _, f := range reqData.Features {
			if strings.TrimSpace(f) == "" {
				errors["features"] = "Features cannot contain empty entries!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPlan", reqData)
		return c.Next()
	}
}

// UpdatePlan validates a partial plan update
func UpdatePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Plan ID!", nil)
		}

		reqData := new(PlanRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Slug = strings.TrimSpace(reqData.Slug)

		if reqData.Name != "" && len(reqData.Name) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.Slug == "" && reqData.Name != "" {
			reqData.Slug = utils.Slugify(reqData.Name)
		} else if reqData.Slug != "" && !utils.IsValidSlug(reqData.Slug) {
			errors["slug"] = "Slug may only contain lowercase letters, digits and hyphens!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.OriginalPrice < 0 {
			errors["originalPrice"] = "Original price cannot be negative!"
		}
		if reqData.DurationDays < 0 {
			errors["durationDays"] = "Duration must be a positive number of days!"
		}

		for _, f := range reqData.Features {
			if strings.TrimSpace(f) == "" {
				errors["features"] = "Features cannot contain empty entries!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("planID", planID)
		c.Locals("validatedPlanUpdate", reqData)
		return c.Next()
	}
}

// PlanID validates the :id path parameter for get/delete
func PlanID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Plan ID!", nil)
		}
		c.Locals("planID", planID)
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
