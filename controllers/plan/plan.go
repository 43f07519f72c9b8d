package planController

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/repository"
	"belajaradmin/store"

	planValidator "belajaradmin/validators/plan"
)

// ListPlans lists all subscription plans
func ListPlans(c *fiber.Ctx) error {
	plans, err := store.Plans.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plans!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plans fetched successfully!", plans)
}

// GetPlan returns a single subscription plan
func GetPlan(c *fiber.Ctx) error {
	planID := c.Locals("planID").(uint)

	plan, err := store.Plans.GetByID(c.Context(), planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan fetched successfully!", plan)
}

// CreatePlan creates a new subscription plan
func CreatePlan(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPlan").(*planValidator.PlanRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	plan := models.SubscriptionPlan{
		Name:          reqData.Name,
		Slug:          reqData.Slug,
		Price:         reqData.Price,
		OriginalPrice: reqData.OriginalPrice,
		DurationDays:  reqData.DurationDays,
		Features:      datatypes.NewJSONSlice(reqData.Features),
		IsActive:      true,
	}
	if reqData.IsActive != nil {
		plan.IsActive = *reqData.IsActive
	}
	if reqData.IsRecommended != nil {
		plan.IsRecommended = *reqData.IsRecommended
	}

	if err := store.Plans.Create(c.Context(), &plan); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create plan!", nil)
	}

	store.LogActivity(adminName(c), "menambahkan paket "+plan.Name)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Plan created successfully!", plan)
}

// UpdatePlan merges the provided fields into an existing plan
func UpdatePlan(c *fiber.Ctx) error {
	planID := c.Locals("planID").(uint)

	reqData, ok := c.Locals("validatedPlanUpdate").(*planValidator.PlanRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	plan, err := store.Plans.GetByID(c.Context(), planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plan!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		plan.Name = reqData.Name
	}
	if reqData.Slug != "" {
		plan.Slug = reqData.Slug
	}
	if reqData.Price > 0 {
		plan.Price = reqData.Price
	}
	if reqData.OriginalPrice > 0 {
		plan.OriginalPrice = reqData.OriginalPrice
	}
	if reqData.DurationDays > 0 {
		plan.DurationDays = reqData.DurationDays
	}
	if len(reqData.Features) > 0 {
		plan.Features = datatypes.NewJSONSlice(reqData.Features)
	}
	if reqData.IsActive != nil {
		plan.IsActive = *reqData.IsActive
	}
	if reqData.IsRecommended != nil {
		plan.IsRecommended = *reqData.IsRecommended
	}

	if err := store.Plans.Update(c.Context(), &plan); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan updated successfully!", plan)
}

// DeletePlan removes a subscription plan
func DeletePlan(c *fiber.Ctx) error {
	planID := c.Locals("planID").(uint)

	if err := store.Plans.Remove(c.Context(), planID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan deleted successfully!", nil)
}

func adminName(c *fiber.Ctx) string {
	if name, ok := c.Locals("adminName").(string); ok && name != "" {
		return name
	}
	return "Admin"
}
