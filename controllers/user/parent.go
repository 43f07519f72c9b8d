package userController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/repository"
	"belajaradmin/store"
	"belajaradmin/utils"

	userValidator "belajaradmin/validators/user"
)

// ListParents lists all parent accounts
func ListParents(c *fiber.Ctx) error {
	parents, err := store.Parents.List(c.Context(), nil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch parents!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Parents fetched successfully!", parents)
}

// GetParent returns a single parent account
func GetParent(c *fiber.Ctx) error {
	parentID := c.Locals("parentID").(uint)

	parent, err := store.Parents.GetByID(c.Context(), parentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch parent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Parent fetched successfully!", parent)
}

// CreateParent creates a new parent account
func CreateParent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedParent").(*userValidator.ParentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if email already exists
	existing, err := store.Parents.List(c.Context(), repository.Filter{"email": reqData.Email})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create parent!", nil)
	}
	if len(existing) > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	parent := models.Parent{
		Email:    reqData.Email,
		FullName: reqData.FullName,
		Phone:    reqData.Phone,
	}

	if err := store.Parents.Create(c.Context(), &parent); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create parent!", nil)
	}

	utils.SendParentWelcomeEmail(parent.Email, parent.FullName)
	store.LogActivity(adminName(c), "mendaftarkan orang tua "+parent.FullName)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Parent created successfully!", parent)
}

// UpdateParent merges the provided fields into an existing parent
func UpdateParent(c *fiber.Ctx) error {
	parentID := c.Locals("parentID").(uint)

	reqData, ok := c.Locals("validatedParentUpdate").(*userValidator.ParentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	parent, err := store.Parents.GetByID(c.Context(), parentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch parent!", nil)
	}

	// Update only provided fields
	if reqData.Email != "" {
		parent.Email = reqData.Email
	}
	if reqData.FullName != "" {
		parent.FullName = reqData.FullName
	}
	if reqData.Phone != "" {
		parent.Phone = reqData.Phone
	}

	if err := store.Parents.Update(c.Context(), &parent); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update parent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Parent updated successfully!", parent)
}

// DeleteParent removes a parent account. Students are kept; childrenIds on
// the removed parent is the only record dropped (no cascade delete).
func DeleteParent(c *fiber.Ctx) error {
	parentID := c.Locals("parentID").(uint)

	if err := store.Parents.Remove(c.Context(), parentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete parent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Parent deleted successfully!", nil)
}

func adminName(c *fiber.Ctx) string {
	if name, ok := c.Locals("adminName").(string); ok && name != "" {
		return name
	}
	return "Admin"
}
