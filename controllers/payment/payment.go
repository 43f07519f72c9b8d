package paymentController

import (
	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/repository"
	"belajaradmin/store"
)

// ListPayments lists payment records, optionally filtered by status.
// Payments are written by the gateway callback, so this surface is read-only.
func ListPayments(c *fiber.Ctx) error {
	var filter repository.Filter
	if status, ok := c.Locals("filterStatus").(string); ok {
		filter = repository.Filter{"status": status}
	}

	payments, err := store.Payments.List(c.Context(), filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}
