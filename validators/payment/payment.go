package paymentValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/models"
)

var validStatuses = map[string]bool{
	models.PaymentPending: true,
	models.PaymentPaid:    true,
	models.PaymentFailed:  true,
}

// ListPayments validates the optional status query filter
func ListPayments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := strings.TrimSpace(c.Query("status"))
		if status != "" {
			if !validStatuses[status] {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid status filter!", nil)
			}
			c.Locals("filterStatus", status)
		}
		return c.Next()
	}
}
