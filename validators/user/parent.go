package userValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
)

var validate = validator.New()

// ParentRequest is the parsed create/update body for a parent account.
type ParentRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// CreateParent validates parent creation
func CreateParent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ParentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.FullName = strings.TrimSpace(reqData.FullName)
		reqData.Phone = strings.TrimSpace(reqData.Phone)

		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if err := validate.Var(reqData.Email, "email"); err != nil {
			errors["email"] = "Email address is invalid!"
		}

		if reqData.FullName == "" {
			errors["fullName"] = "Full name is required!"
		} else if len(reqData.FullName) < 3 {
			errors["fullName"] = "Full name must be at least 3 characters long!"
		}

		if reqData.Phone != "" {
			if err := validate.Var(reqData.Phone, "e164"); err != nil {
				errors["phone"] = "Phone must be in international format, e.g. +6281234567890!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedParent", reqData)
		return c.Next()
	}
}

// UpdateParent validates a partial parent update
func UpdateParent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		parentID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Parent ID!", nil)
		}

		reqData := new(ParentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		reqData.FullName = strings.TrimSpace(reqData.FullName)
		reqData.Phone = strings.TrimSpace(reqData.Phone)

		if reqData.Email != "" {
			if err := validate.Var(reqData.Email, "email"); err != nil {
				errors["email"] = "Email address is invalid!"
			}
		}

		if reqData.FullName != "" && len(reqData.FullName) < 3 {
			errors["fullName"] = "Full name must be at least 3 characters long!"
		}

		if reqData.Phone != "" {
			if err := validate.Var(reqData.Phone, "e164"); err != nil {
				errors["phone"] = "Phone must be in international format, e.g. +6281234567890!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("parentID", parentID)
		c.Locals("validatedParentUpdate", reqData)
		return c.Next()
	}
}

// ParentID validates the :id path parameter for get/delete
func ParentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		parentID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Parent ID!", nil)
		}
		c.Locals("parentID", parentID)
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
