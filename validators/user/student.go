package userValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/models"
)

// StudentRequest is the parsed create/update body for a student profile.
// Pointer fields distinguish "absent" from zero in partial updates.
type StudentRequest struct {
	ParentID    uint   `json:"parentId"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Grade       int    `json:"grade"`
	SchoolName  string `json:"schoolName"`

	XPTotal        *int            `json:"xpTotal"`
	Level          *int            `json:"level"`
	Coins          *int            `json:"coins"`
	AvatarEquipped map[string]uint `json:"avatarEquipped"`

	SubPlanID     *uint  `json:"subPlanId"`
	SubStatus     string `json:"subStatus"`
	SubValidUntil *int64 `json:"subValidUntil"` // epoch ms, dashboard convention
}

var validSubStatuses = map[string]bool{
	models.SubActive:  true,
	models.SubExpired: true,
	models.SubPastDue: true,
	models.SubNone:    true,
}

// CreateStudent validates student creation
func CreateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Username = strings.TrimSpace(reqData.Username)
		reqData.DisplayName = strings.TrimSpace(reqData.DisplayName)
		reqData.SchoolName = strings.TrimSpace(reqData.SchoolName)
		reqData.SubStatus = strings.TrimSpace(reqData.SubStatus)

		if reqData.ParentID == 0 {
			errors["parentId"] = "Parent ID is required!"
		}

		if reqData.Username == "" {
			errors["username"] = "Username is required!"
		} else if len(reqData.Username) < 3 {
			errors["username"] = "Username must be at least 3 characters long!"
		}

		if reqData.DisplayName == "" {
			errors["displayName"] = "Display name is required!"
		}

		if reqData.Grade < 1 || reqData.Grade > 6 {
			errors["grade"] = "Grade must be between 1 and 6!"
		}

		validateStats(reqData, errors)

		if reqData.SubStatus != "" && !validSubStatuses[reqData.SubStatus] {
			errors["subStatus"] = "Subscription status must be active, expired, past_due, or none!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}

// UpdateStudent validates a partial student update
func UpdateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Student ID!", nil)
		}

		reqData := new(StudentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Username = strings.TrimSpace(reqData.Username)
		reqData.DisplayName = strings.TrimSpace(reqData.DisplayName)
		reqData.SubStatus = strings.TrimSpace(reqData.SubStatus)

		if reqData.Username != "" && len(reqData.Username) < 3 {
			errors["username"] = "Username must be at least 3 characters long!"
		}

		if reqData.Grade != 0 && (reqData.Grade < 1 || reqData.Grade > 6) {
			errors["grade"] = "Grade must be between 1 and 6!"
		}

		validateStats(reqData, errors)

		if reqData.SubStatus != "" && !validSubStatuses[reqData.SubStatus] {
			errors["subStatus"] = "Subscription status must be active, expired, past_due, or none!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("studentID", studentID)
		c.Locals("validatedStudentUpdate", reqData)
		return c.Next()
	}
}

// StudentID validates the :id path parameter for get/delete/inventory
func StudentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Student ID!", nil)
		}
		c.Locals("studentID", studentID)
		return c.Next()
	}
}

// GrantItemRequest is the parsed body for granting a shop item.
type GrantItemRequest struct {
	ItemID uint `json:"itemId"`
}

// GrantItem validates granting a shop item to a student
func GrantItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Student ID!", nil)
		}

		reqData := new(GrantItemRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ItemID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"itemId": "Item ID is required!"})
		}

		c.Locals("studentID", studentID)
		c.Locals("validatedGrant", reqData)
		return c.Next()
	}
}

// ListStudents validates the optional parent_id query filter
func ListStudents() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Query("parent_id"))
		if raw != "" {
			parentID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || parentID == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid parent_id filter!", nil)
			}
			c.Locals("filterParentID", uint(parentID))
		}
		return c.Next()
	}
}

func validateStats(reqData *StudentRequest, errors map[string]string) {
	if reqData.XPTotal != nil && *reqData.XPTotal < 0 {
		errors["xpTotal"] = "XP total cannot be negative!"
	}
	if reqData.Level != nil && *reqData.Level < 1 {
		errors["level"] = "Level must be at least 1!"
	}
	if reqData.Coins != nil && *reqData.Coins < 0 {
		errors["coins"] = "Coins cannot be negative!"
	}
}
