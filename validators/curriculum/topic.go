package curriculumValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/utils"
)

// TopicRequest is the parsed create/update body for a curriculum topic.
type TopicRequest struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Subject    string `json:"subject"`
	GradeLevel int    `json:"gradeLevel"`
	Order      int    `json:"order"`
	IconURL    string `json:"iconUrl"`
}

var validSubjects = map[string]bool{
	models.SubjectMath:    true,
	models.SubjectScience: true,
	models.SubjectEnglish: true,
}

// CreateTopic validates topic creation. A blank slug is derived from the
// name; a client-sent slug is kept as a manual edit.
func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TopicRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Slug = strings.TrimSpace(reqData.Slug)
		reqData.Subject = strings.TrimSpace(reqData.Subject)

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

		if !validSubjects[reqData.Subject] {
			errors["subject"] = "Subject must be math, science, or english!"
		}

		if reqData.GradeLevel < 1 || reqData.GradeLevel > 6 {
			errors["gradeLevel"] = "Grade level must be between 1 and 6!"
		}

		if reqData.IconURL != "" && !utils.IsAbsoluteHTTPURL(reqData.IconURL) {
			errors["iconUrl"] = "Icon URL must be an absolute http(s) URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

// UpdateTopic validates a partial topic update. Renaming without sending a
// slug re-derives it; a sent slug is treated as a manual edit and kept.
func UpdateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topicID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Topic ID!", nil)
		}

		reqData := new(TopicRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Slug = strings.TrimSpace(reqData.Slug)
		reqData.Subject = strings.TrimSpace(reqData.Subject)

		if reqData.Name != "" && len(reqData.Name) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if reqData.Slug == "" && reqData.Name != "" {
			reqData.Slug = utils.Slugify(reqData.Name)
		} else if reqData.Slug != "" && !utils.IsValidSlug(reqData.Slug) {
			errors["slug"] = "Slug may only contain lowercase letters, digits and hyphens!"
		}

		if reqData.Subject != "" && !validSubjects[reqData.Subject] {
			errors["subject"] = "Subject must be math, science, or english!"
		}

		if reqData.GradeLevel != 0 && (reqData.GradeLevel < 1 || reqData.GradeLevel > 6) {
			errors["gradeLevel"] = "Grade level must be between 1 and 6!"
		}

		if reqData.IconURL != "" && !utils.IsAbsoluteHTTPURL(reqData.IconURL) {
			errors["iconUrl"] = "Icon URL must be an absolute http(s) URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("topicID", topicID)
		c.Locals("validatedTopicUpdate", reqData)
		return c.Next()
	}
}

// TopicID validates the :id path parameter for get/delete
func TopicID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topicID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Topic ID!", nil)
		}
		c.Locals("topicID", topicID)
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
