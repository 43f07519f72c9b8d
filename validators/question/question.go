package questionValidator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/utils"
)

// QuestionRequest is the parsed create/update body for a quiz question.
type QuestionRequest struct {
	TopicID       uint                    `json:"topicId"`
	Difficulty    int                     `json:"difficulty"`
	Type          string                  `json:"type"`
	Content       models.QuestionContent  `json:"content"`
	Options       []models.QuestionOption `json:"options"`
	CorrectAnswer string                  `json:"correctAnswer"`
	Explanation   string                  `json:"explanation"`
}

// CreateQuestion validates question creation. An mcq question carries 2 to
// 6 options with exactly one correct; a fill_in question carries none.
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuestionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TopicID == 0 {
			errors["topicId"] = "Topic ID is required!"
		}

		if reqData.Difficulty < 1 || reqData.Difficulty > 3 {
			errors["difficulty"] = "Difficulty must be between 1 and 3!"
		}

		validateTypeAndOptions(reqData, errors, true)

		if strings.TrimSpace(reqData.Content.Text) == "" {
			errors["content.text"] = "Question text is required!"
		}
		if reqData.Content.Image != "" && !utils.IsAbsoluteHTTPURL(reqData.Content.Image) {
			errors["content.image"] = "Image must be an absolute http(s) URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// UpdateQuestion validates a partial question update.
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}

		reqData := new(QuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Difficulty != 0 && (reqData.Difficulty < 1 || reqData.Difficulty > 3) {
			errors["difficulty"] = "Difficulty must be between 1 and 3!"
		}

		if reqData.Type != "" {
			validateTypeAndOptions(reqData, errors, false)
		} else if len(reqData.Options) > 0 {
			validateOptions(reqData.Options, errors)
		}

		if reqData.Content.Image != "" && !utils.IsAbsoluteHTTPURL(reqData.Content.Image) {
			errors["content.image"] = "Image must be an absolute http(s) URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("questionID", questionID)
		c.Locals("validatedQuestionUpdate", reqData)
		return c.Next()
	}
}

// ListQuestions validates the optional topic_id query filter
func ListQuestions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Query("topic_id"))
		if raw != "" {
			topicID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || topicID == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic_id filter!", nil)
			}
			c.Locals("filterTopicID", uint(topicID))
		}
		return c.Next()
	}
}

// QuestionID validates the :id path parameter for get/delete
func QuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID, err := parseIDParam(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Question ID!", nil)
		}
		c.Locals("questionID", questionID)
		return c.Next()
	}
}

func validateTypeAndOptions(reqData *QuestionRequest, errors map[string]string, required bool) {
	switch reqData.Type {
	case models.QuestionMCQ:
		if len(reqData.Options) < 2 || len(reqData.Options) > 6 {
			errors["options"] = "MCQ questions need between 2 and 6 options!"
			return
		}
		validateOptions(reqData.Options, errors)
	case models.QuestionFillIn:
		if len(reqData.Options) > 0 {
			errors["options"] = "Fill-in questions cannot have options!"
		}
		if strings.TrimSpace(reqData.CorrectAnswer) == "" {
			errors["correctAnswer"] = "Correct answer is required for fill-in questions!"
		}
	default:
		if required || reqData.Type != "" {
			errors["type"] = "Type must be mcq or fill_in!"
		}
	}
}

func validateOptions(options []models.QuestionOption, errors map[string]string) {
	correct := 0
	for i := range options {
		if strings.TrimSpace(options[i].Value) == "" {
			errors["options"] = "Option values cannot be empty!"
			return
		}
		if options[i].ID == "" {
			// default ids A, B, C, ...
			options[i].ID = string(rune('A' + i))
		}
		if options[i].IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		errors["options"] = fmt.Sprintf("Exactly one option must be marked correct, got %d!", correct)
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
