package questionController

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/repository"
	"belajaradmin/store"

	questionValidator "belajaradmin/validators/question"
)

// ListQuestions lists questions, optionally filtered by topic_id. A topic
// with no questions yields an empty list so the add-question action stays
// available on the client.
func ListQuestions(c *fiber.Ctx) error {
	var filter repository.Filter
	if topicID, ok := c.Locals("filterTopicID").(uint); ok {
		filter = repository.Filter{"topic_id": strconv.FormatUint(uint64(topicID), 10)}
	}

	questions, err := store.Questions.List(c.Context(), filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", questions)
}

// GetQuestion returns a single question
func GetQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)

	question, err := store.Questions.GetByID(c.Context(), questionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question fetched successfully!", question)
}

// CreateQuestion creates a new question under a topic
func CreateQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuestion").(*questionValidator.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// The owning topic must exist
	if _, err := store.Topics.GetByID(c.Context(), reqData.TopicID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topic!", nil)
	}

	question := models.Question{
		TopicID:       reqData.TopicID,
		Difficulty:    reqData.Difficulty,
		Type:          reqData.Type,
		Content:       datatypes.NewJSONType(reqData.Content),
		Options:       datatypes.NewJSONSlice(reqData.Options),
		CorrectAnswer: reqData.CorrectAnswer,
		Explanation:   reqData.Explanation,
	}

	if err := store.Questions.Create(c.Context(), &question); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// UpdateQuestion merges the provided fields into an existing question
func UpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)

	reqData, ok := c.Locals("validatedQuestionUpdate").(*questionValidator.QuestionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question, err := store.Questions.GetByID(c.Context(), questionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch question!", nil)
	}

	// Update only provided fields; moving a question between topics is
	// not supported, the client recreates it instead.
	if reqData.Difficulty > 0 {
		question.Difficulty = reqData.Difficulty
	}
	if reqData.Type != "" {
		question.Type = reqData.Type
	}
	if reqData.Content.Text != "" || reqData.Content.Image != "" || reqData.Content.LaTeX != "" {
		question.Content = datatypes.NewJSONType(reqData.Content)
	}
	if len(reqData.Options) > 0 {
		question.Options = datatypes.NewJSONSlice(reqData.Options)
	}
	if reqData.CorrectAnswer != "" {
		question.CorrectAnswer = reqData.CorrectAnswer
	}
	if reqData.Explanation != "" {
		question.Explanation = reqData.Explanation
	}

	// A fill-in question carries no options; drop any left over from a
	// type switch away from mcq
	if question.Type == models.QuestionFillIn {
		question.Options = nil
	}

	if err := store.Questions.Update(c.Context(), &question); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// DeleteQuestion removes a question
func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)

	if err := store.Questions.Remove(c.Context(), questionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
