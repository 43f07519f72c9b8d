package curriculumController

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"belajaradmin/middleware"
	"belajaradmin/models"
	"belajaradmin/repository"
	"belajaradmin/store"

	curriculumValidator "belajaradmin/validators/curriculum"
)

// ListTopics lists curriculum topics, optionally filtered by subject or
// grade_level. A filter matching nothing is an empty list, not an error.
func ListTopics(c *fiber.Ctx) error {
	filter := repository.Filter{}
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		filter["subject"] = subject
	}
	if grade := strings.TrimSpace(c.Query("grade_level")); grade != "" {
		if _, err := strconv.Atoi(grade); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid grade_level filter!", nil)
		}
		filter["grade_level"] = grade
	}
	if len(filter) == 0 {
		filter = nil
	}

	topics, err := store.Topics.List(c.Context(), filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully!", topics)
}

// GetTopic returns a single topic with its denormalized question count
func GetTopic(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(uint)

	topic, err := store.Topics.GetByID(c.Context(), topicID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topic!", nil)
	}

	questions, err := store.Questions.List(c.Context(), repository.Filter{"topic_id": strconv.FormatUint(uint64(topicID), 10)})
	if err == nil {
		topic.QuestionCount = int64(len(questions))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic fetched successfully!", topic)
}

// CreateTopic creates a new curriculum topic
func CreateTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopic").(*curriculumValidator.TopicRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	topic := models.Topic{
		Name:       reqData.Name,
		Slug:       reqData.Slug,
		Subject:    reqData.Subject,
		GradeLevel: reqData.GradeLevel,
		OrderIndex: reqData.Order,
		IconURL:    reqData.IconURL,
	}

	if err := store.Topics.Create(c.Context(), &topic); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create topic!", nil)
	}

	store.LogActivity(adminName(c), "menambahkan topik "+topic.Name)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", topic)
}

// UpdateTopic merges the provided fields into an existing topic
func UpdateTopic(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(uint)

	reqData, ok := c.Locals("validatedTopicUpdate").(*curriculumValidator.TopicRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	topic, err := store.Topics.GetByID(c.Context(), topicID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topic!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		topic.Name = reqData.Name
	}
	if reqData.Slug != "" {
		topic.Slug = reqData.Slug
	}
	if reqData.Subject != "" {
		topic.Subject = reqData.Subject
	}
	if reqData.GradeLevel > 0 {
		topic.GradeLevel = reqData.GradeLevel
	}
	if reqData.Order > 0 {
		topic.OrderIndex = reqData.Order
	}
	if reqData.IconURL != "" {
		topic.IconURL = reqData.IconURL
	}

	if err := store.Topics.Update(c.Context(), &topic); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", topic)
}

// DeleteTopic removes a topic. Questions under it are left in place.
func DeleteTopic(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(uint)

	if err := store.Topics.Remove(c.Context(), topicID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic deleted successfully!", nil)
}

func adminName(c *fiber.Ctx) string {
	if name, ok := c.Locals("adminName").(string); ok && name != "" {
		return name
	}
	return "Admin"
}
