package questionController_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belajaradmin/config"
	"belajaradmin/middleware"
	"belajaradmin/models"
	curriculumRoutes "belajaradmin/routers/curriculumRoutes"
	"belajaradmin/store"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	store.Use(store.MemoryRepositories(), time.Minute)

	admin := models.Admin{Email: "admin@belajarseru.id", FullName: "Admin Uji", Role: "ADMIN", IsActive: true}
	require.NoError(t, store.Admins.Create(context.Background(), &admin))

	token, err := middleware.GenerateJWT(admin.ID, admin.FullName, admin.Role, admin.Email)
	require.NoError(t, err)

	topic := models.Topic{Name: "Pecahan", Slug: "pecahan", Subject: models.SubjectMath, GradeLevel: 3}
	require.NoError(t, store.Topics.Create(context.Background(), &topic))

	app := fiber.New()
	curriculumRoutes.SetupCurriculumRoutes(app)
	return app, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func createMCQ(t *testing.T, app *fiber.App, token string) models.Question {
	t.Helper()

	code, env := doRequest(t, app, http.MethodPost, "/admin/questions", token, fiber.Map{
		"topicId":    1,
		"difficulty": 2,
		"type":       models.QuestionMCQ,
		"content":    fiber.Map{"text": "Berapa 1/2 + 1/4?"},
		"options": []fiber.Map{
			{"value": "3/4", "isCorrect": true},
			{"value": "2/6"},
		},
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	var created models.Question
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created
}

func TestCreateQuestionRequiresTopic(t *testing.T) {
	app, token := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/admin/questions", token, fiber.Map{
		"topicId":    99,
		"difficulty": 1,
		"type":       models.QuestionMCQ,
		"content":    fiber.Map{"text": "Tanpa topik?"},
		"options": []fiber.Map{
			{"value": "ya", "isCorrect": true},
			{"value": "tidak"},
		},
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateMCQValidation(t *testing.T) {
	app, token := setupApp(t)

	// Two correct options
	code, env := doRequest(t, app, http.MethodPost, "/admin/questions", token, fiber.Map{
		"topicId":    1,
		"difficulty": 1,
		"type":       models.QuestionMCQ,
		"content":    fiber.Map{"text": "Ambigu?"},
		"options": []fiber.Map{
			{"value": "a", "isCorrect": true},
			{"value": "b", "isCorrect": true},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "options")
}

func TestUpdateToFillInDropsOptions(t *testing.T) {
	app, token := setupApp(t)

	created := createMCQ(t, app, token)
	require.NotEmpty(t, created.Options)

	code, env := doRequest(t, app, http.MethodPut, "/admin/questions/1", token, fiber.Map{
		"type":          models.QuestionFillIn,
		"correctAnswer": "3/4",
	})
	require.Equal(t, http.StatusOK, code, env.Message)

	var updated models.Question
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.QuestionFillIn, updated.Type)
	assert.Empty(t, updated.Options)
	assert.Equal(t, "3/4", updated.CorrectAnswer)

	// The stored question dropped the options too
	code, env = doRequest(t, app, http.MethodGet, "/admin/questions/1", token, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Empty(t, updated.Options)
}

func TestUpdateToFillInWithOptionsRejected(t *testing.T) {
	app, token := setupApp(t)

	createMCQ(t, app, token)

	code, env := doRequest(t, app, http.MethodPut, "/admin/questions/1", token, fiber.Map{
		"type":          models.QuestionFillIn,
		"correctAnswer": "3/4",
		"options": []fiber.Map{
			{"value": "sisa", "isCorrect": true},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "options")
}
