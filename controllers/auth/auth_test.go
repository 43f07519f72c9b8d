package authController_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"belajaradmin/config"
	"belajaradmin/models"
	authRoutes "belajaradmin/routers/authRoutes"
	"belajaradmin/store"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: bcrypt.MinCost}
	store.Use(store.MemoryRepositories(), time.Minute)

	hashed, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.Admin{
		Email:    "admin@belajarseru.id",
		FullName: "Admin Uji",
		Password: string(hashed),
		Role:     "ADMIN",
		IsActive: true,
	}
	require.NoError(t, store.Admins.Create(context.Background(), &admin))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body fiber.Map) (int, envelope) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestLoginIssuesToken(t *testing.T) {
	app := setupApp(t)

	code, env := postLogin(t, app, fiber.Map{
		"email":    "admin@belajarseru.id",
		"password": "rahasia123",
	})
	require.Equal(t, http.StatusOK, code)

	var result struct {
		Token string       `json:"token"`
		Admin models.Admin `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Admin Uji", result.Admin.FullName)
	assert.Empty(t, result.Admin.Password)

	// The issued token opens the profile endpoint
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	code, env := postLogin(t, app, fiber.Map{
		"email":    "admin@belajarseru.id",
		"password": "salah",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Status)
}

func TestLoginUnknownEmail(t *testing.T) {
	app := setupApp(t)

	code, _ := postLogin(t, app, fiber.Map{
		"email":    "tidakada@belajarseru.id",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestLoginValidation(t *testing.T) {
	app := setupApp(t)

	code, env := postLogin(t, app, fiber.Map{"email": "bukan-email"})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestLoginDisabledAccount(t *testing.T) {
	app := setupApp(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)
	disabled := models.Admin{
		Email:    "nonaktif@belajarseru.id",
		Password: string(hashed),
		IsActive: false,
	}
	require.NoError(t, store.Admins.Create(context.Background(), &disabled))

	code, _ := postLogin(t, app, fiber.Map{
		"email":    "nonaktif@belajarseru.id",
		"password": "rahasia123",
	})
	assert.Equal(t, http.StatusForbidden, code)
}
