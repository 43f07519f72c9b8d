package userController_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
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
	"belajaradmin/repository"
	userRoutes "belajaradmin/routers/userRoutes"
	"belajaradmin/store"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, string) {
	return setupAppWith(t, store.MemoryRepositories())
}

func setupAppWith(t *testing.T, repos store.Repositories) (*fiber.App, string) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	store.Use(repos, time.Minute)

	admin := models.Admin{Email: "admin@belajarseru.id", FullName: "Admin Uji", Role: "ADMIN", IsActive: true}
	require.NoError(t, store.Admins.Create(context.Background(), &admin))

	token, err := middleware.GenerateJWT(admin.ID, admin.FullName, admin.Role, admin.Email)
	require.NoError(t, err)

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
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

func createParent(t *testing.T, app *fiber.App, token, email string) models.Parent {
	t.Helper()

	code, env := doRequest(t, app, http.MethodPost, "/admin/parents", token, fiber.Map{
		"email":    email,
		"fullName": "Ibu Sari",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	var parent models.Parent
	require.NoError(t, json.Unmarshal(env.Data, &parent))
	return parent
}

func createStudent(t *testing.T, app *fiber.App, token string, parentID uint, username string) models.Student {
	t.Helper()

	code, env := doRequest(t, app, http.MethodPost, "/admin/students", token, fiber.Map{
		"parentId":    parentID,
		"username":    username,
		"displayName": "Budi",
		"grade":       2,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	var student models.Student
	require.NoError(t, json.Unmarshal(env.Data, &student))
	return student
}

func TestCreateStudentAttachesToParent(t *testing.T) {
	app, token := setupApp(t)

	parent := createParent(t, app, token, "sari@contoh.id")
	student := createStudent(t, app, token, parent.ID, "budi01")

	code, env := doRequest(t, app, http.MethodGet, "/admin/parents/1", token, nil)
	require.Equal(t, http.StatusOK, code)

	var reloaded models.Parent
	require.NoError(t, json.Unmarshal(env.Data, &reloaded))
	assert.Equal(t, []uint{student.ID}, []uint(reloaded.ChildrenIDs))
}

func TestCreateStudentUnknownParent(t *testing.T) {
	app, token := setupApp(t)

	code, _ := doRequest(t, app, http.MethodPost, "/admin/students", token, fiber.Map{
		"parentId":    99,
		"username":    "yatim01",
		"displayName": "Tanpa Induk",
		"grade":       1,
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateStudentDuplicateUsername(t *testing.T) {
	app, token := setupApp(t)

	parent := createParent(t, app, token, "sari@contoh.id")
	createStudent(t, app, token, parent.ID, "budi01")

	code, _ := doRequest(t, app, http.MethodPost, "/admin/students", token, fiber.Map{
		"parentId":    parent.ID,
		"username":    "budi01",
		"displayName": "Kembar",
		"grade":       2,
	})
	assert.Equal(t, http.StatusConflict, code)
}

func TestListStudentsByParent(t *testing.T) {
	app, token := setupApp(t)

	first := createParent(t, app, token, "sari@contoh.id")
	second := createParent(t, app, token, "eko@contoh.id")
	createStudent(t, app, token, first.ID, "budi01")
	createStudent(t, app, token, second.ID, "cici01")

	code, env := doRequest(t, app, http.MethodGet, "/admin/students?parent_id=1", token, nil)
	require.Equal(t, http.StatusOK, code)

	var listed []models.Student
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "budi01", listed[0].Username)
}

func TestDeleteStudentDetachesFromParent(t *testing.T) {
	app, token := setupApp(t)

	parent := createParent(t, app, token, "sari@contoh.id")
	createStudent(t, app, token, parent.ID, "budi01")

	code, _ := doRequest(t, app, http.MethodDelete, "/admin/students/1", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, env := doRequest(t, app, http.MethodGet, "/admin/parents/1", token, nil)
	require.Equal(t, http.StatusOK, code)

	var reloaded models.Parent
	require.NoError(t, json.Unmarshal(env.Data, &reloaded))
	assert.Empty(t, reloaded.ChildrenIDs)
}

// flakyParentRepo lets a test flip parent updates into failures while
// everything else keeps working.
type flakyParentRepo struct {
	repository.Repository[models.Parent]
	failUpdates bool
}

func (r *flakyParentRepo) Update(ctx context.Context, parent *models.Parent) error {
	if r.failUpdates {
		return errors.New("storage down")
	}
	return r.Repository.Update(ctx, parent)
}

func TestFailedDetachLeavesChildrenIntact(t *testing.T) {
	repos := store.MemoryRepositories()
	flaky := &flakyParentRepo{Repository: repos.Parents}
	repos.Parents = flaky
	app, token := setupAppWith(t, repos)

	parent := createParent(t, app, token, "sari@contoh.id")
	first := createStudent(t, app, token, parent.ID, "budi01")
	second := createStudent(t, app, token, parent.ID, "cici01")
	third := createStudent(t, app, token, parent.ID, "dodi01")
	children := []uint{first.ID, second.ID, third.ID}

	// Warm the cached parent detail, then break parent updates
	code, _ := doRequest(t, app, http.MethodGet, "/admin/parents/1", token, nil)
	require.Equal(t, http.StatusOK, code)
	flaky.failUpdates = true

	code, _ = doRequest(t, app, http.MethodDelete, "/admin/students/2", token, nil)
	require.Equal(t, http.StatusOK, code)

	// The detach write failed, so both the cached and the stored childrenIds
	// must still hold the original list — no dropped or duplicated ids.
	code, env := doRequest(t, app, http.MethodGet, "/admin/parents/1", token, nil)
	require.Equal(t, http.StatusOK, code)
	var cached models.Parent
	require.NoError(t, json.Unmarshal(env.Data, &cached))
	assert.Equal(t, children, []uint(cached.ChildrenIDs))

	stored, err := flaky.Repository.GetByID(context.Background(), parent.ID)
	require.NoError(t, err)
	assert.Equal(t, children, []uint(stored.ChildrenIDs))
}

func TestGrantItemSnapshotsAndRejectsDuplicates(t *testing.T) {
	app, token := setupApp(t)

	parent := createParent(t, app, token, "sari@contoh.id")
	student := createStudent(t, app, token, parent.ID, "budi01")

	item := models.ShopItem{Name: "Topi Penyihir", Type: models.ItemHead, CostCoins: 50, AssetURL: "https://cdn.contoh.id/topi.png"}
	require.NoError(t, store.ShopItems.Create(context.Background(), &item))

	code, env := doRequest(t, app, http.MethodPost, "/admin/students/1/inventory", token, fiber.Map{
		"itemId": item.ID,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)

	var granted models.StudentInventory
	require.NoError(t, json.Unmarshal(env.Data, &granted))
	assert.Equal(t, student.ID, granted.StudentID)
	assert.Equal(t, "Topi Penyihir", granted.Item.Data().Name)

	// Same item twice is rejected
	code, _ = doRequest(t, app, http.MethodPost, "/admin/students/1/inventory", token, fiber.Map{
		"itemId": item.ID,
	})
	assert.Equal(t, http.StatusConflict, code)

	code, env = doRequest(t, app, http.MethodGet, "/admin/students/1/inventory", token, nil)
	require.Equal(t, http.StatusOK, code)

	var inventory []models.StudentInventory
	require.NoError(t, json.Unmarshal(env.Data, &inventory))
	assert.Len(t, inventory, 1)
}

func TestStudentRemainingDaysNeverNegative(t *testing.T) {
	app, token := setupApp(t)

	parent := createParent(t, app, token, "sari@contoh.id")
	createStudent(t, app, token, parent.ID, "budi01")

	expired := time.Now().Add(-48 * time.Hour).UnixMilli()
	code, env := doRequest(t, app, http.MethodPut, "/admin/students/1", token, fiber.Map{
		"subStatus":     models.SubExpired,
		"subValidUntil": expired,
	})
	require.Equal(t, http.StatusOK, code)

	var view struct {
		models.Student
		RemainingDays int `json:"remainingDays"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, models.SubExpired, view.SubStatus)
	assert.Equal(t, 0, view.RemainingDays)
}
