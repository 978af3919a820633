package user_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mapspot/admin-api/database"
	user_handlers "github.com/mapspot/admin-api/handlers/user"
	"github.com/mapspot/admin-api/model"
	"github.com/mapspot/admin-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	database.Storage
	mu     sync.Mutex
	nextID uint
	users  []model.User
}

func (f *fakeStore) ListUsers() ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.User, 0, len(f.users))
	for i := len(f.users) - 1; i >= 0; i-- {
		out = append(out, f.users[i])
	}
	return out, nil
}

func (f *fakeStore) CreateUser(user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == user.Email {
			return database.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, *user)
	return nil
}

func newTestApp(store *fakeStore) *fiber.App {
	app := fiber.New()
	handler := user_handlers.NewHandler(services.NewUserService(store))
	app.Get("/api/users", handler.List)
	app.Post("/api/users", handler.Create)
	return app
}

func postUser(t *testing.T, app *fiber.App, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp, body
}

func TestCreateUserDefaultsToViewer(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store)

	resp, body := postUser(t, app, map[string]interface{}{
		"name": "Ann", "email": "ann@x.com",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, model.RoleViewer, body["role"])

	users, err := store.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, model.RoleViewer, users[0].Role)
}

func TestCreateUserWithExplicitRole(t *testing.T) {
	app := newTestApp(&fakeStore{})

	resp, body := postUser(t, app, map[string]interface{}{
		"name": "Evan", "email": "evan@example.com", "role": "EDITOR",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, model.RoleEditor, body["role"])
}

func TestCreateUserValidation(t *testing.T) {
	app := newTestApp(&fakeStore{})

	tests := []struct {
		name    string
		payload map[string]interface{}
		badKey  string
	}{
		{"missing name", map[string]interface{}{"email": "a@b.com"}, "name"},
		{"missing email", map[string]interface{}{"name": "Ann"}, "email"},
		{"invalid email", map[string]interface{}{"name": "Ann", "email": "nope"}, "email"},
		{"unknown role", map[string]interface{}{"name": "Ann", "email": "a@b.com", "role": "OWNER"}, "role"},
		{"lowercase role rejected", map[string]interface{}{"name": "Ann", "email": "a@b.com", "role": "viewer"}, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postUser(t, app, tt.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			errs, ok := body["errors"].(map[string]interface{})
			require.True(t, ok, "expected errors object, got %v", body)
			assert.Contains(t, errs, tt.badKey)
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	app := newTestApp(&fakeStore{})

	resp, _ := postUser(t, app, map[string]interface{}{"name": "Ann", "email": "ann@x.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postUser(t, app, map[string]interface{}{"name": "Ann Again", "email": "ann@x.com"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body["error"], "already exists")
}

func TestListUsersNewestFirst(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store)

	for _, u := range []map[string]interface{}{
		{"name": "Alice Admin", "email": "alice@example.com", "role": "ADMIN"},
		{"name": "Evan Editor", "email": "evan@example.com", "role": "EDITOR"},
		{"name": "Ann", "email": "ann@x.com"},
	} {
		resp, _ := postUser(t, app, u)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// Order is stable across repeated fetches absent further writes.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listed []model.User
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
		require.Len(t, listed, 3)
		assert.Equal(t, "ann@x.com", listed[0].Email)
		assert.Equal(t, model.RoleViewer, listed[0].Role)
		assert.Equal(t, "evan@example.com", listed[1].Email)
		assert.Equal(t, "alice@example.com", listed[2].Email)
	}
}
