package config_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mapspot/admin-api/database"
	config_handlers "github.com/mapspot/admin-api/handlers/config"
	"github.com/mapspot/admin-api/model"
	"github.com/mapspot/admin-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	database.Storage
	cfg *model.AppConfig
}

func (f *fakeStore) GetAppConfig() (*model.AppConfig, error) {
	if f.cfg == nil {
		return nil, database.ErrNotFound
	}
	return f.cfg, nil
}

func (f *fakeStore) UpsertAppConfig(key string) error {
	if f.cfg == nil {
		f.cfg = &model.AppConfig{ID: model.AppConfigID}
	}
	f.cfg.GoogleMapsAPIKey = key
	return nil
}

func newTestApp(store *fakeStore) *fiber.App {
	app := fiber.New()
	handler := config_handlers.NewHandler(services.NewConfigService(store))
	app.Get("/api/config/google-maps-key", handler.GetGoogleMapsKey)
	return app
}

func getKey(t *testing.T, app *fiber.App) (*http.Response, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/config/google-maps-key", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestGetGoogleMapsKey(t *testing.T) {
	store := &fakeStore{cfg: &model.AppConfig{ID: model.AppConfigID, GoogleMapsAPIKey: "test-key"}}
	resp, body := getKey(t, newTestApp(store))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test-key", body["apiKey"])
}

func TestGetGoogleMapsKeyUnconfigured(t *testing.T) {
	resp, body := getKey(t, newTestApp(&fakeStore{}))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "AppConfig not initialized", body["error"])
}

func TestUpsertKeepsSingleRow(t *testing.T) {
	store := &fakeStore{}
	svc := services.NewConfigService(store)

	require.NoError(t, svc.Upsert("first"))
	require.NoError(t, svc.Upsert("second"))

	cfg, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, model.AppConfigID, cfg.ID)
	assert.Equal(t, "second", cfg.GoogleMapsAPIKey)
}
