package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resto/internal/models"
	"resto/internal/storage"
)

func newTestDeps(t *testing.T) (Deps, *storage.LocalStorage) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrate(db))

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	return Deps{
		DB:      db,
		Store:   store,
		URLs:    storage.NewURLRenderer("http://localhost:8080"),
		Secret:  "main_test_secret",
		Uploads: store.Root(),
	}, store
}

func TestHealth(t *testing.T) {
	deps, _ := newTestDeps(t)
	app := NewApp(deps)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, false, body["events"])
}

func TestMetricsEndpoint(t *testing.T) {
	deps, _ := newTestDeps(t)
	app := NewApp(deps)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "go_goroutines")
}

func TestServesUploads(t *testing.T) {
	deps, store := newTestDeps(t)
	app := NewApp(deps)

	path, err := store.Save(context.Background(), "hello.txt", bytes.NewReader([]byte("hello")))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "hello", string(raw))
}

func TestUnknownRouteUsesErrorShape(t *testing.T) {
	deps, _ := newTestDeps(t)
	app := NewApp(deps)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/nowhere", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, http.StatusNotFound, body["status"])
}

func TestOpenDatabase_RejectsUnknownDriver(t *testing.T) {
	_, err := openDatabase(Config{DBDriver: "oracle"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported DB_DRIVER"))
}

func TestOpenStorage(t *testing.T) {
	dir := t.TempDir()
	store, served, err := openStorage(context.Background(), Config{StorageDriver: "local", UploadDir: dir})
	require.NoError(t, err)
	assert.NotNil(t, store)
	assert.Equal(t, dir, served)

	_, _, err = openStorage(context.Background(), Config{StorageDriver: "ftp"})
	assert.Error(t, err)
}

func TestOpenStorage_SeedsDefaultCover(t *testing.T) {
	deps, _ := newTestDeps(t)
	dir := t.TempDir()
	_, served, err := openStorage(context.Background(), Config{StorageDriver: "local", UploadDir: dir})
	require.NoError(t, err)

	deps.Uploads = served
	app := NewApp(deps)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+models.DefaultCoverPhoto, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, err = jpeg.Decode(resp.Body)
	assert.NoError(t, err)

	// A replaced default cover survives a restart.
	custom := filepath.Join(dir, "defaultCoverPhoto.jpg")
	require.NoError(t, os.WriteFile(custom, []byte("custom"), 0o600))
	_, _, err = openStorage(context.Background(), Config{StorageDriver: "local", UploadDir: dir})
	require.NoError(t, err)
	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))
}

func TestPublicBaseURL(t *testing.T) {
	cfg := Config{BackendURL: "http://api.local", StorageDriver: "local", S3PublicURL: "https://cdn.local"}
	assert.Equal(t, "http://api.local", cfg.publicBaseURL())

	cfg.StorageDriver = "s3"
	assert.Equal(t, "https://cdn.local", cfg.publicBaseURL())
}
