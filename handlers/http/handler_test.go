package httpHandler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"collection-server/confs"
	"collection-server/db"
	"collection-server/server"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every connection to :memory: is a distinct database
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gormDB))

	cfg := &confs.Config{
		Port:      "0",
		JWTSecret: "test-secret-12345678901234567890",
		JWTExpiry: time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := server.NewServer(&db.GormDatabase{DB: gormDB}, cfg, logger)
	return srv.Router(), gormDB
}

func collectionPath(id uint) string { return fmt.Sprintf("/collections/%d", id) }

func itemsPath(collectionID uint) string {
	return fmt.Sprintf("/collections/%d/items", collectionID)
}

func itemPath(collectionID, itemID uint) string {
	return fmt.Sprintf("/collections/%d/items/%d", collectionID, itemID)
}

func sharesPath(collectionID uint) string {
	return fmt.Sprintf("/collections/%d/shares", collectionID)
}

func sharePath(collectionID, shareID uint) string {
	return fmt.Sprintf("/collections/%d/shares/%d", collectionID, shareID)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerAndLogin creates an account through the API and returns a token.
func registerAndLogin(t *testing.T, r *gin.Engine, username, email, password string) string {
	t.Helper()

	w := doJSON(t, r, "POST", "/user/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/user/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

// createCollection makes a collection through the API and returns its id.
func createCollection(t *testing.T, r *gin.Engine, token, name, description string) uint {
	t.Helper()

	w := doJSON(t, r, "POST", "/collections", token, map[string]string{
		"name":        name,
		"description": description,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data, ok := decodeBody(t, w)["data"].(map[string]any)
	require.True(t, ok)
	return uint(data["id"].(float64))
}

// createItem adds an item through the API and returns its id.
func createItem(t *testing.T, r *gin.Engine, token string, collectionID uint, name string, categoryID uint) uint {
	t.Helper()

	w := doJSON(t, r, "POST", itemsPath(collectionID), token, map[string]any{
		"name":        name,
		"category_id": categoryID,
		"condition":   "Mint",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data, ok := decodeBody(t, w)["data"].(map[string]any)
	require.True(t, ok)
	return uint(data["id"].(float64))
}
