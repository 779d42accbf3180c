package httpHandler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemCRUD(t *testing.T) {
	r, _ := setupTest(t)
	alice := registerAndLogin(t, r, "alice", "alice@example.com", "pw123")
	bob := registerAndLogin(t, r, "bob", "bob@example.com", "pw456")

	collectionID := createCollection(t, r, alice, "Comics", "")

	t.Run("create", func(t *testing.T) {
		w := doJSON(t, r, "POST", itemsPath(collectionID), alice, map[string]any{
			"name":        "Batman #1",
			"category_id": 1,
			"description": "First print",
			"condition":   "Mint",
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "Batman #1", data["name"])
		assert.Equal(t, "Mint", data["condition"])
		assert.NotEmpty(t, data["category"].(map[string]any)["name"])
	})

	t.Run("create in foreign collection is 404", func(t *testing.T) {
		w := doJSON(t, r, "POST", itemsPath(collectionID), bob, map[string]any{
			"name":        "Sneaky",
			"category_id": 1,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("create with unknown category is 400", func(t *testing.T) {
		w := doJSON(t, r, "POST", itemsPath(collectionID), alice, map[string]any{
			"name":        "Mystery",
			"category_id": 999,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list and get", func(t *testing.T) {
		w := doJSON(t, r, "GET", itemsPath(collectionID), alice, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decodeBody(t, w)
		assert.Equal(t, float64(1), body["count"])
		itemID := uint(body["data"].([]any)[0].(map[string]any)["id"].(float64))

		w = doJSON(t, r, "GET", itemPath(collectionID, itemID), alice, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, "GET", itemPath(collectionID, itemID), bob, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemUpdate(t *testing.T) {
	r, _ := setupTest(t)
	alice := registerAndLogin(t, r, "alice", "alice@example.com", "pw123")
	bob := registerAndLogin(t, r, "bob", "bob@example.com", "pw456")

	collectionID := createCollection(t, r, alice, "Comics", "")
	itemID := createItem(t, r, alice, collectionID, "Batman #1", 1)

	t.Run("owner updates fields", func(t *testing.T) {
		w := doJSON(t, r, "PUT", itemPath(collectionID, itemID), alice, map[string]any{
			"name":        "Batman #2",
			"category_id": 2,
			"condition":   "Good",
		})
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, r, "GET", itemPath(collectionID, itemID), alice, nil)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "Batman #2", data["name"])
		assert.Equal(t, float64(2), data["category_id"])
		assert.Equal(t, "Good", data["condition"])
	})

	t.Run("unknown category is 400 and leaves item unchanged", func(t *testing.T) {
		w := doJSON(t, r, "PUT", itemPath(collectionID, itemID), alice, map[string]any{
			"name":        "Batman #3",
			"category_id": 999,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, r, "GET", itemPath(collectionID, itemID), alice, nil)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "Batman #2", data["name"])
		assert.Equal(t, float64(2), data["category_id"])
	})

	t.Run("non-owner update is 404", func(t *testing.T) {
		w := doJSON(t, r, "PUT", itemPath(collectionID, itemID), bob, map[string]any{
			"name":        "Hijacked",
			"category_id": 1,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemDelete(t *testing.T) {
	r, _ := setupTest(t)
	alice := registerAndLogin(t, r, "alice", "alice@example.com", "pw123")
	bob := registerAndLogin(t, r, "bob", "bob@example.com", "pw456")

	collectionID := createCollection(t, r, alice, "Comics", "")
	itemID := createItem(t, r, alice, collectionID, "Batman #1", 1)

	w := doJSON(t, r, "DELETE", itemPath(collectionID, itemID), bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "DELETE", itemPath(collectionID, itemID), alice, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, "GET", itemPath(collectionID, itemID), alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSharedItemVisibility(t *testing.T) {
	r, _ := setupTest(t)
	alice := registerAndLogin(t, r, "alice", "alice@example.com", "pw123")
	bob := registerAndLogin(t, r, "bob", "bob@example.com", "pw456")

	collectionID := createCollection(t, r, alice, "Comics", "")
	itemID := createItem(t, r, alice, collectionID, "Batman #1", 1)

	w := doJSON(t, r, "POST", sharesPath(collectionID), alice, map[string]string{
		"email": "bob@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("recipient can read items", func(t *testing.T) {
		w := doJSON(t, r, "GET", itemsPath(collectionID), bob, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), decodeBody(t, w)["count"])

		w = doJSON(t, r, "GET", itemPath(collectionID, itemID), bob, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("recipient cannot mutate items", func(t *testing.T) {
		w := doJSON(t, r, "POST", itemsPath(collectionID), bob, map[string]any{
			"name":        "Not yours",
			"category_id": 1,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, r, "PUT", itemPath(collectionID, itemID), bob, map[string]any{
			"name":        "Renamed",
			"category_id": 1,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = doJSON(t, r, "DELETE", itemPath(collectionID, itemID), bob, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
