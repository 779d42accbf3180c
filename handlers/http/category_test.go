package httpHandler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"collection-server/db"
)

func TestCategoryList(t *testing.T) {
	r, _ := setupTest(t)

	// no token required
	w := doJSON(t, r, "GET", "/categories", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(len(db.DefaultCategories)), body["count"])

	first := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Comics", first["name"])
	assert.Equal(t, float64(1), first["id"])
}
