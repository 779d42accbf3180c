package httpHandler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := setupTest(t)

	t.Run("register success", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/user/register", "", map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "pw123",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("register conflict on duplicate email", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/user/register", "", map[string]string{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": "other",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("register invalid body", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/user/register", "", map[string]string{
			"username": "bob",
			"email":    "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login success", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/user/login", "", map[string]string{
			"email":    "alice@example.com",
			"password": "pw123",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeBody(t, w)["token"])
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/user/login", "", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login unknown email", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/user/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "pw123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestVerify(t *testing.T) {
	r, _ := setupTest(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com", "pw123")

	t.Run("valid token", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/user/verify", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/user/verify", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/user/verify", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProfile(t *testing.T) {
	r, _ := setupTest(t)
	token := registerAndLogin(t, r, "alice", "alice@example.com", "pw123")

	t.Run("get own profile", func(t *testing.T) {
		w := doJSON(t, r, "GET", "/user/profile", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "alice", data["username"])
		assert.Equal(t, "alice@example.com", data["email"])
		assert.NotContains(t, data, "password")
		assert.NotContains(t, w.Body.String(), "pw123")
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		w := doJSON(t, r, "PUT", "/user/update", token, map[string]string{
			"profile_picture": "https://example.com/alice.png",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, "GET", "/user/profile", token, nil)
		data := decodeBody(t, w)["data"].(map[string]any)
		assert.Equal(t, "alice", data["username"])
		assert.Equal(t, "https://example.com/alice.png", data["profile_picture"])
	})

	t.Run("password update rehashes", func(t *testing.T) {
		w := doJSON(t, r, "PUT", "/user/update", token, map[string]string{
			"password": "newpw456",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, "POST", "/user/login", "", map[string]string{
			"email":    "alice@example.com",
			"password": "newpw456",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, "POST", "/user/login", "", map[string]string{
			"email":    "alice@example.com",
			"password": "pw123",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
