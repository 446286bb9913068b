package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonReq(t *testing.T, app *fiber.App, method, path, bearer string, body interface{}) *http.Response {
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
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerUser registers a fresh user and returns its access token
func registerUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := jsonReq(t, app, "POST", "/api/users", "", fiber.Map{"email": email, "password": "pass123"})
	require.Equal(t, 200, resp.StatusCode)
	body := decodeMap(t, resp)
	tok, _ := body["access_token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestLiveness(t *testing.T) {
	app, _ := newTestApp()

	resp := jsonReq(t, app, "GET", "/api", "", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Dairy books backend connected", decodeMap(t, resp)["message"])
}

func TestRegister(t *testing.T) {
	app, _ := newTestApp()

	resp := jsonReq(t, app, "POST", "/api/users", "", fiber.Map{"email": "a@x.com", "password": "pass123"})
	require.Equal(t, 200, resp.StatusCode)
	body := decodeMap(t, resp)
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, "bearer", body["token_type"])

	t.Run("duplicate email conflicts", func(t *testing.T) {
		resp := jsonReq(t, app, "POST", "/api/users", "", fiber.Map{"email": "a@x.com", "password": "other"})
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, "Email already in use", decodeMap(t, resp)["error"])
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		resp := jsonReq(t, app, "POST", "/api/users", "", fiber.Map{"email": "b@x.com"})
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestToken(t *testing.T) {
	app, _ := newTestApp()
	registerUser(t, app, "a@x.com")

	login := func(username, password string) *http.Response {
		form := "username=" + username + "&password=" + password
		req := httptest.NewRequest("POST", "/api/token", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("valid credentials", func(t *testing.T) {
		resp := login("a@x.com", "pass123")
		require.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, decodeMap(t, resp)["access_token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := login("a@x.com", "wrong")
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("unregistered email", func(t *testing.T) {
		resp := login("nobody@x.com", "pass123")
		assert.Equal(t, 401, resp.StatusCode)
	})
}

func TestMe(t *testing.T) {
	app, tokens := newTestApp()
	bearer := registerUser(t, app, "a@x.com")

	t.Run("valid token", func(t *testing.T) {
		resp := jsonReq(t, app, "GET", "/api/users/me", bearer, nil)
		require.Equal(t, 200, resp.StatusCode)
		body := decodeMap(t, resp)
		assert.Equal(t, float64(1), body["id"])
		assert.Equal(t, "a@x.com", body["email"])
	})

	t.Run("missing token", func(t *testing.T) {
		resp := jsonReq(t, app, "GET", "/api/users/me", "", nil)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := jsonReq(t, app, "GET", "/api/users/me", "not-a-token", nil)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("token for deleted user", func(t *testing.T) {
		orphan, err := tokens.Generate(999, "ghost@x.com")
		require.NoError(t, err)
		resp := jsonReq(t, app, "GET", "/api/users/me", orphan, nil)
		assert.Equal(t, 401, resp.StatusCode)
	})
}
