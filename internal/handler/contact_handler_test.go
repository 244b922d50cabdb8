package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mac-cloud/StreamlineLabsWebsite/internal/model"
)

func TestSubmitContactValid(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","message":"Hi"}`,
		map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotZero(t, resp.ID)

	// Row persisted with matching fields
	stored, found, err := env.repo.GetByID(resp.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Jane", stored.Name)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "Hi", stored.Message)
	assert.False(t, stored.IsRead)
	assert.Equal(t, "203.0.113.9", stored.IPAddress)

	// Both notification emails went out
	assert.Len(t, env.sender.sent, 2)
}

func TestSubmitContactValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{
		`{"name":"","email":"jane@example.com","message":"Hi"}`,
		`{"name":"Jane","email":"","message":"Hi"}`,
		`{"name":"Jane","email":"jane@example.com","message":""}`,
		`{"name":"Jane","email":"not-an-email","message":"Hi"}`,
		`{"message":"Hi"}`,
	} {
		w := env.request(http.MethodPost, "/api/contact", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)

		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Errors)
	}

	// Nothing persisted, nothing sent
	assert.Equal(t, int64(0), env.messageCount(t))
	assert.Empty(t, env.sender.sent)
}

func TestSubmitContactMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodPost, "/api/contact", `{"name":42}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(http.MethodPost, "/api/contact", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, int64(0), env.messageCount(t))
}

func TestSubmitContactNotificationFailureStillSucceeds(t *testing.T) {
	env := newTestEnv(t)
	env.sender.failAll = true

	w := env.request(http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","message":"Hi"}`, nil)

	// Persistence is the durable side effect; mail failure is invisible
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(1), env.messageCount(t))
}

func TestSubmitContactTrimsFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodPost, "/api/contact",
		`{"name":"  Jane  ","email":" jane@example.com ","message":"  Hi  "}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	stored, _, err := env.repo.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.Name)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, "Hi", stored.Message)
}

func TestSubmitContactWithoutForwardedHeader(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(http.MethodPost, "/api/contact",
		`{"name":"Jane","email":"jane@example.com","message":"Hi"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var stored model.ContactMessage
	require.NoError(t, env.db.First(&stored, resp.ID).Error)
	// httptest requests carry a RemoteAddr, so some IP is captured
	assert.NotEmpty(t, stored.IPAddress)
}
