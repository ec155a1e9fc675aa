package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndParseToken(t *testing.T) {
	token, err := mintToken("secret", 7, time.Hour)
	require.NoError(t, err)

	adminID, err := parseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, 7, adminID)
}

func TestParseToken_Failures(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, err := mintToken("secret", 7, time.Hour)
		require.NoError(t, err)
		_, err = parseToken("other-secret", token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := mintToken("secret", 7, -time.Minute)
		require.NoError(t, err)
		_, err = parseToken("secret", token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := parseToken("secret", "not.a.token")
		assert.Error(t, err)
	})
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
}

func TestIssueToken(t *testing.T) {
	srv, router := newTestServer(t, nil, "{}")

	w := doJSON(t, router, http.MethodPost, "/api/auth/token", "", map[string]any{"admin_id": 7})
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, 0, env.Code)
	data := dataMap(t, env)
	assert.Equal(t, "bearer", data["token_type"])
	assert.Equal(t, float64(3600), data["expires_in"])

	// The issued token authenticates against protected routes.
	token, ok := data["access_token"].(string)
	require.True(t, ok)
	adminID, err := parseToken(srv.settings.JWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, 7, adminID)
}

func TestIssueToken_InvalidBody(t *testing.T) {
	_, router := newTestServer(t, nil, "{}")

	for _, body := range []map[string]any{
		{},
		{"admin_id": 0},
		{"admin_id": -2},
	} {
		w := doJSON(t, router, http.MethodPost, "/api/auth/token", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestRequireAuth(t *testing.T) {
	srv, router := newTestServer(t, &fakeHistory{}, "{}")
	token := authToken(t, srv, 7)

	t.Run("missing token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/chat/sessions", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/chat/sessions", "nope", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid bearer token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/chat/sessions", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("query token is rejected outside downloads", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/chat/sessions?token="+token, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
