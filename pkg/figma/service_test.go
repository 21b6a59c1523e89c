package figma

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"figmine-backend/pkg/apperr"
	"figmine-backend/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(apiURL, oauthURL string) *Service {
	return NewService(&config.Config{
		FigmaClientID:     "client-id",
		FigmaClientSecret: "client-secret",
		FigmaRedirectURI:  "http://localhost:8080/api/figma/callback",
		FigmaAPIBaseURL:   apiURL,
		FigmaOAuthBaseURL: oauthURL,
	}, nil)
}

func TestAuthCodeURL(t *testing.T) {
	svc := newTestService("https://api.figma.com/v1", "https://www.figma.com")

	state := "header.payload.signature"
	authURL := svc.AuthCodeURL(state)

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	assert.Equal(t, "www.figma.com", parsed.Host)
	assert.Equal(t, "/oauth", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "file_read", q.Get("scope"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, state, q.Get("state"))
	assert.Equal(t, "http://localhost:8080/api/figma/callback", q.Get("redirect_uri"))
}

func TestGetFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/abc123", r.URL.Path)
		assert.Equal(t, "figd_token", r.Header.Get("X-Figma-Token"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Landing Page","version":"42","role":"owner"}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	file, err := svc.GetFile(context.Background(), "abc123", "figd_token")
	require.NoError(t, err)
	assert.Equal(t, "Landing Page", file.Name)
	assert.Equal(t, "42", file.Version)
}

func TestGetFileUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status":403,"err":"Invalid token"}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	_, err := svc.GetFile(context.Background(), "abc123", "bad_token")
	require.Error(t, err)

	e := apperr.From(err)
	require.NotNil(t, e, "gateway errors must be classified")
	assert.Equal(t, apperr.CodeAPI, e.Code)
	assert.Equal(t, 403, e.UpstreamStatus)
	assert.Contains(t, e.Detail, "Invalid token")
}

func TestGetFileNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force a connection error

	svc := newTestService(srv.URL, srv.URL)

	_, err := svc.GetFile(context.Background(), "abc123", "figd_token")
	require.Error(t, err)

	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeInternal, e.Code)
}

func TestGetTeamProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams/99/projects", r.URL.Path)
		w.Write([]byte(`{"name":"Design Team","projects":[{"id":"1","name":"Website"}]}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	projects, err := svc.GetTeamProjects(context.Background(), "99", "figd_token")
	require.NoError(t, err)
	assert.Equal(t, "Design Team", projects.Name)
	require.Len(t, projects.Projects, 1)
	assert.Equal(t, "Website", projects.Projects[0].Name)
}

func TestGetProjectFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/7/files", r.URL.Path)
		w.Write([]byte(`{"name":"Website","files":[{"key":"abc123","name":"Landing"}]}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	files, err := svc.GetProjectFiles(context.Background(), "7", "figd_token")
	require.NoError(t, err)
	require.Len(t, files.Files, 1)
	assert.Equal(t, "abc123", files.Files[0].Key)
}

func TestGetUserFiles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files", r.URL.Path)
		w.Write([]byte(`{"files":[{"key":"abc123","name":"Landing","description":"hero"}]}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	files, err := svc.GetUserFiles(context.Background(), "figd_token")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Landing", files[0].Name)
	assert.Equal(t, "hero", files[0].Description)
}

func TestGetUserFilesMissingFilesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":false}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	_, err := svc.GetUserFiles(context.Background(), "figd_token")
	require.Error(t, err)

	e := apperr.From(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.CodeAPI, e.Code)
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/oauth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"figd_access","refresh_token":"figd_refresh","expires_in":3600}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	data := svc.ExchangeCode(context.Background(), "the-code")
	require.NotNil(t, data)
	assert.Equal(t, "figd_access", data.AccessToken)
	assert.Equal(t, "figd_refresh", data.RefreshToken)
	assert.Equal(t, int64(3600), data.ExpiresIn)
}

func TestExchangeCodeFailureReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	data := svc.ExchangeCode(context.Background(), "expired-code")
	assert.Nil(t, data)
}

func TestRefreshAccessToken(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "figd_refresh", r.PostForm.Get("refresh_token"))
		w.Write([]byte(`{"access_token":"figd_new","expires_in":7200}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	data, err := svc.RefreshAccessToken(context.Background(), "figd_refresh")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "figd_new", data.AccessToken)
	assert.Equal(t, int64(7200), data.ExpiresIn)
	// provider omitted a rotated refresh token, the old one stays usable
	assert.Equal(t, "figd_refresh", data.RefreshToken)
}

func TestRefreshAccessTokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_refresh_token"}`))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL, srv.URL)

	_, err := svc.RefreshAccessToken(context.Background(), "stale")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh grant rejected")
}
