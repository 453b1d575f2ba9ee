package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnector_backend/internal/config"
	"devconnector_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func githubFixture(handler http.HandlerFunc) (GithubService, *httptest.Server) {
	upstream := httptest.NewServer(handler)

	cfg := &config.Config{}
	cfg.GitHub.ClientID = "cid"
	cfg.GitHub.ClientSecret = "csecret"
	cfg.GitHub.APIBaseURL = upstream.URL

	return NewGithubService(cfg, upstream.Client()), upstream
}

func TestGithubRepos_RelaysBodyVerbatim(t *testing.T) {
	const upstreamBody = `[{"name":"repo-one"},{"name":"repo-two"}]`

	var gotPath, gotQuery string
	svc, upstream := githubFixture(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamBody))
	})
	defer upstream.Close()

	body, err := svc.Repos(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, upstreamBody, string(body))
	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Contains(t, gotQuery, "per_page=5")
	assert.Contains(t, gotQuery, "client_id=cid")
}

func TestGithubRepos_UpstreamNon200(t *testing.T) {
	svc, upstream := githubFixture(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer upstream.Close()

	_, err := svc.Repos(context.Background(), "ghost")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Equal(t, "No Github profile found", appErr.Message)
}

func TestGithubRepos_TransportFailure(t *testing.T) {
	svc, upstream := githubFixture(func(w http.ResponseWriter, r *http.Request) {})
	upstream.Close() // connection refused from here on

	_, err := svc.Repos(context.Background(), "anyone")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
}
