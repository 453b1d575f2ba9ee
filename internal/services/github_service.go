package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"devconnector_backend/internal/config"
	"devconnector_backend/pkg/apperrors"
)

type GithubService interface {
	// Repos returns the raw upstream JSON body for the user's repositories.
	Repos(ctx context.Context, username string) ([]byte, error)
}

type GithubServiceImpl struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
}

func NewGithubService(cfg *config.Config, httpClient *http.Client) GithubService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GithubServiceImpl{
		clientID:     cfg.GitHub.ClientID,
		clientSecret: cfg.GitHub.ClientSecret,
		baseURL:      cfg.GitHub.APIBaseURL,
		httpClient:   httpClient,
	}
}

// Repos proxies a bounded repo listing: five results, fixed sort order.
// A non-200 upstream status surfaces as "No Github profile found"; the body
// is relayed verbatim otherwise.
func (s *GithubServiceImpl) Repos(ctx context.Context, username string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos", s.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	q := req.URL.Query()
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	if s.clientID != "" {
		q.Set("client_id", s.clientID)
		q.Set("client_secret", s.clientSecret)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", "devconnector-backend")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ErrNoGithubProfile
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return body, nil
}
