package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"figmine-backend/pkg/apperr"
	"figmine-backend/pkg/config"

	"golang.org/x/oauth2"
)

// Service is the authenticated client for the Figma REST API and its OAuth
// endpoints. One instance is constructed at startup and shared; the embedded
// http.Client is safe for concurrent use.
type Service struct {
	clientID     string
	clientSecret string
	redirectURI  string
	apiBaseURL   string
	oauthBaseURL string
	httpClient   *http.Client
}

func NewService(cfg *config.Config, httpClient *http.Client) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Service{
		clientID:     cfg.FigmaClientID,
		clientSecret: cfg.FigmaClientSecret,
		redirectURI:  cfg.FigmaRedirectURI,
		apiBaseURL:   strings.TrimRight(cfg.FigmaAPIBaseURL, "/"),
		oauthBaseURL: strings.TrimRight(cfg.FigmaOAuthBaseURL, "/"),
		httpClient:   httpClient,
	}
}

func (s *Service) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		RedirectURL:  s.redirectURI,
		Scopes:       []string{"file_read"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  s.oauthBaseURL + "/oauth",
			TokenURL: s.oauthBaseURL + "/api/oauth/token",
		},
	}
}

// TokenData is a provider token grant result.
type TokenData struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// AuthCodeURL builds the browser redirect target for the authorization-code
// flow. state is carried opaquely through the redirect and comes back on the
// callback.
func (s *Service) AuthCodeURL(state string) string {
	return s.oauthConfig().AuthCodeURL(state)
}

// ExchangeCode swaps an authorization code for tokens. A failed exchange is
// deliberately converted into a nil result so the caller can issue its own
// classification.
func (s *Service) ExchangeCode(ctx context.Context, code string) *TokenData {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	tok, err := s.oauthConfig().Exchange(ctx, code)
	if err != nil {
		log.Printf("[WARN] figma token exchange failed: %v", err)
		return nil
	}
	return tokenData(tok)
}

// RefreshAccessToken performs a single refresh-token grant. No retries.
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenData, error) {
	form := url.Values{}
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)
	form.Set("refresh_token", refreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.oauthBaseURL+"/api/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("refresh grant rejected: status %d, body: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if payload.AccessToken == "" {
		return nil, fmt.Errorf("refresh response missing access_token")
	}

	data := &TokenData{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		ExpiresIn:    payload.ExpiresIn,
	}
	if data.RefreshToken == "" {
		data.RefreshToken = refreshToken
	}
	return data, nil
}

func tokenData(tok *oauth2.Token) *TokenData {
	expiresIn := tok.ExpiresIn
	if expiresIn == 0 && !tok.Expiry.IsZero() {
		expiresIn = int64(time.Until(tok.Expiry).Seconds())
	}
	return &TokenData{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    expiresIn,
	}
}

// FileDetails is the /files/{key} response.
type FileDetails struct {
	Name         string          `json:"name"`
	Role         string          `json:"role,omitempty"`
	LastModified string          `json:"lastModified,omitempty"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty"`
	Version      string          `json:"version,omitempty"`
	EditorType   string          `json:"editorType,omitempty"`
	Document     json.RawMessage `json:"document,omitempty"`
}

// TeamProjects is the /teams/{id}/projects response.
type TeamProjects struct {
	Name     string        `json:"name"`
	Projects []TeamProject `json:"projects"`
}

type TeamProject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectFiles is the /projects/{id}/files response.
type ProjectFiles struct {
	Name  string        `json:"name"`
	Files []ProjectFile `json:"files"`
}

type ProjectFile struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// UserFile is one entry of the flat /files listing.
type UserFile struct {
	Key          string `json:"key"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// GetFile retrieves a single file's details.
func (s *Service) GetFile(ctx context.Context, fileKey, accessToken string) (*FileDetails, error) {
	var file FileDetails
	if err := s.get(ctx, "/files/"+url.PathEscape(fileKey), accessToken, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// GetTeamProjects lists the projects of a team.
func (s *Service) GetTeamProjects(ctx context.Context, teamID, accessToken string) (*TeamProjects, error) {
	var projects TeamProjects
	if err := s.get(ctx, "/teams/"+url.PathEscape(teamID)+"/projects", accessToken, &projects); err != nil {
		return nil, err
	}
	return &projects, nil
}

// GetProjectFiles lists the files of a project.
func (s *Service) GetProjectFiles(ctx context.Context, projectID, accessToken string) (*ProjectFiles, error) {
	var files ProjectFiles
	if err := s.get(ctx, "/projects/"+url.PathEscape(projectID)+"/files", accessToken, &files); err != nil {
		return nil, err
	}
	return &files, nil
}

// GetUserFiles lists all files visible to the token's user via the flat
// /files endpoint. The response must carry a "files" key.
func (s *Service) GetUserFiles(ctx context.Context, accessToken string) ([]UserFile, error) {
	var raw map[string]json.RawMessage
	if err := s.get(ctx, "/files", accessToken, &raw); err != nil {
		return nil, err
	}

	entries, ok := raw["files"]
	if !ok {
		return nil, apperr.API("Invalid response from Figma API", "missing files key", 0)
	}

	var files []UserFile
	if err := json.Unmarshal(entries, &files); err != nil {
		return nil, apperr.Internal("Unexpected error decoding Figma files", err)
	}
	return files, nil
}

// get performs one authenticated GET and decodes the JSON body into out.
// Non-2xx responses surface as API errors carrying the upstream status and
// raw body; everything else (network, decode) surfaces as internal.
func (s *Service) get(ctx context.Context, path, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBaseURL+path, nil)
	if err != nil {
		return apperr.Internal("Unexpected error building Figma request", err)
	}
	req.Header.Set("X-Figma-Token", accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return apperr.Internal("Unexpected error calling Figma API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[WARN] figma api error: %d - %s", resp.StatusCode, string(body))
		return apperr.API(fmt.Sprintf("Figma API error: %d", resp.StatusCode), string(body), resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Internal("Unexpected error decoding Figma response", err)
	}
	return nil
}
