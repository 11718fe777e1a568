// Package oauth implements the GitHub OAuth 2.0 login flow used to
// establish write-access sessions.
package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAuthorizeURL = "https://github.com/login/oauth/authorize"
	defaultTokenURL     = "https://github.com/login/oauth/access_token"
	defaultAPIBaseURL   = "https://api.github.com"
)

// GitHubConfig holds the OAuth application credentials.
type GitHubConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// GitHubClient drives the authorization-code flow against GitHub.
type GitHubClient struct {
	config     GitHubConfig
	httpClient *http.Client

	// Overridable in tests.
	authorizeURL string
	tokenURL     string
	apiBaseURL   string
}

// GitHubUser is the profile GitHub reports for an authenticated user.
type GitHubUser struct {
	ID    int64
	Login string
	Email string
	Name  string
}

func NewGitHubClient(config GitHubConfig) *GitHubClient {
	return &GitHubClient{
		config: config,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		authorizeURL: defaultAuthorizeURL,
		tokenURL:     defaultTokenURL,
		apiBaseURL:   defaultAPIBaseURL,
	}
}

// GenerateAuthURL builds the GitHub authorization URL. The state parameter
// must come from GenerateState and be checked again on callback.
func (c *GitHubClient) GenerateAuthURL(state string) string {
	params := url.Values{
		"client_id":    {c.config.ClientID},
		"redirect_uri": {c.config.CallbackURL},
		"scope":        {"user:email"},
		"state":        {state},
	}
	return c.authorizeURL + "?" + params.Encode()
}

// ExchangeCode trades the authorization code GitHub redirected back with
// for an access token.
func (c *GitHubClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{
		"client_id":     {c.config.ClientID},
		"client_secret": {c.config.ClientSecret},
		"code":          {code},
		"redirect_uri":  {c.config.CallbackURL},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to exchange code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
		ErrorDesc   string `json:"error_description"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	if tokenResp.Error != "" {
		return "", fmt.Errorf("GitHub OAuth error: %s - %s", tokenResp.Error, tokenResp.ErrorDesc)
	}

	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("no access token in response")
	}

	return tokenResp.AccessToken, nil
}

// FetchUserProfile retrieves the authenticated user's profile. Users who
// keep their email private get a second lookup against /user/emails.
func (c *GitHubClient) FetchUserProfile(ctx context.Context, accessToken string) (*GitHubUser, error) {
	user, err := c.fetchUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if user.Email == "" {
		email, err := c.fetchPrimaryEmail(ctx, accessToken)
		if err != nil {
			// Email stays empty; login still succeeds.
			return user, nil
		}
		user.Email = email
	}

	return user, nil
}

func (c *GitHubClient) fetchUser(ctx context.Context, accessToken string) (*GitHubUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to fetch user profile with status %d: %s", resp.StatusCode, string(body))
	}

	var userResp struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&userResp); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}

	return &GitHubUser{
		ID:    userResp.ID,
		Login: userResp.Login,
		Email: userResp.Email,
		Name:  userResp.Name,
	}, nil
}

func (c *GitHubClient) fetchPrimaryEmail(ctx context.Context, accessToken string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/user/emails", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create emails request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch user emails: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("failed to fetch user emails with status %d: %s", resp.StatusCode, string(body))
	}

	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return "", fmt.Errorf("failed to decode emails response: %w", err)
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}

	for _, e := range emails {
		if e.Verified {
			return e.Email, nil
		}
	}

	return "", fmt.Errorf("no verified email found")
}

// GenerateState produces a random state parameter for CSRF protection.
// The caller stores it in a short-lived cookie and compares it when
// GitHub redirects back.
func GenerateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random state: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
