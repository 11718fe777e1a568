package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testClient(apiBase, tokenURL string) *GitHubClient {
	client := NewGitHubClient(GitHubConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		CallbackURL:  "http://localhost:8080/auth/github/callback",
	})
	if apiBase != "" {
		client.apiBaseURL = apiBase
	}
	if tokenURL != "" {
		client.tokenURL = tokenURL
	}
	return client
}

func TestGenerateAuthURL(t *testing.T) {
	client := testClient("", "")

	authURL := client.GenerateAuthURL("state-token")

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)
	require.Equal(t, "github.com", parsed.Host)
	require.Equal(t, "client-id", parsed.Query().Get("client_id"))
	require.Equal(t, "user:email", parsed.Query().Get("scope"))
	require.Equal(t, "state-token", parsed.Query().Get("state"))
	require.Equal(t, "http://localhost:8080/auth/github/callback", parsed.Query().Get("redirect_uri"))
}

func TestExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "the-code", r.FormValue("code"))
		require.Equal(t, "client-secret", r.FormValue("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"access_token": "gho_token"})
	}))
	defer server.Close()

	client := testClient("", server.URL)

	token, err := client.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	require.Equal(t, "gho_token", token)
}

func TestExchangeCode_OAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"error":             "bad_verification_code",
			"error_description": "The code passed is incorrect or expired.",
		})
	}))
	defer server.Close()

	client := testClient("", server.URL)

	_, err := client.ExchangeCode(context.Background(), "stale-code")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad_verification_code")
}

func TestFetchUserProfile_PublicEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer gho_token", r.Header.Get("Authorization"))
		require.Equal(t, "/user", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":    int64(42),
			"login": "octocat",
			"email": "octocat@example.com",
			"name":  "The Octocat",
		})
	}))
	defer server.Close()

	client := testClient(server.URL, "")

	user, err := client.FetchUserProfile(context.Background(), "gho_token")
	require.NoError(t, err)
	require.Equal(t, int64(42), user.ID)
	require.Equal(t, "octocat", user.Login)
	require.Equal(t, "octocat@example.com", user.Email)
	require.Equal(t, "The Octocat", user.Name)
}

func TestFetchUserProfile_PrivateEmailFallsBackToEmailsEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/user":
			json.NewEncoder(w).Encode(map[string]any{
				"id":    int64(7),
				"login": "ghost",
				"email": "",
			})
		case "/user/emails":
			json.NewEncoder(w).Encode([]map[string]any{
				{"email": "secondary@example.com", "primary": false, "verified": true},
				{"email": "primary@example.com", "primary": true, "verified": true},
			})
		default:
			t.Fatalf("unexpected request path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := testClient(server.URL, "")

	user, err := client.FetchUserProfile(context.Background(), "gho_token")
	require.NoError(t, err)
	require.Equal(t, "primary@example.com", user.Email)
}

func TestGenerateState(t *testing.T) {
	first, err := GenerateState()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := GenerateState()
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// URL-safe: usable directly in a redirect query parameter
	require.False(t, strings.ContainsAny(first, "+/"))
}
