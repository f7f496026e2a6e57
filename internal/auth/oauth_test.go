package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGitHubProvider_AuthURL(t *testing.T) {
	p := NewGitHubProvider("client-id", "client-secret", "http://localhost:8080/auth/github/callback")

	raw := p.AuthURL("state-123")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "github.com", u.Host)
	assert.Equal(t, "client-id", u.Query().Get("client_id"))
	assert.Equal(t, "state-123", u.Query().Get("state"))
	assert.Equal(t, "http://localhost:8080/auth/github/callback", u.Query().Get("redirect_uri"))
}

// fakeGitHub serves both the token endpoint and the /user API.
func fakeGitHub(t *testing.T, userStatus int, userBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad_verification_code"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_test","token_type":"bearer"}`))
	})
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userStatus)
		_, _ = w.Write([]byte(userBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestGitHubProvider(srv *httptest.Server) *GitHubProvider {
	p := NewGitHubProvider("client-id", "client-secret", "http://localhost/cb")
	p.config.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/login/oauth/authorize",
		TokenURL:  srv.URL + "/login/oauth/access_token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	p.userURL = srv.URL + "/user"
	return p
}

func TestGitHubProvider_Exchange(t *testing.T) {
	srv := fakeGitHub(t, http.StatusOK, `{"id":583231,"login":"octocat"}`)
	p := newTestGitHubProvider(srv)

	user, err := p.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, int64(583231), user.ID)
	assert.Equal(t, "octocat", user.Login)
}

func TestGitHubProvider_Exchange_Failures(t *testing.T) {
	t.Run("bad code", func(t *testing.T) {
		p := newTestGitHubProvider(fakeGitHub(t, http.StatusOK, `{"id":1,"login":"x"}`))
		_, err := p.Exchange(context.Background(), "bad-code")
		assert.Error(t, err)
	})

	t.Run("user API error", func(t *testing.T) {
		p := newTestGitHubProvider(fakeGitHub(t, http.StatusUnauthorized, `{"message":"Bad credentials"}`))
		_, err := p.Exchange(context.Background(), "good-code")
		assert.ErrorContains(t, err, "status 401")
	})

	t.Run("incomplete profile", func(t *testing.T) {
		p := newTestGitHubProvider(fakeGitHub(t, http.StatusOK, `{"id":0}`))
		_, err := p.Exchange(context.Background(), "good-code")
		assert.ErrorContains(t, err, "incomplete user")
	})
}
