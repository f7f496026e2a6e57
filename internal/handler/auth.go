package handler

import (
	"log/slog"
	"net/http"

	"github.com/rs/xid"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/auth"
	"github.com/sakif/snack-api/internal/dto"
)

const stateCookieName = "oauth_state"

// GitHubHandler runs the GitHub sign-in flow and clears sessions.
//
//   - HandleGitHubLogin    → redirect the browser to GitHub's authorization page
//   - HandleGitHubCallback → receive the code, find-or-create the principal, issue a token
//   - HandleLogout         → clear the token cookie
type GitHubHandler struct {
	github   GitHubAuthenticator
	accounts AccountService
	logger   *slog.Logger
}

func NewGitHubHandler(github GitHubAuthenticator, accounts AccountService, logger *slog.Logger) *GitHubHandler {
	return &GitHubHandler{
		github:   github,
		accounts: accounts,
		logger:   logger,
	}
}

// HandleGitHubLogin redirects the user to GitHub.
//
// CSRF PROTECTION VIA STATE:
// A random xid is stored in a short-lived HttpOnly cookie and sent to
// GitHub as the state parameter. The callback only proceeds when GitHub
// hands the same value back.
func (h *GitHubHandler) HandleGitHubLogin(w http.ResponseWriter, r *http.Request) {
	state := xid.New().String()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   600, // 10 minutes
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.github.AuthURL(state), http.StatusTemporaryRedirect)
}

// HandleGitHubCallback completes the sign-in.
//
// HTTP: GET /auth/github/callback?code=xxx&state=yyy
//
//  1. Check the state against the cookie
//  2. Exchange the code for the GitHub profile
//  3. Find or create the principal
//  4. Set the token cookie and return the token as JSON
func (h *GitHubHandler) HandleGitHubCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil || stateCookie.Value == "" || r.URL.Query().Get("state") != stateCookie.Value {
		h.logger.Warn("auth callback: state mismatch")
		writeError(w, apperror.ValidationFailed("state", "invalid OAuth state"))
		return
	}

	// Single use.
	http.SetCookie(w, &http.Cookie{
		Name:   stateCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.logger.Info("auth callback: user denied authorization", slog.String("error", errParam))
		writeError(w, apperror.Unauthorized("GitHub authorization was denied"))
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, apperror.ValidationFailed("code", "missing OAuth code"))
		return
	}

	ghUser, err := h.github.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("auth callback: GitHub exchange failed", slog.String("error", err.Error()))
		writeError(w, apperror.Unauthorized("GitHub sign-in failed"))
		return
	}

	res, err := h.accounts.SignInGitHub(r.Context(), ghUser)
	if err != nil {
		h.logger.Error("auth callback: sign-in failed",
			slog.Int64("githubID", ghUser.ID),
			slog.String("error", err.Error()),
		)
		writeError(w, err)
		return
	}

	h.logger.Info("principal authenticated via GitHub",
		slog.Int64("principalID", res.Principal.ID),
		slog.String("login", ghUser.Login),
	)

	// HttpOnly keeps the token away from scripts. Secure should be set when
	// served over HTTPS.
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    res.Token.Token,
		Path:     "/",
		MaxAge:   int(res.Token.ExpiresIn.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, dto.NewTokenResponse(res.Token))
}

// HandleLogout clears the token cookie.
//
// HTTP: POST /auth/logout
//
// Tokens are stateless: the JWT stays valid until it expires, but without
// the cookie the browser no longer sends it.
func (h *GitHubHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}
