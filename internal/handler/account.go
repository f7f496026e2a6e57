package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/auth"
	"github.com/sakif/snack-api/internal/dto"
)

// AccountHandler manages principals and password-based tokens.
//
//   - HandleRegister         → POST /accounts
//   - HandleGet              → GET  /accounts/{id}
//   - HandleToken            → POST /auth/token
//   - HandleMe               → GET  /me             (RequireAuth)
//   - HandleChangeCredential → PUT  /me/credential  (RequireAuth)
type AccountHandler struct {
	accounts AccountService
	logger   *slog.Logger
}

func NewAccountHandler(accounts AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, logger: logger}
}

// HandleRegister creates a principal: 201, 400 on bad fields, 409 on a
// taken username.
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountRequest
	if err := dto.Decode(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	p, err := h.accounts.Register(r.Context(), *req.Username, *req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewPrincipalResponse(p))
}

func (h *AccountHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "principal")
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPrincipalResponse(p))
}

// HandleToken exchanges a username and password for an access token.
// Clients send it back as "Authorization: Bearer <token>".
func (h *AccountHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountRequest
	if err := dto.Decode(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.accounts.Login(r.Context(), *req.Username, *req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("token issued", slog.Int64("principalID", res.Principal.ID))
	writeJSON(w, http.StatusOK, dto.NewTokenResponse(res.Token))
}

// HandleMe returns the authenticated principal.
func (h *AccountHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.PrincipalIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("valid authentication required"))
		return
	}

	p, err := h.accounts.Get(r.Context(), id)
	if err != nil {
		// A valid token for a principal that no longer resolves.
		h.logger.Warn("HandleMe: principal not found", slog.Int64("principalID", id))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewPrincipalResponse(p))
}

// HandleChangeCredential sets a new password for the authenticated principal.
func (h *AccountHandler) HandleChangeCredential(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.PrincipalIDFromContext(r.Context())
	if !ok {
		writeError(w, apperror.Unauthorized("valid authentication required"))
		return
	}

	var req dto.CredentialRequest
	if err := dto.Decode(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := h.accounts.ChangeCredential(r.Context(), id, *req.Password); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
