package dto

import (
	"time"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/model"
)

// AccountRequest is the payload of POST /accounts and POST /auth/token.
type AccountRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Validate checks presence only. Username rules and the password length
// limit belong to the account service.
func (r AccountRequest) Validate() error {
	var missing []string
	if r.Username == nil || *r.Username == "" {
		missing = append(missing, "username")
	}
	if r.Password == nil || *r.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return apperror.MissingFields(missing...)
	}
	return nil
}

// CredentialRequest is the payload of PUT /me/credential.
type CredentialRequest struct {
	Password *string `json:"password"`
}

func (r CredentialRequest) Validate() error {
	if r.Password == nil || *r.Password == "" {
		return apperror.MissingFields("password")
	}
	return nil
}

// PrincipalResponse is the public view of a principal. The credential hash
// is never serialized.
type PrincipalResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func NewPrincipalResponse(p *model.Principal) PrincipalResponse {
	return PrincipalResponse{ID: p.ID, Username: p.Username}
}

// TokenResponse carries an access token. ExpiresIn is in whole seconds.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

func NewTokenResponse(t *model.AccessToken) TokenResponse {
	return TokenResponse{
		Token:     t.Token,
		ExpiresIn: int64(t.ExpiresIn / time.Second),
	}
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
