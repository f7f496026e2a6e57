package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/auth"
	"github.com/sakif/snack-api/internal/model"
	"github.com/sakif/snack-api/internal/repository"
)

const (
	MaxUsernameLength = 150

	// githubUsernamePrefix namespaces principals created by GitHub sign-in.
	// ':' is not a legal character for registered usernames, so a local
	// account can never collide with (or take over) a GitHub one.
	githubUsernamePrefix = "github:"
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// errInvalidCredentials is deliberately the same for an unknown username and
// a wrong password, so login cannot be used to enumerate accounts.
var errInvalidCredentials = apperror.Unauthorized("invalid username or password")

// AccountService manages principals: registration, password login,
// credential changes and GitHub sign-in.
//
// DEPENDENCIES:
//   - principals repository.PrincipalRepository → principal records
//   - passwords  *auth.PasswordService          → bcrypt hashing
//   - tokens     *auth.TokenService             → JWT issuance; nil disables login
//   - logger     *slog.Logger
type AccountService struct {
	principals repository.PrincipalRepository
	passwords  *auth.PasswordService
	tokens     *auth.TokenService
	logger     *slog.Logger
}

func NewAccountService(
	principals repository.PrincipalRepository,
	passwords *auth.PasswordService,
	tokens *auth.TokenService,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		principals: principals,
		passwords:  passwords,
		tokens:     tokens,
		logger:     logger,
	}
}

// AuthResult bundles the principal and the token issued for it, so the
// handler can set the cookie and respond in one step.
type AuthResult struct {
	Principal *model.Principal
	Token     *model.AccessToken
}

// Register creates a principal with a bcrypt-hashed credential.
// A taken username yields apperror.ErrDuplicateKey.
func (s *AccountService) Register(ctx context.Context, username, password string) (*model.Principal, error) {
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	p := &model.Principal{Username: username, Credential: hash}
	if err := s.principals.CreatePrincipal(ctx, p); err != nil {
		if errors.Is(err, apperror.ErrDuplicateKey) {
			return nil, err
		}
		s.logger.Error("failed to create principal",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("registering principal: %w", err)
	}

	s.logger.Info("principal registered",
		slog.Int64("id", p.ID),
		slog.String("username", p.Username),
	)
	return p, nil
}

// Get returns apperror.ErrNotFound when no principal has the given id.
func (s *AccountService) Get(ctx context.Context, id int64) (*model.Principal, error) {
	return s.principals.GetPrincipalByID(ctx, id)
}

// Login checks a username/password pair and issues an access token.
func (s *AccountService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if s.tokens == nil {
		return nil, errors.New("login: token issuance is not configured")
	}

	p, err := s.principals.GetPrincipalByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	// GitHub principals have no password and can only sign in through GitHub.
	if p.Credential == "" {
		return nil, errInvalidCredentials
	}

	if err := s.passwords.Verify(p.Credential, password); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			s.logger.Warn("failed login", slog.String("username", p.Username))
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	return s.issue(p)
}

// ChangeCredential replaces the password of an existing principal.
func (s *AccountService) ChangeCredential(ctx context.Context, id int64, password string) error {
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}

	if err := s.principals.UpdateCredential(ctx, id, hash); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		return fmt.Errorf("changing credential: %w", err)
	}

	s.logger.Info("credential changed", slog.Int64("id", id))
	return nil
}

// SignInGitHub finds or creates the principal for a GitHub login and issues
// an access token for it.
//
// The principal is named "github:<login>" and has no password. A concurrent
// first sign-in for the same login loses the UNIQUE race and simply reads
// the row the winner created.
func (s *AccountService) SignInGitHub(ctx context.Context, ghUser *auth.GitHubUser) (*AuthResult, error) {
	if ghUser == nil || ghUser.Login == "" {
		return nil, errors.New("github sign-in: GitHub user must not be empty")
	}
	if s.tokens == nil {
		return nil, errors.New("github sign-in: token issuance is not configured")
	}

	username := githubUsernamePrefix + ghUser.Login

	p, err := s.principals.GetPrincipalByUsername(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) {
		p = &model.Principal{Username: username}
		err = s.principals.CreatePrincipal(ctx, p)
		if errors.Is(err, apperror.ErrDuplicateKey) {
			p, err = s.principals.GetPrincipalByUsername(ctx, username)
		} else if err == nil {
			s.logger.Info("principal created from GitHub",
				slog.Int64("id", p.ID),
				slog.Int64("githubID", ghUser.ID),
			)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("github sign-in for %q: %w", ghUser.Login, err)
	}

	return s.issue(p)
}

func (s *AccountService) issue(p *model.Principal) (*AuthResult, error) {
	token, err := s.tokens.Generate(p.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token for principal %d: %w", p.ID, err)
	}

	return &AuthResult{
		Principal: p,
		Token:     &model.AccessToken{Token: token, ExpiresIn: s.tokens.TTL()},
	}, nil
}

func (s *AccountService) hashPassword(password string) (string, error) {
	if password == "" {
		return "", apperror.ValidationFailed("password", "password is required")
	}

	hash, err := s.passwords.Hash(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return "", apperror.ValidationFailed("password",
				fmt.Sprintf("password must be %d bytes or fewer", auth.MaxPasswordBytes))
		}
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return hash, nil
}

func validateUsername(username string) error {
	switch {
	case username == "":
		return apperror.ValidationFailed("username", "username is required")
	case utf8.RuneCountInString(username) > MaxUsernameLength:
		return apperror.ValidationFailed("username",
			fmt.Sprintf("username must be %d characters or fewer", MaxUsernameLength))
	case !usernamePattern.MatchString(username):
		return apperror.ValidationFailed("username",
			"username may contain only letters, digits and @/./+/-/_")
	}
	return nil
}
