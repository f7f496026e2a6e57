// Package service contains the business rules of the API.
//
// THE THREE LAYERS:
//
//	Handler (HTTP)      → decodes requests, writes responses
//	Service (business)  → validates, checks references, orchestrates
//	Repository (data)   → reads/writes SQLite
//
// Services accept primitives and return models and apperror values. They
// never see an *http.Request or a status code, and they never see SQL.
// Repositories arrive as interfaces, so tests inject in-memory fakes.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/model"
	"github.com/sakif/snack-api/internal/repository"
)

// SnackService manages snacks and enforces that every snack names an
// existing principal as its author.
type SnackService struct {
	snacks     repository.SnackRepository
	principals repository.PrincipalRepository
	logger     *slog.Logger
}

func NewSnackService(
	snacks repository.SnackRepository,
	principals repository.PrincipalRepository,
	logger *slog.Logger,
) *SnackService {
	return &SnackService{
		snacks:     snacks,
		principals: principals,
		logger:     logger,
	}
}

// List returns every snack ordered by id. An empty store yields an empty,
// non-nil slice.
func (s *SnackService) List(ctx context.Context) ([]model.Snack, error) {
	snacks, err := s.snacks.ListSnacks(ctx)
	if err != nil {
		s.logger.Error("failed to list snacks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing snacks: %w", err)
	}
	if snacks == nil {
		snacks = []model.Snack{}
	}
	return snacks, nil
}

// Get returns apperror.ErrNotFound when no snack has the given id.
func (s *SnackService) Get(ctx context.Context, id int64) (*model.Snack, error) {
	return s.snacks.GetSnack(ctx, id)
}

// Create validates and stores a new snack. The id is assigned by the store.
func (s *SnackService) Create(ctx context.Context, title, body string, authorID int64) (*model.Snack, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	snack := &model.Snack{Title: title, Body: body, AuthorID: authorID}
	if err := s.snacks.CreateSnack(ctx, snack); err != nil {
		if errors.Is(err, apperror.ErrValidation) {
			// Author removed between the lookup and the insert.
			return nil, err
		}
		s.logger.Error("failed to create snack",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating snack: %w", err)
	}

	s.logger.Info("snack created",
		slog.Int64("id", snack.ID),
		slog.Int64("author", snack.AuthorID),
	)
	return snack, nil
}

// Update replaces every field of an existing snack.
//
// FETCH, THEN VALIDATE:
// A missing snack is reported before anything about the payload, so PUT on
// an unknown id is always 404 regardless of the author it names.
func (s *SnackService) Update(ctx context.Context, id int64, title, body string, authorID int64) (*model.Snack, error) {
	snack, err := s.snacks.GetSnack(ctx, id)
	if err != nil {
		return nil, err
	}

	title, err = validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	snack.Title = title
	snack.Body = body
	snack.AuthorID = authorID

	if err := s.snacks.UpdateSnack(ctx, snack); err != nil {
		if errors.Is(err, apperror.ErrNotFound) || errors.Is(err, apperror.ErrValidation) {
			// Snack or author removed between the read and the write.
			return nil, err
		}
		s.logger.Error("failed to update snack",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating snack: %w", err)
	}

	s.logger.Info("snack updated", slog.Int64("id", id))
	return snack, nil
}

// Delete hard-deletes a snack. Returns apperror.ErrNotFound if absent.
func (s *SnackService) Delete(ctx context.Context, id int64) error {
	if err := s.snacks.DeleteSnack(ctx, id); err != nil {
		return err
	}

	s.logger.Info("snack deleted", slog.Int64("id", id))
	return nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperror.ValidationFailed("title", "title may not be blank")
	}
	return title, nil
}

// ensureAuthor turns an unknown author into a validation error: from the
// client's point of view it is a bad field value, not a missing resource.
func (s *SnackService) ensureAuthor(ctx context.Context, authorID int64) error {
	_, err := s.principals.GetPrincipalByID(ctx, authorID)
	if err == nil {
		return nil
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.ValidationFailed("author",
			fmt.Sprintf("invalid principal id %d: object does not exist", authorID))
	}
	return fmt.Errorf("resolving author: %w", err)
}
