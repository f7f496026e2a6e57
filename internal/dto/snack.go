// Package dto holds the JSON wire shapes of the API and the field checks
// that run on them before any store is touched.
//
// POINTER FIELDS:
// Request structs use pointers so "field absent" (nil) and "field present but
// empty" ("" / 0) can be told apart. A snack may have an empty body, but the
// key itself is required.
package dto

import (
	"strings"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/model"
)

// SnackRequest is the payload of POST /snacks and PUT /snacks/{id}.
// Updates are full replacements, so both share the same shape.
type SnackRequest struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Author *int64  `json:"author"`
}

// Validate reports every missing field in a single error, then rejects a
// title that is blank after trimming.
func (r SnackRequest) Validate() error {
	var missing []string
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.Body == nil {
		missing = append(missing, "body")
	}
	if r.Author == nil {
		missing = append(missing, "author")
	}
	if len(missing) > 0 {
		return apperror.MissingFields(missing...)
	}

	if strings.TrimSpace(*r.Title) == "" {
		return apperror.ValidationFailed("title", "title may not be blank")
	}
	return nil
}

// SnackResponse is the wire form of a snack. Author is the principal id.
type SnackResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Author int64  `json:"author"`
}

func NewSnackResponse(s *model.Snack) SnackResponse {
	return SnackResponse{
		ID:     s.ID,
		Title:  s.Title,
		Body:   s.Body,
		Author: s.AuthorID,
	}
}

// NewSnackListResponse never returns nil, so an empty store encodes as [].
func NewSnackListResponse(snacks []model.Snack) []SnackResponse {
	out := make([]SnackResponse, 0, len(snacks))
	for i := range snacks {
		out = append(out, NewSnackResponse(&snacks[i]))
	}
	return out
}
