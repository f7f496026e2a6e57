package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/sakif/snack-api/internal/apperror"
)

// MaxBodyBytes caps the size of a request payload.
const MaxBodyBytes = 1 << 20

// Decode reads exactly one JSON value from r into dst.
//
// Any decoding failure (empty body, syntax error, trailing data after the
// value, invalid UTF-8, a string where a number belongs) is reported as a
// validation error so the client gets a 400 rather than a 500.
func Decode(r io.Reader, dst any) error {
	raw, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes))
	if err != nil {
		return malformed(err)
	}
	// encoding/json would silently replace bad bytes with U+FFFD.
	if !utf8.Valid(raw) {
		return &apperror.AppError{Err: apperror.ErrValidation, Message: "request body is not valid UTF-8"}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &apperror.AppError{Err: apperror.ErrValidation, Message: "request body is empty"}
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperror.ValidationFailed(typeErr.Field,
				fmt.Sprintf("invalid value for %s: got a JSON %s", typeErr.Field, typeErr.Value))
		}
		return malformed(err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return malformed(errors.New("unexpected data after JSON value"))
	}
	return nil
}

func malformed(err error) error {
	return &apperror.AppError{
		Err:     apperror.ErrValidation,
		Message: "malformed JSON body: " + err.Error(),
	}
}
