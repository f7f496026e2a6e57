package dto

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestSnackRequest_Validate(t *testing.T) {
	tests := []struct {
		name       string
		req        SnackRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  SnackRequest{Title: ptr("Title of Blog"), Body: ptr("Words"), Author: ptr(int64(1))},
		},
		{
			name: "empty body is allowed",
			req:  SnackRequest{Title: ptr("t"), Body: ptr(""), Author: ptr(int64(1))},
		},
		{
			name:       "everything missing",
			req:        SnackRequest{},
			wantFields: []string{"title", "body", "author"},
		},
		{
			name:       "author missing",
			req:        SnackRequest{Title: ptr("t"), Body: ptr("b")},
			wantFields: []string{"author"},
		},
		{
			name:       "blank title",
			req:        SnackRequest{Title: ptr("   "), Body: ptr("b"), Author: ptr(int64(1))},
			wantFields: []string{"title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, apperror.ErrValidation)
			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantFields, appErr.Fields)
		})
	}
}

func TestAccountRequest_Validate(t *testing.T) {
	assert.NoError(t, AccountRequest{Username: ptr("tester"), Password: ptr("pw")}.Validate())

	err := AccountRequest{Username: ptr("")}.Validate()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, []string{"username", "password"}, appErr.Fields)

	assert.ErrorIs(t, CredentialRequest{}.Validate(), apperror.ErrValidation)
	assert.NoError(t, CredentialRequest{Password: ptr("new")}.Validate())
}

func TestNewSnackListResponse_EmptyIsNotNil(t *testing.T) {
	out := NewSnackListResponse(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestNewSnackResponse(t *testing.T) {
	got := NewSnackResponse(&model.Snack{ID: 1, Title: "Title of Blog", Body: "Words about the blog", AuthorID: 3})
	assert.Equal(t, SnackResponse{ID: 1, Title: "Title of Blog", Body: "Words about the blog", Author: 3}, got)
}

func TestNewTokenResponse(t *testing.T) {
	got := NewTokenResponse(&model.AccessToken{Token: "abc", ExpiresIn: 15 * time.Minute})
	assert.Equal(t, TokenResponse{Token: "abc", ExpiresIn: 900}, got)
}

func TestDecode(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var req SnackRequest
		require.NoError(t, Decode(strings.NewReader(`{"title":"a","body":"","author":2}`), &req))
		assert.Equal(t, "a", *req.Title)
		assert.Equal(t, "", *req.Body)
		assert.Equal(t, int64(2), *req.Author)
	})

	t.Run("empty body", func(t *testing.T) {
		var req SnackRequest
		err := Decode(strings.NewReader(""), &req)
		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.EqualError(t, err, "request body is empty")
	})

	t.Run("syntax error", func(t *testing.T) {
		var req SnackRequest
		err := Decode(strings.NewReader(`{"title":`), &req)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("wrong type", func(t *testing.T) {
		var req SnackRequest
		err := Decode(strings.NewReader(`{"title":"a","body":"b","author":"tester"}`), &req)
		require.ErrorIs(t, err, apperror.ErrValidation)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, []string{"author"}, appErr.Fields)
	})

	t.Run("trailing whitespace", func(t *testing.T) {
		var req SnackRequest
		require.NoError(t, Decode(strings.NewReader("{\"title\":\"a\",\"body\":\"b\",\"author\":1}\n"), &req))
		assert.Equal(t, "a", *req.Title)
	})

	t.Run("trailing data", func(t *testing.T) {
		for _, body := range []string{
			`{"title":"t","body":"b","author":1}garbage`,
			`{"title":"t","body":"b","author":1}{}`,
		} {
			var req SnackRequest
			err := Decode(strings.NewReader(body), &req)
			assert.ErrorIs(t, err, apperror.ErrValidation, body)
			assert.ErrorContains(t, err, "malformed JSON body", body)
		}
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		var req SnackRequest
		err := Decode(strings.NewReader("{\"title\":\"\xff\xfe\",\"body\":\"b\",\"author\":1}"), &req)
		assert.ErrorIs(t, err, apperror.ErrValidation)
		assert.EqualError(t, err, "request body is not valid UTF-8")
	})
}
