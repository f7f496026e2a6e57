package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/handler"
	"github.com/sakif/snack-api/internal/handler/mocks"
	"github.com/sakif/snack-api/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSnackRouter(t *testing.T) (http.Handler, *mocks.MockSnackService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockSnackService(ctrl)
	return handler.NewSnackHandler(svc, testLogger()).Routes(), svc
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSnackHandler_List(t *testing.T) {
	t.Run("empty store encodes as []", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().List(gomock.Any()).Return([]model.Snack{}, nil)

		rr := serve(h, http.MethodGet, "/", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("snacks in order", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().List(gomock.Any()).Return([]model.Snack{
			{ID: 1, Title: "a", Body: "x", AuthorID: 3},
			{ID: 2, Title: "b", Body: "", AuthorID: 3},
		}, nil)

		rr := serve(h, http.MethodGet, "/", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[
			{"id":1,"title":"a","body":"x","author":3},
			{"id":2,"title":"b","body":"","author":3}
		]`, rr.Body.String())
	})

	t.Run("store failure hides details", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().List(gomock.Any()).Return(nil, errors.New("sqlite: disk I/O error"))

		rr := serve(h, http.MethodGet, "/", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"internal_error","message":"An internal error occurred"}`, rr.Body.String())
	})
}

func TestSnackHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().Get(gomock.Any(), int64(1)).
			Return(&model.Snack{ID: 1, Title: "Title of Blog", Body: "Words about the blog", AuthorID: 1}, nil)

		rr := serve(h, http.MethodGet, "/1", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":1,"title":"Title of Blog","body":"Words about the blog","author":1}`, rr.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().Get(gomock.Any(), int64(9)).Return(nil, apperror.NotFound("snack", 9))

		rr := serve(h, http.MethodGet, "/9", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"not_found","message":"snack not found with id 9"}`, rr.Body.String())
	})

	t.Run("non-integer id never reaches the service", func(t *testing.T) {
		h, _ := newSnackRouter(t)

		for _, id := range []string{"abc", "0", "-1", "1.5"} {
			rr := serve(h, http.MethodGet, "/"+id, "")
			assert.Equal(t, http.StatusNotFound, rr.Code, "id %q", id)
		}
	})
}

func TestSnackHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().Create(gomock.Any(), "Title of Blog", "Words about the blog", int64(1)).
			Return(&model.Snack{ID: 1, Title: "Title of Blog", Body: "Words about the blog", AuthorID: 1}, nil)

		rr := serve(h, http.MethodPost, "/", `{"title":"Title of Blog","body":"Words about the blog","author":1}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":1,"title":"Title of Blog","body":"Words about the blog","author":1}`, rr.Body.String())
	})

	tests := []struct {
		name     string
		body     string
		wantJSON string
	}{
		{
			name:     "missing fields are listed together",
			body:     `{"body":"b"}`,
			wantJSON: `{"error":"validation_error","message":"missing required fields: title, author","fields":["title","author"]}`,
		},
		{
			name:     "blank title",
			body:     `{"title":"  ","body":"b","author":1}`,
			wantJSON: `{"error":"validation_error","message":"title may not be blank","fields":["title"]}`,
		},
		{
			name: "malformed JSON",
			body: `{"title":`,
		},
		{
			name: "author is not a number",
			body: `{"title":"t","body":"b","author":"tester"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No EXPECT: the service must not be called.
			h, _ := newSnackRouter(t)

			rr := serve(h, http.MethodPost, "/", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			if tt.wantJSON != "" {
				assert.JSONEq(t, tt.wantJSON, rr.Body.String())
			}
		})
	}

	t.Run("unknown author from the service", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().Create(gomock.Any(), "t", "b", int64(99)).
			Return(nil, apperror.ValidationFailed("author", "invalid principal id 99: object does not exist"))

		rr := serve(h, http.MethodPost, "/", `{"title":"t","body":"b","author":99}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"fields":["author"]`)
	})
}

func TestSnackHandler_Update(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().Update(gomock.Any(), int64(4), "new", "", int64(2)).
			Return(&model.Snack{ID: 4, Title: "new", Body: "", AuthorID: 2}, nil)

		rr := serve(h, http.MethodPut, "/4", `{"title":"new","body":"","author":2}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"id":4,"title":"new","body":"","author":2}`, rr.Body.String())
	})

	t.Run("missing snack", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().Update(gomock.Any(), int64(4), "new", "b", int64(2)).
			Return(nil, apperror.NotFound("snack", 4))

		rr := serve(h, http.MethodPut, "/4", `{"title":"new","body":"b","author":2}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("invalid payload", func(t *testing.T) {
		h, _ := newSnackRouter(t)

		rr := serve(h, http.MethodPut, "/4", `{"title":"new"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad id wins over bad payload", func(t *testing.T) {
		h, _ := newSnackRouter(t)

		rr := serve(h, http.MethodPut, "/nope", `{}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSnackHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

		rr := serve(h, http.MethodDelete, "/3", "")

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		h, svc := newSnackRouter(t)
		svc.EXPECT().Delete(gomock.Any(), int64(3)).Return(apperror.NotFound("snack", 3))

		rr := serve(h, http.MethodDelete, "/3", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSnackHandler_PassesRequestContext(t *testing.T) {
	type ctxKey struct{}
	h, svc := newSnackRouter(t)
	svc.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]model.Snack, error) {
		require.Equal(t, "marker", ctx.Value(ctxKey{}))
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "marker"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// A nil slice from the service still encodes as an array.
	assert.JSONEq(t, `[]`, rr.Body.String())
}
