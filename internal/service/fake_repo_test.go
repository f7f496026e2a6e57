package service

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/model"
	"github.com/sakif/snack-api/internal/repository"
)

// fakeStore is an in-memory stand-in for the SQLite repositories. It
// implements both interfaces so one value can back both services, the same
// way *sqlite.DB does in production.
//
// Setting failWith makes every method return that error, simulating a
// broken database. writeErr fails only snack writes, after every lookup
// has succeeded, which is how a constraint violation surfaces.
type fakeStore struct {
	principals map[int64]*model.Principal
	snacks     map[int64]*model.Snack
	nextID     int64
	failWith   error
	writeErr   error
}

var (
	_ repository.PrincipalRepository = (*fakeStore)(nil)
	_ repository.SnackRepository     = (*fakeStore)(nil)
)

func newFakeStore() *fakeStore {
	return &fakeStore{
		principals: make(map[int64]*model.Principal),
		snacks:     make(map[int64]*model.Snack),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *fakeStore) CreatePrincipal(_ context.Context, p *model.Principal) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.principals {
		if existing.Username == p.Username {
			return apperror.DuplicateKey("principal", p.Username)
		}
	}
	f.nextID++
	p.ID = f.nextID
	stored := *p
	f.principals[p.ID] = &stored
	return nil
}

func (f *fakeStore) GetPrincipalByID(_ context.Context, id int64) (*model.Principal, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.principals[id]
	if !ok {
		return nil, apperror.NotFound("principal", id)
	}
	out := *p
	return &out, nil
}

func (f *fakeStore) GetPrincipalByUsername(_ context.Context, username string) (*model.Principal, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.principals {
		if p.Username == username {
			out := *p
			return &out, nil
		}
	}
	return nil, apperror.NotFound("principal", username)
}

func (f *fakeStore) UpdateCredential(_ context.Context, id int64, credential string) error {
	if f.failWith != nil {
		return f.failWith
	}
	p, ok := f.principals[id]
	if !ok {
		return apperror.NotFound("principal", id)
	}
	p.Credential = credential
	return nil
}

func (f *fakeStore) CreateSnack(_ context.Context, s *model.Snack) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.writeErr != nil {
		return f.writeErr
	}
	f.nextID++
	s.ID = f.nextID
	stored := *s
	f.snacks[s.ID] = &stored
	return nil
}

func (f *fakeStore) GetSnack(_ context.Context, id int64) (*model.Snack, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	s, ok := f.snacks[id]
	if !ok {
		return nil, apperror.NotFound("snack", id)
	}
	out := *s
	return &out, nil
}

func (f *fakeStore) ListSnacks(_ context.Context) ([]model.Snack, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]model.Snack, 0, len(f.snacks))
	for _, s := range f.snacks {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) UpdateSnack(_ context.Context, s *model.Snack) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.writeErr != nil {
		return f.writeErr
	}
	if _, ok := f.snacks[s.ID]; !ok {
		return apperror.NotFound("snack", s.ID)
	}
	stored := *s
	f.snacks[s.ID] = &stored
	return nil
}

func (f *fakeStore) DeleteSnack(_ context.Context, id int64) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.snacks[id]; !ok {
		return apperror.NotFound("snack", id)
	}
	delete(f.snacks, id)
	return nil
}

// addPrincipal seeds a principal directly, bypassing the service.
func (f *fakeStore) addPrincipal(username string) *model.Principal {
	p := &model.Principal{Username: username}
	_ = f.CreatePrincipal(context.Background(), p)
	return p
}
