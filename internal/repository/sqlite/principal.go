package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/model"
	"github.com/sakif/snack-api/internal/repository"
)

// compile-time check that *DB implements repository.PrincipalRepository
var _ repository.PrincipalRepository = (*DB)(nil)

var principalColumns = []string{"id", "username", "credential", "created_at", "updated_at"}

// CreatePrincipal inserts a new principal and fills in its ID and timestamps.
// The UNIQUE constraint on username turns a second registration of the same
// name into apperror.ErrDuplicateKey.
func (db *DB) CreatePrincipal(ctx context.Context, p *model.Principal) error {
	now := time.Now().UTC()

	query, args, err := sq.Insert("principals").
		Columns("username", "credential", "created_at", "updated_at").
		Values(p.Username, p.Credential, now, now).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: building principal insert: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if constraintCode(err) == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return apperror.DuplicateKey("principal", p.Username)
		}
		return fmt.Errorf("sqlite: inserting principal %q: %w", p.Username, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading principal id: %w", err)
	}

	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

// GetPrincipalByID retrieves a principal by id.
// Returns apperror.ErrNotFound if no principal exists with that ID.
func (db *DB) GetPrincipalByID(ctx context.Context, id int64) (*model.Principal, error) {
	p, err := db.getPrincipal(ctx, sq.Eq{"id": id})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("principal", id)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting principal %d: %w", id, err)
	}
	return p, nil
}

// GetPrincipalByUsername is the login lookup.
func (db *DB) GetPrincipalByUsername(ctx context.Context, username string) (*model.Principal, error) {
	p, err := db.getPrincipal(ctx, sq.Eq{"username": username})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("principal", username)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: getting principal %q: %w", username, err)
	}
	return p, nil
}

func (db *DB) getPrincipal(ctx context.Context, where sq.Eq) (*model.Principal, error) {
	query, args, err := sq.Select(principalColumns...).From("principals").Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var p model.Principal
	err = db.conn.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Username,
		&p.Credential,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateCredential replaces the stored credential hash. It is the only
// mutation a principal supports.
func (db *DB) UpdateCredential(ctx context.Context, id int64, credential string) error {
	query, args, err := sq.Update("principals").
		Set("credential", credential).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: building credential update: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("sqlite: updating credential for principal %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("principal", id)
	}
	return nil
}
