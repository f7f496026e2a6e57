package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sakif/snack-api/internal/apperror"
	"github.com/sakif/snack-api/internal/model"
	"github.com/sakif/snack-api/internal/repository"
)

// COMPILE-TIME INTERFACE CHECK:
// If *DB ever stops satisfying repository.SnackRepository, the build breaks
// here instead of at the call site in server.go.
var _ repository.SnackRepository = (*DB)(nil)

var snackColumns = []string{"id", "title", "body", "author_id"}

// CreateSnack inserts a snack and sets snack.ID to the id SQLite assigned.
//
// QUERY BUILDING:
// squirrel assembles the statement and its ? placeholders; values travel as
// arguments, never as concatenated SQL. The default placeholder format is "?",
// which is what SQLite expects.
//
// CONSTRAINTS AS A BACKSTOP:
// The service already checks the author exists and the title is not blank.
// If either check is bypassed, the FOREIGN KEY / CHECK constraints reject the
// row and we report the same validation error the service would have.
func (db *DB) CreateSnack(ctx context.Context, snack *model.Snack) error {
	query, args, err := sq.Insert("snacks").
		Columns("title", "body", "author_id").
		Values(snack.Title, snack.Body, snack.AuthorID).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: building snack insert: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if vErr := snackConstraintError(err, snack); vErr != nil {
			return vErr
		}
		return fmt.Errorf("sqlite: creating snack: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading snack id: %w", err)
	}
	snack.ID = id

	return nil
}

// GetSnack retrieves a single snack by its ID.
// sql.ErrNoRows becomes apperror.NotFound so the handler can answer 404.
func (db *DB) GetSnack(ctx context.Context, id int64) (*model.Snack, error) {
	query, args, err := sq.Select(snackColumns...).
		From("snacks").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: building snack select: %w", err)
	}

	var snack model.Snack
	err = db.conn.QueryRowContext(ctx, query, args...).Scan(
		&snack.ID,
		&snack.Title,
		&snack.Body,
		&snack.AuthorID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("snack", id)
		}
		return nil, fmt.Errorf("sqlite: getting snack %d: %w", id, err)
	}

	return &snack, nil
}

// ListSnacks returns every snack ordered by id ascending.
//
// The result is never nil: an empty table yields an empty slice, which the
// handler encodes as [] rather than null.
func (db *DB) ListSnacks(ctx context.Context) ([]model.Snack, error) {
	query, args, err := sq.Select(snackColumns...).
		From("snacks").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: building snack list: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing snacks: %w", err)
	}
	// rows holds the only pooled connection until closed.
	defer rows.Close()

	snacks := make([]model.Snack, 0)
	for rows.Next() {
		var s model.Snack
		if err := rows.Scan(&s.ID, &s.Title, &s.Body, &s.AuthorID); err != nil {
			return nil, fmt.Errorf("sqlite: scanning snack row: %w", err)
		}
		snacks = append(snacks, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating snacks: %w", err)
	}

	return snacks, nil
}

// UpdateSnack replaces title, body and author of an existing snack.
// RowsAffected == 0 means the id matched nothing → NotFound.
func (db *DB) UpdateSnack(ctx context.Context, snack *model.Snack) error {
	query, args, err := sq.Update("snacks").
		Set("title", snack.Title).
		Set("body", snack.Body).
		Set("author_id", snack.AuthorID).
		Where(sq.Eq{"id": snack.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: building snack update: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if vErr := snackConstraintError(err, snack); vErr != nil {
			return vErr
		}
		return fmt.Errorf("sqlite: updating snack %d: %w", snack.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("snack", snack.ID)
	}

	return nil
}

// DeleteSnack removes a snack by its ID. Same RowsAffected check as UpdateSnack.
func (db *DB) DeleteSnack(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("snacks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("sqlite: building snack delete: %w", err)
	}

	result, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("sqlite: deleting snack %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("snack", id)
	}

	return nil
}

func snackConstraintError(err error, snack *model.Snack) error {
	switch constraintCode(err) {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return apperror.ValidationFailed("author",
			fmt.Sprintf("author %d does not exist", snack.AuthorID))
	case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return apperror.ValidationFailed("title", "title must not be empty")
	default:
		return nil
	}
}
