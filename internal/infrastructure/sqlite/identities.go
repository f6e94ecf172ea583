package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/nemid-codegen/internal/domain"
)

// IdentityRepo reads and seeds the "user" table.
type IdentityRepo struct {
	db *sql.DB
}

func NewIdentityRepo(db *sql.DB) *IdentityRepo {
	return &IdentityRepo{db: db}
}

// Exists reports whether a row with the given nemid exists.
func (r *IdentityRepo) Exists(ctx context.Context, nemID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM user WHERE nemid = ? LIMIT 1`, nemID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query identity: %w", err)
	}
	return true, nil
}

func (r *IdentityRepo) Put(ctx context.Context, i *domain.Identity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user (id, cpr, nemid, password) VALUES (?, ?, ?, ?)`,
		i.ID, i.CPR, i.NemID, i.PasswordHash,
	)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("identity %s exists: %w", i.NemID, domain.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("insert identity: %w", err)
	}
	return nil
}
