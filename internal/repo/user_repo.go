package repo

import (
	"context"
	"encoding/json"
	"errors"

	dom "github.com/selmenealex/my-finance/internal/domain"
	"github.com/selmenealex/my-finance/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepo provides user persistence. The two implementations — Postgres
// rows and a flat JSON file — must be indistinguishable to callers.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	Create(ctx context.Context, username, passwordHash string, data json.RawMessage) error
	ReplaceData(ctx context.Context, username string, data json.RawMessage) error
}

// PGUserRepo implements UserRepo with Postgres. The data blob lives in a
// jsonb column and username uniqueness is enforced by the store.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT username, password_hash, data FROM users WHERE username = $1`,
		username,
	).Scan(&u.Username, &u.PasswordHash, &u.Data)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, ErrNotFound
	}
	return u, err
}

// Create inserts a new user with the seeded data blob.
func (r *PGUserRepo) Create(ctx context.Context, username, passwordHash string, data json.RawMessage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (username, password_hash, data) VALUES ($1, $2, $3)`,
		username, passwordHash, data,
	)
	if utils.IsPGUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	return err
}

// ReplaceData overwrites the user's data blob in full. A single UPDATE, so
// each replace is atomic at the row level.
func (r *PGUserRepo) ReplaceData(ctx context.Context, username string, data json.RawMessage) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET data = $2 WHERE username = $1`,
		username, data,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
