package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lionhard83/sample-server-tests/internal/model"
)

// MySQLAccountRepository is a MySQL-backed AccountRepository. Email
// uniqueness is enforced by a unique index on users.email, so concurrent
// inserts racing on the same email resolve to one success and one
// ErrDuplicateEmail.
type MySQLAccountRepository struct {
	db *sql.DB
}

// NewMySQLAccountRepository creates a new MySQLAccountRepository.
func NewMySQLAccountRepository(db *sql.DB) *MySQLAccountRepository {
	return &MySQLAccountRepository{db: db}
}

const userColumns = `id, name, surname, email, password_hash, verification_code, created_at, updated_at`

// Insert stores a new user, failing with ErrDuplicateEmail on a unique
// index violation.
func (r *MySQLAccountRepository) Insert(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, name, surname, email, password_hash, verification_code)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Surname, user.Email, user.PasswordHash,
		nullableString(user.VerificationCode),
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by their email address.
func (r *MySQLAccountRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

// FindByVerificationCode retrieves a user by their pending verification code.
func (r *MySQLAccountRepository) FindByVerificationCode(ctx context.Context, code string) (*model.User, error) {
	if code == "" {
		return nil, ErrUserNotFound
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE verification_code = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, code))
}

// FindByID retrieves a user by their id.
func (r *MySQLAccountRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// Save persists mutations to an existing user record.
func (r *MySQLAccountRepository) Save(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET name = ?, surname = ?, email = ?, password_hash = ?,
		verification_code = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		user.Name, user.Surname, user.Email, user.PasswordHash,
		nullableString(user.VerificationCode), user.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// The row may exist unchanged; confirm before reporting not found.
		if _, err := r.FindByID(ctx, user.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *MySQLAccountRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	var code sql.NullString
	err := row.Scan(
		&user.ID, &user.Name, &user.Surname, &user.Email, &user.PasswordHash,
		&code, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.VerificationCode = code.String
	return user, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
