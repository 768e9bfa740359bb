package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
	"github.com/louisbranch/tfc.fitness/internal/storage"
)

const userColumns = "id, username, email, password_hash, salt, created_at, last_login"

// CreateUser inserts a user row, translating UNIQUE violations into the
// duplicate identity error with the colliding field in metadata.
func (s *Store) CreateUser(ctx context.Context, record storage.UserRecord) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if record.Username == "" || record.Email == "" {
		return 0, fmt.Errorf("username and email are required")
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO users (username, email, password_hash, salt, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		record.Username,
		record.Email,
		record.PasswordHash,
		record.Salt,
		toMillis(createdAt),
	)
	if err != nil {
		if field, ok := uniqueViolationField(err); ok {
			return 0, apperrors.WithMetadata(
				apperrors.CodeDuplicateIdentity,
				field+" already exists",
				map[string]string{"field": field},
			)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("user insert id: %w", err)
	}
	return id, nil
}

// GetUserByID loads a user row by primary key.
func (s *Store) GetUserByID(ctx context.Context, id int64) (storage.UserRecord, error) {
	if s == nil || s.sqlDB == nil {
		return storage.UserRecord{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?",
		id,
	)
	return scanUser(row)
}

// GetUserByIdentifier matches the identifier against username or email.
func (s *Store) GetUserByIdentifier(ctx context.Context, identifier string) (storage.UserRecord, error) {
	if s == nil || s.sqlDB == nil {
		return storage.UserRecord{}, fmt.Errorf("storage is not configured")
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return storage.UserRecord{}, storage.ErrNotFound
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT "+userColumns+" FROM users WHERE username = ?1 OR email = ?1",
		identifier,
	)
	return scanUser(row)
}

// UsernameExists reports whether a username is taken.
func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.userFieldExists(ctx, "username", username)
}

// EmailExists reports whether an email is registered.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.userFieldExists(ctx, "email", email)
}

// TouchLastLogin records a successful login time.
func (s *Store) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if at.IsZero() {
		at = time.Now().UTC()
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		"UPDATE users SET last_login = ? WHERE id = ?",
		toMillis(at),
		id,
	)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("last login rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *Store) userFieldExists(ctx context.Context, column, value string) (bool, error) {
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	var count int
	err := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT COUNT(*) FROM users WHERE "+column+" = ?",
		value,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count users by %s: %w", column, err)
	}
	return count > 0, nil
}

func scanUser(row *sql.Row) (storage.UserRecord, error) {
	var record storage.UserRecord
	var createdAt int64
	var lastLogin sql.NullInt64
	if err := row.Scan(
		&record.ID,
		&record.Username,
		&record.Email,
		&record.PasswordHash,
		&record.Salt,
		&createdAt,
		&lastLogin,
	); err != nil {
		if err == sql.ErrNoRows {
			return storage.UserRecord{}, storage.ErrNotFound
		}
		return storage.UserRecord{}, fmt.Errorf("scan user: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	if lastLogin.Valid {
		value := fromMillis(lastLogin.Int64)
		record.LastLogin = &value
	}
	return record, nil
}

// uniqueViolationField extracts the colliding column from a SQLite UNIQUE
// constraint error. This is the only place engine error text is inspected.
func uniqueViolationField(err error) (string, bool) {
	text := err.Error()
	if !strings.Contains(text, "UNIQUE constraint failed") {
		return "", false
	}
	if strings.Contains(text, "users.username") {
		return "username", true
	}
	if strings.Contains(text, "users.email") {
		return "email", true
	}
	return "identity", true
}
