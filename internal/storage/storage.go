// Package storage defines the backend-neutral persistence contracts.
//
// Exactly one backend serves a process: the SQLite store on platforms with a
// usable relational engine, or the key-value file fallback elsewhere. The
// query facade depends only on these interfaces.
package storage

import (
	"context"
	"time"

	"github.com/louisbranch/tfc.fitness/internal/catalog"
	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
	"github.com/louisbranch/tfc.fitness/internal/workout"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ErrDuplicateIdentity indicates a username or email collision.
var ErrDuplicateIdentity = apperrors.New(apperrors.CodeDuplicateIdentity, "username or email already exists")

// UserRecord is a stored user row, including credential material.
type UserRecord struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// UserStore persists user identity records.
type UserStore interface {
	// CreateUser inserts a new user and returns its id. A username or
	// email collision yields ErrDuplicateIdentity with a "field" metadata
	// entry naming the colliding column.
	CreateUser(ctx context.Context, record UserRecord) (int64, error)
	GetUserByID(ctx context.Context, id int64) (UserRecord, error)
	// GetUserByIdentifier matches the identifier against username or email.
	GetUserByIdentifier(ctx context.Context, identifier string) (UserRecord, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

// WorkoutStore persists workout sessions.
type WorkoutStore interface {
	CreateWorkout(ctx context.Context, w workout.Workout) (int64, error)
	// ListWorkoutsByUser returns the user's workouts ordered by start time
	// descending, id descending as tie-break.
	ListWorkoutsByUser(ctx context.Context, userID int64) ([]workout.Workout, error)
}

// CatalogStore serves the seeded exercise and muscle group catalog.
type CatalogStore interface {
	MuscleGroups(ctx context.Context) ([]catalog.MuscleGroup, error)
	// Exercises filters by muscle group name or numeric id; empty or "All"
	// returns the whole catalog.
	Exercises(ctx context.Context, filter string) ([]catalog.Exercise, error)
}

// Store is the full persistence surface consumed by the query facade.
type Store interface {
	UserStore
	WorkoutStore
	CatalogStore
	Close() error
}
