// Package tracker is the query facade for the workout tracker.
//
// It is the only component that issues data operations; callers construct it
// with a resolved storage backend and never touch the engine directly.
package tracker

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/louisbranch/tfc.fitness/internal/auth"
	"github.com/louisbranch/tfc.fitness/internal/catalog"
	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
	"github.com/louisbranch/tfc.fitness/internal/storage"
	"github.com/louisbranch/tfc.fitness/internal/user"
	"github.com/louisbranch/tfc.fitness/internal/workout"
)

// ErrInvalidCredentials is returned for every login failure. The message
// never reveals whether the identifier or the password was wrong.
var ErrInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "invalid username/email or password")

// Service exposes the typed persistence operations.
type Service struct {
	store storage.Store
	now   func() time.Time
}

// New builds a facade over the injected store. A nil now defaults to
// time.Now; tests inject a fixed clock.
func New(store storage.Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// RegisterResult reports a successful registration.
type RegisterResult struct {
	UserID int64
}

// LoginResult reports a successful login.
type LoginResult struct {
	User user.User
}

// SaveResult reports a saved workout.
type SaveResult struct {
	WorkoutID int64
}

// RegisterUser validates and stores a new account. The password is salted
// and digested before it reaches the store; plaintext is never persisted.
func (s *Service) RegisterUser(ctx context.Context, username, email, password string) (RegisterResult, error) {
	reg, err := user.NormalizeRegistration(user.Registration{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return RegisterResult{}, err
	}

	salt, err := auth.NewSalt()
	if err != nil {
		return RegisterResult{}, s.operationFailure("register user", err)
	}

	id, err := s.store.CreateUser(ctx, storage.UserRecord{
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: auth.HashPassword(reg.Password, salt),
		Salt:         salt,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return RegisterResult{}, s.operationFailure("register user", err)
	}
	return RegisterResult{UserID: id}, nil
}

// LoginUser authenticates by username or email. Every failure path yields
// ErrInvalidCredentials so callers cannot probe which part was wrong.
func (s *Service) LoginUser(ctx context.Context, identifier, password string) (LoginResult, error) {
	record, err := s.store.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, s.operationFailure("login user", err)
	}

	if !auth.VerifyPassword(password, record.Salt, record.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	loginAt := s.now().UTC()
	if err := s.store.TouchLastLogin(ctx, record.ID, loginAt); err != nil {
		return LoginResult{}, s.operationFailure("record login time", err)
	}
	record.LastLogin = &loginAt
	return LoginResult{User: toUser(record)}, nil
}

// GetUserByID returns the public view of a user.
func (s *Service) GetUserByID(ctx context.Context, id int64) (user.User, error) {
	record, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return user.User{}, err
		}
		return user.User{}, s.operationFailure("get user", err)
	}
	return toUser(record), nil
}

// CheckUsernameExists reports whether a username is taken.
func (s *Service) CheckUsernameExists(ctx context.Context, username string) (bool, error) {
	exists, err := s.store.UsernameExists(ctx, username)
	if err != nil {
		return false, s.operationFailure("check username", err)
	}
	return exists, nil
}

// CheckEmailExists reports whether an email is registered.
func (s *Service) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.store.EmailExists(ctx, email)
	if err != nil {
		return false, s.operationFailure("check email", err)
	}
	return exists, nil
}

// SaveWorkout stores a workout for the user, applying draft defaults.
func (s *Service) SaveWorkout(ctx context.Context, userID int64, draft workout.Draft) (SaveResult, error) {
	if userID == 0 {
		return SaveResult{}, apperrors.New(apperrors.CodeInvalidArgument, "user id is required")
	}
	normalized := workout.NormalizeDraft(draft, s.now)

	id, err := s.store.CreateWorkout(ctx, workout.Workout{
		UserID:    userID,
		Name:      normalized.Name,
		StartTime: normalized.StartTime,
		EndTime:   normalized.EndTime,
		Duration:  normalized.Duration,
		Exercises: normalized.Exercises,
		Notes:     normalized.Notes,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return SaveResult{}, s.operationFailure("save workout", err)
	}
	return SaveResult{WorkoutID: id}, nil
}

// GetUserWorkouts lists the user's workouts, newest start time first.
func (s *Service) GetUserWorkouts(ctx context.Context, userID int64) ([]workout.Workout, error) {
	workouts, err := s.store.ListWorkoutsByUser(ctx, userID)
	if err != nil {
		return nil, s.operationFailure("list workouts", err)
	}
	return workouts, nil
}

// MuscleGroups returns the full muscle group catalog.
func (s *Service) MuscleGroups(ctx context.Context) ([]catalog.MuscleGroup, error) {
	groups, err := s.store.MuscleGroups(ctx)
	if err != nil {
		return nil, s.operationFailure("list muscle groups", err)
	}
	return groups, nil
}

// Exercises returns the exercise catalog, optionally filtered by muscle group.
func (s *Service) Exercises(ctx context.Context, filter string) ([]catalog.Exercise, error) {
	exercises, err := s.store.Exercises(ctx, filter)
	if err != nil {
		return nil, s.operationFailure("list exercises", err)
	}
	return exercises, nil
}

// operationFailure passes typed domain errors through and wraps everything
// else as a logged generic failure. Engine errors are never retried.
func (s *Service) operationFailure(op string, err error) error {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	log.Printf("%s: %v", op, err)
	return apperrors.Wrap(apperrors.CodeUnknown, op+" failed", err)
}

func toUser(record storage.UserRecord) user.User {
	return user.User{
		ID:        record.ID,
		Username:  record.Username,
		Email:     record.Email,
		CreatedAt: record.CreatedAt,
		LastLogin: record.LastLogin,
	}
}
