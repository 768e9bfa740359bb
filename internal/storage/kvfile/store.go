// Package kvfile implements the persistence contracts over a key-value file.
//
// It is the fallback for runtimes without a usable relational engine. The
// whole dataset lives under two keys, serialized user and workout arrays, in
// one JSON file. There is no cross-key transaction: a crash between mutation
// and persist can lose the mutation, an accepted limitation of this path.
package kvfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/tfc.fitness/internal/catalog"
	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
	"github.com/louisbranch/tfc.fitness/internal/storage"
	"github.com/louisbranch/tfc.fitness/internal/workout"
)

// Store implements storage.Store over a single JSON file.
type Store struct {
	mu   sync.Mutex
	path string
	data fileData
}

// fileData is the on-disk layout: two serialized arrays, keyed like the
// original pair of key-value entries.
type fileData struct {
	Users    []userEntry    `json:"users"`
	Workouts []workoutEntry `json:"workouts"`
}

type userEntry struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Salt         string `json:"salt"`
	CreatedAt    int64  `json:"created_at"`
	LastLogin    *int64 `json:"last_login,omitempty"`
}

type workoutEntry struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"workout_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`
	Duration  int    `json:"duration"`
	Exercises string `json:"exercises"`
	Notes     string `json:"notes"`
	CreatedAt int64  `json:"created_at"`
}

const timeFormat = "2006-01-02T15:04:05.000Z"

// Open loads the store file, creating an empty one when absent.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	store := &Store{path: filepath.Clean(path)}

	raw, err := os.ReadFile(store.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &store.data); err != nil {
			return nil, fmt.Errorf("decode store file: %w", err)
		}
	case os.IsNotExist(err):
		if err := store.persistLocked(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("read store file: %w", err)
	}
	return store, nil
}

// Close is a no-op; every mutation persists eagerly.
func (s *Store) Close() error {
	return nil
}

// CreateUser appends a user after checking uniqueness in code; the fallback
// has no engine-level constraints.
func (s *Store) CreateUser(ctx context.Context, record storage.UserRecord) (int64, error) {
	if record.Username == "" || record.Email == "" {
		return 0, fmt.Errorf("username and email are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.data.Users {
		if u.Username == record.Username {
			return 0, duplicateIdentity("username")
		}
		if u.Email == record.Email {
			return 0, duplicateIdentity("email")
		}
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	entry := userEntry{
		ID:           s.nextUserID(),
		Username:     record.Username,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		Salt:         record.Salt,
		CreatedAt:    createdAt.UnixMilli(),
	}
	s.data.Users = append(s.data.Users, entry)
	if err := s.persistLocked(); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// GetUserByID loads a user by id.
func (s *Store) GetUserByID(ctx context.Context, id int64) (storage.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.Users {
		if u.ID == id {
			return userToRecord(u), nil
		}
	}
	return storage.UserRecord{}, storage.ErrNotFound
}

// GetUserByIdentifier matches the identifier against username or email.
func (s *Store) GetUserByIdentifier(ctx context.Context, identifier string) (storage.UserRecord, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return storage.UserRecord{}, storage.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.Users {
		if u.Username == identifier || u.Email == identifier {
			return userToRecord(u), nil
		}
	}
	return storage.UserRecord{}, storage.ErrNotFound
}

// UsernameExists reports whether a username is taken.
func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.Users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// EmailExists reports whether an email is registered.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.Users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// TouchLastLogin records a successful login time.
func (s *Store) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	if at.IsZero() {
		at = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Users {
		if s.data.Users[i].ID == id {
			millis := at.UTC().UnixMilli()
			s.data.Users[i].LastLogin = &millis
			return s.persistLocked()
		}
	}
	return storage.ErrNotFound
}

// CreateWorkout appends a workout with its exercise list serialized.
func (s *Store) CreateWorkout(ctx context.Context, w workout.Workout) (int64, error) {
	if w.UserID == 0 {
		return 0, fmt.Errorf("workout user id is required")
	}
	exercisesJSON, err := workout.EncodeExercises(w.Exercises)
	if err != nil {
		return 0, fmt.Errorf("encode exercises: %w", err)
	}
	createdAt := w.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry := workoutEntry{
		ID:        s.nextWorkoutID(),
		UserID:    w.UserID,
		Name:      w.Name,
		StartTime: w.StartTime.UTC().Format(timeFormat),
		Duration:  w.Duration,
		Exercises: exercisesJSON,
		Notes:     w.Notes,
		CreatedAt: createdAt.UnixMilli(),
	}
	if !w.EndTime.IsZero() {
		entry.EndTime = w.EndTime.UTC().Format(timeFormat)
	}
	s.data.Workouts = append(s.data.Workouts, entry)
	if err := s.persistLocked(); err != nil {
		return 0, err
	}
	return entry.ID, nil
}

// ListWorkoutsByUser returns the user's workouts, newest start time first.
func (s *Store) ListWorkoutsByUser(ctx context.Context, userID int64) ([]workout.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workouts := []workout.Workout{}
	for _, entry := range s.data.Workouts {
		if entry.UserID != userID {
			continue
		}
		w, err := workoutFromEntry(entry)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	sort.SliceStable(workouts, func(i, j int) bool {
		if workouts[i].StartTime.Equal(workouts[j].StartTime) {
			return workouts[i].ID > workouts[j].ID
		}
		return workouts[i].StartTime.After(workouts[j].StartTime)
	})
	return workouts, nil
}

// MuscleGroups serves the static catalog; the fallback has no seeded tables.
func (s *Store) MuscleGroups(ctx context.Context) ([]catalog.MuscleGroup, error) {
	return catalog.Groups(), nil
}

// Exercises serves the static catalog with the shared filter semantics.
func (s *Store) Exercises(ctx context.Context, filter string) ([]catalog.Exercise, error) {
	return catalog.Exercises(filter), nil
}

func (s *Store) nextUserID() int64 {
	var max int64
	for _, u := range s.data.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func (s *Store) nextWorkoutID() int64 {
	var max int64
	for _, w := range s.data.Workouts {
		if w.ID > max {
			max = w.ID
		}
	}
	return max + 1
}

// persistLocked rewrites the store file atomically. Callers hold s.mu.
func (s *Store) persistLocked() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

func duplicateIdentity(field string) error {
	return apperrors.WithMetadata(
		apperrors.CodeDuplicateIdentity,
		field+" already exists",
		map[string]string{"field": field},
	)
}

func userToRecord(u userEntry) storage.UserRecord {
	record := storage.UserRecord{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Salt:         u.Salt,
		CreatedAt:    time.UnixMilli(u.CreatedAt).UTC(),
	}
	if u.LastLogin != nil {
		value := time.UnixMilli(*u.LastLogin).UTC()
		record.LastLogin = &value
	}
	return record
}

func workoutFromEntry(entry workoutEntry) (workout.Workout, error) {
	w := workout.Workout{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Name:      entry.Name,
		Duration:  entry.Duration,
		Notes:     entry.Notes,
		CreatedAt: time.UnixMilli(entry.CreatedAt).UTC(),
	}
	start, err := time.Parse(timeFormat, entry.StartTime)
	if err != nil {
		return workout.Workout{}, fmt.Errorf("parse workout %d start time: %w", entry.ID, err)
	}
	w.StartTime = start
	if entry.EndTime != "" {
		end, err := time.Parse(timeFormat, entry.EndTime)
		if err != nil {
			return workout.Workout{}, fmt.Errorf("parse workout %d end time: %w", entry.ID, err)
		}
		w.EndTime = end
	}

	entries, err := workout.DecodeExercises(entry.Exercises)
	if err != nil {
		log.Printf("workout %d: malformed exercises, substituting empty list: %v", entry.ID, err)
	}
	w.Exercises = entries
	return w, nil
}

var _ storage.Store = (*Store)(nil)
