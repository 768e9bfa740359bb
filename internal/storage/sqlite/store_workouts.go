package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/louisbranch/tfc.fitness/internal/workout"
)

// CreateWorkout inserts a workout row with its exercise list serialized.
func (s *Store) CreateWorkout(ctx context.Context, w workout.Workout) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
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

	var endTime sql.NullString
	if !w.EndTime.IsZero() {
		endTime = sql.NullString{String: formatTime(w.EndTime), Valid: true}
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO workouts (user_id, workout_name, start_time, end_time, duration, exercises, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.UserID,
		w.Name,
		formatTime(w.StartTime),
		endTime,
		w.Duration,
		exercisesJSON,
		w.Notes,
		toMillis(createdAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert workout: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("workout insert id: %w", err)
	}
	return id, nil
}

// ListWorkoutsByUser returns the user's workouts, newest start time first.
// A malformed stored exercise list is logged and read back as empty rather
// than failing the whole listing.
func (s *Store) ListWorkoutsByUser(ctx context.Context, userID int64) ([]workout.Workout, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, user_id, workout_name, start_time, end_time, duration, exercises, notes, created_at
		 FROM workouts
		 WHERE user_id = ?
		 ORDER BY start_time DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	workouts := []workout.Workout{}
	for rows.Next() {
		var w workout.Workout
		var startTime string
		var endTime sql.NullString
		var exercisesJSON string
		var createdAt int64
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Name,
			&startTime,
			&endTime,
			&w.Duration,
			&exercisesJSON,
			&w.Notes,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}

		w.StartTime, err = parseTime(startTime)
		if err != nil {
			return nil, fmt.Errorf("parse workout %d start time: %w", w.ID, err)
		}
		if endTime.Valid {
			w.EndTime, err = parseTime(endTime.String)
			if err != nil {
				return nil, fmt.Errorf("parse workout %d end time: %w", w.ID, err)
			}
		}
		w.CreatedAt = fromMillis(createdAt)

		entries, err := workout.DecodeExercises(exercisesJSON)
		if err != nil {
			log.Printf("workout %d: malformed exercises, substituting empty list: %v", w.ID, err)
		}
		w.Exercises = entries

		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return workouts, nil
}
