package sqlite

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/louisbranch/tfc.fitness/internal/storage"
	"github.com/louisbranch/tfc.fitness/internal/workout"
)

func createTestUser(t *testing.T, store *Store) int64 {
	t.Helper()
	id, err := store.CreateUser(context.Background(), storage.UserRecord{
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "d",
		Salt:         "s",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return id
}

func TestWorkoutRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	userID := createTestUser(t, store)

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	exercises := []workout.ExerciseEntry{
		{
			Name: "Bench Press",
			Sets: []workout.Set{
				{ID: 1, Reps: 8, Weight: 80, SetType: workout.SetTypeWarmup, Completed: true},
				{ID: 2, Reps: 5, Weight: 100, SetType: workout.SetTypeWorking, Completed: true, Notes: "solid"},
				{ID: 3, Reps: 4, Weight: 100, SetType: workout.SetTypeDrop},
			},
		},
		{Name: "Dips"},
	}

	id, err := store.CreateWorkout(ctx, workout.Workout{
		UserID:    userID,
		Name:      "Push Day",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Duration:  3600,
		Exercises: exercises,
		Notes:     "great session",
	})
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero workout id")
	}

	workouts, err := store.ListWorkoutsByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list workouts: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}

	got := workouts[0]
	if got.Name != "Push Day" || got.Duration != 3600 || got.Notes != "great session" {
		t.Fatalf("unexpected workout: %+v", got)
	}
	if !got.StartTime.Equal(start) || !got.EndTime.Equal(start.Add(time.Hour)) {
		t.Fatalf("unexpected times: %v / %v", got.StartTime, got.EndTime)
	}
	if !reflect.DeepEqual(got.Exercises, exercises) {
		t.Fatalf("exercise round trip mismatch:\n%+v\n%+v", got.Exercises, exercises)
	}
}

func TestListWorkoutsOrderedByStartTimeDesc(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	userID := createTestUser(t, store)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	names := []string{"first", "second", "third"}
	for i, name := range names {
		_, err := store.CreateWorkout(ctx, workout.Workout{
			UserID:    userID,
			Name:      name,
			StartTime: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("create workout %s: %v", name, err)
		}
	}

	workouts, err := store.ListWorkoutsByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list workouts: %v", err)
	}
	if len(workouts) != 3 {
		t.Fatalf("expected 3 workouts, got %d", len(workouts))
	}
	for i, want := range []string{"third", "second", "first"} {
		if workouts[i].Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, workouts[i].Name)
		}
	}
}

func TestListWorkoutsScopedToUser(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	userID := createTestUser(t, store)

	otherID, err := store.CreateUser(ctx, storage.UserRecord{Username: "bob", Email: "bob@x.com", PasswordHash: "d", Salt: "s"})
	if err != nil {
		t.Fatalf("create other user: %v", err)
	}

	if _, err := store.CreateWorkout(ctx, workout.Workout{UserID: userID, Name: "mine", StartTime: time.Now()}); err != nil {
		t.Fatalf("create workout: %v", err)
	}

	workouts, err := store.ListWorkoutsByUser(ctx, otherID)
	if err != nil {
		t.Fatalf("list workouts: %v", err)
	}
	if len(workouts) != 0 {
		t.Fatalf("expected no workouts for other user, got %d", len(workouts))
	}
}

func TestListWorkoutsRecoversMalformedExercises(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	userID := createTestUser(t, store)

	// Write a corrupted row directly; reads must recover, not fail.
	_, err := store.sqlDB.ExecContext(
		ctx,
		`INSERT INTO workouts (user_id, workout_name, start_time, duration, exercises, notes, created_at)
		 VALUES (?, ?, ?, 0, ?, '', ?)`,
		userID,
		"corrupted",
		formatTime(time.Now()),
		"{not json",
		time.Now().UnixMilli(),
	)
	if err != nil {
		t.Fatalf("insert corrupted row: %v", err)
	}

	workouts, err := store.ListWorkoutsByUser(ctx, userID)
	if err != nil {
		t.Fatalf("list workouts: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(workouts))
	}
	if workouts[0].Exercises == nil || len(workouts[0].Exercises) != 0 {
		t.Fatalf("expected empty exercise list, got %v", workouts[0].Exercises)
	}
}

func TestCreateWorkoutRequiresUser(t *testing.T) {
	store := openTempStore(t)
	if _, err := store.CreateWorkout(context.Background(), workout.Workout{Name: "orphan"}); err == nil {
		t.Fatal("expected error for missing user id")
	}
}
