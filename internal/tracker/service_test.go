package tracker

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
	"github.com/louisbranch/tfc.fitness/internal/storage"
	"github.com/louisbranch/tfc.fitness/internal/storage/kvfile"
	"github.com/louisbranch/tfc.fitness/internal/storage/sqlite"
	"github.com/louisbranch/tfc.fitness/internal/workout"
)

// Facade semantics must hold identically on both backends.
var backends = []struct {
	name string
	open func(t *testing.T) storage.Store
}{
	{
		name: "sqlite",
		open: func(t *testing.T) storage.Store {
			t.Helper()
			store, err := sqlite.Open(filepath.Join(t.TempDir(), "tracker.db"))
			if err != nil {
				t.Fatalf("open sqlite store: %v", err)
			}
			t.Cleanup(func() { store.Close() })
			return store
		},
	},
	{
		name: "kvfile",
		open: func(t *testing.T) storage.Store {
			t.Helper()
			store, err := kvfile.Open(filepath.Join(t.TempDir(), "fallback.json"))
			if err != nil {
				t.Fatalf("open kvfile store: %v", err)
			}
			t.Cleanup(func() { store.Close() })
			return store
		},
	},
}

func newTestService(t *testing.T, open func(t *testing.T) storage.Store) *Service {
	t.Helper()
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return New(open(t), func() time.Time { return clock })
}

func TestRegisterThenLogin(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			reg, err := svc.RegisterUser(ctx, "alice", "alice@x.com", "pw1")
			if err != nil {
				t.Fatalf("register: %v", err)
			}
			if reg.UserID == 0 {
				t.Fatal("expected non-zero user id")
			}

			login, err := svc.LoginUser(ctx, "alice", "pw1")
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if login.User.Username != "alice" || login.User.ID != reg.UserID {
				t.Fatalf("unexpected login user: %+v", login.User)
			}
			if login.User.LastLogin == nil {
				t.Fatal("expected last login recorded")
			}

			// Email works as identifier too.
			if _, err := svc.LoginUser(ctx, "alice@x.com", "pw1"); err != nil {
				t.Fatalf("login by email: %v", err)
			}
		})
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			if _, err := svc.RegisterUser(ctx, "alice", "alice@x.com", "pw1"); err != nil {
				t.Fatalf("register: %v", err)
			}

			_, wrongPw := svc.LoginUser(ctx, "alice", "wrong")
			_, noUser := svc.LoginUser(ctx, "ghost", "pw1")

			if !errors.Is(wrongPw, ErrInvalidCredentials) {
				t.Fatalf("expected invalid credentials for wrong password, got %v", wrongPw)
			}
			if !errors.Is(noUser, ErrInvalidCredentials) {
				t.Fatalf("expected invalid credentials for unknown user, got %v", noUser)
			}
			if wrongPw.Error() != noUser.Error() {
				t.Fatalf("expected identical failure messages, got %q vs %q", wrongPw, noUser)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			if _, err := svc.RegisterUser(ctx, "alice", "alice@x.com", "pw1"); err != nil {
				t.Fatalf("register: %v", err)
			}
			_, err := svc.RegisterUser(ctx, "alice", "different@x.com", "pw2")
			if !errors.Is(err, storage.ErrDuplicateIdentity) {
				t.Fatalf("expected duplicate identity, got %v", err)
			}
		})
	}
}

func TestExistenceChecks(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			if _, err := svc.RegisterUser(ctx, "alice", "alice@x.com", "pw1"); err != nil {
				t.Fatalf("register: %v", err)
			}

			taken, err := svc.CheckUsernameExists(ctx, "alice")
			if err != nil || !taken {
				t.Fatalf("expected username taken, got %v %v", taken, err)
			}
			free, err := svc.CheckUsernameExists(ctx, "bob")
			if err != nil || free {
				t.Fatalf("expected username free, got %v %v", free, err)
			}
			registered, err := svc.CheckEmailExists(ctx, "alice@x.com")
			if err != nil || !registered {
				t.Fatalf("expected email registered, got %v %v", registered, err)
			}
		})
	}
}

func TestGetUserByID(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			reg, err := svc.RegisterUser(ctx, "alice", "alice@x.com", "pw1")
			if err != nil {
				t.Fatalf("register: %v", err)
			}

			u, err := svc.GetUserByID(ctx, reg.UserID)
			if err != nil {
				t.Fatalf("get user: %v", err)
			}
			if u.Username != "alice" || u.Email != "alice@x.com" {
				t.Fatalf("unexpected user: %+v", u)
			}

			_, err = svc.GetUserByID(ctx, 9999)
			if !errors.Is(err, storage.ErrNotFound) {
				t.Fatalf("expected not found, got %v", err)
			}
		})
	}
}

func TestSaveWorkoutAppliesDefaults(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			reg, err := svc.RegisterUser(ctx, "alice", "alice@x.com", "pw1")
			if err != nil {
				t.Fatalf("register: %v", err)
			}

			if _, err := svc.SaveWorkout(ctx, reg.UserID, workout.Draft{}); err != nil {
				t.Fatalf("save workout: %v", err)
			}

			workouts, err := svc.GetUserWorkouts(ctx, reg.UserID)
			if err != nil {
				t.Fatalf("list workouts: %v", err)
			}
			if len(workouts) != 1 {
				t.Fatalf("expected 1 workout, got %d", len(workouts))
			}
			got := workouts[0]
			if got.Name != workout.DefaultName {
				t.Fatalf("expected default name, got %q", got.Name)
			}
			if got.Duration != 0 {
				t.Fatalf("expected zero duration, got %d", got.Duration)
			}
			if got.Exercises == nil || len(got.Exercises) != 0 {
				t.Fatalf("expected empty exercise list, got %v", got.Exercises)
			}
			if got.StartTime.IsZero() || got.EndTime.IsZero() {
				t.Fatal("expected start/end defaulted to now")
			}
		})
	}
}

func TestWorkoutExercisesRoundTripLaw(t *testing.T) {
	exercises := []workout.ExerciseEntry{
		{
			Name: "Deadlifts",
			Sets: []workout.Set{
				{ID: 1, Reps: 5, Weight: 150, SetType: workout.SetTypeWorking, Completed: true},
				{ID: 2, Reps: 5, Weight: 160, SetType: workout.SetTypeFailure, Notes: "grip gave out"},
			},
		},
	}
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			reg, err := svc.RegisterUser(ctx, "alice", "alice@x.com", "pw1")
			if err != nil {
				t.Fatalf("register: %v", err)
			}
			if _, err := svc.SaveWorkout(ctx, reg.UserID, workout.Draft{Name: "Pull Day", Exercises: exercises}); err != nil {
				t.Fatalf("save workout: %v", err)
			}

			workouts, err := svc.GetUserWorkouts(ctx, reg.UserID)
			if err != nil {
				t.Fatalf("list workouts: %v", err)
			}
			if !reflect.DeepEqual(workouts[0].Exercises, exercises) {
				t.Fatalf("round trip mismatch:\n%+v\n%+v", workouts[0].Exercises, exercises)
			}
		})
	}
}

func TestWorkoutsOrderedNewestFirst(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			reg, err := svc.RegisterUser(ctx, "alice", "alice@x.com", "pw1")
			if err != nil {
				t.Fatalf("register: %v", err)
			}

			t1 := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
			for i, name := range []string{"one", "two", "three"} {
				draft := workout.Draft{Name: name, StartTime: t1.Add(time.Duration(i) * time.Hour)}
				if _, err := svc.SaveWorkout(ctx, reg.UserID, draft); err != nil {
					t.Fatalf("save workout %s: %v", name, err)
				}
			}

			workouts, err := svc.GetUserWorkouts(ctx, reg.UserID)
			if err != nil {
				t.Fatalf("list workouts: %v", err)
			}
			for i, want := range []string{"three", "two", "one"} {
				if workouts[i].Name != want {
					t.Fatalf("position %d: expected %q, got %q", i, want, workouts[i].Name)
				}
			}
		})
	}
}

func TestCatalogReadsThroughFacade(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			groups, err := svc.MuscleGroups(ctx)
			if err != nil {
				t.Fatalf("muscle groups: %v", err)
			}
			if len(groups) != 8 {
				t.Fatalf("expected 8 groups, got %d", len(groups))
			}

			chest, err := svc.Exercises(ctx, "Chest")
			if err != nil {
				t.Fatalf("exercises: %v", err)
			}
			names := map[string]bool{}
			for _, e := range chest {
				names[e.Name] = true
			}
			if !names["Bench Press"] || !names["Dips"] {
				t.Fatalf("expected chest exercises, got %v", names)
			}
		})
	}
}

// Both backends must agree on the "Chest" exercise set for identical seeds.
func TestChestExercisesAgreeAcrossBackends(t *testing.T) {
	ctx := context.Background()
	sets := make([]map[string]bool, 0, len(backends))
	for _, backend := range backends {
		svc := newTestService(t, backend.open)
		chest, err := svc.Exercises(ctx, "Chest")
		if err != nil {
			t.Fatalf("%s exercises: %v", backend.name, err)
		}
		names := map[string]bool{}
		for _, e := range chest {
			names[e.Name] = true
		}
		sets = append(sets, names)
	}
	if !reflect.DeepEqual(sets[0], sets[1]) {
		t.Fatalf("backends disagree on chest exercises: %v vs %v", sets[0], sets[1])
	}
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	svc := newTestService(t, backends[0].open)
	ctx := context.Background()

	invalidArg := apperrors.New(apperrors.CodeInvalidArgument, "")
	if _, err := svc.RegisterUser(ctx, "", "a@x.com", "pw"); !errors.Is(err, invalidArg) {
		t.Fatalf("expected invalid argument for empty username, got %v", err)
	}
	if _, err := svc.RegisterUser(ctx, "alice", "not-an-email", "pw"); !errors.Is(err, invalidArg) {
		t.Fatalf("expected invalid argument for bad email, got %v", err)
	}
	if _, err := svc.RegisterUser(ctx, "alice", "a@x.com", ""); !errors.Is(err, invalidArg) {
		t.Fatalf("expected invalid argument for empty password, got %v", err)
	}
}

// The concrete end-to-end scenario from the product requirements.
func TestAliceScenario(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend.name, func(t *testing.T) {
			svc := newTestService(t, backend.open)
			ctx := context.Background()

			if _, err := svc.RegisterUser(ctx, "alice", "alice@x.com", "pw1"); err != nil {
				t.Fatalf("register: %v", err)
			}
			login, err := svc.LoginUser(ctx, "alice", "pw1")
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if login.User.Username != "alice" {
				t.Fatalf("expected username alice, got %q", login.User.Username)
			}
			if _, err := svc.LoginUser(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected invalid credentials, got %v", err)
			}
		})
	}
}
