// Package workout provides the workout session domain model.
package workout

import (
	"encoding/json"
	"strings"
	"time"
)

// DefaultName is used when a draft carries no workout name.
const DefaultName = "Workout"

// SetType classifies a recorded set.
type SetType string

const (
	SetTypeWorking SetType = "working"
	SetTypeWarmup  SetType = "warmup"
	SetTypeFailure SetType = "failure"
	SetTypeDrop    SetType = "drop"
)

// Valid reports whether the set type is one of the known values.
func (t SetType) Valid() bool {
	switch t {
	case SetTypeWorking, SetTypeWarmup, SetTypeFailure, SetTypeDrop:
		return true
	}
	return false
}

// Set is a single recorded set. Sets live embedded inside a workout's
// exercise list and have no independent lifecycle.
type Set struct {
	ID        int     `json:"id"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	SetType   SetType `json:"set_type"`
	Completed bool    `json:"completed"`
	Notes     string  `json:"notes,omitempty"`
}

// ExerciseEntry is one exercise performed during a workout.
type ExerciseEntry struct {
	Name string `json:"name"`
	Sets []Set  `json:"sets,omitempty"`
}

// Workout is a completed training session owned by one user.
type Workout struct {
	ID        int64
	UserID    int64
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Duration  int // seconds
	Exercises []ExerciseEntry
	Notes     string
	CreatedAt time.Time
}

// Draft carries caller-supplied workout data before defaults are applied.
type Draft struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Duration  int
	Exercises []ExerciseEntry
	Notes     string
}

// NormalizeDraft fills in defaults for omitted fields: the name falls back
// to DefaultName, start and end times to now, duration to zero, and the
// exercise list to empty.
func NormalizeDraft(draft Draft, now func() time.Time) Draft {
	if now == nil {
		now = time.Now
	}
	if strings.TrimSpace(draft.Name) == "" {
		draft.Name = DefaultName
	}
	current := now().UTC()
	if draft.StartTime.IsZero() {
		draft.StartTime = current
	}
	if draft.EndTime.IsZero() {
		draft.EndTime = current
	}
	if draft.Duration < 0 {
		draft.Duration = 0
	}
	if draft.Exercises == nil {
		draft.Exercises = []ExerciseEntry{}
	}
	return draft
}

// EncodeExercises serializes an exercise list for storage.
func EncodeExercises(entries []ExerciseEntry) (string, error) {
	if entries == nil {
		entries = []ExerciseEntry{}
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeExercises restores a stored exercise list. A missing or malformed
// value decodes to an empty list with the decode error returned so callers
// can log it; the returned slice is always usable.
func DecodeExercises(raw string) ([]ExerciseEntry, error) {
	if strings.TrimSpace(raw) == "" {
		return []ExerciseEntry{}, nil
	}
	var entries []ExerciseEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []ExerciseEntry{}, err
	}
	if entries == nil {
		entries = []ExerciseEntry{}
	}
	return entries, nil
}
