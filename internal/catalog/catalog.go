// Package catalog serves the static exercise and muscle group catalog.
//
// The data snapshot in data.go is generated from the canonical schema SQL
// (see cmd/catalog-snapshot) so environments without the relational engine
// see exactly what the seeded database would return.
package catalog

import (
	"strconv"
	"strings"
)

// MuscleGroup is one seeded muscle group.
type MuscleGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Exercise is one seeded exercise.
type Exercise struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	MuscleGroupID int64  `json:"muscle_group_id"`
	Description   string `json:"description"`
}

// Groups returns the full muscle group catalog ordered by id.
func Groups() []MuscleGroup {
	out := make([]MuscleGroup, len(staticMuscleGroups))
	copy(out, staticMuscleGroups)
	return out
}

// Exercises returns the exercise catalog, optionally filtered by muscle
// group. The filter may be a group name, a numeric group id, or empty/"All"
// for the whole catalog. An unknown group yields an empty list.
func Exercises(filter string) []Exercise {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, "All") {
		out := make([]Exercise, len(staticExercises))
		copy(out, staticExercises)
		return out
	}

	groupID, ok := resolveGroupID(filter)
	out := []Exercise{}
	if !ok {
		return out
	}
	for _, e := range staticExercises {
		if e.MuscleGroupID == groupID {
			out = append(out, e)
		}
	}
	return out
}

// GroupByName looks up a muscle group by its exact name.
func GroupByName(name string) (MuscleGroup, bool) {
	for _, g := range staticMuscleGroups {
		if g.Name == name {
			return g, true
		}
	}
	return MuscleGroup{}, false
}

func resolveGroupID(filter string) (int64, bool) {
	if id, err := strconv.ParseInt(filter, 10, 64); err == nil {
		return id, true
	}
	if g, ok := GroupByName(filter); ok {
		return g.ID, true
	}
	return 0, false
}
