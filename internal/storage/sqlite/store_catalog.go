package sqlite

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/tfc.fitness/internal/catalog"
)

// MuscleGroups returns the seeded muscle groups ordered by id.
func (s *Store) MuscleGroups(ctx context.Context) ([]catalog.MuscleGroup, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, "SELECT id, name FROM muscle_groups ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}
	defer rows.Close()

	groups := []catalog.MuscleGroup{}
	for rows.Next() {
		var g catalog.MuscleGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan muscle group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate muscle groups: %w", err)
	}
	return groups, nil
}

// Exercises returns seeded exercises, optionally filtered by muscle group
// name or numeric id. Empty or "All" returns the whole catalog. The filter
// semantics match the static catalog provider exactly.
func (s *Store) Exercises(ctx context.Context, filter string) ([]catalog.Exercise, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	query := "SELECT id, name, muscle_group_id, description FROM exercises ORDER BY id"
	var args []any

	filter = strings.TrimSpace(filter)
	if filter != "" && !strings.EqualFold(filter, "All") {
		if id, err := strconv.ParseInt(filter, 10, 64); err == nil {
			query = `SELECT id, name, muscle_group_id, description FROM exercises
				 WHERE muscle_group_id = ? ORDER BY id`
			args = append(args, id)
		} else {
			query = `SELECT e.id, e.name, e.muscle_group_id, e.description
				 FROM exercises e
				 JOIN muscle_groups m ON e.muscle_group_id = m.id
				 WHERE m.name = ?
				 ORDER BY e.id`
			args = append(args, filter)
		}
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []catalog.Exercise{}
	for rows.Next() {
		var e catalog.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroupID, &e.Description); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return exercises, nil
}
