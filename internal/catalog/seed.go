package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/tfc.fitness/internal/platform/storage/sqliteschema"
)

// Seed is the catalog content parsed from the canonical schema SQL.
type Seed struct {
	Groups    []MuscleGroup
	Exercises []Exercise
}

// ParseSeed extracts the muscle group and exercise seed rows from a schema
// script. Row ids follow SQLite's assignment for INTEGER PRIMARY KEY inserts
// that omit the id column: sequential in insert order, starting at 1.
func ParseSeed(script string) (Seed, error) {
	var seed Seed
	for _, stmt := range sqliteschema.SplitStatements(script) {
		lower := strings.ToLower(stmt)
		if !strings.HasPrefix(lower, "insert into") {
			continue
		}
		switch {
		case strings.Contains(lower, "muscle_groups"):
			rows, err := parseValueTuples(stmt)
			if err != nil {
				return Seed{}, fmt.Errorf("parse muscle group seed: %w", err)
			}
			for _, row := range rows {
				if len(row) != 1 {
					return Seed{}, fmt.Errorf("muscle group row has %d values, want 1", len(row))
				}
				seed.Groups = append(seed.Groups, MuscleGroup{
					ID:   int64(len(seed.Groups) + 1),
					Name: row[0],
				})
			}
		case strings.Contains(lower, "exercises"):
			rows, err := parseValueTuples(stmt)
			if err != nil {
				return Seed{}, fmt.Errorf("parse exercise seed: %w", err)
			}
			for _, row := range rows {
				if len(row) != 3 {
					return Seed{}, fmt.Errorf("exercise row has %d values, want 3", len(row))
				}
				groupID, err := strconv.ParseInt(row[1], 10, 64)
				if err != nil {
					return Seed{}, fmt.Errorf("exercise %q: bad muscle group id %q", row[0], row[1])
				}
				seed.Exercises = append(seed.Exercises, Exercise{
					ID:            int64(len(seed.Exercises) + 1),
					Name:          row[0],
					MuscleGroupID: groupID,
					Description:   row[2],
				})
			}
		}
	}
	if len(seed.Groups) == 0 {
		return Seed{}, fmt.Errorf("schema script has no muscle group seed")
	}
	if len(seed.Exercises) == 0 {
		return Seed{}, fmt.Errorf("schema script has no exercise seed")
	}
	return seed, nil
}

// parseValueTuples returns the literal values of each (...) tuple after the
// VALUES keyword. String literals are unquoted with '' collapsed to ';
// numeric literals are returned as their text.
func parseValueTuples(stmt string) ([][]string, error) {
	idx := strings.Index(strings.ToUpper(stmt), "VALUES")
	if idx < 0 {
		return nil, fmt.Errorf("statement has no VALUES clause")
	}
	rest := stmt[idx+len("VALUES"):]

	var tuples [][]string
	var current []string
	var field strings.Builder
	inTuple := false
	inString := false

	flushField := func(quoted bool) {
		value := field.String()
		if !quoted {
			value = strings.TrimSpace(value)
			if value == "" {
				return
			}
		}
		current = append(current, value)
		field.Reset()
	}

	runes := []rune(rest)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case inString:
			if ch == '\'' {
				if i+1 < len(runes) && runes[i+1] == '\'' {
					field.WriteRune('\'')
					i++
					continue
				}
				inString = false
				flushField(true)
				continue
			}
			field.WriteRune(ch)
		case ch == '\'':
			if !inTuple {
				return nil, fmt.Errorf("string literal outside tuple")
			}
			inString = true
			field.Reset()
		case ch == '(':
			if inTuple {
				return nil, fmt.Errorf("nested tuple")
			}
			inTuple = true
			current = nil
		case ch == ')':
			if !inTuple {
				return nil, fmt.Errorf("unbalanced tuple close")
			}
			flushField(false)
			tuples = append(tuples, current)
			inTuple = false
		case ch == ',':
			if inTuple {
				flushField(false)
			}
		default:
			if inTuple {
				field.WriteRune(ch)
			}
		}
	}
	if inString || inTuple {
		return nil, fmt.Errorf("unterminated tuple in VALUES clause")
	}
	if len(tuples) == 0 {
		return nil, fmt.Errorf("VALUES clause has no tuples")
	}
	return tuples, nil
}
