// Package selector resolves which storage backend serves the process.
//
// Resolution happens exactly once, at startup, before any query runs; the
// resolved store is injected into the query facade rather than reached
// through a package-level handle.
package selector

import (
	"errors"
	"fmt"
	"log"

	apperrors "github.com/louisbranch/tfc.fitness/internal/platform/errors"
	"github.com/louisbranch/tfc.fitness/internal/storage"
	"github.com/louisbranch/tfc.fitness/internal/storage/kvfile"
	"github.com/louisbranch/tfc.fitness/internal/storage/sqlite"
)

// Backend identifies the resolved storage engine.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendKVFile Backend = "kvfile"
)

// Resolution is the typed outcome of backend selection.
type Resolution struct {
	Store   storage.Store
	Backend Backend
	// Warning carries the relational engine failure when the fallback
	// engaged; empty on the primary path.
	Warning string
}

// Resolve opens the relational engine, falling back to the key-value file
// when it is unusable. The relational failure is logged and recorded on the
// resolution, never propagated: only a failure of both backends is an error.
func Resolve(dbPath, fallbackPath string) (Resolution, error) {
	sqlStore, err := sqlite.Open(dbPath)
	if err == nil {
		return Resolution{Store: sqlStore, Backend: BackendSQLite}, nil
	}

	// A reachable engine with a broken schema is fatal, not a capability
	// gap: running against a partially initialized store is worse than
	// halting.
	if errors.Is(err, apperrors.New(apperrors.CodeSchemaInitFailed, "")) {
		return Resolution{}, err
	}

	warning := fmt.Sprintf("relational engine unavailable, using key-value fallback: %v", err)
	log.Printf("%s", warning)

	kvStore, kvErr := kvfile.Open(fallbackPath)
	if kvErr != nil {
		return Resolution{}, fmt.Errorf("open fallback store: %w", kvErr)
	}
	return Resolution{Store: kvStore, Backend: BackendKVFile, Warning: warning}, nil
}
