// Package catalogsnapshot regenerates the static catalog Go source from the
// canonical schema SQL, so the file-backed store serves the same catalog the
// seeded database would.
package catalogsnapshot

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/louisbranch/tfc.fitness/internal/catalog"
)

// Config holds catalog-snapshot command configuration.
type Config struct {
	SchemaPath string
	OutPath    string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{
		SchemaPath: "internal/storage/sqlite/schema.sql",
		OutPath:    "internal/catalog/data.go",
	}
	fs.StringVar(&cfg.SchemaPath, "schema", cfg.SchemaPath, "path to the schema SQL script")
	fs.StringVar(&cfg.OutPath, "out", cfg.OutPath, "path of the generated Go file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run parses the schema seed and writes the generated source. Progress is
// reported on out.
func Run(cfg Config, out io.Writer) error {
	script, err := os.ReadFile(cfg.SchemaPath)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	seed, err := catalog.ParseSeed(string(script))
	if err != nil {
		return err
	}

	source := Render(seed, cfg.SchemaPath)
	if err := os.WriteFile(cfg.OutPath, []byte(source), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	fmt.Fprintf(out, "wrote %s: %d muscle groups, %d exercises\n",
		cfg.OutPath, len(seed.Groups), len(seed.Exercises))
	return nil
}

// Render emits the generated catalog source for a parsed seed.
func Render(seed catalog.Seed, schemaPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by catalog-snapshot from %s. DO NOT EDIT.\n\n", schemaPath)
	b.WriteString("package catalog\n\n")

	b.WriteString("var staticMuscleGroups = []MuscleGroup{\n")
	for _, g := range seed.Groups {
		fmt.Fprintf(&b, "\t{ID: %d, Name: %q},\n", g.ID, g.Name)
	}
	b.WriteString("}\n\n")

	b.WriteString("var staticExercises = []Exercise{\n")
	for _, e := range seed.Exercises {
		fmt.Fprintf(&b, "\t{ID: %d, Name: %q, MuscleGroupID: %d, Description: %q},\n",
			e.ID, e.Name, e.MuscleGroupID, e.Description)
	}
	b.WriteString("}\n")
	return b.String()
}
