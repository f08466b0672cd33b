// Package seed loads start-up reference data from YAML files.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"rental/internal/core/application/usecases/commands"

	"gopkg.in/yaml.v3"
)

// File is the layout of the seed file.
//
//	categories:
//	  - name: "Camping Tents"
//	    description: "Camping and outdoor tents"
type File struct {
	Categories []CategoryEntry `yaml:"categories"`
}

type CategoryEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type categorySeeder interface {
	Handle(ctx context.Context, cmd commands.SeedCategoriesCommand) error
}

// Decode reads a seed file. Unknown keys are rejected.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return File{}, fmt.Errorf("decode seed file: %w", err)
	}
	return f, nil
}

// Categories upserts the categories listed in the file at path.
// An empty category list is not an error.
func Categories(ctx context.Context, path string, seeder categorySeeder, logger *slog.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer file.Close()

	f, err := Decode(file)
	if err != nil {
		return err
	}
	if len(f.Categories) == 0 {
		logger.InfoContext(ctx, "Seed file lists no categories", "path", path)
		return nil
	}

	seeds := make([]commands.CategorySeed, 0, len(f.Categories))
	for _, c := range f.Categories {
		seeds = append(seeds, commands.CategorySeed{Name: c.Name, Description: c.Description})
	}

	cmd, err := commands.NewSeedCategoriesCommand(seeds)
	if err != nil {
		return fmt.Errorf("seed file %s: %w", path, err)
	}
	if err = seeder.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	logger.InfoContext(ctx, "Categories seeded", "count", len(seeds), "path", path)
	return nil
}
