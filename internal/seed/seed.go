// Package seed ensures the fixed category catalog exists in the database.
//
// Seeding is idempotent: a category whose name is already stored is left
// exactly as it is, so edits made after the first run survive re-seeding.
// The first failing entry aborts the run and later entries are not attempted.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/user/recipevault/internal/model"
)

// Process exit statuses
const (
	ExitOK      = 0
	ExitFailure = 1
)

// ErrInvalidCatalog is returned when a catalog entry fails validation
var ErrInvalidCatalog = errors.New("invalid category catalog")

// Store the persistence operation the seeder needs
type Store interface {
	// UpsertByName creates c unless its name exists; existing rows are not modified.
	UpsertByName(ctx context.Context, c *model.Category) (created bool, err error)
}

// Opener connects to storage; the returned closer releases the connection
type Opener func(ctx context.Context) (Store, io.Closer, error)

// Result outcome of a successful run
type Result struct {
	Created   int
	Unchanged int
}

var validate = validator.New()

// Validate checks every entry and rejects duplicate names
func Validate(catalog []model.Category) error {
	seen := make(map[string]int, len(catalog))
	for i := range catalog {
		if err := validate.Struct(&catalog[i]); err != nil {
			return fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidCatalog, i, catalog[i].Name, err)
		}
		if j, dup := seen[catalog[i].Name]; dup {
			return fmt.Errorf("%w: entry %d duplicates entry %d (%q)", ErrInvalidCatalog, i, j, catalog[i].Name)
		}
		seen[catalog[i].Name] = i
	}
	return nil
}

// Run upserts the catalog entries one by one, in order
func Run(ctx context.Context, store Store, catalog []model.Category, logger zerolog.Logger) (Result, error) {
	var res Result

	if err := Validate(catalog); err != nil {
		return res, err
	}

	logger.Info().Int("categories", len(catalog)).Msg("seeding categories")

	for i := range catalog {
		entry := catalog[i]
		created, err := store.UpsertByName(ctx, &entry)
		if err != nil {
			return res, fmt.Errorf("upsert category %q: %w", catalog[i].Name, err)
		}
		if created {
			res.Created++
		} else {
			res.Unchanged++
		}
	}

	logger.Info().Int("created", res.Created).Int("unchanged", res.Unchanged).Msg("categories seeded")
	return res, nil
}

// Main opens storage, seeds the catalog and releases the connection exactly
// once on every path. It returns the process exit status.
func Main(ctx context.Context, open Opener, catalog []model.Category, logger zerolog.Logger) int {
	store, closer, err := open(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("database connection failed")
		return ExitFailure
	}

	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warn().Err(err).Msg("close database")
		}
	}()

	if _, err := Run(ctx, store, catalog, logger); err != nil {
		logger.Error().Err(err).Msg("seeding failed")
		return ExitFailure
	}
	return ExitOK
}
