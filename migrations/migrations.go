// Package migrations holds the idempotent data fixes run by the migrate
// command. Each one can be applied any number of times.
package migrations

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type Migration struct {
	Name  string
	Apply func(ctx context.Context, database *mongo.Database) error
}

// All is the ordered list of migrations.
var All = []Migration{
	{Name: "normalize_viewed_flags", Apply: NormalizeViewedFlags},
	{Name: "ensure_last_visit_arrays", Apply: EnsureLastVisitArrays},
	{Name: "ensure_indexes", Apply: EnsureIndexes},
}

func Run(ctx context.Context, database *mongo.Database) error {
	for _, m := range All {
		if err := m.Apply(ctx, database); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name, err)
		}
		log.Info().Str("migration", m.Name).Msg("Migration applied")
	}
	return nil
}
