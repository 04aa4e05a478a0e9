package migrations

import (
	"context"

	"ClinicDesk/db"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NormalizeViewedFlags turns "true"/"false" strings in the viewed field of
// reviews and contacts into booleans.
func NormalizeViewedFlags(ctx context.Context, database *mongo.Database) error {
	for _, name := range []string{db.ReviewCollection, db.ContactCollection} {
		coll := database.Collection(name)
		for text, value := range map[string]bool{"true": true, "false": false} {
			result, err := coll.UpdateMany(
				ctx,
				bson.M{"viewed": text},
				bson.M{"$set": bson.M{"viewed": value}},
			)
			if err != nil {
				return err
			}
			log.Info().Str("collection", name).Int64("modified", result.ModifiedCount).Msgf("Normalized viewed=%q", text)
		}
	}
	return nil
}
