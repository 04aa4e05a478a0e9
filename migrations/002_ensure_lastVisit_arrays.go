package migrations

import (
	"context"

	"ClinicDesk/db"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureLastVisitArrays sets missing or null lastVisit and invoices arrays
// on patients to empty arrays so $push works on them.
func EnsureLastVisitArrays(ctx context.Context, database *mongo.Database) error {
	coll := database.Collection(db.PatientCollection)
	for _, field := range []string{"lastVisit", "invoices"} {
		result, err := coll.UpdateMany(
			ctx,
			bson.M{"$or": bson.A{
				bson.M{field: bson.M{"$exists": false}},
				bson.M{field: nil},
			}},
			bson.M{"$set": bson.M{field: bson.A{}}},
		)
		if err != nil {
			return err
		}
		log.Info().Str("field", field).Int64("modified", result.ModifiedCount).Msg("Patient arrays ensured")
	}
	return nil
}
