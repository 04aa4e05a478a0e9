package migrations

import (
	"context"

	"ClinicDesk/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Indexes lists the indexes EnsureIndexes creates per collection. Index
// creation is a no-op when an identical index exists.
var Indexes = map[string][]mongo.IndexModel{
	db.AppointmentCollection: {idNumberIndex("AppointmentIDNumber")},
	db.PatientCollection:     {idNumberIndex("PatientIDNumber")},
	db.DrugCollection:        {idNumberIndex("DrugIDNumber")},
	db.ApprovedCollection:    {sourceIndex("ApprovedSource")},
	db.DeletedCollection:     {sourceIndex("DeletedSource")},
	db.AccountCollection: {{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("AccountUsername"),
	}},
}

func idNumberIndex(name string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "idNumber", Value: 1}},
		Options: options.Index().SetName(name),
	}
}

func sourceIndex(name string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "sourceId", Value: 1}},
		Options: options.Index().SetName(name),
	}
}

func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	for name, models := range Indexes {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
