package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. They match the pluralised names the clinic data has
// always lived under so existing databases keep working.
const (
	PatientCollection     = "patients"
	AppointmentCollection = "appointments"
	ApprovedCollection    = "approveds"
	DeletedCollection     = "deleteds"
	InvoiceCollection     = "invoices"
	DrugCollection        = "drugs"
	ReviewCollection      = "reviews"
	ContactCollection     = "contacts"
	TodoCollection        = "todos"
	LastVisitCollection   = "lastvisits"
	DoctorCollection      = "doctors"
	ClinicCollection      = "clinics"
	SocialMediaCollection = "settingsocialmedias"
	PreferencesCollection = "userpreferences"
	DoctorPhotoCollection = "doctorphotos"
	ClinicPhotoCollection = "clinicphotos"
	AccountCollection     = "authentications"
)

var ErrInvalidID = errors.New("invalid id")

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Info().Str("database", name).Msg("Connected to MongoDB")
	return client, client.Database(name), nil
}

func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, result interface{}) error {
	return coll.FindOne(ctx, filter).Decode(result)
}

// FindAll decodes every match into results, which must be a pointer to a
// slice.
func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, opts *options.FindOptions, results interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, results)
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateOne applies update and reports mongo.ErrNoDocuments when nothing
// matched.
func UpdateOne(ctx context.Context, coll *mongo.Collection, filter, update interface{}, opts ...*options.UpdateOptions) error {
	res, err := coll.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func Upsert(ctx context.Context, coll *mongo.Collection, filter, update interface{}) error {
	return UpdateOne(ctx, coll, filter, update, options.Update().SetUpsert(true))
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) error {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func Count(ctx context.Context, coll *mongo.Collection, filter interface{}) (int64, error) {
	return coll.CountDocuments(ctx, filter)
}
