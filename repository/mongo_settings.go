package repository

import (
	"context"
	"time"

	"ClinicDesk/db"
	"ClinicDesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoSettings struct {
	doctors     *mongo.Collection
	clinics     *mongo.Collection
	social      *mongo.Collection
	preferences *mongo.Collection
	photos      map[PhotoKind]*mongo.Collection
}

func newMongoSettings(database *mongo.Database) *mongoSettings {
	return &mongoSettings{
		doctors:     database.Collection(db.DoctorCollection),
		clinics:     database.Collection(db.ClinicCollection),
		social:      database.Collection(db.SocialMediaCollection),
		preferences: database.Collection(db.PreferencesCollection),
		photos: map[PhotoKind]*mongo.Collection{
			DoctorPhoto: database.Collection(db.DoctorPhotoCollection),
			ClinicPhoto: database.Collection(db.ClinicPhotoCollection),
		},
	}
}

func (r *mongoSettings) Doctor(ctx context.Context) (models.Doctor, error) {
	var d models.Doctor
	err := db.FindOne(ctx, r.doctors, bson.M{}, &d)
	return d, translate(err)
}

func (r *mongoSettings) ReplaceDoctor(ctx context.Context, d models.Doctor) error {
	d.ID = primitive.NilObjectID
	_, err := r.doctors.ReplaceOne(ctx, bson.M{}, d, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoSettings) Clinic(ctx context.Context) (models.Clinic, error) {
	var c models.Clinic
	err := db.FindOne(ctx, r.clinics, bson.M{}, &c)
	return c, translate(err)
}

func (r *mongoSettings) SaveClinic(ctx context.Context, c models.Clinic) error {
	c.ID = primitive.NilObjectID
	_, err := r.clinics.ReplaceOne(ctx, bson.M{"idNumber": c.IDNumber}, c, options.Replace().SetUpsert(true))
	if err != nil {
		return err
	}
	_, err = r.clinics.DeleteMany(ctx, bson.M{"idNumber": bson.M{"$ne": c.IDNumber}})
	return err
}

func (r *mongoSettings) SocialMedia(ctx context.Context) (models.SocialMediaSettings, error) {
	var s models.SocialMediaSettings
	err := db.FindOne(ctx, r.social, bson.M{}, &s)
	return s, translate(err)
}

func (r *mongoSettings) SetSocialMedia(ctx context.Context, s models.SocialMedia) error {
	return db.Upsert(ctx, r.social, bson.M{}, bson.M{"$set": bson.M{"socialMedia": s}})
}

func (r *mongoSettings) Preferences(ctx context.Context) (models.UserPreferences, error) {
	var p models.UserPreferences
	err := db.FindOne(ctx, r.preferences, bson.M{}, &p)
	return p, translate(err)
}

func (r *mongoSettings) SavePreferences(ctx context.Context, p models.UserPreferences) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.ID = primitive.NilObjectID
	_, err := r.preferences.ReplaceOne(ctx, bson.M{}, p, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoSettings) AddPhoto(ctx context.Context, kind PhotoKind, path string) error {
	_, err := db.CreateOne(ctx, r.photos[kind], models.Photo{Path: path, CreatedAt: time.Now()})
	return err
}

func (r *mongoSettings) LatestPhoto(ctx context.Context, kind PhotoKind) (models.Photo, error) {
	var p models.Photo
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	err := r.photos[kind].FindOne(ctx, bson.M{}, opts).Decode(&p)
	return p, translate(err)
}

type mongoAccounts struct {
	coll *mongo.Collection
}

func (r *mongoAccounts) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	var a models.Account
	err := db.FindOne(ctx, r.coll, bson.M{"username": username}, &a)
	return a, translate(err)
}

func (r *mongoAccounts) Replace(ctx context.Context, a models.Account) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now()
	_, err := db.CreateOne(ctx, r.coll, a)
	return err
}
