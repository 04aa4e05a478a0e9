package repository

import (
	"context"
	"time"

	"ClinicDesk/db"
	"ClinicDesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAppointments struct {
	coll *mongo.Collection
}

func (r *mongoAppointments) UpsertByIDNumber(ctx context.Context, a models.Appointment) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"fName":       a.FName,
			"lName":       a.LName,
			"dateOfBirth": a.DateOfBirth,
			"gender":      a.Gender,
			"service":     a.Service,
			"date":        a.Date,
			"time":        a.Time,
			"email":       a.Email,
			"tel":         a.Tel,
			"paragraph":   a.Paragraph,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	return db.Upsert(ctx, r.coll, bson.M{"idNumber": a.IDNumber}, update)
}

func (r *mongoAppointments) FindByID(ctx context.Context, id string) (models.Appointment, error) {
	var a models.Appointment
	oid, err := objectID(id)
	if err != nil {
		return a, err
	}
	err = db.FindOne(ctx, r.coll, bson.M{"_id": oid}, &a)
	return a, translate(err)
}

func (r *mongoAppointments) FindAll(ctx context.Context) ([]models.Appointment, error) {
	list := []models.Appointment{}
	err := db.FindAll(ctx, r.coll, nil, options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}), &list)
	return list, err
}

func (r *mongoAppointments) FindByIDNumber(ctx context.Context, idNumber string) ([]models.Appointment, error) {
	list := []models.Appointment{}
	err := db.FindAll(ctx, r.coll, bson.M{"idNumber": idNumber}, nil, &list)
	return list, err
}

func (r *mongoAppointments) Update(ctx context.Context, a models.Appointment) error {
	update := bson.M{"$set": bson.M{
		"idNumber":  a.IDNumber,
		"fName":     a.FName,
		"lName":     a.LName,
		"tel":       a.Tel,
		"service":   a.Service,
		"date":      a.Date,
		"time":      a.Time,
		"gender":    a.Gender,
		"updatedAt": time.Now(),
	}}
	return translate(db.UpdateOne(ctx, r.coll, bson.M{"_id": a.ID}, update))
}

func (r *mongoAppointments) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.DeleteOne(ctx, r.coll, bson.M{"_id": oid}))
}

type mongoPastAppointments struct {
	coll *mongo.Collection
}

func (r *mongoPastAppointments) UpsertBySource(ctx context.Context, p models.PastAppointment) error {
	update := bson.M{
		"$set": bson.M{
			"idNumber": p.IDNumber,
			"fName":    p.FName,
			"lName":    p.LName,
			"service":  p.Service,
			"date":     p.Date,
			"time":     p.Time,
			"tel":      p.Tel,
			"gender":   p.Gender,
		},
		"$setOnInsert": bson.M{"createdAt": time.Now()},
	}
	return db.Upsert(ctx, r.coll, bson.M{"sourceId": p.SourceID}, update)
}

func (r *mongoPastAppointments) FindAll(ctx context.Context) ([]models.PastAppointment, error) {
	list := []models.PastAppointment{}
	err := db.FindAll(ctx, r.coll, nil, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}), &list)
	return list, err
}

func (r *mongoPastAppointments) FindByIDNumber(ctx context.Context, idNumber string) ([]models.PastAppointment, error) {
	list := []models.PastAppointment{}
	err := db.FindAll(ctx, r.coll, bson.M{"idNumber": idNumber}, nil, &list)
	return list, err
}

func (r *mongoPastAppointments) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.DeleteOne(ctx, r.coll, bson.M{"_id": oid}))
}
