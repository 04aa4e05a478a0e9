package repository

import (
	"context"
	"time"

	"ClinicDesk/db"
	"ClinicDesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoPatients struct {
	coll *mongo.Collection
}

// profileKeys are kept from the stored document on a profile update.
var profileKeys = []string{"_id", "lastVisit", "invoices", "diseaseHistory", "status", "note", "employeeName", "createdAt", "date"}

func (r *mongoPatients) Create(ctx context.Context, p *models.Patient) error {
	now := time.Now()
	p.ID = primitive.NewObjectID()
	p.CreatedAt, p.UpdatedAt = now, now
	if p.LastVisit == nil {
		p.LastVisit = []models.LastVisit{}
	}
	if p.Invoices == nil {
		p.Invoices = []primitive.ObjectID{}
	}
	_, err := db.CreateOne(ctx, r.coll, p)
	return err
}

func (r *mongoPatients) FindByID(ctx context.Context, id string) (models.Patient, error) {
	var p models.Patient
	oid, err := objectID(id)
	if err != nil {
		return p, err
	}
	err = db.FindOne(ctx, r.coll, bson.M{"_id": oid}, &p)
	return p, translate(err)
}

func (r *mongoPatients) FindAll(ctx context.Context) ([]models.Patient, error) {
	patients := []models.Patient{}
	err := db.FindAll(ctx, r.coll, nil, nil, &patients)
	return patients, err
}

func (r *mongoPatients) FindWithInvoices(ctx context.Context) ([]models.Patient, error) {
	patients := []models.Patient{}
	err := db.FindAll(ctx, r.coll, bson.M{"invoices.0": bson.M{"$exists": true}}, nil, &patients)
	return patients, err
}

func (r *mongoPatients) UpdateProfile(ctx context.Context, id string, p models.Patient) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	set, err := profileSet(p)
	if err != nil {
		return err
	}
	set["updatedAt"] = time.Now()
	return translate(db.UpdateOne(ctx, r.coll, bson.M{"_id": oid}, bson.M{"$set": set}))
}

// profileSet is the $set document of a profile update: every field of p
// except the ones only other operations may change.
func profileSet(p models.Patient) (bson.M, error) {
	raw, err := bson.Marshal(p)
	if err != nil {
		return nil, err
	}
	set := bson.M{}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, err
	}
	for _, k := range profileKeys {
		delete(set, k)
	}
	return set, nil
}

func (r *mongoPatients) UpsertFromAppointment(ctx context.Context, a models.Appointment, status string) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"fName":     a.FName,
			"lName":     a.LName,
			"disease":   a.Service,
			"date":      a.Date,
			"time":      a.Time,
			"tel":       a.Tel,
			"gender":    a.Gender,
			"status":    status,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"lastVisit": []models.LastVisit{},
			"invoices":  []primitive.ObjectID{},
			"createdAt": now,
		},
	}
	return db.Upsert(ctx, r.coll, bson.M{"idNumber": a.IDNumber}, update)
}

func (r *mongoPatients) PushInvoice(ctx context.Context, id string, invoiceID primitive.ObjectID) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	update := bson.M{"$addToSet": bson.M{"invoices": invoiceID}}
	return translate(db.UpdateOne(ctx, r.coll, bson.M{"_id": oid}, update))
}

func (r *mongoPatients) PullInvoice(ctx context.Context, invoiceID primitive.ObjectID) error {
	_, err := r.coll.UpdateMany(ctx, bson.M{"invoices": invoiceID}, bson.M{"$pull": bson.M{"invoices": invoiceID}})
	return err
}

func (r *mongoPatients) PushLastVisit(ctx context.Context, id string, v models.LastVisit) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	update := bson.M{"$push": bson.M{"lastVisit": v}}
	return translate(db.UpdateOne(ctx, r.coll, bson.M{"_id": oid}, update))
}

func (r *mongoPatients) SetStatus(ctx context.Context, id, status string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	return translate(db.UpdateOne(ctx, r.coll, bson.M{"_id": oid}, update))
}

func (r *mongoPatients) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.DeleteOne(ctx, r.coll, bson.M{"_id": oid}))
}
