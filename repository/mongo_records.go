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

// DateLayout is how dates typed into the back-office forms are stored.
const DateLayout = "2006-01-02"

type mongoInvoices struct {
	coll *mongo.Collection
}

func (r *mongoInvoices) Create(ctx context.Context, inv *models.Invoice) error {
	inv.ID = primitive.NewObjectID()
	inv.CreatedAt = time.Now()
	_, err := db.CreateOne(ctx, r.coll, inv)
	return err
}

func (r *mongoInvoices) FindByID(ctx context.Context, id string) (models.Invoice, error) {
	var inv models.Invoice
	oid, err := objectID(id)
	if err != nil {
		return inv, err
	}
	err = db.FindOne(ctx, r.coll, bson.M{"_id": oid}, &inv)
	return inv, translate(err)
}

func (r *mongoInvoices) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Invoice, error) {
	list := []models.Invoice{}
	if len(ids) == 0 {
		return list, nil
	}
	err := db.FindAll(ctx, r.coll, bson.M{"_id": bson.M{"$in": ids}}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}), &list)
	return list, err
}

func (r *mongoInvoices) FindAll(ctx context.Context, limit int64) ([]models.Invoice, error) {
	list := []models.Invoice{}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	err := db.FindAll(ctx, r.coll, nil, opts, &list)
	return list, err
}

func (r *mongoInvoices) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.DeleteOne(ctx, r.coll, bson.M{"_id": oid}))
}

type mongoDrugs struct {
	coll *mongo.Collection
}

func (r *mongoDrugs) UpsertByIDNumber(ctx context.Context, d models.Drug) error {
	update := bson.M{"$set": bson.M{
		"drugName":                       d.DrugName,
		"category":                       d.Category,
		"companyName":                    d.CompanyName,
		"purchaseDate":                   d.PurchaseDate,
		"expiredDate":                    d.ExpiredDate,
		"price":                          d.Price,
		"expense":                        d.Expense,
		"stock":                          d.Stock,
		"description":                    d.Description,
		"employeeName":                   d.EmployeeName,
		"thePriceOfTheQuantityPurchased": d.ThePriceOfTheQuantityPurchased,
		"expired":                        d.Expired,
		"updatedAt":                      time.Now(),
	}}
	return db.Upsert(ctx, r.coll, bson.M{"idNumber": d.IDNumber}, update)
}

func (r *mongoDrugs) FindByID(ctx context.Context, id string) (models.Drug, error) {
	var d models.Drug
	oid, err := objectID(id)
	if err != nil {
		return d, err
	}
	err = db.FindOne(ctx, r.coll, bson.M{"_id": oid}, &d)
	return d, translate(err)
}

func (r *mongoDrugs) FindAll(ctx context.Context) ([]models.Drug, error) {
	list := []models.Drug{}
	err := db.FindAll(ctx, r.coll, nil, nil, &list)
	return list, err
}

func (r *mongoDrugs) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.DeleteOne(ctx, r.coll, bson.M{"_id": oid}))
}

func (r *mongoDrugs) MarkExpired(ctx context.Context, before time.Time) (int64, error) {
	filter := bson.M{
		"expiredDate": bson.M{"$gt": "", "$lt": before.Format(DateLayout)},
		"expired":     bson.M{"$ne": true},
	}
	res, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"expired": true, "updatedAt": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

type mongoTodos struct {
	coll *mongo.Collection
}

func (r *mongoTodos) Create(ctx context.Context, t *models.Todo) error {
	t.ID = primitive.NewObjectID()
	t.CreatedAt = time.Now()
	_, err := db.CreateOne(ctx, r.coll, t)
	return err
}

func (r *mongoTodos) FindByID(ctx context.Context, id string) (models.Todo, error) {
	var t models.Todo
	oid, err := objectID(id)
	if err != nil {
		return t, err
	}
	err = db.FindOne(ctx, r.coll, bson.M{"_id": oid}, &t)
	return t, translate(err)
}

func (r *mongoTodos) FindAll(ctx context.Context) ([]models.Todo, error) {
	list := []models.Todo{}
	err := db.FindAll(ctx, r.coll, nil, nil, &list)
	return list, err
}

func (r *mongoTodos) SetDone(ctx context.Context, id string, done bool) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.UpdateOne(ctx, r.coll, bson.M{"_id": oid}, bson.M{"$set": bson.M{"done": done}}))
}

func (r *mongoTodos) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.DeleteOne(ctx, r.coll, bson.M{"_id": oid}))
}

type mongoLastVisits struct {
	coll *mongo.Collection
}

func (r *mongoLastVisits) Create(ctx context.Context, v *models.LastVisit) error {
	v.CreatedAt = time.Now()
	_, err := db.CreateOne(ctx, r.coll, v)
	return err
}

func (r *mongoLastVisits) FindByPatient(ctx context.Context, patientID string) ([]models.LastVisit, error) {
	list := []models.LastVisit{}
	err := db.FindAll(ctx, r.coll, bson.M{"patientId": patientID}, nil, &list)
	return list, err
}
