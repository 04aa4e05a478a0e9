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

var (
	unviewed   = bson.M{"viewed": bson.M{"$ne": true}}
	newestLast = options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
)

type mongoReviews struct {
	coll *mongo.Collection
}

func (r *mongoReviews) Create(ctx context.Context, rv *models.Review) error {
	rv.ID = primitive.NewObjectID()
	rv.CreatedAt = time.Now()
	_, err := db.CreateOne(ctx, r.coll, rv)
	return err
}

func (r *mongoReviews) FindByID(ctx context.Context, id string) (models.Review, error) {
	var rv models.Review
	oid, err := objectID(id)
	if err != nil {
		return rv, err
	}
	err = db.FindOne(ctx, r.coll, bson.M{"_id": oid}, &rv)
	return rv, translate(err)
}

func (r *mongoReviews) FindByActive(ctx context.Context, active bool) ([]models.Review, error) {
	filter := bson.M{"active": active}
	if !active {
		filter = bson.M{"active": bson.M{"$ne": true}}
	}
	list := []models.Review{}
	err := db.FindAll(ctx, r.coll, filter, newestLast, &list)
	return list, err
}

func (r *mongoReviews) MarkAllViewed(ctx context.Context) error {
	_, err := r.coll.UpdateMany(ctx, unviewed, bson.M{"$set": bson.M{"viewed": true}})
	return err
}

func (r *mongoReviews) CountUnviewed(ctx context.Context) (int64, error) {
	return db.Count(ctx, r.coll, unviewed)
}

func (r *mongoReviews) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.UpdateOne(ctx, r.coll, bson.M{"_id": oid}, bson.M{"$set": bson.M{"active": active}}))
}

func (r *mongoReviews) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.DeleteOne(ctx, r.coll, bson.M{"_id": oid}))
}

type mongoContacts struct {
	coll *mongo.Collection
}

func (r *mongoContacts) Create(ctx context.Context, c *models.Contact) error {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now()
	_, err := db.CreateOne(ctx, r.coll, c)
	return err
}

func (r *mongoContacts) FindByID(ctx context.Context, id string) (models.Contact, error) {
	var c models.Contact
	oid, err := objectID(id)
	if err != nil {
		return c, err
	}
	err = db.FindOne(ctx, r.coll, bson.M{"_id": oid}, &c)
	return c, translate(err)
}

func (r *mongoContacts) FindByContacted(ctx context.Context, contacted bool) ([]models.Contact, error) {
	filter := bson.M{"contacted": contacted}
	if !contacted {
		filter = bson.M{"contacted": bson.M{"$ne": true}}
	}
	list := []models.Contact{}
	err := db.FindAll(ctx, r.coll, filter, newestLast, &list)
	return list, err
}

func (r *mongoContacts) MarkAllViewed(ctx context.Context) error {
	_, err := r.coll.UpdateMany(ctx, unviewed, bson.M{"$set": bson.M{"viewed": true}})
	return err
}

func (r *mongoContacts) CountUnviewed(ctx context.Context) (int64, error) {
	return db.Count(ctx, r.coll, unviewed)
}

func (r *mongoContacts) SetContacted(ctx context.Context, id string, contacted bool) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.UpdateOne(ctx, r.coll, bson.M{"_id": oid}, bson.M{"$set": bson.M{"contacted": contacted}}))
}

func (r *mongoContacts) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return translate(db.DeleteOne(ctx, r.coll, bson.M{"_id": oid}))
}
