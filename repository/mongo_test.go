package repository

import (
	"context"
	"testing"
	"time"

	"ClinicDesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// sentUpdate is the first statement of an update command as the driver
// sent it.
type sentUpdate struct {
	Q      bson.M `bson:"q"`
	U      bson.M `bson:"u"`
	Upsert bool   `bson:"upsert"`
	Multi  bool   `bson:"multi"`
}

func lastUpdate(mt *mtest.T) sentUpdate {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "update", evt.CommandName)
	var cmd struct {
		Updates []sentUpdate `bson:"updates"`
	}
	require.NoError(mt, bson.Unmarshal(evt.Command, &cmd))
	require.Len(mt, cmd.Updates, 1)
	return cmd.Updates[0]
}

func sentFilter(mt *mtest.T) bson.M {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "find", evt.CommandName)
	var cmd struct {
		Filter bson.M `bson:"filter"`
	}
	require.NoError(mt, bson.Unmarshal(evt.Command, &cmd))
	return cmd.Filter
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func matched(n int32) bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "n", Value: n}, bson.E{Key: "nModified", Value: n})
}

func TestMongoPatients_UpdateProfile(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	id := primitive.NewObjectID()

	mt.Run("sets only profile fields", func(mt *mtest.T) {
		repo := &mongoPatients{coll: mt.Coll}
		mt.AddMockResponses(matched(1))

		err := repo.UpdateProfile(ctx, id.Hex(), models.Patient{FName: "Ada", Email: "ada@example.com", Status: "Done"})
		require.NoError(mt, err)

		sent := lastUpdate(mt)
		assert.Equal(mt, bson.M{"_id": id}, sent.Q)
		set, ok := sent.U["$set"].(bson.M)
		require.True(mt, ok)
		assert.Equal(mt, "Ada", set["fName"])
		assert.Equal(mt, "ada@example.com", set["email"])
		assert.Contains(mt, set, "updatedAt")
		for _, kept := range profileKeys {
			assert.NotContains(mt, set, kept)
		}
	})

	mt.Run("no match is not found", func(mt *mtest.T) {
		repo := &mongoPatients{coll: mt.Coll}
		mt.AddMockResponses(matched(0))
		err := repo.UpdateProfile(ctx, id.Hex(), models.Patient{FName: "Ada"})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("bad id never reaches the server", func(mt *mtest.T) {
		repo := &mongoPatients{coll: mt.Coll}
		err := repo.UpdateProfile(ctx, "not-an-id", models.Patient{})
		assert.ErrorIs(mt, err, ErrNotFound)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestProfileSet_KeepsHistoryAndReferences(t *testing.T) {
	set, err := profileSet(models.Patient{
		ID:             primitive.NewObjectID(),
		FName:          "Ada",
		DiseaseHistory: []string{"asthma"},
		Invoices:       []primitive.ObjectID{primitive.NewObjectID()},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", set["fName"])
	assert.NotContains(t, set, "diseaseHistory")
	assert.NotContains(t, set, "invoices")
	assert.NotContains(t, set, "lastVisit")
	assert.NotContains(t, set, "_id")
}

func TestMongoPatients_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	id := primitive.NewObjectID()

	mt.Run("found", func(mt *mtest.T) {
		repo := &mongoPatients{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "idNumber", Value: "12"}, {Key: "fName", Value: "Ada"}}))

		p, err := repo.FindByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "Ada", p.FName)
		assert.Equal(mt, bson.M{"_id": id}, sentFilter(mt))
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := &mongoPatients{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		_, err := repo.FindByID(ctx, id.Hex())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoDrugs_MarkExpired(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filters dated drugs before the cutoff", func(mt *mtest.T) {
		repo := &mongoDrugs{coll: mt.Coll}
		mt.AddMockResponses(matched(2))

		n, err := repo.MarkExpired(context.Background(), time.Date(2024, 5, 10, 0, 5, 0, 0, time.UTC))
		require.NoError(mt, err)
		assert.EqualValues(mt, 2, n)

		sent := lastUpdate(mt)
		assert.True(mt, sent.Multi)
		assert.Equal(mt, bson.M{"$gt": "", "$lt": "2024-05-10"}, sent.Q["expiredDate"])
		assert.Equal(mt, bson.M{"$ne": true}, sent.Q["expired"])
		set, ok := sent.U["$set"].(bson.M)
		require.True(mt, ok)
		assert.Equal(mt, true, set["expired"])
	})
}

func TestMongoDrugs_UpsertByIDNumber(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("upserts on idNumber", func(mt *mtest.T) {
		repo := &mongoDrugs{coll: mt.Coll}
		mt.AddMockResponses(matched(1))

		require.NoError(mt, repo.UpsertByIDNumber(context.Background(), models.Drug{IDNumber: "D1", DrugName: "Ibuprofen", Expired: true}))

		sent := lastUpdate(mt)
		assert.True(mt, sent.Upsert)
		assert.Equal(mt, bson.M{"idNumber": "D1"}, sent.Q)
		set, ok := sent.U["$set"].(bson.M)
		require.True(mt, ok)
		assert.Equal(mt, "Ibuprofen", set["drugName"])
		assert.Equal(mt, true, set["expired"])
	})
}

func TestMongoReviews_Unviewed(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("count matches anything not viewed", func(mt *mtest.T) {
		repo := &mongoReviews{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))

		n, err := repo.CountUnviewed(ctx)
		require.NoError(mt, err)
		assert.EqualValues(mt, 3, n)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "aggregate", evt.CommandName)
		var cmd struct {
			Pipeline []bson.M `bson:"pipeline"`
		}
		require.NoError(mt, bson.Unmarshal(evt.Command, &cmd))
		require.NotEmpty(mt, cmd.Pipeline)
		assert.Equal(mt, bson.M{"viewed": bson.M{"$ne": true}}, cmd.Pipeline[0]["$match"])
	})

	mt.Run("mark all viewed", func(mt *mtest.T) {
		repo := &mongoReviews{coll: mt.Coll}
		mt.AddMockResponses(matched(4))

		require.NoError(mt, repo.MarkAllViewed(ctx))
		sent := lastUpdate(mt)
		assert.True(mt, sent.Multi)
		assert.Equal(mt, bson.M{"viewed": bson.M{"$ne": true}}, sent.Q)
		assert.Equal(mt, bson.M{"$set": bson.M{"viewed": true}}, sent.U)
	})
}

func TestMongoReviews_FindByActiveDecodesLegacyDocuments(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inactive", func(mt *mtest.T) {
		repo := &mongoReviews{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Maya"}, {Key: "rating", Value: int32(5)}, {Key: "viewed", Value: "false"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Dan"}, {Key: "rating", Value: int32(4)}, {Key: "viewed", Value: "true"}},
		))

		list, err := repo.FindByActive(context.Background(), false)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.False(mt, bool(list[0].Viewed))
		assert.True(mt, bool(list[1].Viewed))
		assert.Equal(mt, bson.M{"active": bson.M{"$ne": true}}, sentFilter(mt))
	})
}

func TestMongoContacts_SetContacted(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	id := primitive.NewObjectID()

	mt.Run("updates the flag", func(mt *mtest.T) {
		repo := &mongoContacts{coll: mt.Coll}
		mt.AddMockResponses(matched(1))

		require.NoError(mt, repo.SetContacted(context.Background(), id.Hex(), true))
		sent := lastUpdate(mt)
		assert.Equal(mt, bson.M{"_id": id}, sent.Q)
		assert.Equal(mt, bson.M{"$set": bson.M{"contacted": true}}, sent.U)
	})

	mt.Run("delete of a missing contact", func(mt *mtest.T) {
		repo := &mongoContacts{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))
		assert.ErrorIs(mt, repo.Delete(context.Background(), id.Hex()), ErrNotFound)
	})
}

func TestMongoPastAppointments_UpsertBySource(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	source := primitive.NewObjectID()

	mt.Run("keyed by the pending id", func(mt *mtest.T) {
		repo := &mongoPastAppointments{coll: mt.Coll}
		mt.AddMockResponses(matched(1))

		require.NoError(mt, repo.UpsertBySource(context.Background(), models.PastAppointment{SourceID: source, IDNumber: "12"}))
		sent := lastUpdate(mt)
		assert.True(mt, sent.Upsert)
		assert.Equal(mt, bson.M{"sourceId": source}, sent.Q)
		assert.Contains(mt, sent.U, "$setOnInsert")
	})
}
