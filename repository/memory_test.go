package repository

import (
	"context"
	"testing"
	"time"

	"ClinicDesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryPatients_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	p := models.Patient{IDNumber: "123", FName: "Ada", Email: "ada@example.com"}
	p.Symptoms.Swelling = true
	require.NoError(t, st.Patients.Create(ctx, &p))
	require.False(t, p.ID.IsZero())

	got, err := st.Patients.FindByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FName)
	assert.True(t, bool(got.Symptoms.Swelling))
	assert.NotNil(t, got.LastVisit)
	assert.NotNil(t, got.Invoices)

	_, err = st.Patients.FindByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Patients.FindByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPatients_UpdateProfileKeepsVisitsAndInvoices(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	p := models.Patient{IDNumber: "1", FName: "Old", Status: "Pending", Note: "keep", DiseaseHistory: []string{"asthma"}}
	require.NoError(t, st.Patients.Create(ctx, &p))
	invID := primitive.NewObjectID()
	require.NoError(t, st.Patients.PushInvoice(ctx, p.ID.Hex(), invID))
	require.NoError(t, st.Patients.PushLastVisit(ctx, p.ID.Hex(), models.LastVisit{Reason: "check"}))

	require.NoError(t, st.Patients.UpdateProfile(ctx, p.ID.Hex(), models.Patient{IDNumber: "1", FName: "New"}))

	got, err := st.Patients.FindByID(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "New", got.FName)
	assert.Equal(t, "Pending", got.Status)
	assert.Equal(t, "keep", got.Note)
	assert.Equal(t, []primitive.ObjectID{invID}, got.Invoices)
	assert.Len(t, got.LastVisit, 1)
	assert.Equal(t, []string{"asthma"}, got.DiseaseHistory)
}

func TestMemoryPatients_InvoiceReferences(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	p := models.Patient{IDNumber: "1"}
	require.NoError(t, st.Patients.Create(ctx, &p))
	invID := primitive.NewObjectID()

	require.NoError(t, st.Patients.PushInvoice(ctx, p.ID.Hex(), invID))
	require.NoError(t, st.Patients.PushInvoice(ctx, p.ID.Hex(), invID))
	with, _ := st.Patients.FindWithInvoices(ctx)
	require.Len(t, with, 1)
	assert.Len(t, with[0].Invoices, 1)

	require.NoError(t, st.Patients.PullInvoice(ctx, invID))
	with, _ = st.Patients.FindWithInvoices(ctx)
	assert.Empty(t, with)
}

func TestMemoryPastAppointments_UpsertBySourceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	src := primitive.NewObjectID()

	require.NoError(t, st.Approved.UpsertBySource(ctx, models.PastAppointment{SourceID: src, FName: "A"}))
	require.NoError(t, st.Approved.UpsertBySource(ctx, models.PastAppointment{SourceID: src, FName: "B"}))

	all, err := st.Approved.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "B", all[0].FName)
}

func TestMemoryDrugs_MarkExpired(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Drugs.UpsertByIDNumber(ctx, models.Drug{IDNumber: "old", ExpiredDate: "2020-01-01"}))
	require.NoError(t, st.Drugs.UpsertByIDNumber(ctx, models.Drug{IDNumber: "new", ExpiredDate: "2999-01-01"}))
	require.NoError(t, st.Drugs.UpsertByIDNumber(ctx, models.Drug{IDNumber: "none"}))

	n, err := st.Drugs.MarkExpired(ctx, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = st.Drugs.MarkExpired(ctx, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryReviews_ViewedCounter(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	require.NoError(t, st.Reviews.Create(ctx, &models.Review{Name: "a"}))
	require.NoError(t, st.Reviews.Create(ctx, &models.Review{Name: "b"}))
	n, _ := st.Reviews.CountUnviewed(ctx)
	assert.Equal(t, int64(2), n)

	require.NoError(t, st.Reviews.MarkAllViewed(ctx))
	n, _ = st.Reviews.CountUnviewed(ctx)
	assert.Zero(t, n)
}

func TestMemorySettings_SingleDocuments(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	_, err := st.Settings.Doctor(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Settings.ReplaceDoctor(ctx, models.Doctor{FName: "A"}))
	require.NoError(t, st.Settings.ReplaceDoctor(ctx, models.Doctor{FName: "B"}))
	d, err := st.Settings.Doctor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", d.FName)

	require.NoError(t, st.Settings.SaveClinic(ctx, models.Clinic{IDNumber: "1", Name: "One"}))
	require.NoError(t, st.Settings.SaveClinic(ctx, models.Clinic{IDNumber: "2", Name: "Two"}))
	c, err := st.Settings.Clinic(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Two", c.Name)

	require.NoError(t, st.Settings.AddPhoto(ctx, DoctorPhoto, "uploads/1-a.png"))
	require.NoError(t, st.Settings.AddPhoto(ctx, DoctorPhoto, "uploads/2-b.png"))
	ph, err := st.Settings.LatestPhoto(ctx, DoctorPhoto)
	require.NoError(t, err)
	assert.Equal(t, "uploads/2-b.png", ph.Path)
	_, err = st.Settings.LatestPhoto(ctx, ClinicPhoto)
	assert.ErrorIs(t, err, ErrNotFound)
}
