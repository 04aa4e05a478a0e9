package services

import (
	"context"
	"testing"

	"ClinicDesk/models"
	"ClinicDesk/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddPatient_PersistsFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	in := models.AddPatientForm{
		IDNumber: "204", FName: "Noa", LName: "Bar", Disease: "Back pain", Tel: "052",
		DateOfBirth: "1990-01-01", Age: "34", Gender: "F", Email: "noa@example.com",
		Adress: "Haifa", Note: "first visit", Status: "Active", EmployeeName: "Ron",
	}.Patient()
	p, err := svc.AddPatient(ctx, in)
	require.NoError(t, err)

	got, err := svc.GetPatient(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Noa", got.FName)
	assert.Equal(t, "Bar", got.LName)
	assert.Equal(t, "Back pain", got.Disease)
	assert.Equal(t, "1990-01-01", got.DateOfBirth)
	assert.Equal(t, "first visit", got.Note)
	assert.Equal(t, "Ron", got.EmployeeName)

	_, err = svc.AddPatient(ctx, models.Patient{FName: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPatientProfile(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.AddPatient(ctx, models.Patient{IDNumber: "305", FName: "Dana"})
	require.NoError(t, err)
	bookOne(t, svc)
	_, err = svc.CreateInvoice(ctx, p.ID.Hex(), models.InvoiceForm{Items: []models.InvoiceItem{{ItemName: "a", UnitCost: 1, Quantity: 1}}})
	require.NoError(t, err)
	second, err := svc.CreateInvoice(ctx, p.ID.Hex(), models.InvoiceForm{Items: []models.InvoiceItem{{ItemName: "b", UnitCost: 2, Quantity: 1}}})
	require.NoError(t, err)

	profile, err := svc.PatientProfile(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, profile.Invoices, 2)
	require.NotNil(t, profile.LastInvoice)
	assert.Equal(t, second.ID, profile.LastInvoice.ID)
	assert.Len(t, profile.Appointments, 1)
	assert.Len(t, profile.FoundAppointments, 1)
	assert.Equal(t, HoursList, profile.HoursList)

	_, err = svc.PatientProfile(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddLastVisit(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	p, err := svc.AddPatient(ctx, models.Patient{IDNumber: "1"})
	require.NoError(t, err)

	_, err = svc.AddLastVisit(ctx, p.ID.Hex(), models.LastVisit{Reason: "follow up", Date: "2024-05-01"})
	require.NoError(t, err)

	got, err := svc.GetPatient(ctx, p.ID.Hex())
	require.NoError(t, err)
	require.Len(t, got.LastVisit, 1)
	assert.Equal(t, "follow up", got.LastVisit[0].Reason)
	assert.Equal(t, p.ID.Hex(), got.LastVisit[0].PatientID)

	visits, err := svc.Store().LastVisits.FindByPatient(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, visits, 1)

	_, err = svc.AddLastVisit(ctx, primitive.NewObjectID().Hex(), models.LastVisit{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdatePatientStatusAndDelete(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	p, err := svc.AddPatient(ctx, models.Patient{IDNumber: "1"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePatientStatus(ctx, p.ID.Hex(), "Done"))
	got, err := svc.GetPatient(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Done", got.Status)

	require.NoError(t, svc.DeletePatient(ctx, p.ID.Hex()))
	assert.ErrorIs(t, svc.DeletePatient(ctx, p.ID.Hex()), repository.ErrNotFound)
}
