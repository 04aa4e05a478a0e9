package services

import (
	"context"
	"testing"
	"time"

	"ClinicDesk/models"
	"ClinicDesk/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDrug(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D1", DrugName: "Ibuprofen", Expense: "2.5", Stock: " 10 "})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, d.ThePriceOfTheQuantityPurchased, 1e-9)

	_, err = svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D1", DrugName: "Ibuprofen", Expense: "3", Stock: "10"})
	require.NoError(t, err)
	drugs, err := svc.ListDrugs(ctx)
	require.NoError(t, err)
	require.Len(t, drugs, 1)
	assert.InDelta(t, 30.0, drugs[0].ThePriceOfTheQuantityPurchased, 1e-9)

	_, err = svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D2", DrugName: "x", Expense: "abc", Stock: "1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D2", DrugName: "x", Expense: "1", Stock: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSweepExpiredDrugs(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.SaveDrug(ctx, models.DrugForm{IDNumber: "soon", DrugName: "a", Expense: "1", Stock: "1", ExpiredDate: "2024-05-11"})
	require.NoError(t, err)
	_, err = svc.SaveDrug(ctx, models.DrugForm{IDNumber: "later", DrugName: "b", Expense: "1", Stock: "1", ExpiredDate: "2024-06-01"})
	require.NoError(t, err)

	n, err := svc.SweepExpiredDrugs(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	svc.now = func() time.Time { return fixedNow.AddDate(0, 0, 2) }
	n, err = svc.SweepExpiredDrugs(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = svc.SweepExpiredDrugs(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSaveDrug_ExpiredFollowsDate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D1", DrugName: "a", Expense: "1", Stock: "1", ExpiredDate: "2024-05-09"})
	require.NoError(t, err)
	assert.True(t, d.Expired)

	// a re-save with the same past date keeps the flag
	_, err = svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D1", DrugName: "a", Expense: "2", Stock: "1", ExpiredDate: "2024-05-09"})
	require.NoError(t, err)
	drugs, err := svc.ListDrugs(ctx)
	require.NoError(t, err)
	require.Len(t, drugs, 1)
	assert.True(t, drugs[0].Expired)

	// restocked with a new date
	_, err = svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D1", DrugName: "a", Expense: "2", Stock: "5", ExpiredDate: "2025-01-01"})
	require.NoError(t, err)
	drugs, err = svc.ListDrugs(ctx)
	require.NoError(t, err)
	assert.False(t, drugs[0].Expired)

	d, err = svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D2", DrugName: "b", Expense: "1", Stock: "1", ExpiredDate: "2024-05-10"})
	require.NoError(t, err)
	assert.False(t, d.Expired, "a drug expiring today is still usable")
}

func TestDeleteDrug(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	_, err := svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D1", DrugName: "a", Expense: "1", Stock: "1"})
	require.NoError(t, err)
	drugs, err := svc.ListDrugs(ctx)
	require.NoError(t, err)
	require.Len(t, drugs, 1)

	require.NoError(t, svc.DeleteDrug(ctx, drugs[0].ID.Hex()))
	assert.ErrorIs(t, svc.DeleteDrug(ctx, drugs[0].ID.Hex()), repository.ErrNotFound)
	_, err = svc.GetDrug(ctx, drugs[0].ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
