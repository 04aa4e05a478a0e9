package jobs

import (
	"context"
	"errors"
	"testing"

	"ClinicDesk/mailer"
	"ClinicDesk/models"
	"ClinicDesk/notify"
	"ClinicDesk/repository"
	"ClinicDesk/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls int
	err   error
}

func (s *countingSweeper) SweepExpiredDrugs(context.Context) (int64, error) {
	s.calls++
	return 0, s.err
}

func TestStartDailyScheduler(t *testing.T) {
	c, err := StartDailyScheduler(&countingSweeper{})
	require.NoError(t, err)
	defer c.Stop()
	require.Len(t, c.Entries(), 1)

	next := c.Entries()[0].Next
	assert.Equal(t, 0, next.Hour())
	assert.Equal(t, 5, next.Minute())
}

func TestRunExpiredDrugSweep_LogsFailures(t *testing.T) {
	s := &countingSweeper{err: errors.New("store down")}
	RunExpiredDrugSweep(s)
	assert.Equal(t, 1, s.calls)
}

func TestRunExpiredDrugSweep_MarksExpired(t *testing.T) {
	ctx := context.Background()
	svc := services.New(repository.NewMemoryStore(), notify.NewHub(), mailer.LogMailer{}, services.Options{})
	_, err := svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D1", DrugName: "Old", ExpiredDate: "2000-01-01", Expense: "1", Stock: "1"})
	require.NoError(t, err)
	_, err = svc.SaveDrug(ctx, models.DrugForm{IDNumber: "D2", DrugName: "Fresh", ExpiredDate: "2999-01-01", Expense: "1", Stock: "1"})
	require.NoError(t, err)

	RunExpiredDrugSweep(svc)

	drugs, err := svc.ListDrugs(ctx)
	require.NoError(t, err)
	require.Len(t, drugs, 2)
	expired := map[string]bool{}
	for _, d := range drugs {
		expired[d.IDNumber] = d.Expired
	}
	assert.True(t, expired["D1"])
	assert.False(t, expired["D2"])
}
