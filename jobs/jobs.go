package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// DailySchedule runs every day at 00:05.
const DailySchedule = "5 0 * * *"

// sweepTimeout bounds one run of the expired drug sweep.
const sweepTimeout = 2 * time.Minute

type DrugSweeper interface {
	SweepExpiredDrugs(ctx context.Context) (int64, error)
}

// StartDailyScheduler starts the cron runner. The caller stops it on
// shutdown.
func StartDailyScheduler(s DrugSweeper) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(DailySchedule, func() {
		log.Info().Msg("Running daily expired drug sweep...")
		RunExpiredDrugSweep(s)
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func RunExpiredDrugSweep(s DrugSweeper) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	n, err := s.SweepExpiredDrugs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from the expired drug sweep")
		return
	}
	log.Info().Int64("expired", n).Msg("Expired drug sweep finished")
}
