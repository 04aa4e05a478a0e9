package server

import (
	"context"
	"fmt"

	"ClinicDesk/config"
	"ClinicDesk/db"
	"ClinicDesk/mailer"
	"ClinicDesk/notify"
	"ClinicDesk/repository"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

// Deps are the external collaborators chosen by configuration.
type Deps struct {
	Store *repository.Store
	// Database is nil for the in-memory store.
	Database *mongo.Database
	Broker   notify.Broker
	Mailer   mailer.Mailer

	closers []func(context.Context) error
}

/*
* Open the store named by STORE
* Relay notifications through Redis when REDIS_URL is set, else in process
* Send mail through SendGrid when a key is set, else only log it
 */
func Connect(ctx context.Context, cfg *config.Config) (*Deps, error) {
	d := &Deps{}

	switch cfg.Store {
	case config.StoreMemory:
		log.Warn().Msg("Using the in-memory store, data is lost on exit")
		d.Store = repository.NewMemoryStore()
	default:
		client, database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		d.Database = database
		d.Store = repository.NewMongoStore(database)
		d.closers = append(d.closers, client.Disconnect)
	}

	if cfg.RedisURL != "" {
		broker, err := notify.NewRedisBroker(ctx, cfg.RedisURL)
		if err != nil {
			d.Close(ctx)
			return nil, fmt.Errorf("notification relay: %w", err)
		}
		d.Broker = broker
		d.closers = append(d.closers, func(context.Context) error { return broker.Close() })
	} else {
		d.Broker = notify.NewHub()
	}

	if cfg.SendGridAPIKey != "" {
		d.Mailer = mailer.NewSendGrid(cfg.SendGridAPIKey, cfg.MailFrom)
	} else {
		log.Warn().Msg("SENDGRID_API_KEY not set, mail is only logged")
		d.Mailer = mailer.LogMailer{}
	}
	return d, nil
}

// Close releases connections in reverse order of opening.
func (d *Deps) Close(ctx context.Context) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](ctx); err != nil {
			log.Error().Err(err).Msg("Error closing dependency")
		}
	}
	d.closers = nil
}
