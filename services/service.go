package services

import (
	"errors"
	"time"

	"ClinicDesk/mailer"
	"ClinicDesk/notify"
	"ClinicDesk/repository"
)

// ErrInvalidInput marks a request the client has to correct.
var ErrInvalidInput = errors.New("invalid input")

// InputError carries the message shown to the client. It matches
// ErrInvalidInput under errors.Is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(msg string) error {
	return &InputError{Message: msg}
}

type Options struct {
	UploadsDir    string
	LogoPath      string
	SessionSecret string
	SessionTTL    time.Duration
}

// Service holds the clinic's business operations over a Store.
type Service struct {
	store  *repository.Store
	broker notify.Broker
	mail   mailer.Mailer
	opts   Options
	now    func() time.Time
}

func New(store *repository.Store, broker notify.Broker, m mailer.Mailer, opts Options) *Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 24 * time.Hour
	}
	if opts.UploadsDir == "" {
		opts.UploadsDir = "uploads"
	}
	return &Service{store: store, broker: broker, mail: m, opts: opts, now: time.Now}
}

func (s *Service) Store() *repository.Store { return s.store }

func (s *Service) Broker() notify.Broker { return s.broker }
