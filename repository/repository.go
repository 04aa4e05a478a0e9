// Package repository holds the clinic's persistence contracts and their
// MongoDB and in-memory implementations.
package repository

import (
	"context"
	"errors"
	"time"

	"ClinicDesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned for missing documents and for ids that are not
// valid object ids.
var ErrNotFound = errors.New("document not found")

type Patients interface {
	Create(ctx context.Context, p *models.Patient) error
	FindByID(ctx context.Context, id string) (models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	// FindWithInvoices lists patients that have at least one invoice.
	FindWithInvoices(ctx context.Context) ([]models.Patient, error)
	// UpdateProfile overwrites demographics and intake answers, leaving
	// visits, invoices, status and notes alone.
	UpdateProfile(ctx context.Context, id string, p models.Patient) error
	// UpsertFromAppointment creates or refreshes the patient with the
	// given idNumber from an approved appointment.
	UpsertFromAppointment(ctx context.Context, a models.Appointment, status string) error
	PushInvoice(ctx context.Context, id string, invoiceID primitive.ObjectID) error
	PullInvoice(ctx context.Context, invoiceID primitive.ObjectID) error
	PushLastVisit(ctx context.Context, id string, v models.LastVisit) error
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type Appointments interface {
	UpsertByIDNumber(ctx context.Context, a models.Appointment) error
	FindByID(ctx context.Context, id string) (models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByIDNumber(ctx context.Context, idNumber string) ([]models.Appointment, error)
	Update(ctx context.Context, a models.Appointment) error
	Delete(ctx context.Context, id string) error
}

// PastAppointments backs both the approved and the canceled lists.
type PastAppointments interface {
	// UpsertBySource writes the record keyed by its SourceID so repeating
	// the call leaves a single record.
	UpsertBySource(ctx context.Context, p models.PastAppointment) error
	FindAll(ctx context.Context) ([]models.PastAppointment, error)
	FindByIDNumber(ctx context.Context, idNumber string) ([]models.PastAppointment, error)
	Delete(ctx context.Context, id string) error
}

type Invoices interface {
	Create(ctx context.Context, inv *models.Invoice) error
	FindByID(ctx context.Context, id string) (models.Invoice, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Invoice, error)
	FindAll(ctx context.Context, limit int64) ([]models.Invoice, error)
	Delete(ctx context.Context, id string) error
}

type Drugs interface {
	UpsertByIDNumber(ctx context.Context, d models.Drug) error
	FindByID(ctx context.Context, id string) (models.Drug, error)
	FindAll(ctx context.Context) ([]models.Drug, error)
	Delete(ctx context.Context, id string) error
	// MarkExpired flags drugs whose expiredDate (YYYY-MM-DD) is before the
	// given day and returns how many changed.
	MarkExpired(ctx context.Context, before time.Time) (int64, error)
}

type Reviews interface {
	Create(ctx context.Context, r *models.Review) error
	FindByID(ctx context.Context, id string) (models.Review, error)
	FindByActive(ctx context.Context, active bool) ([]models.Review, error)
	MarkAllViewed(ctx context.Context) error
	CountUnviewed(ctx context.Context) (int64, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type Contacts interface {
	Create(ctx context.Context, c *models.Contact) error
	FindByID(ctx context.Context, id string) (models.Contact, error)
	FindByContacted(ctx context.Context, contacted bool) ([]models.Contact, error)
	MarkAllViewed(ctx context.Context) error
	CountUnviewed(ctx context.Context) (int64, error)
	SetContacted(ctx context.Context, id string, contacted bool) error
	Delete(ctx context.Context, id string) error
}

type Todos interface {
	Create(ctx context.Context, t *models.Todo) error
	FindByID(ctx context.Context, id string) (models.Todo, error)
	FindAll(ctx context.Context) ([]models.Todo, error)
	SetDone(ctx context.Context, id string, done bool) error
	Delete(ctx context.Context, id string) error
}

type LastVisits interface {
	Create(ctx context.Context, v *models.LastVisit) error
	FindByPatient(ctx context.Context, patientID string) ([]models.LastVisit, error)
}

type PhotoKind int

const (
	DoctorPhoto PhotoKind = iota
	ClinicPhoto
)

// Settings holds the single-document collections: doctor, clinic, social
// links, preferences and uploaded photos.
type Settings interface {
	Doctor(ctx context.Context) (models.Doctor, error)
	ReplaceDoctor(ctx context.Context, d models.Doctor) error
	Clinic(ctx context.Context) (models.Clinic, error)
	// SaveClinic stores c and removes every clinic with another idNumber.
	SaveClinic(ctx context.Context, c models.Clinic) error
	SocialMedia(ctx context.Context) (models.SocialMediaSettings, error)
	SetSocialMedia(ctx context.Context, s models.SocialMedia) error
	Preferences(ctx context.Context) (models.UserPreferences, error)
	SavePreferences(ctx context.Context, p models.UserPreferences) error
	AddPhoto(ctx context.Context, kind PhotoKind, path string) error
	LatestPhoto(ctx context.Context, kind PhotoKind) (models.Photo, error)
}

type Accounts interface {
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	// Replace removes every account and stores a.
	Replace(ctx context.Context, a models.Account) error
}

// Store bundles every repository the services need.
type Store struct {
	Patients     Patients
	Appointments Appointments
	Approved     PastAppointments
	Deleted      PastAppointments
	Invoices     Invoices
	Drugs        Drugs
	Reviews      Reviews
	Contacts     Contacts
	Todos        Todos
	LastVisits   LastVisits
	Settings     Settings
	Accounts     Accounts
}
