package repository

import (
	"context"
	"time"

	"ClinicDesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	patientRow     = models.Patient
	appointmentRow = models.Appointment
	pastRow        = models.PastAppointment
)

type memPatients struct {
	t *table[patientRow]
}

func (r *memPatients) Create(_ context.Context, p *models.Patient) error {
	now := time.Now()
	p.ID = primitive.NewObjectID()
	p.CreatedAt, p.UpdatedAt = now, now
	p.LastVisit = append([]models.LastVisit{}, p.LastVisit...)
	p.Invoices = append([]primitive.ObjectID{}, p.Invoices...)
	r.t.insert(*p)
	return nil
}

func (r *memPatients) FindByID(_ context.Context, id string) (models.Patient, error) {
	return r.t.get(id)
}

func (r *memPatients) FindAll(_ context.Context) ([]models.Patient, error) {
	return r.t.filter(nil), nil
}

func (r *memPatients) FindWithInvoices(_ context.Context) ([]models.Patient, error) {
	return r.t.filter(func(p *models.Patient) bool { return len(p.Invoices) > 0 }), nil
}

func (r *memPatients) UpdateProfile(_ context.Context, id string, p models.Patient) error {
	return r.t.update(id, func(cur *models.Patient) {
		p.ID = cur.ID
		p.LastVisit = cur.LastVisit
		p.Invoices = cur.Invoices
		p.DiseaseHistory = cur.DiseaseHistory
		p.Status = cur.Status
		p.Note = cur.Note
		p.EmployeeName = cur.EmployeeName
		p.CreatedAt = cur.CreatedAt
		p.Date = cur.Date
		p.UpdatedAt = time.Now()
		*cur = p
	})
}

func (r *memPatients) UpsertFromAppointment(_ context.Context, a models.Appointment, status string) error {
	now := time.Now()
	r.t.upsert(func(p *models.Patient) bool { return p.IDNumber == a.IDNumber }, func(p *models.Patient) {
		if p.CreatedAt.IsZero() {
			p.IDNumber = a.IDNumber
			p.CreatedAt = now
			p.LastVisit = []models.LastVisit{}
			p.Invoices = []primitive.ObjectID{}
		}
		p.FName = a.FName
		p.LName = a.LName
		p.Disease = a.Service
		p.Date = a.Date
		p.Time = a.Time
		p.Tel = a.Tel
		p.Gender = a.Gender
		p.Status = status
		p.UpdatedAt = now
	})
	return nil
}

func (r *memPatients) PushInvoice(_ context.Context, id string, invoiceID primitive.ObjectID) error {
	return r.t.update(id, func(p *models.Patient) {
		for _, existing := range p.Invoices {
			if existing == invoiceID {
				return
			}
		}
		p.Invoices = append(append([]primitive.ObjectID{}, p.Invoices...), invoiceID)
	})
}

func (r *memPatients) PullInvoice(_ context.Context, invoiceID primitive.ObjectID) error {
	has := func(p *models.Patient) bool {
		for _, id := range p.Invoices {
			if id == invoiceID {
				return true
			}
		}
		return false
	}
	r.t.updateWhere(has, func(p *models.Patient) {
		kept := []primitive.ObjectID{}
		for _, id := range p.Invoices {
			if id != invoiceID {
				kept = append(kept, id)
			}
		}
		p.Invoices = kept
	})
	return nil
}

func (r *memPatients) PushLastVisit(_ context.Context, id string, v models.LastVisit) error {
	return r.t.update(id, func(p *models.Patient) {
		p.LastVisit = append(append([]models.LastVisit{}, p.LastVisit...), v)
	})
}

func (r *memPatients) SetStatus(_ context.Context, id, status string) error {
	return r.t.update(id, func(p *models.Patient) {
		p.Status = status
		p.UpdatedAt = time.Now()
	})
}

func (r *memPatients) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

type memAppointments struct {
	t *table[appointmentRow]
}

func (r *memAppointments) UpsertByIDNumber(_ context.Context, a models.Appointment) error {
	now := time.Now()
	r.t.upsert(func(cur *models.Appointment) bool { return cur.IDNumber == a.IDNumber }, func(cur *models.Appointment) {
		id, created := cur.ID, cur.CreatedAt
		*cur = a
		cur.ID = id
		if created.IsZero() {
			created = now
		}
		cur.CreatedAt = created
		cur.UpdatedAt = now
	})
	return nil
}

func (r *memAppointments) FindByID(_ context.Context, id string) (models.Appointment, error) {
	return r.t.get(id)
}

func (r *memAppointments) FindAll(_ context.Context) ([]models.Appointment, error) {
	return r.t.filter(nil), nil
}

func (r *memAppointments) FindByIDNumber(_ context.Context, idNumber string) ([]models.Appointment, error) {
	return r.t.filter(func(a *models.Appointment) bool { return a.IDNumber == idNumber }), nil
}

func (r *memAppointments) Update(_ context.Context, a models.Appointment) error {
	return r.t.update(a.ID.Hex(), func(cur *models.Appointment) {
		cur.IDNumber = a.IDNumber
		cur.FName = a.FName
		cur.LName = a.LName
		cur.Tel = a.Tel
		cur.Service = a.Service
		cur.Date = a.Date
		cur.Time = a.Time
		cur.Gender = a.Gender
		cur.UpdatedAt = time.Now()
	})
}

func (r *memAppointments) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

type memPastAppointments struct {
	t *table[pastRow]
}

func (r *memPastAppointments) UpsertBySource(_ context.Context, p models.PastAppointment) error {
	r.t.upsert(func(cur *models.PastAppointment) bool { return cur.SourceID == p.SourceID }, func(cur *models.PastAppointment) {
		id, created := cur.ID, cur.CreatedAt
		*cur = p
		cur.ID = id
		if created.IsZero() {
			created = time.Now()
		}
		cur.CreatedAt = created
	})
	return nil
}

func (r *memPastAppointments) FindAll(_ context.Context) ([]models.PastAppointment, error) {
	rows := r.t.filter(nil)
	// newest first, as the mongo store sorts
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

func (r *memPastAppointments) FindByIDNumber(_ context.Context, idNumber string) ([]models.PastAppointment, error) {
	return r.t.filter(func(p *models.PastAppointment) bool { return p.IDNumber == idNumber }), nil
}

func (r *memPastAppointments) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}
