package repository

import (
	"context"
	"sync"
	"time"

	"ClinicDesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	invoiceRow = models.Invoice
	drugRow    = models.Drug
	reviewRow  = models.Review
	contactRow = models.Contact
	todoRow    = models.Todo
)

type memInvoices struct {
	t *table[invoiceRow]
}

func (r *memInvoices) Create(_ context.Context, inv *models.Invoice) error {
	inv.ID = primitive.NewObjectID()
	inv.CreatedAt = time.Now()
	inv.Items = append([]models.InvoiceItem{}, inv.Items...)
	r.t.insert(*inv)
	return nil
}

func (r *memInvoices) FindByID(_ context.Context, id string) (models.Invoice, error) {
	return r.t.get(id)
}

func (r *memInvoices) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Invoice, error) {
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return r.t.filter(func(inv *models.Invoice) bool { return want[inv.ID] }), nil
}

func (r *memInvoices) FindAll(_ context.Context, limit int64) ([]models.Invoice, error) {
	rows := r.t.filter(nil)
	if limit > 0 && int64(len(rows)) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *memInvoices) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

type memDrugs struct {
	t *table[drugRow]
}

func (r *memDrugs) UpsertByIDNumber(_ context.Context, d models.Drug) error {
	r.t.upsert(func(cur *models.Drug) bool { return cur.IDNumber == d.IDNumber }, func(cur *models.Drug) {
		id := cur.ID
		*cur = d
		cur.ID = id
		cur.UpdatedAt = time.Now()
	})
	return nil
}

func (r *memDrugs) FindByID(_ context.Context, id string) (models.Drug, error) {
	return r.t.get(id)
}

func (r *memDrugs) FindAll(_ context.Context) ([]models.Drug, error) {
	return r.t.filter(nil), nil
}

func (r *memDrugs) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

func (r *memDrugs) MarkExpired(_ context.Context, before time.Time) (int64, error) {
	cutoff := before.Format(DateLayout)
	n := r.t.updateWhere(func(d *models.Drug) bool {
		return !d.Expired && d.ExpiredDate != "" && d.ExpiredDate < cutoff
	}, func(d *models.Drug) {
		d.Expired = true
		d.UpdatedAt = time.Now()
	})
	return int64(n), nil
}

type memReviews struct {
	t *table[reviewRow]
}

func (r *memReviews) Create(_ context.Context, rv *models.Review) error {
	rv.ID = primitive.NewObjectID()
	rv.CreatedAt = time.Now()
	r.t.insert(*rv)
	return nil
}

func (r *memReviews) FindByID(_ context.Context, id string) (models.Review, error) {
	return r.t.get(id)
}

func (r *memReviews) FindByActive(_ context.Context, active bool) ([]models.Review, error) {
	return r.t.filter(func(rv *models.Review) bool { return rv.Active == active }), nil
}

func (r *memReviews) MarkAllViewed(_ context.Context) error {
	r.t.updateWhere(func(rv *models.Review) bool { return !bool(rv.Viewed) }, func(rv *models.Review) { rv.Viewed = true })
	return nil
}

func (r *memReviews) CountUnviewed(_ context.Context) (int64, error) {
	return r.t.count(func(rv *models.Review) bool { return !bool(rv.Viewed) }), nil
}

func (r *memReviews) SetActive(_ context.Context, id string, active bool) error {
	return r.t.update(id, func(rv *models.Review) { rv.Active = active })
}

func (r *memReviews) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

type memContacts struct {
	t *table[contactRow]
}

func (r *memContacts) Create(_ context.Context, c *models.Contact) error {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now()
	r.t.insert(*c)
	return nil
}

func (r *memContacts) FindByID(_ context.Context, id string) (models.Contact, error) {
	return r.t.get(id)
}

func (r *memContacts) FindByContacted(_ context.Context, contacted bool) ([]models.Contact, error) {
	return r.t.filter(func(c *models.Contact) bool { return c.Contacted == contacted }), nil
}

func (r *memContacts) MarkAllViewed(_ context.Context) error {
	r.t.updateWhere(func(c *models.Contact) bool { return !bool(c.Viewed) }, func(c *models.Contact) { c.Viewed = true })
	return nil
}

func (r *memContacts) CountUnviewed(_ context.Context) (int64, error) {
	return r.t.count(func(c *models.Contact) bool { return !bool(c.Viewed) }), nil
}

func (r *memContacts) SetContacted(_ context.Context, id string, contacted bool) error {
	return r.t.update(id, func(c *models.Contact) { c.Contacted = contacted })
}

func (r *memContacts) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

type memTodos struct {
	t *table[todoRow]
}

func (r *memTodos) Create(_ context.Context, t *models.Todo) error {
	t.ID = primitive.NewObjectID()
	t.CreatedAt = time.Now()
	r.t.insert(*t)
	return nil
}

func (r *memTodos) FindByID(_ context.Context, id string) (models.Todo, error) {
	return r.t.get(id)
}

func (r *memTodos) FindAll(_ context.Context) ([]models.Todo, error) {
	return r.t.filter(nil), nil
}

func (r *memTodos) SetDone(_ context.Context, id string, done bool) error {
	return r.t.update(id, func(t *models.Todo) { t.Done = done })
}

func (r *memTodos) Delete(_ context.Context, id string) error {
	return r.t.remove(id)
}

type memLastVisits struct {
	mu     sync.Mutex
	visits []models.LastVisit
}

func (r *memLastVisits) Create(_ context.Context, v *models.LastVisit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v.CreatedAt = time.Now()
	r.visits = append(r.visits, *v)
	return nil
}

func (r *memLastVisits) FindByPatient(_ context.Context, patientID string) ([]models.LastVisit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.LastVisit{}
	for _, v := range r.visits {
		if v.PatientID == patientID {
			out = append(out, v)
		}
	}
	return out, nil
}
