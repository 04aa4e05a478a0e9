package repository

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemoryStore returns a Store kept entirely in process memory. It backs
// STORE=memory and the tests.
func NewMemoryStore() *Store {
	return &Store{
		Patients:     &memPatients{t: newTable(func(p *patientRow) *primitive.ObjectID { return &p.ID })},
		Appointments: &memAppointments{t: newTable(func(a *appointmentRow) *primitive.ObjectID { return &a.ID })},
		Approved:     &memPastAppointments{t: newTable(func(a *pastRow) *primitive.ObjectID { return &a.ID })},
		Deleted:      &memPastAppointments{t: newTable(func(a *pastRow) *primitive.ObjectID { return &a.ID })},
		Invoices:     &memInvoices{t: newTable(func(i *invoiceRow) *primitive.ObjectID { return &i.ID })},
		Drugs:        &memDrugs{t: newTable(func(d *drugRow) *primitive.ObjectID { return &d.ID })},
		Reviews:      &memReviews{t: newTable(func(r *reviewRow) *primitive.ObjectID { return &r.ID })},
		Contacts:     &memContacts{t: newTable(func(c *contactRow) *primitive.ObjectID { return &c.ID })},
		Todos:        &memTodos{t: newTable(func(t *todoRow) *primitive.ObjectID { return &t.ID })},
		LastVisits:   &memLastVisits{},
		Settings:     newMemSettings(),
		Accounts:     &memAccounts{},
	}
}

// table is an insertion-ordered set of rows addressed by object id.
type table[T any] struct {
	mu   sync.RWMutex
	rows []T
	id   func(*T) *primitive.ObjectID
}

func newTable[T any](id func(*T) *primitive.ObjectID) *table[T] {
	return &table[T]{id: id}
}

func (t *table[T]) insert(v T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id := t.id(&v); id.IsZero() {
		*id = primitive.NewObjectID()
	}
	t.rows = append(t.rows, v)
	return v
}

func (t *table[T]) index(hex string) int {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return -1
	}
	for i := range t.rows {
		if *t.id(&t.rows[i]) == oid {
			return i
		}
	}
	return -1
}

func (t *table[T]) get(hex string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var zero T
	i := t.index(hex)
	if i < 0 {
		return zero, ErrNotFound
	}
	return t.rows[i], nil
}

// update runs fn on the stored row under the write lock.
func (t *table[T]) update(hex string, fn func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(hex)
	if i < 0 {
		return ErrNotFound
	}
	fn(&t.rows[i])
	return nil
}

// updateWhere runs fn on every row matching pred and reports how many
// matched.
func (t *table[T]) updateWhere(pred func(*T) bool, fn func(*T)) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for i := range t.rows {
		if pred(&t.rows[i]) {
			fn(&t.rows[i])
			n++
		}
	}
	return n
}

// upsert updates the first row matching pred or inserts the result of
// applying fn to a zero row.
func (t *table[T]) upsert(pred func(*T) bool, fn func(*T)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		if pred(&t.rows[i]) {
			fn(&t.rows[i])
			return
		}
	}
	var v T
	*t.id(&v) = primitive.NewObjectID()
	fn(&v)
	t.rows = append(t.rows, v)
}

func (t *table[T]) remove(hex string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(hex)
	if i < 0 {
		return ErrNotFound
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

func (t *table[T]) filter(pred func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []T{}
	for i := range t.rows {
		if pred == nil || pred(&t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return out
}

func (t *table[T]) count(pred func(*T) bool) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var n int64
	for i := range t.rows {
		if pred(&t.rows[i]) {
			n++
		}
	}
	return n
}
