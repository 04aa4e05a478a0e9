package repository

import (
	"errors"

	"ClinicDesk/db"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewMongoStore wires every repository to its collection in database.
func NewMongoStore(database *mongo.Database) *Store {
	return &Store{
		Patients:     &mongoPatients{coll: database.Collection(db.PatientCollection)},
		Appointments: &mongoAppointments{coll: database.Collection(db.AppointmentCollection)},
		Approved:     &mongoPastAppointments{coll: database.Collection(db.ApprovedCollection)},
		Deleted:      &mongoPastAppointments{coll: database.Collection(db.DeletedCollection)},
		Invoices:     &mongoInvoices{coll: database.Collection(db.InvoiceCollection)},
		Drugs:        &mongoDrugs{coll: database.Collection(db.DrugCollection)},
		Reviews:      &mongoReviews{coll: database.Collection(db.ReviewCollection)},
		Contacts:     &mongoContacts{coll: database.Collection(db.ContactCollection)},
		Todos:        &mongoTodos{coll: database.Collection(db.TodoCollection)},
		LastVisits:   &mongoLastVisits{coll: database.Collection(db.LastVisitCollection)},
		Settings:     newMongoSettings(database),
		Accounts:     &mongoAccounts{coll: database.Collection(db.AccountCollection)},
	}
}

func translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, db.ErrInvalidID) {
		return ErrNotFound
	}
	return err
}

func objectID(hex string) (primitive.ObjectID, error) {
	id, err := db.ParseID(hex)
	if err != nil {
		return id, ErrNotFound
	}
	return id, nil
}
