package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Appointment is a pending booking. Once approved or canceled it moves to
// one of the past-appointment collections.
type Appointment struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty" form:"-"`
	IDNumber    string             `json:"idNumber" bson:"idNumber" form:"idNumber" binding:"required"`
	FName       string             `json:"fName" bson:"fName" form:"fName"`
	LName       string             `json:"lName" bson:"lName" form:"lName"`
	DateOfBirth string             `json:"dateOfBirth" bson:"dateOfBirth" form:"dateOfBirth"`
	Gender      string             `json:"gender" bson:"gender" form:"gender"`
	Service     string             `json:"service" bson:"service" form:"service"`
	Date        string             `json:"date" bson:"date" form:"date"`
	Time        string             `json:"time" bson:"time" form:"time"`
	Email       string             `json:"email" bson:"email" form:"email"`
	Tel         string             `json:"tel" bson:"tel" form:"tel"`
	Paragraph   string             `json:"paragraph" bson:"paragraph" form:"paragraph"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" form:"-"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" form:"-"`
}

// PastAppointment is the record kept after approval or cancellation.
// SourceID is the id of the pending appointment it was made from, which
// makes writing it idempotent.
type PastAppointment struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SourceID  primitive.ObjectID `json:"sourceId" bson:"sourceId"`
	IDNumber  string             `json:"idNumber" bson:"idNumber"`
	FName     string             `json:"fName" bson:"fName"`
	LName     string             `json:"lName" bson:"lName"`
	Service   string             `json:"service" bson:"service"`
	Date      string             `json:"date" bson:"date"`
	Time      string             `json:"time" bson:"time"`
	Tel       string             `json:"tel" bson:"tel"`
	Gender    string             `json:"gender,omitempty" bson:"gender,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// ApprovalForm carries the values an operator may correct while approving.
type ApprovalForm struct {
	AppointmentID string `form:"appointmentID" json:"appointmentID" binding:"required"`
	IDNumber      string `form:"idNumber" json:"idNumber"`
	FName         string `form:"fName" json:"fName"`
	LName         string `form:"lName" json:"lName"`
	Service       string `form:"service" json:"service"`
	Date          string `form:"date" json:"date"`
	Time          string `form:"time" json:"time"`
	Tel           string `form:"tel" json:"tel"`
	Gender        string `form:"gender" json:"gender"`
}

// Merge returns the appointment with every non-blank form value applied.
func (f ApprovalForm) Merge(a Appointment) Appointment {
	pick := func(v, fallback string) string {
		if v != "" {
			return v
		}
		return fallback
	}
	a.IDNumber = pick(f.IDNumber, a.IDNumber)
	a.FName = pick(f.FName, a.FName)
	a.LName = pick(f.LName, a.LName)
	a.Service = pick(f.Service, a.Service)
	a.Date = pick(f.Date, a.Date)
	a.Time = pick(f.Time, a.Time)
	a.Tel = pick(f.Tel, a.Tel)
	a.Gender = pick(f.Gender, a.Gender)
	return a
}

func (a Appointment) Past() PastAppointment {
	return PastAppointment{
		SourceID: a.ID,
		IDNumber: a.IDNumber,
		FName:    a.FName,
		LName:    a.LName,
		Service:  a.Service,
		Date:     a.Date,
		Time:     a.Time,
		Tel:      a.Tel,
		Gender:   a.Gender,
	}
}
