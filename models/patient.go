package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id,omitempty" form:"-"`
	IDNumber       string               `json:"idNumber" bson:"idNumber" form:"idNumber"`
	FName          string               `json:"fName" bson:"fName" form:"fName"`
	LName          string               `json:"lName" bson:"lName" form:"lName"`
	Disease        string               `json:"disease" bson:"disease" form:"disease"`
	Tel            string               `json:"tel" bson:"tel" form:"tel"`
	DateOfBirth    string               `json:"dateOfBirth" bson:"dateOfBirth" form:"dateOfBirth"`
	Age            string               `json:"age" bson:"age" form:"age"`
	Date           string               `json:"date,omitempty" bson:"date,omitempty" form:"-"`
	Time           string               `json:"time" bson:"time" form:"time"`
	Gender         string               `json:"gender" bson:"gender" form:"gender"`
	Email          string               `json:"email" bson:"email" form:"email"`
	Adress         string               `json:"adress" bson:"adress" form:"adress"`
	Note           string               `json:"note" bson:"note" form:"note"`
	Status         string               `json:"status" bson:"status" form:"status"`
	EmployeeName   string               `json:"employeeName,omitempty" bson:"employeeName,omitempty" form:"employeeName"`
	DiseaseHistory []string             `json:"diseaseHistory" bson:"diseaseHistory" form:"-"`
	Weight         string               `json:"weight" bson:"weight" form:"weight"`
	Height         string               `json:"height" bson:"height" form:"height"`
	LastVisit      []LastVisit          `json:"lastVisit" bson:"lastVisit" form:"-"`
	Invoices       []primitive.ObjectID `json:"invoices" bson:"invoices" form:"-"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt" form:"-"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt" form:"-"`

	Intake `bson:",inline"`
}

// PatientWithInvoices is a patient whose invoice references have been
// resolved to the invoice documents.
type PatientWithInvoices struct {
	Patient
	InvoiceDocs []Invoice `json:"invoiceDocs"`
}

// AddPatientForm mirrors the short add-patient page, which names a few
// fields differently from the full profile form.
type AddPatientForm struct {
	IDNumber     string `form:"idNumber" json:"idNumber" binding:"required"`
	FName        string `form:"fName" json:"fName" binding:"required"`
	LName        string `form:"lName" json:"lName"`
	Disease      string `form:"disease" json:"disease"`
	Tel          string `form:"tel" json:"tel"`
	DateOfBirth  string `form:"date" json:"date"`
	Age          string `form:"age" json:"age"`
	Gender       string `form:"gender" json:"gender"`
	Email        string `form:"email" json:"email"`
	Adress       string `form:"adress" json:"adress"`
	Note         string `form:"paragraph" json:"paragraph"`
	Status       string `form:"status" json:"status"`
	EmployeeName string `form:"employeeName" json:"employeeName"`
}

func (f AddPatientForm) Patient() Patient {
	return Patient{
		IDNumber:     f.IDNumber,
		FName:        f.FName,
		LName:        f.LName,
		Disease:      f.Disease,
		Tel:          f.Tel,
		DateOfBirth:  f.DateOfBirth,
		Age:          f.Age,
		Gender:       f.Gender,
		Email:        f.Email,
		Adress:       f.Adress,
		Note:         f.Note,
		Status:       f.Status,
		EmployeeName: f.EmployeeName,
	}
}

// PatientProfileForm is the full intake form posted from the profile page.
type PatientProfileForm struct {
	PatientID string `form:"patientId" json:"patientId" binding:"required"`
	Patient
}

type LastVisit struct {
	PatientID string    `json:"patientId" bson:"patientId" form:"-"`
	Reason    string    `json:"reason" bson:"reason" form:"reason"`
	Date      string    `json:"date" bson:"date" form:"date"`
	Time      string    `json:"time" bson:"time" form:"time"`
	Note      string    `json:"note" bson:"note" form:"note"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" form:"-"`
}
