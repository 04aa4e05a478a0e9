package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	InvoicePending = "Pending"
	InvoicePaid    = "Paid"
)

type InvoiceItem struct {
	ItemName    string  `json:"itemName" bson:"itemName" binding:"required"`
	Description string  `json:"description" bson:"description"`
	UnitCost    float64 `json:"unitCost" bson:"unitCost" binding:"gte=0"`
	Quantity    float64 `json:"quantity" bson:"quantity" binding:"gte=0"`
	Total       float64 `json:"total" bson:"total"`
}

func (i InvoiceItem) LineTotal() float64 {
	return i.UnitCost * i.Quantity
}

type Invoice struct {
	ID                 primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FullName           string             `json:"fullName" bson:"fullName"`
	Email              string             `json:"email" bson:"email"`
	InvoiceID          string             `json:"invoiceId" bson:"invoiceId"`
	Status             string             `json:"status" bson:"status"`
	InvoiceDate        string             `json:"invoiceDate" bson:"invoiceDate"`
	TermsAndConditions string             `json:"termsAndConditions" bson:"termsAndConditions"`
	Items              []InvoiceItem      `json:"items" bson:"items"`
	TotalPrice         float64            `json:"totalPrice" bson:"totalPrice"`
	AmountPaid         float64            `json:"amountPaid" bson:"amountPaid"`
	Due                float64            `json:"due" bson:"due"`
	Terms              string             `json:"terms" bson:"terms"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
}

// Compute fills line totals, the invoice total, the balance and the status.
func (inv *Invoice) Compute() {
	var total float64
	for i := range inv.Items {
		inv.Items[i].Total = inv.Items[i].LineTotal()
		total += inv.Items[i].Total
	}
	inv.TotalPrice = total
	inv.Due = total - inv.AmountPaid
	if inv.Due > 0 {
		inv.Status = InvoicePending
	} else {
		inv.Status = InvoicePaid
	}
}

type InvoiceForm struct {
	FullName           string        `json:"fullName" form:"fullName"`
	Email              string        `json:"email" form:"email"`
	InvoiceDate        string        `json:"invoiceDate" form:"invoiceDate"`
	TermsAndConditions string        `json:"termsAndConditions" form:"termsAndConditions"`
	Terms              string        `json:"terms" form:"terms"`
	AmountPaid         float64       `json:"amountPaid" form:"amountPaid" binding:"gte=0"`
	Items              []InvoiceItem `json:"items" form:"-" binding:"dive"`
}

// InvoicePDFRequest names the invoice and the patient it belongs to.
type InvoicePDFRequest struct {
	InvoiceID string `json:"invoID" form:"invoID" binding:"required"`
	PatientID string `json:"patientID" form:"patientID" binding:"required"`
}
