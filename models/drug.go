package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Drug struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	IDNumber     string             `json:"idNumber" bson:"idNumber"`
	DrugName     string             `json:"drugName" bson:"drugName"`
	Category     string             `json:"category" bson:"category"`
	CompanyName  string             `json:"companyName" bson:"companyName"`
	PurchaseDate string             `json:"purchaseDate" bson:"purchaseDate"`
	ExpiredDate  string             `json:"expiredDate" bson:"expiredDate"`
	Price        string             `json:"price" bson:"price"`
	Expense      float64            `json:"expense" bson:"expense"`
	Stock        float64            `json:"stock" bson:"stock"`
	Description  string             `json:"description" bson:"description"`
	EmployeeName string             `json:"employeeName" bson:"employeeName"`
	// ThePriceOfTheQuantityPurchased is expense × stock.
	ThePriceOfTheQuantityPurchased float64   `json:"thePriceOfTheQuantityPurchased" bson:"thePriceOfTheQuantityPurchased"`
	Expired                        bool      `json:"expired" bson:"expired"`
	UpdatedAt                      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// DrugForm keeps expense and stock as text so a non-numeric value can be
// reported instead of silently becoming zero.
type DrugForm struct {
	IDNumber     string `form:"idNumber" json:"idNumber" binding:"required"`
	DrugName     string `form:"drugName" json:"drugName" binding:"required"`
	Category     string `form:"category" json:"category"`
	CompanyName  string `form:"companyName" json:"companyName"`
	PurchaseDate string `form:"purchaseDate" json:"purchaseDate"`
	ExpiredDate  string `form:"expiredDate" json:"expiredDate"`
	Price        string `form:"price" json:"price"`
	Expense      string `form:"expense" json:"expense"`
	Stock        string `form:"stock" json:"stock"`
	Description  string `form:"description" json:"description"`
	EmployeeName string `form:"employeeName" json:"employeeName"`
}
