package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Rating     int                `json:"rating" bson:"rating"`
	Active     bool               `json:"active" bson:"active"`
	Name       string             `json:"name" bson:"name"`
	Profession string             `json:"profession" bson:"profession"`
	City       string             `json:"city" bson:"city"`
	Review     string             `json:"review" bson:"review"`
	Viewed     Flag               `json:"viewed" bson:"viewed"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}

// RatedReview is a review decorated with its star string for rendering.
type RatedReview struct {
	Review
	Stars string `json:"stars"`
}

type Contact struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Contacted bool               `json:"contacted" bson:"contacted"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Tel       string             `json:"tel" bson:"tel"`
	Message   string             `json:"message" bson:"message"`
	Viewed    Flag               `json:"viewed" bson:"viewed"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Todo struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Text      string             `json:"text" bson:"text"`
	Done      bool               `json:"done" bson:"done"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// ReviewForm is the public testimonial form. Rating may arrive as a JSON
// number or a numeric string.
type ReviewForm struct {
	Rating     json.Number `json:"rating" binding:"required"`
	Name       string      `json:"name" binding:"required"`
	Profession string      `json:"profession" binding:"required"`
	City       string      `json:"city" binding:"required"`
	Review     string      `json:"review" binding:"required"`
}

type ContactForm struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Tel     string `json:"tel" binding:"required"`
	Message string `json:"message" binding:"required"`
}
