package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is the document-store entity. Uniqueness on studentNumber and
// schoolEmail is enforced by the collection's indexes.
type Student struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	StudentNumber string             `json:"studentNumber" bson:"studentNumber"`
	SchoolEmail   string             `json:"schoolEmail" bson:"schoolEmail"`
	FirstName     string             `json:"firstName" bson:"firstName"`
	LastName      string             `json:"lastName" bson:"lastName"`
	Year          string             `json:"year" bson:"year"`
	Branch        string             `json:"branch" bson:"branch"`
	Program       string             `json:"program" bson:"program"`
	IsScholar     bool               `json:"isScholar" bson:"isScholar"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// StudentInput carries the client-supplied fields of a new student document.
type StudentInput struct {
	StudentNumber string `json:"studentNumber" validate:"required"`
	SchoolEmail   string `json:"schoolEmail" validate:"required,email"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Year          string `json:"year" validate:"required"`
	Branch        string `json:"branch" validate:"required"`
	Program       string `json:"program" validate:"required"`
	IsScholar     bool   `json:"isScholar"`
}

// StudentUpdate is the partial-update payload; nil fields are left untouched.
type StudentUpdate struct {
	StudentNumber *string `json:"studentNumber"`
	SchoolEmail   *string `json:"schoolEmail"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Year          *string `json:"year"`
	Branch        *string `json:"branch"`
	Program       *string `json:"program"`
	IsScholar     *bool   `json:"isScholar"`
}
