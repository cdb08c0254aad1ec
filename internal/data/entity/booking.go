package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is one appointment record. At most one booking may exist per
// (patient, treatment, date) tuple; the repository enforces this at
// admission time with an atomic insert-if-absent.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Patient       string             `bson:"patient" json:"patient"`
	PatientName   string             `bson:"patientName" json:"patientName"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Treatment     string             `bson:"treatment" json:"treatment"`
	Date          string             `bson:"date" json:"date"`
	Slot          string             `bson:"slot" json:"slot"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
