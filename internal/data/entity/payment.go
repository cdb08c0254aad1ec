package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record written once per successful charge.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Amount        float64            `bson:"amount" json:"amount"`
	BookingID     primitive.ObjectID `bson:"bookingId" json:"bookingId"`
	Patient       string             `bson:"patient,omitempty" json:"patient,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
