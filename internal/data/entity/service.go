package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a treatment in the fixed catalog. Slots are seeded once and
// immutable afterwards; identity is the name.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots,omitempty"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
}
