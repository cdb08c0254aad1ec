package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Doctor records are created and deleted directly by admin actions;
// identity is the email, no mutation beyond delete.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string             `bson:"img,omitempty" json:"img,omitempty"`
}
