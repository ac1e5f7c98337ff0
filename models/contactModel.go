package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactMessage struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       *string            `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email      *string            `json:"email" bson:"email" validate:"email,required"`
	Subject    *string            `json:"subject" bson:"subject" validate:"required"`
	Body       *string            `json:"body" bson:"body" validate:"required"`
	Created_at time.Time          `json:"created_at" bson:"created_at"`
	Contact_id string             `json:"contact_id" bson:"contact_id"`
}
