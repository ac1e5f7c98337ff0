package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID              primitive.ObjectID `bson:"_id"`
	Date_time       time.Time          `json:"date_time" bson:"date_time" validate:"required"`
	Duration        *int               `json:"duration" bson:"duration"`
	Guest_count     *int               `json:"guest_count" bson:"guest_count" validate:"required,min=1"`
	Status          string             `json:"status" bson:"status" validate:"omitempty,eq=PENDING|eq=CONFIRMED|eq=CANCELLED|eq=COMPLETED"`
	Special_request *string            `json:"special_request" bson:"special_request"`
	User_id         *string            `json:"user_id" bson:"user_id"`
	Table_id        *string            `json:"table_id" bson:"table_id" validate:"required"`
	Created_at      time.Time          `json:"created_at" bson:"created_at"`
	Updated_at      time.Time          `json:"updated_at" bson:"updated_at"`
	Booking_id      string             `json:"booking_id" bson:"booking_id"`
}
