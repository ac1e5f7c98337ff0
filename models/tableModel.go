package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Table struct {
	ID           primitive.ObjectID `bson:"_id"`
	Table_number *int               `json:"table_number" bson:"table_number" validate:"required,min=1"`
	Capacity     *int               `json:"capacity" bson:"capacity" validate:"required,min=1"`
	Availiable   *bool              `json:"availiable" bson:"availiable"`
	Created_at   time.Time          `json:"created_at" bson:"created_at"`
	Updated_at   time.Time          `json:"updated_at" bson:"updated_at"`
	Table_id     string             `json:"table_id" bson:"table_id"`
}
