package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Menu struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       string             `json:"name" bson:"name" validate:"required"`
	Category   string             `json:"category" bson:"category" validate:"required"`
	Created_at time.Time          `json:"created_at" bson:"created_at"`
	Updated_at time.Time          `json:"updated_at" bson:"updated_at"`
	Menu_id    string             `json:"menu_id" bson:"menu_id"`
}

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         *string            `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Price        *float64           `json:"price" bson:"price" validate:"required,min=0"`
	Description  *string            `json:"description" bson:"description"`
	Menu_id      *string            `json:"menu_id" bson:"menu_id" validate:"required"`
	Created_at   time.Time          `json:"created_at" bson:"created_at"`
	Updated_at   time.Time          `json:"updated_at" bson:"updated_at"`
	Menu_item_id string             `json:"menu_item_id" bson:"menu_item_id"`
}
