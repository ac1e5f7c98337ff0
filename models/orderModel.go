package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID             primitive.ObjectID `bson:"_id"`
	Order_Date     time.Time          `json:"order_date" bson:"order_date" validate:"required"`
	Created_at     time.Time          `json:"created_at" bson:"created_at"`
	Updated_at     time.Time          `json:"updated_at" bson:"updated_at"`
	Order_id       string             `json:"order_id" bson:"order_id"`
	Booking_id     *string            `json:"booking_id" bson:"booking_id" validate:"required"`
	User_id        *string            `json:"user_id" bson:"user_id"`
	Total_amount   float64            `json:"total_amount" bson:"total_amount"`
	Total_quantity int                `json:"total_quantity" bson:"total_quantity"`
	Status         string             `json:"status" bson:"status" validate:"omitempty,eq=CREATED|eq=INVOICED|eq=PAID"`
}

type OrderItem struct {
	ID            primitive.ObjectID `bson:"_id"`
	Quantity      *int               `json:"quantity" bson:"quantity" validate:"required,min=1"`
	Unit_price    *float64           `json:"unit_price" bson:"unit_price"`
	Created_at    time.Time          `json:"created_at" bson:"created_at"`
	Updated_at    time.Time          `json:"updated_at" bson:"updated_at"`
	Menu_item_id  *string            `json:"menu_item_id" bson:"menu_item_id" validate:"required"`
	Order_item_id string             `json:"order_item_id" bson:"order_item_id"`
	Order_id      string             `json:"order_id" bson:"order_id"`
}
