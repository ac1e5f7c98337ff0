package controllers

import (
	"context"
	"net/http"
	"time"

	"go-restaurant-reservation/database"
	"go-restaurant-reservation/helpers"
	"go-restaurant-reservation/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var orderItemCollection *mongo.Collection = database.OpenCollection(database.Client, "orderItem")

func GetOrderItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := orderItemCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing order items"})
			return
		}
		var allOrderItems []bson.M
		if err := result.All(ctx, &allOrderItems); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing order items"})
			return
		}
		if allOrderItems == nil {
			allOrderItems = []bson.M{}
		}
		c.JSON(http.StatusOK, allOrderItems)
	}
}

func GetOrderItemsByOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !canAccessOrder(c, order) {
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only view your own orders"})
			return
		}

		allOrderItems, err := ItemsByOrder(orderId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing order items by order id"})
			return
		}
		c.JSON(http.StatusOK, allOrderItems)
	}
}

// ItemsByOrder joins an order's line items with their menu entries and sums
// the amount due.
func ItemsByOrder(id string) ([]primitive.M, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "order_id", Value: id}}}}
	lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "menuItem"},
		{Key: "localField", Value: "menu_item_id"},
		{Key: "foreignField", Value: "menu_item_id"},
		{Key: "as", Value: "menu_item"},
	}}}
	unwindStage := bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$menu_item"},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "amount", Value: bson.D{{Key: "$multiply", Value: bson.A{"$unit_price", "$quantity"}}}},
		{Key: "menu_item_name", Value: "$menu_item.name"},
		{Key: "menu_item_id", Value: 1},
		{Key: "order_item_id", Value: 1},
		{Key: "order_id", Value: 1},
		{Key: "unit_price", Value: 1},
		{Key: "quantity", Value: 1},
	}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: bson.D{{Key: "order_id", Value: "$order_id"}}},
		{Key: "payment_due", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		{Key: "total_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		{Key: "order_items", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
	}}}
	projectStage2 := bson.D{{Key: "$project", Value: bson.D{
		{Key: "payment_due", Value: 1},
		{Key: "total_count", Value: 1},
		{Key: "order_id", Value: "$_id.order_id"},
		{Key: "order_items", Value: 1},
	}}}

	var orderItems []primitive.M
	result, err := orderItemCollection.Aggregate(
		ctx, mongo.Pipeline{
			matchStage,
			lookupStage,
			unwindStage,
			projectStage,
			groupStage,
			projectStage2,
		},
	)
	if err != nil {
		return nil, err
	}
	if err := result.All(ctx, &orderItems); err != nil {
		return nil, err
	}
	return orderItems, nil
}

// refreshOrderTotals recomputes the parent order's aggregates from its
// current line items.
func refreshOrderTotals(ctx context.Context, orderId string) error {
	cursor, err := orderItemCollection.Find(ctx, bson.M{"order_id": orderId})
	if err != nil {
		return err
	}
	var items []models.OrderItem
	if err := cursor.All(ctx, &items); err != nil {
		return err
	}
	amount, quantity := helpers.OrderTotals(items)

	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "total_amount", Value: amount},
			{Key: "total_quantity", Value: quantity},
			{Key: "updated_at", Value: time.Now()},
		}},
	}
	_, err = orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, update)
	return err
}

func UpdateOrderItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderItemId := c.Param("order_item_id")
		var body struct {
			Quantity *int `json:"quantity" validate:"required,min=1"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var orderItem models.OrderItem
		if err := orderItemCollection.FindOne(ctx, bson.M{"order_item_id": orderItemId}).Decode(&orderItem); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order item not found"})
			return
		}
		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderItem.Order_id}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !canAccessOrder(c, order) {
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only change your own orders"})
			return
		}

		var updateObj primitive.D
		updateObj = append(updateObj, bson.E{Key: "quantity", Value: body.Quantity})
		updatedAt, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: updatedAt})

		result, err := orderItemCollection.UpdateOne(
			ctx,
			bson.M{"order_item_id": orderItemId},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order item update failed"})
			return
		}
		// The parent order's totals aggregate its line items; keep them in
		// step with the new quantity.
		if err := refreshOrderTotals(ctx, orderItem.Order_id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order totals update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
