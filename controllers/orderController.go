package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-restaurant-reservation/database"
	"go-restaurant-reservation/helpers"
	"go-restaurant-reservation/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

// OrderRequest is the creation payload: the booking the order belongs to
// plus its line items. Prices are looked up server side at order time.
type OrderRequest struct {
	Booking_id  string `json:"booking_id" validate:"required"`
	Order_items []struct {
		Menu_item_id string `json:"menu_item_id" validate:"required"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
	} `json:"order_items" validate:"required,min=1,dive"`
}

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		if c.GetString("user_role") != "ADMIN" {
			filter["user_id"] = c.GetString("uid")
		}

		findOptions := options.Find().SetSort(bson.D{{Key: "order_date", Value: -1}})
		result, err := orderCollection.Find(ctx, filter, findOptions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var allOrders []models.Order
		if err := result.All(ctx, &allOrders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		if allOrders == nil {
			allOrders = []models.Order{}
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		var order models.Order
		err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !canAccessOrder(c, order) {
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only view your own orders"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func canAccessOrder(c *gin.Context, order models.Order) bool {
	return helpers.CanAccessResource(c.GetString("user_role"), c.GetString("uid"), order.User_id)
}

// CreateOrder inserts the order and its line items. Each item is priced from
// the menu at order time so later menu edits do not change past orders.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var req OrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&req)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var booking models.Booking
		if err := bookingCollection.FindOne(ctx, bson.M{"booking_id": req.Booking_id}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if !canAccessBooking(c, booking) {
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only order against your own bookings"})
			return
		}
		if booking.Status == "CANCELLED" || booking.Status == "COMPLETED" {
			msg := fmt.Sprintf("cannot order against a %s booking", booking.Status)
			c.JSON(http.StatusConflict, gin.H{"error": msg})
			return
		}

		var order models.Order
		order.ID = primitive.NewObjectID()
		order.Order_id = order.ID.Hex()
		order.Booking_id = &req.Booking_id
		uid := c.GetString("uid")
		order.User_id = &uid
		order.Status = "CREATED"
		order.Order_Date, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		order.Created_at = order.Order_Date
		order.Updated_at = order.Order_Date

		var orderItems []models.OrderItem
		for _, line := range req.Order_items {
			var menuItem models.MenuItem
			if err := menuItemCollection.FindOne(ctx, bson.M{"menu_item_id": line.Menu_item_id}).Decode(&menuItem); err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "menu item " + line.Menu_item_id + " not found"})
				return
			}
			if menuItem.Price == nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item " + line.Menu_item_id + " has no price"})
				return
			}
			quantity := line.Quantity
			unitPrice := *menuItem.Price

			var item models.OrderItem
			item.ID = primitive.NewObjectID()
			item.Order_item_id = item.ID.Hex()
			item.Order_id = order.Order_id
			item.Menu_item_id = &menuItem.Menu_item_id
			item.Quantity = &quantity
			item.Unit_price = &unitPrice
			item.Created_at = order.Created_at
			item.Updated_at = order.Created_at

			orderItems = append(orderItems, item)
		}
		order.Total_amount, order.Total_quantity = helpers.OrderTotals(orderItems)

		if _, err := orderCollection.InsertOne(ctx, order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not created"})
			return
		}
		itemDocs := make([]interface{}, 0, len(orderItems))
		for _, item := range orderItems {
			itemDocs = append(itemDocs, item)
		}
		if _, err := orderItemCollection.InsertMany(ctx, itemDocs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order items were not created"})
			return
		}

		database.CacheDel(ctx, dashboardCacheKey)
		notifyAdmins("newOrder", order)
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus moves an order forward: CREATED -> INVOICED -> PAID.
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		var body struct {
			Status string `json:"status" validate:"required,eq=CREATED|eq=INVOICED|eq=PAID"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		allowed := (order.Status == "CREATED" && body.Status == "INVOICED") ||
			(order.Status == "INVOICED" && body.Status == "PAID")
		if !allowed {
			msg := fmt.Sprintf("cannot move order from %s to %s", order.Status, body.Status)
			c.JSON(http.StatusConflict, gin.H{"error": msg})
			return
		}

		update := bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "status", Value: body.Status},
				{Key: "updated_at", Value: time.Now()},
			}},
		}
		if _, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, update); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"order_id": orderId, "status": body.Status})
	}
}

// GetAllOrdersWithItems joins orders with their line items, menu item names,
// and the booking's table in one aggregation pass.
func GetAllOrdersWithItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		lookupOrderItems := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "orderItem"},
			{Key: "localField", Value: "order_id"},
			{Key: "foreignField", Value: "order_id"},
			{Key: "as", Value: "order_items"},
		}}}
		unwindOrderItems := bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$order_items"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}}
		lookupMenuItem := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menuItem"},
			{Key: "localField", Value: "order_items.menu_item_id"},
			{Key: "foreignField", Value: "menu_item_id"},
			{Key: "as", Value: "menu_item_details"},
		}}}
		unwindMenuItem := bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$menu_item_details"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}}
		lookupBooking := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "booking"},
			{Key: "localField", Value: "booking_id"},
			{Key: "foreignField", Value: "booking_id"},
			{Key: "as", Value: "booking_details"},
		}}}
		unwindBooking := bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$booking_details"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}}
		group := bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "order_id", Value: "$order_id"},
				{Key: "order_date", Value: "$order_date"},
				{Key: "booking_id", Value: "$booking_id"},
				{Key: "user_id", Value: "$user_id"},
				{Key: "table_id", Value: "$booking_details.table_id"},
				{Key: "total_amount", Value: "$total_amount"},
				{Key: "total_quantity", Value: "$total_quantity"},
				{Key: "status", Value: "$status"},
			}},
			{Key: "order_items", Value: bson.D{{Key: "$push", Value: bson.D{
				{Key: "order_item_id", Value: "$order_items.order_item_id"},
				{Key: "menu_item_id", Value: "$order_items.menu_item_id"},
				{Key: "menu_item_name", Value: "$menu_item_details.name"},
				{Key: "quantity", Value: "$order_items.quantity"},
				{Key: "unit_price", Value: "$order_items.unit_price"},
			}}}},
		}}}
		project := bson.D{{Key: "$project", Value: bson.D{
			{Key: "order", Value: bson.D{
				{Key: "order_id", Value: "$_id.order_id"},
				{Key: "order_date", Value: "$_id.order_date"},
				{Key: "booking_id", Value: "$_id.booking_id"},
				{Key: "user_id", Value: "$_id.user_id"},
				{Key: "table_id", Value: "$_id.table_id"},
				{Key: "total_amount", Value: "$_id.total_amount"},
				{Key: "total_quantity", Value: "$_id.total_quantity"},
				{Key: "status", Value: "$_id.status"},
			}},
			{Key: "order_items", Value: "$order_items"},
		}}}

		cursor, err := orderCollection.Aggregate(
			ctx, mongo.Pipeline{
				lookupOrderItems,
				unwindOrderItems,
				lookupMenuItem,
				unwindMenuItem,
				lookupBooking,
				unwindBooking,
				group,
				project,
			},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		defer cursor.Close(ctx)

		var ordersWithItems []bson.M
		if err := cursor.All(ctx, &ordersWithItems); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		if ordersWithItems == nil {
			ordersWithItems = []bson.M{}
		}
		c.JSON(http.StatusOK, ordersWithItems)
	}
}
