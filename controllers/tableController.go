package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go-restaurant-reservation/database"
	"go-restaurant-reservation/helpers"
	"go-restaurant-reservation/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var tableCollection *mongo.Collection = database.OpenCollection(database.Client, "table")

func GetTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := tableCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing tables"})
			return
		}
		var allTables []models.Table
		if err := result.All(ctx, &allTables); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing tables"})
			return
		}
		if allTables == nil {
			allTables = []models.Table{}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Tables fetched successfully",
			"data":    allTables,
		})
	}
}

func GetTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		tableId := c.Param("table_id")
		var table models.Table
		err := tableCollection.FindOne(ctx, bson.M{"table_id": tableId}).Decode(&table)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

// GetAvailableTables resolves which tables are free for a requested slot:
// GET /tables/available?date=2026-03-01&time=19:00&guestCount=4&duration=90
func GetAvailableTables() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		date := c.Query("date")
		clock := c.Query("time")
		guestCount, err := strconv.Atoi(c.Query("guestCount"))
		if err != nil || guestCount < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guestCount must be a positive number"})
			return
		}
		start, err := helpers.ParseBookingSlot(date, clock)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD and time must be HH:MM"})
			return
		}
		duration := helpers.DefaultBookingDuration
		if d := c.Query("duration"); d != "" {
			duration, err = strconv.Atoi(d)
			if err != nil || !helpers.ValidDuration(duration) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be between 1 and 1440 minutes"})
				return
			}
		}

		cursor, err := tableCollection.Find(ctx, bson.M{
			"availiable": true,
			"capacity":   bson.M{"$gte": guestCount},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing tables"})
			return
		}
		var tables []models.Table
		if err := cursor.All(ctx, &tables); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing tables"})
			return
		}

		bookings, err := activeBookingsAround(ctx, start, duration)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking bookings"})
			return
		}

		free := helpers.FilterFreeTables(tables, bookings, guestCount, start, duration)
		c.JSON(http.StatusOK, gin.H{
			"status":  http.StatusOK,
			"message": "Available tables fetched successfully",
			"data":    free,
		})
	}
}

// activeBookingsAround fetches non-cancelled bookings that could possibly
// overlap the requested slot. Stored durations vary per booking but are
// capped at MaxBookingDuration on creation, so a lookback of exactly that
// much covers every booking that could still reach into the slot; the exact
// interval math runs in memory.
func activeBookingsAround(ctx context.Context, start time.Time, duration int) ([]models.Booking, error) {
	end := start.Add(time.Duration(duration) * time.Minute)
	lookback := time.Duration(helpers.MaxBookingDuration) * time.Minute
	cursor, err := bookingCollection.Find(ctx, bson.M{
		"status":    bson.M{"$ne": helpers.StatusCancelled},
		"date_time": bson.M{"$gt": start.Add(-lookback), "$lt": end},
	})
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func CreateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var table models.Table
		if err := c.BindJSON(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&table)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if table.Availiable == nil {
			availiable := true
			table.Availiable = &availiable
		}
		table.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		table.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		table.ID = primitive.NewObjectID()
		table.Table_id = table.ID.Hex()

		result, err := tableCollection.InsertOne(ctx, table)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "table number already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "table was not created"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": result, "table_id": table.Table_id})
	}
}

func UpdateTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		tableId := c.Param("table_id")
		var table models.Table
		if err := c.BindJSON(&table); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if table.Table_number != nil {
			updateObj = append(updateObj, bson.E{Key: "table_number", Value: table.Table_number})
		}
		if table.Capacity != nil {
			updateObj = append(updateObj, bson.E{Key: "capacity", Value: table.Capacity})
		}
		if table.Availiable != nil {
			updateObj = append(updateObj, bson.E{Key: "availiable", Value: table.Availiable})
		}
		if len(updateObj) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}
		table.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: table.Updated_at})

		result, err := tableCollection.UpdateOne(
			ctx,
			bson.M{"table_id": tableId},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "table number already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "table update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteTable() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		tableId := c.Param("table_id")

		// A table with active bookings cannot be removed from the floor.
		count, err := bookingCollection.CountDocuments(ctx, bson.M{
			"table_id": tableId,
			"status":   bson.M{"$in": []string{helpers.StatusPending, helpers.StatusConfirmed}},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking bookings"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "table has active bookings"})
			return
		}

		result, err := tableCollection.DeleteOne(ctx, bson.M{"table_id": tableId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "table delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "table deleted"})
	}
}
