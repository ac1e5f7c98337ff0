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

var bookingCollection *mongo.Collection = database.OpenCollection(database.Client, "booking")

func GetBookings() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{}
		if c.GetString("user_role") != "ADMIN" {
			filter["user_id"] = c.GetString("uid")
		}

		findOptions := options.Find().SetSort(bson.D{{Key: "date_time", Value: -1}})
		cursor, err := bookingCollection.Find(ctx, filter, findOptions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing bookings"})
			return
		}
		var allBookings []models.Booking
		if err := cursor.All(ctx, &allBookings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing bookings"})
			return
		}
		if allBookings == nil {
			allBookings = []models.Booking{}
		}
		c.JSON(http.StatusOK, allBookings)
	}
}

func GetBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		bookingId := c.Param("booking_id")
		var booking models.Booking
		err := bookingCollection.FindOne(ctx, bson.M{"booking_id": bookingId}).Decode(&booking)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if !canAccessBooking(c, booking) {
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only view your own bookings"})
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

// GetBookingsByDate lists bookings inside a date range, oldest first:
// GET /bookings/byDates/2026-03-01/2026-03-07
func GetBookingsByDate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		startDate, err := time.Parse("2006-01-02", c.Param("startDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
			return
		}
		endDate, err := time.Parse("2006-01-02", c.Param("endDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be YYYY-MM-DD"})
			return
		}

		filter := bson.M{"date_time": bson.M{
			"$gte": startDate,
			"$lt":  endDate.AddDate(0, 0, 1),
		}}
		findOptions := options.Find().SetSort(bson.D{{Key: "date_time", Value: 1}})
		cursor, err := bookingCollection.Find(ctx, filter, findOptions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing bookings"})
			return
		}
		var bookings []models.Booking
		if err := cursor.All(ctx, &bookings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing bookings"})
			return
		}
		if bookings == nil {
			bookings = []models.Booking{}
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func CreateBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var booking models.Booking
		if err := c.BindJSON(&booking); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		booking.Status = helpers.StatusPending
		validationErr := validate.Struct(&booking)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if booking.Duration != nil && !helpers.ValidDuration(*booking.Duration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be between 1 and 1440 minutes"})
			return
		}

		var table models.Table
		if err := tableCollection.FindOne(ctx, bson.M{"table_id": booking.Table_id}).Decode(&table); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
			return
		}
		if table.Capacity == nil || *table.Capacity < *booking.Guest_count {
			c.JSON(http.StatusBadRequest, gin.H{"error": "table cannot seat that many guests"})
			return
		}
		if table.Availiable == nil || !*table.Availiable {
			c.JSON(http.StatusConflict, gin.H{"error": "table is not available"})
			return
		}

		// Re-check the slot at write time. The partial unique index on
		// (table_id, date_time) closes the exact-duplicate race; staggered
		// overlaps are caught here.
		duration := helpers.BookingDuration(booking)
		others, err := activeBookingsAround(ctx, booking.Date_time, duration)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking bookings"})
			return
		}
		if !helpers.TableIsFree(table.Table_id, others, booking.Date_time, duration) {
			c.JSON(http.StatusConflict, gin.H{"error": "table is already booked for this time"})
			return
		}

		uid := c.GetString("uid")
		booking.User_id = &uid
		booking.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		booking.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		booking.ID = primitive.NewObjectID()
		booking.Booking_id = booking.ID.Hex()

		_, err = bookingCollection.InsertOne(ctx, booking)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"error": "table is already booked for this time"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "booking was not created"})
			return
		}

		// Best effort: a failed email or broadcast never rolls the booking
		// back.
		when := booking.Date_time.Format("Mon, 02 Jan 2006 15:04")
		if table.Table_number != nil {
			helpers.SendEmailAsync(
				c.GetString("email"),
				"Your reservation request",
				helpers.BookingConfirmationBody(c.GetString("name"), *table.Table_number, when, *booking.Guest_count),
			)
		}
		database.CacheDel(ctx, dashboardCacheKey)
		notifyAdmins("newBooking", booking)

		c.JSON(http.StatusOK, booking)
	}
}

// UpdateBookingStatus moves a booking along its lifecycle. Confirming and
// completing is staff work, so the route is admin gated; cancellation has
// its own endpoint.
func UpdateBookingStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		bookingId := c.Param("booking_id")
		var body struct {
			Status string `json:"status" validate:"required,eq=PENDING|eq=CONFIRMED|eq=CANCELLED|eq=COMPLETED"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&body); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var booking models.Booking
		if err := bookingCollection.FindOne(ctx, bson.M{"booking_id": bookingId}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if !helpers.CanTransition(booking.Status, body.Status) {
			msg := fmt.Sprintf("cannot move booking from %s to %s", booking.Status, body.Status)
			c.JSON(http.StatusConflict, gin.H{"error": msg})
			return
		}

		if err := setBookingStatus(ctx, bookingId, body.Status); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "booking update failed"})
			return
		}
		booking.Status = body.Status
		notifyAdmins("bookingStatus", booking)
		c.JSON(http.StatusOK, gin.H{"booking_id": bookingId, "status": body.Status})
	}
}

// CancelBooking is the one lifecycle move customers may make themselves, and
// only on their own bookings.
func CancelBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		bookingId := c.Param("booking_id")
		var booking models.Booking
		if err := bookingCollection.FindOne(ctx, bson.M{"booking_id": bookingId}).Decode(&booking); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		if !canAccessBooking(c, booking) {
			c.JSON(http.StatusForbidden, gin.H{"error": "you can only cancel your own bookings"})
			return
		}
		if !helpers.CanTransition(booking.Status, helpers.StatusCancelled) {
			msg := fmt.Sprintf("a %s booking cannot be cancelled", booking.Status)
			c.JSON(http.StatusConflict, gin.H{"error": msg})
			return
		}

		if err := setBookingStatus(ctx, bookingId, helpers.StatusCancelled); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "booking update failed"})
			return
		}
		booking.Status = helpers.StatusCancelled
		notifyAdmins("bookingCancelled", booking)
		c.JSON(http.StatusOK, gin.H{"booking_id": bookingId, "status": helpers.StatusCancelled})
	}
}

func setBookingStatus(ctx context.Context, bookingId string, status string) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "status", Value: status},
			{Key: "updated_at", Value: time.Now()},
		}},
	}
	_, err := bookingCollection.UpdateOne(ctx, bson.M{"booking_id": bookingId}, update)
	return err
}

func canAccessBooking(c *gin.Context, booking models.Booking) bool {
	return helpers.CanAccessResource(c.GetString("user_role"), c.GetString("uid"), booking.User_id)
}
