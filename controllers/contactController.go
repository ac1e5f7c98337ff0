package controllers

import (
	"context"
	"net/http"
	"os"
	"time"

	"go-restaurant-reservation/database"
	"go-restaurant-reservation/helpers"
	"go-restaurant-reservation/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var contactCollection *mongo.Collection = database.OpenCollection(database.Client, "contact")

// CreateContactMessage stores the message first, then emails the staff
// address best effort.
func CreateContactMessage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var message models.ContactMessage
		if err := c.BindJSON(&message); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&message)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		message.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		message.ID = primitive.NewObjectID()
		message.Contact_id = message.ID.Hex()

		if _, err := contactCollection.InsertOne(ctx, message); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "message was not saved"})
			return
		}

		if staff := os.Getenv("CONTACT_EMAIL"); staff != "" {
			helpers.SendEmailAsync(
				staff,
				"Contact form: "+*message.Subject,
				"From: "+*message.Name+" <"+*message.Email+">\n\n"+*message.Body,
			)
		}
		c.JSON(http.StatusOK, gin.H{"message": "thanks for getting in touch", "contact_id": message.Contact_id})
	}
}

func GetContactMessages() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := contactCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing messages"})
			return
		}
		var messages []models.ContactMessage
		if err := result.All(ctx, &messages); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing messages"})
			return
		}
		if messages == nil {
			messages = []models.ContactMessage{}
		}
		c.JSON(http.StatusOK, messages)
	}
}
