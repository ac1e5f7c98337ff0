package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func DBinstance() *mongo.Client {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")
	return client
}

var Client *mongo.Client = DBinstance()

func databaseName() string {
	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = "reservation"
	}
	return name
}

func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(databaseName()).Collection(collectionName)
}

// EnsureIndexes creates the indexes the handlers rely on: a unique email per
// user, a unique table number, and a partial unique index over active
// bookings so two concurrent creates for the same table/slot cannot both
// land. Staggered overlaps are caught by the availability re-check in the
// booking controller.
func EnsureIndexes(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndexes := OpenCollection(client, "user").Indexes()
	_, err := userIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("user email index: %v", err)
	}

	tableIndexes := OpenCollection(client, "table").Indexes()
	_, err = tableIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "table_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("table number index: %v", err)
	}

	bookingIndexes := OpenCollection(client, "booking").Indexes()
	_, err = bookingIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "table_id", Value: 1}, {Key: "date_time", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": []string{"PENDING", "CONFIRMED", "COMPLETED"}},
			}),
	})
	if err != nil {
		log.Printf("booking slot index: %v", err)
	}

	_, err = bookingIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date_time", Value: 1}, {Key: "status", Value: 1}},
	})
	if err != nil {
		log.Printf("booking time index: %v", err)
	}
}
