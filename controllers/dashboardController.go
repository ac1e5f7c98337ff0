package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go-restaurant-reservation/database"
	"go-restaurant-reservation/helpers"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dashboardCacheKey = "dashboard:stats"
const dashboardCacheTTL = 30 * time.Second
const dashboardWindowDays = 7
const dashboardRecentLimit = 5

type DashboardStats struct {
	Users          int64                `json:"users"`
	Tables         int64                `json:"tables"`
	Bookings       int64                `json:"bookings"`
	Orders         int64                `json:"orders"`
	MenuItems      int64                `json:"menu_items"`
	RecentBookings []bson.M             `json:"recent_bookings"`
	RecentOrders   []bson.M             `json:"recent_orders"`
	BookingsPerDay []helpers.DailyCount `json:"bookings_per_day"`
	OrdersPerDay   []helpers.DailyCount `json:"orders_per_day"`
}

// GetDashboardStats is a pure read: entity counts, the most recent bookings
// and orders, and zero-filled per-day series over the trailing week. An
// empty store yields zero counts and full zero series. Results sit in redis
// for a short TTL since every admin page load asks for them.
func GetDashboardStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		if cached, err := database.CacheGet(ctx, dashboardCacheKey); err == nil {
			var stats DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				c.JSON(http.StatusOK, stats)
				return
			}
		}

		stats, err := collectDashboardStats(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while computing dashboard stats"})
			return
		}

		if encoded, err := json.Marshal(stats); err == nil {
			if err := database.CacheSet(ctx, dashboardCacheKey, string(encoded), dashboardCacheTTL); err != nil {
				log.Printf("dashboard cache not written: %v", err)
			}
		}
		c.JSON(http.StatusOK, stats)
	}
}

func collectDashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.Users, err = userCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	if stats.Tables, err = tableCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	if stats.Bookings, err = bookingCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	if stats.Orders, err = orderCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}
	if stats.MenuItems, err = menuItemCollection.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, err
	}

	if stats.RecentBookings, err = recentDocuments(ctx, bookingCollection, "created_at"); err != nil {
		return stats, err
	}
	if stats.RecentOrders, err = recentDocuments(ctx, orderCollection, "created_at"); err != nil {
		return stats, err
	}

	now := time.Now().UTC()
	bookingCounts, err := perDayCounts(ctx, bookingCollection, "date_time", now)
	if err != nil {
		return stats, err
	}
	orderCounts, err := perDayCounts(ctx, orderCollection, "order_date", now)
	if err != nil {
		return stats, err
	}
	stats.BookingsPerDay = helpers.BuildDailySeries(bookingCounts, now, dashboardWindowDays)
	stats.OrdersPerDay = helpers.BuildDailySeries(orderCounts, now, dashboardWindowDays)
	return stats, nil
}

func recentDocuments(ctx context.Context, collection *mongo.Collection, sortField string) ([]bson.M, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetLimit(dashboardRecentLimit)
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// perDayCounts groups rows of the trailing window by calendar day.
func perDayCounts(ctx context.Context, collection *mongo.Collection, dateField string, end time.Time) (map[string]int, error) {
	windowStart := end.AddDate(0, 0, -(dashboardWindowDays - 1)).Truncate(24 * time.Hour)

	matchStage := bson.D{{Key: "$match", Value: bson.D{
		{Key: dateField, Value: bson.D{{Key: "$gte", Value: windowStart}}},
	}}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
			{Key: "format", Value: "%Y-%m-%d"},
			{Key: "date", Value: "$" + dateField},
		}}}},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}

	cursor, err := collection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return nil, err
	}
	var rows []struct {
		Day   string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Day] = row.Count
	}
	return counts, nil
}
