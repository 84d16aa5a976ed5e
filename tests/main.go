package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"travelerapp/config"
	"travelerapp/database"
	"travelerapp/services/tour"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the document store with a small catalog, two weeks of date
// options per tour and a handful of reviews. Intended for local
// development against a fresh database.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database("travelerapp")
	tourColl := db.Collection("tours")
	dateColl := db.Collection("availableDates")
	reviewColl := db.Collection("reviews")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing data.
	if _, err := tourColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear tours collection: %v", err)
	}
	if _, err := dateColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear availableDates collection: %v", err)
	}
	if _, err := reviewColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear reviews collection: %v", err)
	}

	basePrice := config.AppConfig.DefaultTourPrice
	weekendMultiplier := config.AppConfig.WeekendMultiplier

	rand.Seed(time.Now().UnixNano())

	var tourDocs []interface{}
	var dateDocs []interface{}
	var reviewDocs []interface{}

	today := time.Now().Truncate(24 * time.Hour)

	for _, t := range tour.SeedTours() {
		tourDocs = append(tourDocs, bson.M{
			"id":          t.ID,
			"title":       t.Title,
			"description": t.Description,
			"location":    t.Location,
			"category":    t.Category,
			"rating":      t.Rating,
			"price":       t.Price,
			"duration":    t.Duration,
			"status":      t.Status,
		})

		// Two weeks of date options starting tomorrow.
		price := t.Price
		if price == 0 {
			price = basePrice
		}
		for i := 1; i <= 14; i++ {
			date := today.AddDate(0, 0, i)
			dayPrice := price
			wd := int(date.Weekday())
			if wd == 0 || wd == 6 {
				dayPrice = price * weekendMultiplier
			}
			dateDocs = append(dateDocs, bson.M{
				"id":        fmt.Sprintf("%s_%s", t.ID, date.Format("2006-01-02")),
				"tourId":    t.ID,
				"date":      date,
				"dayOfWeek": wd,
				"price":     dayPrice,
				"isHoliday": false,
			})
		}

		reviewCount := 2 + rand.Intn(4)
		for i := 0; i < reviewCount; i++ {
			reviewDocs = append(reviewDocs, bson.M{
				"tourId":    t.ID,
				"rating":    6 + rand.Intn(5),
				"comment":   fmt.Sprintf("Review %d for %s", i+1, t.Title),
				"author":    fmt.Sprintf("traveler-%d", rand.Intn(1000)),
				"createdAt": today.AddDate(0, 0, -rand.Intn(60)),
			})
		}
	}

	if _, err := tourColl.InsertMany(ctx, tourDocs); err != nil {
		log.Fatalf("Failed to insert tours: %v", err)
	}
	if _, err := dateColl.InsertMany(ctx, dateDocs); err != nil {
		log.Fatalf("Failed to insert availableDates: %v", err)
	}
	if _, err := reviewColl.InsertMany(ctx, reviewDocs); err != nil {
		log.Fatalf("Failed to insert reviews: %v", err)
	}

	log.Printf("Seeded %d tours, %d date options, %d reviews", len(tourDocs), len(dateDocs), len(reviewDocs))
}
