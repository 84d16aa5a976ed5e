package tourRepo

import (
	"context"
	"fmt"
	"time"

	"travelerapp/database"
	"travelerapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTourRepo implements TourRepository using MongoDB.
type MongoTourRepo struct {
	tourColl   *mongo.Collection
	dateColl   *mongo.Collection
	reviewColl *mongo.Collection
}

// NewMongoTourRepo constructs a new instance of MongoTourRepo.
func NewMongoTourRepo() TourRepository {
	db := database.MongoClient.Database("travelerapp")
	return &MongoTourRepo{
		tourColl:   db.Collection("tours"),
		dateColl:   db.Collection("availableDates"),
		reviewColl: db.Collection("reviews"),
	}
}

// ListTours retrieves every tour document and normalizes it. Tours whose
// document carries no price get the lowest available-date price instead.
func (repo *MongoTourRepo) ListTours() ([]models.Tour, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.tourColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching tours: %w", err)
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding tour document: %w", err)
		}
		tour := tourFromDoc(docID(doc), doc)
		if tour.Price == 0 && tour.RawPrice == "" {
			if price, err := repo.lowestDatePrice(ctx, tour.ID); err == nil {
				tour.Price = price
			}
		}
		tours = append(tours, tour)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return tours, nil
}

// GetTourByID retrieves a single tour document by ID.
func (repo *MongoTourRepo) GetTourByID(tourID string) (*models.Tour, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc bson.M
	if err := repo.tourColl.FindOne(ctx, bson.M{"id": tourID}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error fetching tour with id %s: %w", tourID, err)
	}
	tour := tourFromDoc(tourID, doc)
	if tour.Price == 0 && tour.RawPrice == "" {
		if price, err := repo.lowestDatePrice(ctx, tourID); err == nil {
			tour.Price = price
		}
	}
	return &tour, nil
}

// GetAvailableDates fetches upcoming date options for a tour, ascending
// by date, bounded by limit.
func (repo *MongoTourRepo) GetAvailableDates(tourID string, from time.Time, limit int64) ([]models.BookingDateOption, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"tourId": tourID,
		"date":   bson.M{"$gte": from},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetLimit(limit)

	cursor, err := repo.dateColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching available dates for tour %s: %w", tourID, err)
	}
	defer cursor.Close(ctx)

	var dateOptions []models.BookingDateOption
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding date option: %w", err)
		}
		if opt, ok := dateOptionFromDoc(docID(doc), doc); ok {
			dateOptions = append(dateOptions, opt)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return dateOptions, nil
}

// CountReviews counts review documents referencing the tour.
func (repo *MongoTourRepo) CountReviews(tourID string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.reviewColl.CountDocuments(ctx, bson.M{"tourId": tourID})
	if err != nil {
		return 0, fmt.Errorf("error counting reviews for tour %s: %w", tourID, err)
	}
	return count, nil
}

// lowestDatePrice returns the cheapest upcoming date price for a tour.
func (repo *MongoTourRepo) lowestDatePrice(ctx context.Context, tourID string) (float64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "price", Value: 1}})
	var doc bson.M
	if err := repo.dateColl.FindOne(ctx, bson.M{"tourId": tourID}, opts).Decode(&doc); err != nil {
		return 0, fmt.Errorf("no date price for tour %s: %w", tourID, err)
	}
	price, ok := asFloat(doc["price"])
	if !ok {
		return 0, fmt.Errorf("unparseable date price for tour %s", tourID)
	}
	return price, nil
}

// docID prefers the explicit id field, falling back to the Mongo _id.
func docID(doc bson.M) string {
	if id := asString(doc["id"]); id != "" {
		return id
	}
	switch oid := doc["_id"].(type) {
	case primitive.ObjectID:
		return oid.Hex()
	case string:
		return oid
	}
	return ""
}
