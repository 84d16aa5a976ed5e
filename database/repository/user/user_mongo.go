package userRepo

import (
	"context"
	"fmt"
	"time"

	"travelerapp/database"
	"travelerapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	userColl *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("travelerapp")
	return &MongoUserRepo{
		userColl: db.Collection("users"),
	}
}

// GetUserByID retrieves a user profile by ID.
func (repo *MongoUserRepo) GetUserByID(userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	if err := repo.userColl.FindOne(ctx, bson.M{"id": userID}).Decode(&user); err != nil {
		return nil, fmt.Errorf("error fetching user with id %s: %w", userID, err)
	}
	return &user, nil
}

// UpsertUser creates or replaces the user profile document.
func (repo *MongoUserRepo) UpsertUser(user *models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user.UpdatedAt = time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = user.UpdatedAt
	}

	filter := bson.M{"id": user.ID}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.userColl.ReplaceOne(ctx, filter, user, opts); err != nil {
		return fmt.Errorf("error upserting user %s: %w", user.ID, err)
	}
	return nil
}

// AddBookingRef appends a booking id to the user's booking list.
func (repo *MongoUserRepo) AddBookingRef(userID, bookingID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"bookings": bookingID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	result, err := repo.userColl.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("error adding booking ref to user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", userID)
	}
	return nil
}

// SetAvatarURL updates the user's avatar URL.
func (repo *MongoUserRepo) SetAvatarURL(userID, avatarURL string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"avatarUrl": avatarURL, "updatedAt": time.Now()}}
	result, err := repo.userColl.UpdateOne(ctx, bson.M{"id": userID}, update)
	if err != nil {
		return fmt.Errorf("error updating avatar for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
