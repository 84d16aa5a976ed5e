package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"travelerapp/database"
	"travelerapp/models"
	"travelerapp/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("travelerapp")
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
	}
}

// CreateBooking inserts a new booking document. The store generates the
// identifier; it is then written back onto the stored record so the id
// travels with the document. That secondary write is best effort: on
// failure the booking is still considered created, since the caller
// already holds the id from the insert.
func (repo *MongoBookingRepo) CreateBooking(booking *models.Booking) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := repo.bookingColl.InsertOne(ctx, booking)
	if err != nil {
		return "", fmt.Errorf("error creating booking: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	bookingID := oid.Hex()
	booking.ID = bookingID

	update := bson.M{"$set": bson.M{"id": bookingID}}
	if _, err := repo.bookingColl.UpdateByID(ctx, oid, update); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to write id back onto booking %s: %v", bookingID, err)
	}

	return bookingID, nil
}

// bookingFilter matches a booking by its id field or, when the id is an
// ObjectID hex, by _id. The id field is only populated by the best-effort
// write-back after insert; matching _id too keeps the record reachable
// when that write-back failed.
func bookingFilter(bookingID string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(bookingID); err == nil {
		return bson.M{"$or": []bson.M{
			{"id": bookingID},
			{"_id": oid},
		}}
	}
	return bson.M{"id": bookingID}
}

// GetBookingByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.bookingColl.FindOne(ctxWithTimeout, bookingFilter(bookingID)).Decode(&booking)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	if booking.ID == "" {
		booking.ID = bookingID
	}
	return &booking, nil
}

// GetBookingsByUser retrieves all bookings made by a user, newest first.
func (repo *MongoBookingRepo) GetBookingsByUser(userID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.bookingColl.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// ConfirmPayment transitions a pending booking to completed. The filter
// matches only pending bookings, so re-confirming an already-completed
// booking matches nothing and the original paymentDate is preserved.
func (repo *MongoBookingRepo) ConfirmPayment(bookingID string, paidAt time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bookingFilter(bookingID)
	filter["paymentStatus"] = models.PaymentPending
	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentCompleted,
		"paymentDate":   paidAt,
	}}
	result, err := repo.bookingColl.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error confirming payment for booking %s: %w", bookingID, err)
	}
	if result.MatchedCount > 0 {
		return true, nil
	}

	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bookingFilter(bookingID)).Decode(&booking); err != nil {
		return false, fmt.Errorf("booking not found: %w", err)
	}
	switch booking.PaymentStatus {
	case models.PaymentCompleted:
		return false, nil
	case models.PaymentExpired:
		return false, fmt.Errorf("payment window for booking %s has expired", bookingID)
	default:
		return false, fmt.Errorf("booking %s in unexpected payment status %q", bookingID, booking.PaymentStatus)
	}
}

// MarkExpired flips a still-pending booking to expired.
func (repo *MongoBookingRepo) MarkExpired(bookingID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bookingFilter(bookingID)
	filter["paymentStatus"] = models.PaymentPending
	update := bson.M{"$set": bson.M{"paymentStatus": models.PaymentExpired}}
	if _, err := repo.bookingColl.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error expiring booking %s: %w", bookingID, err)
	}
	return nil
}
