package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"travelerapp/config"
	bookingRepo "travelerapp/database/repository/booking"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeBookingExpire = "booking:expire"

// ExpiryPayload is the task payload for a payment-deadline expiry.
type ExpiryPayload struct {
	BookingID string `json:"bookingId"`
}

// ExpiryScheduler enqueues expiry tasks to fire at a booking's payment
// deadline.
type ExpiryScheduler struct {
	client *asynq.Client
}

// NewExpiryScheduler creates the asynq client for scheduling expiries.
func NewExpiryScheduler() *ExpiryScheduler {
	return &ExpiryScheduler{
		client: asynq.NewClient(redisClientOpt()),
	}
}

// ScheduleExpiry enqueues a task that fires at the given deadline.
func (s *ExpiryScheduler) ScheduleExpiry(bookingID string, at time.Time) error {
	payload, err := json.Marshal(ExpiryPayload{BookingID: bookingID})
	if err != nil {
		return fmt.Errorf("failed to marshal expiry payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingExpire, payload)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(at)); err != nil {
		return fmt.Errorf("failed to enqueue expiry for booking %s: %w", bookingID, err)
	}
	return nil
}

// InitExpiryWorker runs the async worker in background.
func InitExpiryWorker(repo bookingRepo.BookingRepository) {
	srv := asynq.NewServer(
		redisClientOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, handleExpiryTask(repo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ExpiryWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleExpiryTask flips a still-pending booking to expired once its
// payment deadline passes. Bookings already paid are left alone.
func handleExpiryTask(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ExpiryPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryHandler] Invalid payload: %v", err)
			return err
		}

		if err := repo.MarkExpired(p.BookingID); err != nil {
			log.Printf("[ExpiryHandler] Failed to expire booking %s: %v", p.BookingID, err)
			return err
		}

		log.Printf("[ExpiryHandler] Booking %s expiry processed", p.BookingID)
		return nil
	}
}

func redisClientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisExpiryQueueDB,
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisExpiryQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ExpiryWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
