package database

import (
	"context"
	"log"
	"time"

	"travelerapp/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the shared client for the travelerapp database. The
// repository packages derive their collections from it.
var MongoClient *mongo.Client

// InitDB connects to the document store configured under DATABASE_URL
// and verifies the connection with a ping. The service cannot run
// without its store, so failure here is fatal.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		log.Fatalf("database: failed to connect: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("database: ping failed: %v", err)
	}

	MongoClient = client
	log.Println("database: connected")
}
