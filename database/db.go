package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"gobookhotel/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// ConnectionURI builds the MongoDB connection string. An explicit DATABASE_URL
// wins; otherwise the Atlas SRV URI is assembled from DB_USER/DB_PASS.
func ConnectionURI() string {
	if config.AppConfig.DatabaseURL != "" {
		return config.AppConfig.DatabaseURL
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@cluster0.ivv8ial.mongodb.net/?retryWrites=true&w=majority",
		config.AppConfig.DBUser, config.AppConfig.DBPass,
	)
}

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	clientOptions := options.Client().ApplyURI(ConnectionURI()).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}
