package database

import (
	"context"
	"log"
	"time"

	"eventra/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// Connect opens and pings a MongoDB client for uri.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// InitDB initializes the MongoDB connection.
func InitDB() {
	client, err := Connect(context.Background(), config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// DB returns the application database on the global client.
func DB() *mongo.Database {
	return MongoClient.Database(config.AppConfig.DatabaseName)
}

// Close disconnects the global client.
func Close(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}
