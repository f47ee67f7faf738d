package utils

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoClient is the process-wide MongoDB client, assigned once at startup.
// Repositories receive it as an explicit handle rather than reading it.
var MongoClient *mongo.Client

// ConnectMongo connects to MongoDB with the given URI and pool settings
// and verifies the connection with a ping.
func ConnectMongo(uri string, maxPoolSize, minPoolSize uint64, maxConnIdleTime time.Duration) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(maxPoolSize).
		SetMinPoolSize(minPoolSize).
		SetMaxConnIdleTime(maxConnIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

// InitMongoClient initializes the global MongoDB client from the environment
func InitMongoClient(uri string, maxPoolSize, minPoolSize uint64, maxConnIdleTime time.Duration) {
	client, err := ConnectMongo(uri, maxPoolSize, minPoolSize, maxConnIdleTime)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	MongoClient = client
}
