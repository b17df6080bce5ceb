// Package numbersvc is the standalone service that publishes the support
// WhatsApp number and lets an operator holding the admin secret change it.
package numbersvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "whatsapps"

// Store holds at most one number.
type Store interface {
	Get(ctx context.Context) (number string, found bool, err error)
	Set(ctx context.Context, number string) error
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collectionName)}
}

type numberDoc struct {
	Number string `bson:"number"`
}

func (s *MongoStore) Get(ctx context.Context) (string, bool, error) {
	var doc numberDoc
	err := s.coll.FindOne(ctx, bson.D{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Number, true, nil
}

// Set updates the first document, inserting one when the collection is empty.
func (s *MongoStore) Set(ctx context.Context, number string) error {
	_, err := s.coll.UpdateOne(ctx, bson.D{},
		bson.D{{Key: "$set", Value: bson.D{{Key: "number", Value: number}}}},
		options.Update().SetUpsert(true))
	return err
}

// Connect opens a client and pings it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}
