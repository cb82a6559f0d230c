package repo

import (
	"context"
	"errors"

	dmn "github.com/lucks07/DAA-Game-Signpost/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultArchiveLimit = 20

// MatchArchive handles the persistence of finished matches.
type MatchArchive struct {
	collection *mongo.Collection
}

// NewMatchArchive creates a new MatchArchive with the given MongoDB client, database name, and collection name.
func NewMatchArchive(client *mongo.Client, dbName, collectionName string) *MatchArchive {
	collection := client.Database(dbName).Collection(collectionName)
	return &MatchArchive{
		collection: collection,
	}
}

// Save persists a finished match record.
func (a *MatchArchive) Save(ctx context.Context, record *dmn.MatchRecord) error {
	if _, err := a.collection.InsertOne(ctx, record); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByPlayer retrieves the archived matches of a player, newest first.
func (a *MatchArchive) ByPlayer(ctx context.Context, playerID uuid.UUID, limit int) ([]dmn.MatchRecord, error) {
	if limit <= 0 {
		limit = defaultArchiveLimit
	}

	filter := bson.M{"playerId": playerID}
	opts := options.Find().
		SetSort(bson.M{"endedAt": -1}).
		SetLimit(int64(limit))

	cursor, err := a.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []dmn.MatchRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}
