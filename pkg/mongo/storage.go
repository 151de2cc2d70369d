package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type entry struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// Collection is the part of *mongo.Collection used by Storage.
type Collection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter, replacement any, opts ...options.Lister[options.ReplaceOptions]) (*mongo.UpdateResult, error)
	DeleteMany(ctx context.Context, filter any, opts ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error)
}

// Storage is a byte-valued key/value store over one collection.
type Storage struct {
	coll Collection
}

func NewStorage(coll Collection) *Storage {
	return &Storage{coll: coll}
}

// Get returns nil, nil when the key does not exist.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var e entry
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&e)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (s *Storage) Set(ctx context.Context, key string, val []byte) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: key}},
		entry{Key: key, Value: val},
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *Storage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.coll.DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: keys}}}})
	return err
}
