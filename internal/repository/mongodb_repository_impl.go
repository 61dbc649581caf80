package repository

import (
	"context"
	"time"

	"github.com/khangviet/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type storageDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongoDBStorageRepositoryImpl struct {
	collection *mongo.Collection
}

func CreateNewMongoDBRepository(db *mongo.Database, collection string) StorageRepository {
	return &MongoDBStorageRepositoryImpl{collection: db.Collection(collection)}
}

func (r *MongoDBStorageRepositoryImpl) Get(ctx context.Context, key string) ([]byte, error) {
	var doc storageDocument

	filter := bson.D{{Key: "_id", Value: key}}
	err := r.collection.FindOne(ctx, filter, options.FindOne()).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "MongoDBGet").Msg("")
		return nil, err
	}

	return doc.Value, nil
}

func (r *MongoDBStorageRepositoryImpl) Set(ctx context.Context, key string, value []byte) error {
	filter := bson.D{{Key: "_id", Value: key}}
	doc := storageDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()}

	_, err := r.collection.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MongoDBSet").Msg("")
		return err
	}
	return nil
}

func (r *MongoDBStorageRepositoryImpl) Delete(ctx context.Context, key string) error {
	filter := bson.D{{Key: "_id", Value: key}}

	_, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "MongoDBDelete").Msg("")
		return err
	}
	return nil
}
