package mongodb

import (
	"context"
	"fmt"

	"github.com/khangviet/storefront/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectToMongoDB(ctx context.Context, conf config.MongoDBConfig) (*mongo.Database, error) {
	clientOptions := options.Client().
		ApplyURI(buildURI(conf)).
		SetMaxPoolSize(conf.MaxPoolSize).
		SetMinPoolSize(conf.MinPoolSize).
		SetMaxConnIdleTime(conf.MaxConnIdleTime).
		SetConnectTimeout(conf.ConnectTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	return client.Database(conf.DBName), nil
}

func buildURI(conf config.MongoDBConfig) string {
	if conf.DBUsername == "" {
		return fmt.Sprintf("mongodb://%s:%s", conf.DBHost, conf.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", conf.DBUsername, conf.DBPassword, conf.DBHost, conf.DBPort)
}
