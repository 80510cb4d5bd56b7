package db

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"wiki-analyzer/config"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// ErrMongoNotConfigured is returned by InitMongo when mongo.uri is empty.
var ErrMongoNotConfigured = errors.New("mongo uri is not configured")

// InitMongo initializes the global Mongo client used by the audit log worker.
func InitMongo(ctx context.Context, cfg config.MongoConfig) error {
	var initErr error
	clientOnce.Do(func() {
		if cfg.URI == "" {
			initErr = ErrMongoNotConfigured
			return
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			_ = cl.Disconnect(context.Background())
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.DBName)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		config.Logger.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// DisconnectMongo closes the global client if it was initialized.
func DisconnectMongo(ctx context.Context) error {
	cl := Client()
	if cl == nil {
		return nil
	}
	return cl.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// article_events: event_id unique (재주입된 이벤트 중복 저장 방지)
	if _, err := d.Collection("article_events").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}},
		Options: options.Index().SetName("uniq_event_id").SetUnique(true),
	}); err != nil {
		return err
	}
	// article_events: (article_id, occurred_at desc)
	if _, err := d.Collection("article_events").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "article_id", Value: 1}, {Key: "occurred_at", Value: -1}},
		Options: options.Index().SetName("idx_article_occurred_at"),
	}); err != nil {
		return err
	}
	return nil
}
