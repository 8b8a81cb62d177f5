package db

import (
	"context"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"review-insight/config"
)

const (
	CollectionProducts   = "ds_produk"
	CollectionReviews    = "ds_ulasan"
	CollectionSentiments = "ds_sentimen"
	CollectionAILogs     = "ai_logs"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database. The connection
// string is read from MONGO_URI.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()
		uri := os.Getenv("MONGO_URI")
		if uri == "" {
			// local docker-compose default
			uri = "mongodb://localhost:27017/" + cfg.Mongo.Database
		}

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			initErr = err
			return
		}
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.Mongo.Database)

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

// Ping checks the primary is reachable.
func Ping(ctx context.Context) error {
	if client == nil {
		return mongo.ErrClientDisconnected
	}
	return client.Ping(ctx, readpref.Primary())
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		// one sentiment record per review
		CollectionSentiments: {
			{Keys: bson.D{{Key: "ulasanId", Value: 1}}, Options: options.Index().SetName("uniq_ulasan_id").SetUnique(true)},
			{Keys: bson.D{{Key: "produkId", Value: 1}}, Options: options.Index().SetName("idx_produk_id")},
			{Keys: bson.D{{Key: "label", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_label_created_at")},
			{Keys: bson.D{{Key: "aspek.kualitas.label", Value: 1}}, Options: options.Index().SetName("idx_aspek_kualitas")},
			{Keys: bson.D{{Key: "aspek.harga.label", Value: 1}}, Options: options.Index().SetName("idx_aspek_harga")},
			{Keys: bson.D{{Key: "aspek.pengiriman.label", Value: 1}}, Options: options.Index().SetName("idx_aspek_pengiriman")},
			{Keys: bson.D{{Key: "aspek.pelayanan.label", Value: 1}}, Options: options.Index().SetName("idx_aspek_pelayanan")},
		},
		CollectionProducts: {
			{Keys: bson.D{{Key: "product_id", Value: 1}}, Options: options.Index().SetName("idx_product_id")},
			{Keys: bson.D{{Key: "nama_produk", Value: 1}}, Options: options.Index().SetName("idx_nama_produk")},
		},
		CollectionReviews: {
			{Keys: bson.D{{Key: "produk", Value: 1}}, Options: options.Index().SetName("idx_produk")},
			{Keys: bson.D{{Key: "rating", Value: 1}}, Options: options.Index().SetName("idx_rating")},
		},
		CollectionAILogs: {
			{Keys: bson.D{{Key: "requested_at", Value: -1}}, Options: options.Index().SetName("idx_requested_at_desc")},
		},
	}

	for col, models := range indexes {
		if _, err := d.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
