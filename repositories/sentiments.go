package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"review-insight/db"
	"review-insight/models"
)

type SentimentRepository struct {
	col *mongo.Collection
}

func NewSentimentRepository(d *mongo.Database) *SentimentRepository {
	return &SentimentRepository{col: d.Collection(db.CollectionSentiments)}
}

func sentimentUpsert(rec *models.SentimentRecord, now time.Time) (bson.M, bson.M) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	// matches legacy records whose ulasanId was stored as a string; the
	// $in filter does not seed ulasanId on insert, so $setOnInsert does
	filter := rec.ReviewID.MatchFilter("ulasanId")
	update := bson.M{
		"$setOnInsert": bson.M{
			"ulasanId":  rec.ReviewID,
			"createdAt": rec.CreatedAt,
		},
		"$set": bson.M{
			"produkId":       rec.ProductID,
			"komentarUlasan": rec.Comment,
			"ratingUlasan":   rec.Rating,
			"pengguna":       rec.User,
			"skor":           rec.Score,
			"label":          rec.Label,
			"aspek":          rec.Aspects,
			"alasan":         rec.Rationale,
			"updatedAt":      rec.UpdatedAt,
		},
	}
	return filter, update
}

// Upsert writes the record keyed by its review id, keeping one record per review.
func (r *SentimentRepository) Upsert(ctx context.Context, rec *models.SentimentRecord) error {
	filter, update := sentimentUpsert(rec, time.Now())
	_, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// BulkUpsert upserts many records in one unordered round trip.
func (r *SentimentRepository) BulkUpsert(ctx context.Context, recs []models.SentimentRecord) (int64, error) {
	if len(recs) == 0 {
		return 0, nil
	}
	now := time.Now()
	writes := make([]mongo.WriteModel, 0, len(recs))
	for i := range recs {
		filter, update := sentimentUpsert(&recs[i], now)
		writes = append(writes, mongo.NewUpdateOneModel().SetFilter(filter).SetUpdate(update).SetUpsert(true))
	}
	res, err := r.col.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return res.UpsertedCount + res.ModifiedCount, nil
}

// List returns every record, highest review id first.
func (r *SentimentRepository) List(ctx context.Context) ([]models.SentimentRecord, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "ulasanId", Value: -1}}))
}

func (r *SentimentRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// CountByLabel groups records by overall label.
func (r *SentimentRepository) CountByLabel(ctx context.Context) (map[models.Label]int64, error) {
	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$label"}, {Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Label models.Label `bson:"_id"`
		Count int64        `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[models.Label]int64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.Count
	}
	return out, nil
}

// Comments returns up to limit comment texts of records with the given label.
func (r *SentimentRepository) Comments(ctx context.Context, label models.Label, limit int64) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"komentarUlasan": 1}).SetLimit(limit)
	recs, err := r.find(ctx, bson.M{"label": label}, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Comment)
	}
	return out, nil
}

// Recent returns the newest records with the given label.
func (r *SentimentRepository) Recent(ctx context.Context, label models.Label, limit int64) ([]models.SentimentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	return r.find(ctx, bson.M{"label": label}, opts)
}

// Sample returns n random records.
func (r *SentimentRepository) Sample(ctx context.Context, n int) ([]models.SentimentRecord, error) {
	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$sample", Value: bson.D{{Key: "size", Value: n}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.SentimentRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DistinctProductCount counts the distinct product ids that have records.
func (r *SentimentRepository) DistinctProductCount(ctx context.Context) (int64, error) {
	ids, err := r.col.Distinct(ctx, "produkId", bson.M{})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

func (r *SentimentRepository) FindByProductID(ctx context.Context, productID models.FlexID) ([]models.SentimentRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, productID.MatchFilter("produkId"), opts)
}

func (r *SentimentRepository) DeleteByReviewID(ctx context.Context, reviewID models.FlexID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, reviewID.MatchFilter("ulasanId"))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteAll clears the collection before a dataset import.
func (r *SentimentRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *SentimentRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.SentimentRecord, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.SentimentRecord{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
