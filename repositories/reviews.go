package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"review-insight/db"
	"review-insight/models"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(d *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: d.Collection(db.CollectionReviews)}
}

// ReviewCount is a product name with its number of reviews.
type ReviewCount struct {
	ProductName string `bson:"_id" json:"_id"`
	Count       int64  `bson:"jumlahUlasan" json:"jumlahUlasan"`
}

func (r *ReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{}, options.Find())
}

// FindByProductName matches the product name case-insensitively as a substring.
func (r *ReviewRepository) FindByProductName(ctx context.Context, name string, limit int64) ([]models.Review, error) {
	filter := bson.M{"produk": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}}
	return r.find(ctx, filter, options.Find().SetLimit(limit))
}

func (r *ReviewRepository) FindByRating(ctx context.Context, rating int) ([]models.Review, error) {
	return r.find(ctx, bson.M{"rating": rating}, options.Find())
}

func (r *ReviewRepository) FindByID(ctx context.Context, id models.FlexID) (*models.Review, error) {
	var rv models.Review
	if err := r.col.FindOne(ctx, id.MatchFilter("_id")).Decode(&rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

// Insert stores the review and sets its generated id.
func (r *ReviewRepository) Insert(ctx context.Context, rv *models.Review) error {
	res, err := r.col.InsertOne(ctx, rv)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		rv.ID = models.ObjectIDOf(oid)
	}
	return nil
}

// Delete removes the review; it reports false when nothing matched.
func (r *ReviewRepository) Delete(ctx context.Context, id models.FlexID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, id.MatchFilter("_id"))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// AverageRating averages the ratings of reviews whose product name equals name.
func (r *ReviewRepository) AverageRating(ctx context.Context, name string) (float64, int64, error) {
	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "produk", Value: name}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avg", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	})
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Avg   float64 `bson:"avg"`
		Count int64   `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, 0, err
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Avg, rows[0].Count, nil
}

// MostReviewed returns the product name with the most reviews, or nil when empty.
func (r *ReviewRepository) MostReviewed(ctx context.Context) (*ReviewCount, error) {
	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$produk"}, {Key: "jumlahUlasan", Value: bson.D{{Key: "$sum", Value: 1}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "jumlahUlasan", Value: -1}}}},
		{{Key: "$limit", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []ReviewCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// ReplaceAll drops every review and inserts the given set.
func (r *ReviewRepository) ReplaceAll(ctx context.Context, reviews []models.Review) (int, error) {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, nil
	}
	docs := make([]any, len(reviews))
	for i := range reviews {
		docs[i] = reviews[i]
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Review, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
