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

type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(d *mongo.Database) *ProductRepository {
	return &ProductRepository{col: d.Collection(db.CollectionProducts)}
}

// ProductFilter narrows a product search. Empty fields are ignored.
type ProductFilter struct {
	Query     string
	PriceMin  *int64
	PriceMax  *int64
	Size      string
	Condition string
}

func (f ProductFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.Query != "" {
		filter["nama_produk"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
	}
	if f.Size != "" {
		filter["ukuran"] = f.Size
	}
	if f.Condition != "" {
		filter["kondisi"] = f.Condition
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		price := bson.M{}
		if f.PriceMin != nil {
			price["$gte"] = *f.PriceMin
		}
		if f.PriceMax != nil {
			price["$lte"] = *f.PriceMax
		}
		filter["harga"] = price
	}
	return filter
}

func (r *ProductRepository) Search(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	return r.find(ctx, f.toBSON(), options.Find())
}

// BestSelling returns products ordered by units sold.
func (r *ProductRepository) BestSelling(ctx context.Context, limit int64) ([]models.Product, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "terjual", Value: -1}}).SetLimit(limit))
}

func (r *ProductRepository) TopRated(ctx context.Context, limit int64) ([]models.Product, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(limit))
}

func (r *ProductRepository) Insert(ctx context.Context, p *models.Product) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// Update applies a partial $set and returns the updated document.
func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Product
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// FindByProductID looks a product up by its marketplace id, which may be
// stored as a number or a string.
func (r *ProductRepository) FindByProductID(ctx context.Context, id models.FlexID) (*models.Product, error) {
	var p models.Product
	if err := r.col.FindOne(ctx, id.MatchFilter("product_id")).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByName returns the product whose name equals name exactly.
func (r *ProductRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	var p models.Product
	if err := r.col.FindOne(ctx, bson.M{"nama_produk": name}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func sentimentLookupStages() mongo.Pipeline {
	countLabel := func(label models.Label) bson.D {
		return bson.D{{Key: "$size", Value: bson.D{{Key: "$filter", Value: bson.D{
			{Key: "input", Value: "$sentiments"},
			{Key: "as", Value: "s"},
			{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$s.label", string(label)}}}},
		}}}}}
	}
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.CollectionSentiments},
			{Key: "localField", Value: "product_id"},
			{Key: "foreignField", Value: "produkId"},
			{Key: "as", Value: "sentiments"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "sentimentCount", Value: bson.D{{Key: "$size", Value: "$sentiments"}}},
			{Key: "positiveCount", Value: countLabel(models.LabelPositive)},
			{Key: "negativeCount", Value: countLabel(models.LabelNegative)},
			{Key: "neutralCount", Value: countLabel(models.LabelNeutral)},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "sentimentCount", Value: bson.D{{Key: "$gt", Value: 0}}}}}},
	}
}

// WithSentiments returns products that have sentiment records together with
// their label counts, most reviewed first, and the total number of such products.
func (r *ProductRepository) WithSentiments(ctx context.Context, page, limit int64) ([]models.ProductSentimentSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	pct := func(field string) bson.D {
		return bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$eq", Value: bson.A{"$sentimentCount", 0}}},
			0,
			bson.D{{Key: "$multiply", Value: bson.A{bson.D{{Key: "$divide", Value: bson.A{field, "$sentimentCount"}}}, 100}}},
		}}}
	}

	pipeline := append(sentimentLookupStages(),
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "product_id", Value: 1},
			{Key: "nama_produk", Value: 1},
			{Key: "kategori", Value: 1},
			{Key: "harga", Value: 1},
			{Key: "rating", Value: 1},
			{Key: "link_Gambar 1", Value: 1},
			{Key: "sentimentCount", Value: 1},
			{Key: "positiveCount", Value: 1},
			{Key: "negativeCount", Value: 1},
			{Key: "neutralCount", Value: 1},
			{Key: "positivePercentage", Value: pct("$positiveCount")},
			{Key: "negativePercentage", Value: pct("$negativeCount")},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "sentimentCount", Value: -1}}}},
		bson.D{{Key: "$skip", Value: (page - 1) * limit}},
		bson.D{{Key: "$limit", Value: limit}},
	)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)
	items := []models.ProductSentimentSummary{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	countCur, err := r.col.Aggregate(ctx, append(sentimentLookupStages(), bson.D{{Key: "$count", Value: "total"}}))
	if err != nil {
		return nil, 0, err
	}
	defer countCur.Close(ctx)
	var totals []struct {
		Total int64 `bson:"total"`
	}
	if err := countCur.All(ctx, &totals); err != nil {
		return nil, 0, err
	}
	var total int64
	if len(totals) > 0 {
		total = totals[0].Total
	}
	return items, total, nil
}

// ReplaceAll drops every product and inserts the given set.
func (r *ProductRepository) ReplaceAll(ctx context.Context, products []models.Product) (int, error) {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, nil
	}
	docs := make([]any, len(products))
	for i := range products {
		docs[i] = products[i]
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
