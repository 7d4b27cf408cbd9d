package repos

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"catalogproxy/internal/domain"
)

// MongoStore keeps products and brands as documents in two collections.
type MongoStore struct {
	client   *mongo.Client
	products *mongo.Collection
	brands   *mongo.Collection
}

func OpenMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	db := client.Database(dbName)
	s := &MongoStore{client: client, products: db.Collection("products"), brands: db.Collection("brands")}

	_, err = s.brands.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo brand index: %w", err)
	}
	_, err = s.products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "productId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo product index: %w", err)
	}
	return s, nil
}

func (s *MongoStore) FindProducts(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	filter := bson.M{}
	if len(f.Brands) > 0 {
		filter["brandName"] = bson.M{"$in": f.Brands}
	}
	if f.ReleaseDateStart != "" || f.ReleaseDateEnd != "" {
		rng := bson.M{}
		if f.ReleaseDateStart != "" {
			rng["$gte"] = f.ReleaseDateStart
		}
		if f.ReleaseDateEnd != "" {
			rng["$lte"] = f.ReleaseDateEnd
		}
		filter["releaseDate"] = rng
	}
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetSkip(int64(f.Offset))
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	cur, err := s.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	out := []domain.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return out, nil
}

func (s *MongoStore) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	var p domain.Product
	err := s.products.FindOne(ctx, bson.M{"productId": productID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (s *MongoStore) CreateProduct(ctx context.Context, p domain.Product) error {
	if _, err := s.products.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert product %s: %w", p.ProductID, err)
	}
	return nil
}

func (s *MongoStore) UpdateProduct(ctx context.Context, p domain.Product) error {
	res, err := s.products.ReplaceOne(ctx, bson.M{"productId": p.ProductID}, p)
	if err != nil {
		return fmt.Errorf("update product %s: %w", p.ProductID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteProduct(ctx context.Context, productID string) error {
	res, err := s.products.DeleteOne(ctx, bson.M{"productId": productID})
	if err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) AllBrands(ctx context.Context) ([]domain.Brand, error) {
	cur, err := s.brands.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find brands: %w", err)
	}
	out := []domain.Brand{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode brands: %w", err)
	}
	return out, nil
}

func (s *MongoStore) GetBrand(ctx context.Context, name string) (domain.Brand, error) {
	var b domain.Brand
	err := s.brands.FindOne(ctx, bson.M{"name": name}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Brand{}, ErrNotFound
	}
	return b, err
}

// FindOrCreateBrand upserts with $setOnInsert so an existing document is
// never modified. Returning the pre-image tells us whether we inserted.
func (s *MongoStore) FindOrCreateBrand(ctx context.Context, b domain.Brand) (domain.Brand, bool, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.Before)
	var existing domain.Brand
	err := s.brands.FindOneAndUpdate(ctx, bson.M{"name": b.Name}, bson.M{"$setOnInsert": b}, opts).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return b, true, nil
	}
	if err != nil {
		return domain.Brand{}, false, fmt.Errorf("upsert brand %q: %w", b.Name, err)
	}
	return existing, false, nil
}

func (s *MongoStore) Reset(ctx context.Context) error {
	if _, err := s.products.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	_, err := s.brands.DeleteMany(ctx, bson.M{})
	return err
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}
