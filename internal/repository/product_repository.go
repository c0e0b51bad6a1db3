package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workout-store/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductsCollection is the document collection holding products.
const ProductsCollection = "products"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyPatch      = errors.New("product patch has no fields to set")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, id string, patch domain.ProductPatch) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*domain.Product, error)
}

// productDocument is the stored shape of a product.
type productDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Price     float64            `bson:"price"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *productDocument) toDomain() *domain.Product {
	return &domain.Product{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Price:     d.Price,
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{collection: db.Collection(ProductsCollection)}
}

// Create inserts a new product and sets product.ID to the generated key.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	doc := productDocument{
		Name:      product.Name,
		Price:     product.Price,
		UpdatedAt: product.UpdatedAt,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	switch id := result.InsertedID.(type) {
	case primitive.ObjectID:
		product.ID = id.Hex()
	default:
		product.ID = fmt.Sprint(id)
	}

	return nil
}

// Update applies the non-nil fields of patch to the product with the given id.
func (r *productRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed key cannot address any stored product
		return ErrProductNotFound
	}

	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.UpdatedAt != nil {
		set["updated_at"] = patch.UpdatedAt.UTC()
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}

	return nil
}

// FindByID retrieves a product by its key
func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	var doc productDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return doc.toDomain(), nil
}

// FindByPriceRange returns every product priced strictly between minPrice and
// maxPrice, in store order.
func (r *productRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*domain.Product, error) {
	filter := bson.M{"price": bson.M{"$gt": minPrice, "$lt": maxPrice}}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter products by price: %w", err)
	}
	defer cursor.Close(ctx)

	products := []*domain.Product{}
	for cursor.Next(ctx) {
		var doc productDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, doc.toDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
