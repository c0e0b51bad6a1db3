package repository

import (
	"context"
	"testing"
	"time"

	"workout-store/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func cleanupProducts(t *testing.T) {
	t.Helper()
	_, err := testMongo.Collection(ProductsCollection).DeleteMany(context.Background(), bson.M{})
	require.NoError(t, err)
}

func newProductRepository(t *testing.T) ProductRepository {
	t.Helper()
	requireMongo(t)
	cleanupProducts(t)
	return NewProductRepository(testMongo)
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestProductRepository_CreateAssignsHexID(t *testing.T) {
	repo := newProductRepository(t)
	ctx := context.Background()

	product := &domain.Product{Name: "Iphone 14 Pro Max", Price: 8.5, UpdatedAt: time.Now().UTC().Truncate(time.Millisecond)}
	require.NoError(t, repo.Create(ctx, product))

	require.NotEmpty(t, product.ID)
	assert.True(t, primitive.IsValidObjectID(product.ID))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, found.Name)
	assert.Equal(t, product.Price, found.Price)
	assert.True(t, product.UpdatedAt.Equal(found.UpdatedAt))
}

func TestProductRepository_UpdateSetsOnlySuppliedFields(t *testing.T) {
	repo := newProductRepository(t)
	ctx := context.Background()

	created := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	product := &domain.Product{Name: "Iphone 14 Pro Max", Price: 8.5, UpdatedAt: created}
	require.NoError(t, repo.Create(ctx, product))

	later := created.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, product.ID, domain.ProductPatch{
		Price:     float64Ptr(9.9),
		UpdatedAt: &later,
	}))

	found, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Iphone 14 Pro Max", found.Name)
	assert.Equal(t, 9.9, found.Price)
	assert.True(t, later.Equal(found.UpdatedAt))
}

func TestProductRepository_UpdateUnknownID(t *testing.T) {
	repo := newProductRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	err := repo.Update(ctx, primitive.NewObjectID().Hex(), domain.ProductPatch{UpdatedAt: &now})
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = repo.Update(ctx, "not-an-object-id", domain.ProductPatch{UpdatedAt: &now})
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = repo.FindByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, ErrProductNotFound)

	count, err := testMongo.Collection(ProductsCollection).CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProductRepository_UpdateWithEmptyPatch(t *testing.T) {
	repo := newProductRepository(t)
	ctx := context.Background()

	product := &domain.Product{Name: "Mouse", Price: 50, UpdatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, product))

	assert.ErrorIs(t, repo.Update(ctx, product.ID, domain.ProductPatch{}), ErrEmptyPatch)
}

func TestProductRepository_PriceRangeBoundsAreExclusive(t *testing.T) {
	repo := newProductRepository(t)
	ctx := context.Background()

	for _, price := range []float64{5, 10, 15, 19.99, 20, 25} {
		require.NoError(t, repo.Create(ctx, &domain.Product{Name: "item", Price: price, UpdatedAt: time.Now().UTC()}))
	}

	products, err := repo.FindByPriceRange(ctx, 10, 20)
	require.NoError(t, err)

	prices := []float64{}
	for _, p := range products {
		prices = append(prices, p.Price)
	}
	assert.ElementsMatch(t, []float64{15, 19.99}, prices)

	none, err := repo.FindByPriceRange(ctx, 100, 200)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

// Property: every product returned by the range filter lies strictly inside it,
// and every stored product inside it is returned.
func TestProperty_PriceRangeMatchesOpenInterval(t *testing.T) {
	requireMongo(t)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 15
	properties := gopter.NewProperties(parameters)

	properties.Property("filter is the open interval", prop.ForAll(
		func(prices []int, low, width int) bool {
			repo := newProductRepository(t)
			ctx := context.Background()

			expected := 0
			minPrice, maxPrice := float64(low), float64(low+width)
			for _, price := range prices {
				p := float64(price)
				if p > minPrice && p < maxPrice {
					expected++
				}
				if err := repo.Create(ctx, &domain.Product{Name: "item", Price: p, UpdatedAt: time.Now().UTC()}); err != nil {
					return false
				}
			}

			products, err := repo.FindByPriceRange(ctx, minPrice, maxPrice)
			if err != nil || len(products) != expected {
				return false
			}
			for _, p := range products {
				if p.Price <= minPrice || p.Price >= maxPrice {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(8, gen.IntRange(0, 50)),
		gen.IntRange(0, 40),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}
