package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petbloom/internal/config"
	"petbloom/internal/demoserver"
	"petbloom/internal/domain/catalog"
	"petbloom/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) *Service {
	t.Helper()
	cfg := config.AppConfig{JWTSecret: "test-secret", JWTTTL: time.Hour}
	srv := httptest.NewServer(demoserver.NewServer(cfg, nil).Handler())
	t.Cleanup(srv.Close)

	gw := gateway.New(gateway.Config{BaseURL: srv.URL + "/api/v1"})
	return NewService(gw, nil)
}

func TestListPetsWithFilter(t *testing.T) {
	svc := newCatalogFixture(t)
	ctx := context.Background()

	all, err := svc.ListPets(ctx, catalog.PetFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	cats, err := svc.ListPets(ctx, catalog.PetFilter{Species: "cat"})
	require.NoError(t, err)
	require.NotEmpty(t, cats)
	for _, p := range cats {
		assert.Equal(t, "cat", p.Species)
	}

	limited, err := svc.ListPets(ctx, catalog.PetFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestGetPet(t *testing.T) {
	svc := newCatalogFixture(t)
	ctx := context.Background()

	all, err := svc.ListPets(ctx, catalog.PetFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	pet, err := svc.GetPet(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, all[0].Name, pet.Name)

	_, err = svc.GetPet(ctx, "nonexistent")
	require.Error(t, err)
	var apiErr *gateway.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestFilterOptionLists(t *testing.T) {
	svc := newCatalogFixture(t)
	ctx := context.Background()

	species, err := svc.ListSpecies(ctx)
	require.NoError(t, err)
	assert.Contains(t, species, "dog")

	breeds, err := svc.ListBreeds(ctx, "dog")
	require.NoError(t, err)
	assert.Contains(t, breeds, "Beagle")

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Contains(t, categories, "food")

	brands, err := svc.ListBrands(ctx)
	require.NoError(t, err)
	assert.Contains(t, brands, "VetCare")
}

func TestListProductsWithFilter(t *testing.T) {
	svc := newCatalogFixture(t)
	ctx := context.Background()

	products, err := svc.ListProducts(ctx, catalog.ProductFilter{Brand: "PawFuel"})
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "PawFuel", p.Brand)
	}
}

func TestCreateReviewRequiresAuth(t *testing.T) {
	svc := newCatalogFixture(t)

	products, err := svc.ListProducts(context.Background(), catalog.ProductFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, products)

	_, err = svc.CreateReview(context.Background(), catalog.CreateReviewRequest{
		ProductID: products[0].ID,
		Rating:    4,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gateway.ErrUnauthorized))
}
