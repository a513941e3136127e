// internal/service/catalog/catalog.go
package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"petbloom/internal/domain/catalog"
	"petbloom/internal/gateway"

	"go.uber.org/zap"
)

// Service exposes the pet and product catalog through the gateway.
type Service struct {
	gw     *gateway.Client
	logger *zap.Logger
}

func NewService(gw *gateway.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gw: gw, logger: logger}
}

// ========== Pets ==========

// ListPets fetches pets matching the filter.
func (s *Service) ListPets(ctx context.Context, filter catalog.PetFilter) ([]catalog.Pet, error) {
	q := url.Values{}
	if filter.Species != "" {
		q.Set("species", filter.Species)
	}
	if filter.Breed != "" {
		q.Set("breed", filter.Breed)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/pets"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list catalog.PetList
	if err := s.gw.Get(ctx, path, &list); err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return list.Pets, nil
}

func (s *Service) GetPet(ctx context.Context, id string) (*catalog.Pet, error) {
	var pet catalog.Pet
	if err := s.gw.Get(ctx, "/pets/"+id, &pet); err != nil {
		return nil, fmt.Errorf("failed to get pet %s: %w", id, err)
	}
	return &pet, nil
}

func (s *Service) ListSpecies(ctx context.Context) ([]string, error) {
	var list catalog.SpeciesList
	if err := s.gw.Get(ctx, "/pets/species/list", &list); err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}
	return list.Species, nil
}

func (s *Service) ListBreeds(ctx context.Context, species string) ([]string, error) {
	var list catalog.BreedList
	if err := s.gw.Get(ctx, "/pets/breeds/"+url.PathEscape(species), &list); err != nil {
		return nil, fmt.Errorf("failed to list breeds for %s: %w", species, err)
	}
	return list.Breeds, nil
}

// ========== Products ==========

// ListProducts fetches products matching the filter.
func (s *Service) ListProducts(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Brand != "" {
		q.Set("brand", filter.Brand)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list catalog.ProductList
	if err := s.gw.Get(ctx, path, &list); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return list.Products, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	var product catalog.Product
	if err := s.gw.Get(ctx, "/products/"+id, &product); err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	var list catalog.CategoryList
	if err := s.gw.Get(ctx, "/products/categories/list", &list); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return list.Categories, nil
}

func (s *Service) ListBrands(ctx context.Context) ([]string, error) {
	var list catalog.BrandList
	if err := s.gw.Get(ctx, "/products/brands/list", &list); err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return list.Brands, nil
}

// ========== Reviews ==========

// CreateReview posts a review for a product or a pet.
func (s *Service) CreateReview(ctx context.Context, req catalog.CreateReviewRequest) (*catalog.Review, error) {
	var review catalog.Review
	if err := s.gw.Post(ctx, "/reviews", &req, &review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return &review, nil
}

func (s *Service) ProductReviews(ctx context.Context, productID string) ([]catalog.Review, error) {
	var list catalog.ReviewList
	if err := s.gw.Get(ctx, "/reviews/product/"+productID, &list); err != nil {
		return nil, fmt.Errorf("failed to list product reviews: %w", err)
	}
	return list.Reviews, nil
}

func (s *Service) PetReviews(ctx context.Context, petID string) ([]catalog.Review, error) {
	var list catalog.ReviewList
	if err := s.gw.Get(ctx, "/reviews/pet/"+petID, &list); err != nil {
		return nil, fmt.Errorf("failed to list pet reviews: %w", err)
	}
	return list.Reviews, nil
}
