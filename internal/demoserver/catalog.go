// internal/demoserver/catalog.go
package demoserver

import (
	"net/http"
	"strconv"
	"strings"

	"petbloom/internal/domain/catalog"
	"petbloom/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// The catalog GET tree mixes static segments (/pets/species/list) with
// id lookups (/pets/:id), which gin's router cannot hold side by side.
// Both trees hang off a single catch-all and dispatch here instead.

// ListPets handles GET /pets.
func (s *Server) ListPets(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	pets := s.store.listPets(c.Query("species"), c.Query("breed"), limit)
	c.JSON(http.StatusOK, gin.H{"pets": pets})
}

// PetSubtree handles GET /pets/*path: species list, breed list, or a
// single pet by id.
func (s *Server) PetSubtree(c *gin.Context) {
	segments := splitPath(c.Param("path"))
	switch {
	case len(segments) == 0:
		s.ListPets(c)
	case len(segments) == 2 && segments[0] == "species" && segments[1] == "list":
		c.JSON(http.StatusOK, gin.H{"species": s.store.species()})
	case len(segments) == 2 && segments[0] == "breeds":
		c.JSON(http.StatusOK, gin.H{"breeds": s.store.breeds(segments[1])})
	case len(segments) == 1:
		pet := s.store.pet(segments[0])
		if pet == nil {
			response.NotFound(c, "Pet not found")
			return
		}
		c.JSON(http.StatusOK, pet)
	default:
		response.NotFound(c, "Not found")
	}
}

// ListProducts handles GET /products.
func (s *Server) ListProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products := s.store.listProducts(c.Query("category"), c.Query("brand"), limit)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// ProductSubtree handles GET /products/*path: category list, brand list,
// or a single product by id.
func (s *Server) ProductSubtree(c *gin.Context) {
	segments := splitPath(c.Param("path"))
	switch {
	case len(segments) == 0:
		s.ListProducts(c)
	case len(segments) == 2 && segments[0] == "categories" && segments[1] == "list":
		c.JSON(http.StatusOK, gin.H{"categories": s.store.categories()})
	case len(segments) == 2 && segments[0] == "brands" && segments[1] == "list":
		c.JSON(http.StatusOK, gin.H{"brands": s.store.brands()})
	case len(segments) == 1:
		product := s.store.product(segments[0])
		if product == nil {
			response.NotFound(c, "Product not found")
			return
		}
		c.JSON(http.StatusOK, product)
	default:
		response.NotFound(c, "Not found")
	}
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// ========== Reviews ==========

// CreateReview handles POST /reviews (requires auth).
func (s *Server) CreateReview(c *gin.Context) {
	var req catalog.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.ProductID == "" && req.PetID == "" {
		response.BadRequest(c, "productId or petId is required")
		return
	}
	review := s.store.addReview(currentUserID(c), req)
	c.JSON(http.StatusOK, review)
}

// ProductReviews handles GET /reviews/product/:id.
func (s *Server) ProductReviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reviews": s.store.productReviews(c.Param("id"))})
}

// PetReviews handles GET /reviews/pet/:id.
func (s *Server) PetReviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reviews": s.store.petReviews(c.Param("id"))})
}
