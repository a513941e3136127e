// internal/domain/catalog/dto.go
package catalog

// PetFilter narrows ListPets results. Zero values mean "no filter".
type PetFilter struct {
	Species string
	Breed   string
	Limit   int
}

// ProductFilter narrows ListProducts results. Zero values mean "no filter".
type ProductFilter struct {
	Category string
	Brand    string
	Limit    int
}

// PetList is the wire envelope for pet listings.
type PetList struct {
	Pets []Pet `json:"pets"`
}

// ProductList is the wire envelope for product listings.
type ProductList struct {
	Products []Product `json:"products"`
}

// SpeciesList is the wire envelope for the species filter options.
type SpeciesList struct {
	Species []string `json:"species"`
}

// BreedList is the wire envelope for the breed filter options.
type BreedList struct {
	Breeds []string `json:"breeds"`
}

// CategoryList is the wire envelope for the category filter options.
type CategoryList struct {
	Categories []string `json:"categories"`
}

// BrandList is the wire envelope for the brand filter options.
type BrandList struct {
	Brands []string `json:"brands"`
}

// CreateReviewRequest posts a review for a product or a pet.
type CreateReviewRequest struct {
	ProductID string `json:"productId,omitempty"`
	PetID     string `json:"petId,omitempty"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// ReviewList is the wire envelope for review listings.
type ReviewList struct {
	Reviews []Review `json:"reviews"`
}
