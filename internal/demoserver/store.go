// internal/demoserver/store.go
package demoserver

import (
	"sort"
	"sync"
	"time"

	"petbloom/internal/domain/catalog"
	"petbloom/internal/domain/commerce"

	"github.com/oklog/ulid/v2"
)

// userRecord is the demo server's account row.
type userRecord struct {
	ID           string
	Email        string
	FullName     string
	Phone        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// memoryStore holds all demo data. Everything lives in process memory;
// restarting the server resets the world, which is the point of a demo
// backend.
type memoryStore struct {
	mu        sync.RWMutex
	users     map[string]*userRecord // keyed by id
	pets      map[string]*catalog.Pet
	products  map[string]*catalog.Product
	reviews   map[string]*catalog.Review
	cart      map[string]*commerce.CartItem
	wishlist  map[string]*commerce.WishlistItem
	orders    map[string]*commerce.Order
	addresses map[string]*commerce.Address
	messages  map[string]*commerce.Message
}

func newMemoryStore() *memoryStore {
	s := &memoryStore{
		users:     make(map[string]*userRecord),
		pets:      make(map[string]*catalog.Pet),
		products:  make(map[string]*catalog.Product),
		reviews:   make(map[string]*catalog.Review),
		cart:      make(map[string]*commerce.CartItem),
		wishlist:  make(map[string]*commerce.WishlistItem),
		orders:    make(map[string]*commerce.Order),
		addresses: make(map[string]*commerce.Address),
		messages:  make(map[string]*commerce.Message),
	}
	s.seed()
	return s
}

func newID() string {
	return ulid.Make().String()
}

// seed loads the starter catalog, mirroring the fixtures the original
// demo backend shipped with.
func (s *memoryStore) seed() {
	pets := []*catalog.Pet{
		{ID: newID(), Name: "Buddy", Species: "dog", Breed: "Golden Retriever", Age: 2, Gender: "male", Price: 350, Description: "Friendly and energetic, great with kids.", Available: true},
		{ID: newID(), Name: "Luna", Species: "cat", Breed: "Siamese", Age: 1, Gender: "female", Price: 200, Description: "Curious and vocal lap cat.", Available: true},
		{ID: newID(), Name: "Max", Species: "dog", Breed: "Beagle", Age: 3, Gender: "male", Price: 280, Description: "Gentle hound who loves long walks.", Available: true},
		{ID: newID(), Name: "Coco", Species: "bird", Breed: "Cockatiel", Age: 1, Gender: "female", Price: 90, Description: "Whistles back when you whistle first.", Available: true},
		{ID: newID(), Name: "Nala", Species: "cat", Breed: "Maine Coon", Age: 2, Gender: "female", Price: 320, Description: "Big, calm and endlessly patient.", Available: true},
		{ID: newID(), Name: "Rocky", Species: "dog", Breed: "German Shepherd", Age: 4, Gender: "male", Price: 400, Description: "Loyal and well trained.", Available: false},
	}
	for _, p := range pets {
		p.CreatedAt = time.Now()
		s.pets[p.ID] = p
	}

	products := []*catalog.Product{
		{ID: newID(), Name: "Premium Dog Food 10kg", Category: "food", Brand: "PawFuel", Price: 45.99, Stock: 40, Description: "Grain-free kibble for adult dogs."},
		{ID: newID(), Name: "Cat Scratching Post", Category: "furniture", Brand: "WhiskerWorks", Price: 29.5, Stock: 15, Description: "Sisal post with a perch on top."},
		{ID: newID(), Name: "Rope Chew Toy", Category: "toys", Brand: "PawFuel", Price: 7.25, Stock: 120, Description: "Tough braided rope for heavy chewers."},
		{ID: newID(), Name: "Bird Cage Large", Category: "housing", Brand: "FeatherHome", Price: 89.0, Stock: 8, Description: "Powder-coated cage with two perches."},
		{ID: newID(), Name: "Flea & Tick Shampoo", Category: "health", Brand: "VetCare", Price: 12.75, Stock: 60, Description: "Gentle formula, vet approved."},
		{ID: newID(), Name: "Cat Litter 20L", Category: "health", Brand: "WhiskerWorks", Price: 18.99, Stock: 55, Description: "Clumping, low-dust litter."},
	}
	for _, p := range products {
		p.CreatedAt = time.Now()
		s.products[p.ID] = p
	}
}

// ========== Users ==========

func (s *memoryStore) userByEmail(email string) *userRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *memoryStore) userByID(id string) *userRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id]
}

func (s *memoryStore) addUser(u *userRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// ========== Catalog ==========

func (s *memoryStore) listPets(species, breed string, limit int) []catalog.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Pet, 0, len(s.pets))
	for _, p := range s.pets {
		if species != "" && p.Species != species {
			continue
		}
		if breed != "" && p.Breed != breed {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *memoryStore) pet(id string) *catalog.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.pets[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

func (s *memoryStore) species() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinct(s.pets, func(p *catalog.Pet) string { return p.Species })
}

func (s *memoryStore) breeds(species string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	var out []string
	for _, p := range s.pets {
		if p.Species != species || p.Breed == "" || seen[p.Breed] {
			continue
		}
		seen[p.Breed] = true
		out = append(out, p.Breed)
	}
	sort.Strings(out)
	return out
}

func (s *memoryStore) listProducts(category, brand string, limit int) []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if brand != "" && p.Brand != brand {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *memoryStore) product(id string) *catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.products[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

func (s *memoryStore) categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinct(s.products, func(p *catalog.Product) string { return p.Category })
}

func (s *memoryStore) brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinct(s.products, func(p *catalog.Product) string { return p.Brand })
}

func distinct[T any](m map[string]T, key func(T) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range m {
		k := key(v)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
