package repositories

import (
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"resto/internal/models"

	"github.com/google/uuid"
)

// MockRestaurantRepository is an in-memory implementation of RestaurantRepository.
type MockRestaurantRepository struct {
	restaurants map[string]models.Restaurant
	mu          sync.RWMutex
}

// NewMockRestaurantRepository creates a new instance of MockRestaurantRepository.
func NewMockRestaurantRepository() *MockRestaurantRepository {
	return &MockRestaurantRepository{
		restaurants: make(map[string]models.Restaurant),
	}
}

// GetByID returns a restaurant by its ID.
func (r *MockRestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, fmt.Errorf("restaurant with ID %s: %w", id, ErrNotFound)
	}
	restaurant = cloneRestaurant(restaurant)
	return &restaurant, nil
}

// ListByPartner returns the restaurants owned by a partner, newest first.
func (r *MockRestaurantRepository) ListByPartner(partnerID string) ([]models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Restaurant, 0)
	for _, restaurant := range r.restaurants {
		if restaurant.PartnerID == partnerID {
			list = append(list, cloneRestaurant(restaurant))
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// Create adds a new restaurant.
func (r *MockRestaurantRepository) Create(restaurant *models.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	restaurant.CreatedAt = time.Now()
	restaurant.UpdatedAt = restaurant.CreatedAt
	r.restaurants[restaurant.ID] = cloneRestaurant(*restaurant)
	return nil
}

// Update replaces an existing restaurant.
func (r *MockRestaurantRepository) Update(restaurant *models.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.restaurants[restaurant.ID]; !ok {
		return fmt.Errorf("restaurant with ID %s for update: %w", restaurant.ID, ErrNotFound)
	}
	restaurant.UpdatedAt = time.Now()
	r.restaurants[restaurant.ID] = cloneRestaurant(*restaurant)
	return nil
}

func cloneRestaurant(r models.Restaurant) models.Restaurant {
	r.Cuisine = slices.Clone(r.Cuisine)
	r.Type = slices.Clone(r.Type)
	r.Dietary = slices.Clone(r.Dietary)
	r.Features = slices.Clone(r.Features)
	r.AmbiencePhotos = slices.Clone(r.AmbiencePhotos)
	r.RestaurantMenu = slices.Clone(r.RestaurantMenu)
	return r
}
