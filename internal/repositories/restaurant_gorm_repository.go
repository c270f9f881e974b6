package repositories

import (
	"errors"
	"fmt"

	"resto/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRestaurantRepository is a GORM implementation of RestaurantRepository.
type GORMRestaurantRepository struct {
	db *gorm.DB
}

// NewGORMRestaurantRepository creates a new instance of GORMRestaurantRepository.
func NewGORMRestaurantRepository(db *gorm.DB) *GORMRestaurantRepository {
	return &GORMRestaurantRepository{
		db: db,
	}
}

// GetByID retrieves a single restaurant by its ID from the database.
func (r *GORMRestaurantRepository) GetByID(id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("restaurant with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get restaurant by ID %s: %w", id, err)
	}
	return &restaurant, nil
}

// ListByPartner retrieves the restaurants owned by a partner, newest first.
func (r *GORMRestaurantRepository) ListByPartner(partnerID string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.db.Where("partner_id = ?", partnerID).Order("created_at desc").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("failed to list restaurants of partner %s: %w", partnerID, err)
	}
	return restaurants, nil
}

// Create creates a new restaurant in the database.
func (r *GORMRestaurantRepository) Create(restaurant *models.Restaurant) error {
	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}
	if err := r.db.Create(restaurant).Error; err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

// Update updates an existing restaurant in the database.
func (r *GORMRestaurantRepository) Update(restaurant *models.Restaurant) error {
	res := r.db.Model(restaurant).Select("*").Updates(restaurant) // every column, zero values included
	if res.Error != nil {
		return fmt.Errorf("failed to update restaurant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("restaurant with ID %s for update: %w", restaurant.ID, ErrNotFound)
	}
	return nil
}
