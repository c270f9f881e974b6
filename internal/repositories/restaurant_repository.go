package repositories

import "resto/internal/models"

// RestaurantRepository defines the interface for restaurant data access.
type RestaurantRepository interface {
	GetByID(id string) (*models.Restaurant, error)
	ListByPartner(partnerID string) ([]models.Restaurant, error)
	Create(restaurant *models.Restaurant) error
	Update(restaurant *models.Restaurant) error
}
