package repositories

import "resto/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// PartnerRepository defines the interface for partner data access.
type PartnerRepository interface {
	Create(partner *models.Partner) error
	GetByID(id string) (*models.Partner, error)
	GetByEmail(email string) (*models.Partner, error)
	Update(partner *models.Partner) error
}
