package repositories

import (
	"errors"
	"fmt"

	"resto/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %s: %w", user.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// Update saves every field of an existing user.
func (r *GORMUserRepository) Update(user *models.User) error {
	res := r.db.Model(user).Select("*").Updates(user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %s: %w", user.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s for update: %w", user.ID, ErrNotFound)
	}
	return nil
}

// GORMPartnerRepository is a GORM implementation of PartnerRepository.
type GORMPartnerRepository struct {
	db *gorm.DB
}

// NewGORMPartnerRepository creates a new instance of GORMPartnerRepository.
func NewGORMPartnerRepository(db *gorm.DB) *GORMPartnerRepository {
	return &GORMPartnerRepository{
		db: db,
	}
}

// Create creates a new partner in the database.
func (r *GORMPartnerRepository) Create(partner *models.Partner) error {
	if partner.ID == "" {
		partner.ID = uuid.New().String()
	}
	if err := r.db.Create(partner).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %s: %w", partner.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

// GetByID retrieves a partner by their ID from the database.
func (r *GORMPartnerRepository) GetByID(id string) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.First(&partner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("partner with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get partner by ID %s: %w", id, err)
	}
	return &partner, nil
}

// GetByEmail retrieves a partner by their email from the database.
func (r *GORMPartnerRepository) GetByEmail(email string) (*models.Partner, error) {
	var partner models.Partner
	if err := r.db.First(&partner, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("partner with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get partner by email %s: %w", email, err)
	}
	return &partner, nil
}

// Update saves every field of an existing partner.
func (r *GORMPartnerRepository) Update(partner *models.Partner) error {
	res := r.db.Model(partner).Select("*").Updates(partner)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email %s: %w", partner.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to update partner: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("partner with ID %s for update: %w", partner.ID, ErrNotFound)
	}
	return nil
}
