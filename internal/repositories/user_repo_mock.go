package repositories

import (
	"fmt"
	"sync"
	"time"

	"resto/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("email %s: %w", user.Email, ErrDuplicate)
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

// GetByEmail returns a user by their email.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

// Update replaces an existing user.
func (r *MockUserRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user with ID %s for update: %w", user.ID, ErrNotFound)
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return fmt.Errorf("email %s: %w", user.Email, ErrDuplicate)
		}
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

// MockPartnerRepository is an in-memory implementation of PartnerRepository.
type MockPartnerRepository struct {
	partners map[string]models.Partner
	mu       sync.RWMutex
}

// NewMockPartnerRepository creates a new instance of MockPartnerRepository.
func NewMockPartnerRepository() *MockPartnerRepository {
	return &MockPartnerRepository{
		partners: make(map[string]models.Partner),
	}
}

// Create adds a new partner.
func (r *MockPartnerRepository) Create(partner *models.Partner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.partners {
		if p.Email == partner.Email {
			return fmt.Errorf("email %s: %w", partner.Email, ErrDuplicate)
		}
	}
	if partner.ID == "" {
		partner.ID = uuid.New().String()
	}
	partner.CreatedAt = time.Now()
	partner.UpdatedAt = partner.CreatedAt
	r.partners[partner.ID] = *partner
	return nil
}

// GetByID returns a partner by their ID.
func (r *MockPartnerRepository) GetByID(id string) (*models.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	partner, ok := r.partners[id]
	if !ok {
		return nil, fmt.Errorf("partner with ID %s: %w", id, ErrNotFound)
	}
	return &partner, nil
}

// GetByEmail returns a partner by their email.
func (r *MockPartnerRepository) GetByEmail(email string) (*models.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.partners {
		if p.Email == email {
			partner := p
			return &partner, nil
		}
	}
	return nil, fmt.Errorf("partner with email %s: %w", email, ErrNotFound)
}

// Update replaces an existing partner.
func (r *MockPartnerRepository) Update(partner *models.Partner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.partners[partner.ID]; !ok {
		return fmt.Errorf("partner with ID %s for update: %w", partner.ID, ErrNotFound)
	}
	for id, p := range r.partners {
		if id != partner.ID && p.Email == partner.Email {
			return fmt.Errorf("email %s: %w", partner.Email, ErrDuplicate)
		}
	}
	partner.UpdatedAt = time.Now()
	r.partners[partner.ID] = *partner
	return nil
}
