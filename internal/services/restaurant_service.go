package services

import (
	"context"
	"fmt"

	"resto/internal/errs"
	"resto/internal/models"
	"resto/internal/repositories"
	"resto/internal/storage"
	"resto/internal/upload"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// RestaurantFiles holds the photos uploaded with a restaurant request.
type RestaurantFiles struct {
	Cover    upload.File
	Ambience []upload.File
}

// RestaurantService handles business logic related to restaurants.
type RestaurantService struct {
	restaurants repositories.RestaurantRepository
	uploads     *upload.Manager
	events      EventPublisher
	validate    *validator.Validate
}

// NewRestaurantService creates a new RestaurantService. events may be nil.
func NewRestaurantService(restaurants repositories.RestaurantRepository, uploads *upload.Manager, events EventPublisher) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		uploads:     uploads,
		events:      events,
		validate:    NewValidator(),
	}
}

// GetRestaurant retrieves a single restaurant by its ID.
func (s *RestaurantService) GetRestaurant(id string) (*models.Restaurant, error) {
	restaurant, err := s.restaurants.GetByID(id)
	if err != nil {
		return nil, lookupError(err, "Restaurant not found")
	}
	return restaurant, nil
}

// ListPartnerRestaurants retrieves the restaurants owned by a partner.
func (s *RestaurantService) ListPartnerRestaurants(partnerID string) ([]models.Restaurant, error) {
	return s.restaurants.ListByPartner(partnerID)
}

// CreateRestaurant creates a restaurant owned by partnerID. Every photo
// stored for the request is removed again if creation fails.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, partnerID string, in RestaurantInput, files RestaurantFiles) (*models.Restaurant, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, ValidationError(err)
	}

	sess := s.uploads.Begin()
	defer sess.Close(ctx)

	restaurant := &models.Restaurant{
		PartnerID:      partnerID,
		CoverPhoto:     models.DefaultCoverPhoto,
		Cuisine:        []string{},
		Type:           []string{},
		Dietary:        []string{},
		Features:       []string{},
		RestaurantMenu: datatypes.JSON("[]"),
		AmbiencePhotos: []string{},
	}

	if files.Cover != nil {
		path, err := sess.Accept(ctx, files.Cover, upload.GalleryFormats)
		if err != nil {
			return nil, err
		}
		restaurant.CoverPhoto = path
	}
	for _, f := range files.Ambience {
		path, err := sess.Accept(ctx, f, upload.GalleryFormats)
		if err != nil {
			return nil, err
		}
		restaurant.AmbiencePhotos = append(restaurant.AmbiencePhotos, path)
	}

	if err := in.applyTo(restaurant); err != nil {
		return nil, err
	}
	restaurant.IsCompleteInfo = true

	if err := s.restaurants.Create(restaurant); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}
	sess.Commit(ctx)

	publish(s.events, "restaurant.created", map[string]interface{}{
		"restaurantID": restaurant.ID,
		"partnerID":    restaurant.PartnerID,
	})
	return restaurant, nil
}

// UpdateRestaurant applies a partial update to a restaurant owned by
// partnerID. Replaced photos are removed only after the record is saved;
// newly stored photos are removed if the update fails.
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id, partnerID string, in RestaurantInput, files RestaurantFiles) (*models.Restaurant, error) {
	restaurant, err := s.restaurants.GetByID(id)
	if err != nil {
		return nil, lookupError(err, "Restaurant not found")
	}
	if restaurant.PartnerID != partnerID {
		return nil, errs.New(errs.Forbidden, "Unauthorized to update this restaurant")
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, ValidationError(err)
	}

	sess := s.uploads.Begin()
	defer sess.Close(ctx)

	if err := in.applyTo(restaurant); err != nil {
		return nil, err
	}

	if files.Cover != nil {
		path, err := sess.Accept(ctx, files.Cover, upload.ProfileFormats)
		if err != nil {
			return nil, err
		}
		if storage.RelativePath(restaurant.CoverPhoto) != models.DefaultCoverPhoto {
			sess.Supersede(restaurant.CoverPhoto)
		}
		restaurant.CoverPhoto = path
	}

	if len(files.Ambience) > 0 {
		paths := make([]string, 0, len(files.Ambience))
		for _, f := range files.Ambience {
			path, err := sess.Accept(ctx, f, upload.ProfileFormats)
			if err != nil {
				return nil, err
			}
			paths = append(paths, path)
		}
		for _, old := range restaurant.AmbiencePhotos {
			sess.Supersede(old)
		}
		restaurant.AmbiencePhotos = paths
	}

	restaurant.IsCompleteInfo = true
	if err := s.restaurants.Update(restaurant); err != nil {
		return nil, fmt.Errorf("failed to update restaurant %s: %w", restaurant.ID, err)
	}
	sess.Commit(ctx)

	publish(s.events, "restaurant.updated", map[string]interface{}{
		"restaurantID": restaurant.ID,
		"partnerID":    restaurant.PartnerID,
	})
	return restaurant, nil
}
