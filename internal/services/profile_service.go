package services

import (
	"context"
	"errors"
	"fmt"

	"resto/internal/errs"
	"resto/internal/models"
	"resto/internal/repositories"
	"resto/internal/upload"

	"github.com/go-playground/validator/v10"
)

// UserProfileInput holds the fields a user may change. A nil field was not
// supplied and is left unchanged; a supplied name or email must be valid,
// so neither can be cleared.
type UserProfileInput struct {
	FullName *string `json:"fullName" validate:"omitnil,min=2,max=100"`
	Email    *string `json:"email" validate:"omitnil,email,max=255"`
}

// PartnerProfileInput holds the fields a partner may change. An empty
// contact clears it.
type PartnerProfileInput struct {
	FullName *string `json:"fullName" validate:"omitnil,min=2,max=100"`
	Contact  *string `json:"contact" validate:"omitempty,max=32"`
}

// ProfileService updates account profiles.
type ProfileService struct {
	users    repositories.UserRepository
	partners repositories.PartnerRepository
	uploads  *upload.Manager
	events   EventPublisher
	validate *validator.Validate
}

// NewProfileService creates a new ProfileService. events may be nil.
func NewProfileService(users repositories.UserRepository, partners repositories.PartnerRepository, uploads *upload.Manager, events EventPublisher) *ProfileService {
	return &ProfileService{
		users:    users,
		partners: partners,
		uploads:  uploads,
		events:   events,
		validate: NewValidator(),
	}
}

// UpdateUserProfile applies a partial update to the user's profile. The
// avatar, when given, is validated before anything else; a stored avatar
// is removed again if the update fails later on.
func (s *ProfileService) UpdateUserProfile(ctx context.Context, userID string, in UserProfileInput, avatar upload.File) (*models.User, error) {
	sess := s.uploads.Begin()
	defer sess.Close(ctx)

	avatarPath, err := acceptAvatar(ctx, sess, avatar)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, ValidationError(err)
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, lookupError(err, "User not found")
	}

	if in.Email != nil && *in.Email != user.Email {
		existing, err := s.users.GetByEmail(*in.Email)
		if err == nil && existing != nil {
			return nil, errs.New(errs.Conflict, "Email already in use")
		}
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if avatarPath != "" {
		user.Avatar = avatarPath
	}

	if err := s.users.Update(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, errs.Wrap(errs.Conflict, "Email already in use", err)
		}
		return nil, fmt.Errorf("failed to save user profile: %w", err)
	}
	sess.Commit(ctx)

	publish(s.events, "profile.updated", map[string]interface{}{
		"accountID": user.ID,
		"role":      models.RoleUser,
	})
	return user, nil
}

// UpdatePartnerProfile applies a partial update to the partner's profile.
func (s *ProfileService) UpdatePartnerProfile(ctx context.Context, partnerID string, in PartnerProfileInput, avatar upload.File) (*models.Partner, error) {
	sess := s.uploads.Begin()
	defer sess.Close(ctx)

	avatarPath, err := acceptAvatar(ctx, sess, avatar)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, ValidationError(err)
	}

	partner, err := s.partners.GetByID(partnerID)
	if err != nil {
		return nil, lookupError(err, "Partner not found")
	}

	if in.FullName != nil {
		partner.FullName = *in.FullName
	}
	if in.Contact != nil {
		partner.Contact = *in.Contact
	}
	if avatarPath != "" {
		partner.Avatar = avatarPath
	}

	if err := s.partners.Update(partner); err != nil {
		return nil, fmt.Errorf("failed to save partner profile: %w", err)
	}
	sess.Commit(ctx)

	publish(s.events, "profile.updated", map[string]interface{}{
		"accountID": partner.ID,
		"role":      models.RolePartner,
	})
	return partner, nil
}

func acceptAvatar(ctx context.Context, sess *upload.Session, avatar upload.File) (string, error) {
	if avatar == nil {
		return "", nil
	}
	return sess.Accept(ctx, avatar, upload.ProfileFormats)
}
