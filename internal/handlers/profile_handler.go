package handlers

import (
	"resto/internal/middleware"
	"resto/internal/services"
	"resto/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles profile updates for users and partners.
type ProfileHandler struct {
	profiles *services.ProfileService
	urls     storage.URLRenderer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *services.ProfileService, urls storage.URLRenderer) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, urls: urls}
}

// RegisterRoutes registers the profile routes. auth must populate the caller id.
func (h *ProfileHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Put("/user/profile", auth, h.HandleUpdateUserProfile)
	router.Put("/partner/profile", auth, h.HandleUpdatePartnerProfile)
}

// HandleUpdateUserProfile updates the caller's user profile.
func (h *ProfileHandler) HandleUpdateUserProfile(c *fiber.Ctx) error {
	form, err := newFormReader(c)
	if err != nil {
		return err
	}
	in := services.UserProfileInput{
		FullName: form.value("fullName"),
		Email:    form.value("email"),
	}

	user, err := h.profiles.UpdateUserProfile(c.UserContext(), middleware.CallerID(c), in, form.file("avatar"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Update Profile Successfully",
		"user": userProfileResponse{
			FullName: user.FullName,
			Avatar:   h.urls.Render(user.Avatar),
			Email:    user.Email,
		},
	})
}

// HandleUpdatePartnerProfile updates the caller's partner profile.
func (h *ProfileHandler) HandleUpdatePartnerProfile(c *fiber.Ctx) error {
	form, err := newFormReader(c)
	if err != nil {
		return err
	}
	in := services.PartnerProfileInput{
		FullName: form.value("fullName"),
		Contact:  form.value("contact"),
	}

	partner, err := h.profiles.UpdatePartnerProfile(c.UserContext(), middleware.CallerID(c), in, form.file("avatar"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Update Profile Successfully",
		"user": partnerProfileResponse{
			FullName: partner.FullName,
			Avatar:   h.urls.Render(partner.Avatar),
			Contact:  partner.Contact,
		},
	})
}
