package handlers

import (
	"log"

	"resto/internal/middleware"
	"resto/internal/models"
	"resto/internal/services"
	"resto/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// RestaurantHandler handles HTTP requests related to restaurants.
type RestaurantHandler struct {
	restaurants *services.RestaurantService
	urls        storage.URLRenderer
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(restaurants *services.RestaurantService, urls storage.URLRenderer) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants, urls: urls}
}

// RegisterRoutes registers the restaurant routes. Partner routes run auth
// followed by a Partner role gate.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/restaurants/:id", h.HandleGetRestaurant)

	partnerRoutes := router.Group("/partner/restaurants", auth, middleware.RequireRole(models.RolePartner))
	partnerRoutes.Get("/", h.HandleListMyRestaurants)
	partnerRoutes.Post("/", h.HandleCreateRestaurant)
	partnerRoutes.Put("/:id", h.HandleUpdateRestaurant)
}

func readRestaurantForm(c *fiber.Ctx) (services.RestaurantInput, services.RestaurantFiles, error) {
	form, err := newFormReader(c)
	if err != nil {
		return services.RestaurantInput{}, services.RestaurantFiles{}, err
	}
	in := services.RestaurantInput{
		RestaurantName:    form.value("restaurantName"),
		RestaurantAddress: form.value("restaurantAddress"),
		RestaurantContact: form.value("restaurantContact"),
		VoucherMin:        form.value("voucherMin"),
		VoucherMax:        form.value("voucherMax"),
		RestaurantMenu:    form.value("restaurantMenu"),
		About:             form.value("about"),
		OtherServices:     form.value("otherServices"),
		Cuisine:           form.value("cuisine"),
		Type:              form.value("type"),
		Dietary:           form.value("dietary"),
		Features:          form.value("features"),
	}
	files := services.RestaurantFiles{
		Cover:    form.file("coverPhoto"),
		Ambience: form.files("ambiencePhotos"),
	}
	return in, files, nil
}

// HandleCreateRestaurant creates a restaurant owned by the caller.
func (h *RestaurantHandler) HandleCreateRestaurant(c *fiber.Ctx) error {
	in, files, err := readRestaurantForm(c)
	if err != nil {
		return err
	}

	restaurant, err := h.restaurants.CreateRestaurant(c.UserContext(), middleware.CallerID(c), in, files)
	if err != nil {
		log.Printf("Error creating restaurant: %v", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Restaurant added successfully",
		"data":    newRestaurantResponse(restaurant, h.urls),
	})
}

// HandleUpdateRestaurant applies a partial update to one of the caller's restaurants.
func (h *RestaurantHandler) HandleUpdateRestaurant(c *fiber.Ctx) error {
	in, files, err := readRestaurantForm(c)
	if err != nil {
		return err
	}

	restaurant, err := h.restaurants.UpdateRestaurant(c.UserContext(), c.Params("id"), middleware.CallerID(c), in, files)
	if err != nil {
		log.Printf("Error updating restaurant %s: %v", c.Params("id"), err)
		return err
	}

	return c.JSON(fiber.Map{
		"message":    "Restaurant updated successfully",
		"restaurant": newRestaurantResponse(restaurant, h.urls),
	})
}

// HandleGetRestaurant returns a single restaurant.
func (h *RestaurantHandler) HandleGetRestaurant(c *fiber.Ctx) error {
	restaurant, err := h.restaurants.GetRestaurant(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"restaurant": newRestaurantResponse(restaurant, h.urls),
	})
}

// HandleListMyRestaurants returns the caller's restaurants.
func (h *RestaurantHandler) HandleListMyRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.restaurants.ListPartnerRestaurants(middleware.CallerID(c))
	if err != nil {
		log.Printf("Error listing restaurants: %v", err)
		return err
	}

	data := make([]restaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		data = append(data, newRestaurantResponse(&restaurants[i], h.urls))
	}
	return c.JSON(fiber.Map{
		"restaurants": data,
	})
}
