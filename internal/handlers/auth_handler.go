package handlers

import (
	"log"

	"resto/internal/errs"
	"resto/internal/models"
	"resto/internal/services"
	"resto/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	urls        storage.URLRenderer
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, urls storage.URLRenderer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		urls:        urls,
		validate:    services.NewValidator(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/user/register", h.HandleRegisterUser)
	authRoutes.Post("/user/login", h.HandleLoginUser)
	authRoutes.Post("/partner/register", h.HandleRegisterPartner)
	authRoutes.Post("/partner/login", h.HandleLoginPartner)
}

// RegisterUserRequest represents the request body for user registration.
type RegisterUserRequest struct {
	FullName string `json:"fullName" form:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=72"`
}

// RegisterPartnerRequest represents the request body for partner registration.
type RegisterPartnerRequest struct {
	FullName string `json:"fullName" form:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Contact  string `json:"contact" form:"contact" validate:"omitempty,max=32"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// bind parses the request body into dst and validates it.
func (h *AuthHandler) bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return errs.Wrap(errs.MalformedInput, "Invalid request body", err)
	}
	if err := h.validate.Struct(dst); err != nil {
		return services.ValidationError(err)
	}
	return nil
}

// HandleRegisterUser handles new user registration.
func (h *AuthHandler) HandleRegisterUser(c *fiber.Ctx) error {
	var req RegisterUserRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	user := models.User{FullName: req.FullName, Email: req.Email, Password: req.Password}
	if err := h.authService.RegisterUser(&user); err != nil {
		log.Printf("Error registering user: %v", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user": accountResponse{
			ID:         user.ID,
			FullName:   user.FullName,
			Email:      user.Email,
			Role:       user.Role,
			Avatar:     h.urls.Render(user.Avatar),
			IsVerified: user.IsVerified,
		},
	})
}

// HandleRegisterPartner handles new partner registration.
func (h *AuthHandler) HandleRegisterPartner(c *fiber.Ctx) error {
	var req RegisterPartnerRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	partner := models.Partner{FullName: req.FullName, Email: req.Email, Contact: req.Contact, Password: req.Password}
	if err := h.authService.RegisterPartner(&partner); err != nil {
		log.Printf("Error registering partner: %v", err)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Partner registered successfully",
		"partner": accountResponse{
			ID:         partner.ID,
			FullName:   partner.FullName,
			Email:      partner.Email,
			Contact:    partner.Contact,
			Role:       partner.Role,
			Avatar:     h.urls.Render(partner.Avatar),
			IsVerified: partner.IsVerified,
		},
	})
}

// HandleLoginUser handles user login and issues a JWT token.
func (h *AuthHandler) HandleLoginUser(c *fiber.Ctx) error {
	var req LoginRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	token, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for user %s: %v", req.Email, err)
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// HandleLoginPartner handles partner login and issues a JWT token.
func (h *AuthHandler) HandleLoginPartner(c *fiber.Ctx) error {
	var req LoginRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}

	token, err := h.authService.LoginPartner(req.Email, req.Password)
	if err != nil {
		log.Printf("Error during login for partner %s: %v", req.Email, err)
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}
