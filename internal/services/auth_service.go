package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"resto/internal/errs"
	"resto/internal/models"
	"resto/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token validation for users
// and partners.
type AuthService struct {
	userRepo    repositories.UserRepository
	partnerRepo repositories.PartnerRepository
	jwtSecret   []byte
	tokenDurat  time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, partnerRepo repositories.PartnerRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenDurat:  24 * time.Hour,
	}
}

// RegisterUser hashes the password and saves a new user account.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existing, err := s.userRepo.GetByEmail(user.Email); err == nil && existing != nil {
		return errs.New(errs.Conflict, fmt.Sprintf("email '%s' already registered", user.Email))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	user.Role = models.RoleUser

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return errs.Wrap(errs.Conflict, fmt.Sprintf("email '%s' already registered", user.Email), err)
		}
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// RegisterPartner hashes the password and saves a new partner account.
// Partners start unapproved.
func (s *AuthService) RegisterPartner(partner *models.Partner) error {
	if existing, err := s.partnerRepo.GetByEmail(partner.Email); err == nil && existing != nil {
		return errs.New(errs.Conflict, fmt.Sprintf("email '%s' already registered", partner.Email))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(partner.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	partner.Password = string(hashedPassword)
	partner.Role = models.RolePartner
	partner.IsApproved = false

	if err := s.partnerRepo.Create(partner); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return errs.Wrap(errs.Conflict, fmt.Sprintf("email '%s' already registered", partner.Email), err)
		}
		return fmt.Errorf("failed to register partner: %w", err)
	}
	return nil
}

// LoginUser authenticates a user and returns a JWT token if successful.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", errs.New(errs.Unauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errs.New(errs.Unauthorized, "invalid credentials")
	}
	return s.issueToken(user.ID, user.Email, user.Role)
}

// LoginPartner authenticates a partner and returns a JWT token if successful.
func (s *AuthService) LoginPartner(email, password string) (string, error) {
	partner, err := s.partnerRepo.GetByEmail(email)
	if err != nil {
		return "", errs.New(errs.Unauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(partner.Password), []byte(password)); err != nil {
		return "", errs.New(errs.Unauthorized, "invalid credentials")
	}
	return s.issueToken(partner.ID, partner.Email, partner.Role)
}

func (s *AuthService) issueToken(id, email, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
