package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/campushire/jobboard-api/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Register creates a student account and issues its API token.
func (s *AuthService) Register(email, password, fullName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: email %s", ErrConflict, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         models.RoleStudent,
		Token:        uuid.NewString(),
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// EnsureAdmin seeds (or promotes) the admin account named by configuration.
// Creating the account reuses Register's validation; an existing account with
// that email is promoted in place so the seed stays idempotent across
// restarts.
func (s *AuthService) EnsureAdmin(email, password string) (*models.User, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.DB.Where("email = ?", normalized).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created, err := s.Register(email, password, "Administrator")
		if err != nil {
			return nil, err
		}
		created.Role = models.RoleAdmin
		if err := s.DB.Save(created).Error; err != nil {
			return nil, err
		}
		return created, nil
	}
	if err != nil {
		return nil, err
	}

	if user.Role != models.RoleAdmin {
		user.Role = models.RoleAdmin
		if err := s.DB.Save(&user).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// Login verifies credentials and rotates the user's API token.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	}

	user.Token = uuid.NewString()
	if err := s.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByToken resolves an API token to its user.
func (s *AuthService) UserByToken(token string) (*models.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrUnauthorized)
	}
	var user models.User
	err := s.DB.Where("token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: unknown token", ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
