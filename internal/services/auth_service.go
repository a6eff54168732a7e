package services

import (
	"errors"
	"fmt"

	"stockcheck_backend/internal/database"
	"stockcheck_backend/internal/models"
	"stockcheck_backend/internal/repositories"
	"stockcheck_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrStaffNotFound      = errors.New("staff account not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- DTOs ---

type RegisterStaffRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Staff       *models.StaffAccount `json:"staff"`
	AccessToken string               `json:"access_token"`
}

// --- AuthService Interface ---
type AuthService interface {
	Register(req RegisterStaffRequest) (*models.StaffAccount, error)
	Login(req LoginRequest) (*AuthResponse, error)
	GetProfile(staffID int64) (*models.StaffAccount, error)
}

type authService struct {
	authRepo repositories.AuthRepository
	store    *database.DB
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository, store *database.DB) AuthService {
	return &authService{authRepo: authRepo, store: store}
}

func (s *authService) Register(req RegisterStaffRequest) (*models.StaffAccount, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.StaffAccount{
		Username: req.Username,
		FullName: req.FullName,
	}
	if _, err := s.authRepo.CreateAccount(s.store.Conn(), account, string(hashedPasswordBytes)); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrUsernameExists, req.Username)
		}
		return nil, fmt.Errorf("failed to register staff account: %w", err)
	}
	return account, nil
}

func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	account, hashedPassword, err := s.authRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up staff account: %w", err)
	}
	if !account.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(account.ID, account.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &AuthResponse{Staff: account, AccessToken: token}, nil
}

func (s *authService) GetProfile(staffID int64) (*models.StaffAccount, error) {
	account, err := s.authRepo.FindByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to load staff profile: %w", err)
	}
	return account, nil
}
