package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ojay234/fullstack-capstone-project/internal/dto"
	"github.com/ojay234/fullstack-capstone-project/internal/models"
	"github.com/ojay234/fullstack-capstone-project/internal/repository"
	"github.com/ojay234/fullstack-capstone-project/internal/token"
)

var (
	ErrEmailTaken    = errors.New("email already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	// ErrForbidden is returned when a presented token identifies a
	// different user than the one being updated.
	ErrForbidden = errors.New("token does not match user")
)

type AuthService struct {
	users  repository.UserRepository
	signer *token.Signer
}

func NewAuthService(users repository.UserRepository, signer *token.Signer) *AuthService {
	return &AuthService{users: users, signer: signer}
}

// Register creates a user with a bcrypt-hashed password and issues a token
// embedding the new identifier. Duplicate emails are rejected before insert.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	authToken, err := s.signer.Sign(id.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	slog.Info("user registered", "email", req.Email)
	return &dto.RegisterResponse{AuthToken: authToken, Email: req.Email}, nil
}

// Login verifies the password against the stored hash and issues a token
// embedding the existing identifier.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrWrongPassword
	}

	authToken, err := s.signer.Sign(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	slog.Info("user logged in", "email", user.Email)
	return &dto.LoginResponse{
		AuthToken: authToken,
		UserName:  user.FirstName,
		UserEmail: user.Email,
	}, nil
}

// UpdateProfile overwrites the name fields of the user addressed by email
// and issues a fresh token. tokenUserID, when non-empty, is the identifier
// taken from a verified bearer token; it must match the target user.
// Callers that present no token keep the legacy header-trust behavior.
func (s *AuthService) UpdateProfile(ctx context.Context, email, firstName, lastName, tokenUserID string) (*dto.UpdateProfileResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if tokenUserID != "" && tokenUserID != user.ID.Hex() {
		return nil, ErrForbidden
	}

	updated, err := s.users.UpdateNames(ctx, email, firstName, lastName)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	authToken, err := s.signer.Sign(updated.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	slog.Info("user profile updated", "email", email)
	return &dto.UpdateProfileResponse{AuthToken: authToken}, nil
}
