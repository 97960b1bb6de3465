package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lionhard83/sample-server-tests/internal/crypto"
	"github.com/lionhard83/sample-server-tests/internal/model"
	"github.com/lionhard83/sample-server-tests/internal/repository"
)

var (
	// ErrInvalidCredentials deliberately covers unknown email, wrong password,
	// and a still-unverified account, so login failures never reveal which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token not valid")
	ErrEmailTaken         = errors.New("email is already present")
)

// AuthService implements the account lifecycle: signup, verification,
// login, and token-based identity resolution. Accounts move from pending
// (verification code set) to verified (code cleared) and never back.
type AuthService struct {
	repo       repository.AccountRepository
	jwtSecret  string
	jwtExpiry  time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo repository.AccountRepository, secret string, expiry time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		repo:       repo,
		jwtSecret:  secret,
		jwtExpiry:  expiry,
		bcryptCost: bcryptCost,
	}
}

// Signup registers a new pending account and returns its public projection.
// The response never carries the password hash or the verification code.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.UserResponse, error) {
	hash, err := crypto.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return model.UserResponse{}, err
	}

	code, err := crypto.GenerateCode()
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Surname:          req.Surname,
		Email:            req.Email,
		PasswordHash:     hash,
		VerificationCode: code,
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return user.Public(), nil
}

// Verify consumes a verification code, moving the account to verified.
// The code resolves exactly once; a second call with the same code fails
// with ErrInvalidToken, indistinguishable from a code that never existed.
func (s *AuthService) Verify(ctx context.Context, code string) error {
	user, err := s.repo.FindByVerificationCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	user.VerificationCode = ""
	return s.repo.Save(ctx, user)
}

// Login authenticates a verified account and issues a signed token
// embedding the user's identity claims.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !user.Verified() {
		return "", ErrInvalidCredentials
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(crypto.Identity{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Surname: user.Surname,
	}, s.jwtSecret, s.jwtExpiry)
}

// WhoAmI resolves a bearer token to the public projection of its subject.
// A token whose subject no longer exists fails the same way as a tampered
// one.
func (s *AuthService) WhoAmI(ctx context.Context, token string) (model.UserResponse, error) {
	claims, err := crypto.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return model.UserResponse{}, ErrInvalidToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrInvalidToken
		}
		return model.UserResponse{}, err
	}

	return user.Public(), nil
}
