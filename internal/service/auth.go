package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2bndy5/mk-pass/internal/crypto"
	"github.com/2bndy5/mk-pass/internal/model"
	"github.com/2bndy5/mk-pass/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
)

// AuthService handles account registration and login.
type AuthService struct {
	repo   *repository.AccountRepository
	tokens *crypto.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.AccountRepository, tokens *crypto.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates an account and returns a token for it.
func (s *AuthService) Register(ctx context.Context, req model.CreateAccountRequest) (model.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := model.Validate(req); err != nil {
		return model.AuthResponse{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	account := &model.Account{Email: req.Email, AuthHash: hash}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	return s.authResponse(account)
}

// Login verifies credentials and returns a token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := model.Validate(req); err != nil {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	account, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, account.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(account)
}

// GetAccount returns the public data of an account.
func (s *AuthService) GetAccount(ctx context.Context, accountID int64) (model.AccountResponse, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return model.AccountResponse{}, err
	}
	return toAccountResponse(account), nil
}

func (s *AuthService) authResponse(account *model.Account) (model.AuthResponse, error) {
	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, Account: toAccountResponse(account)}, nil
}

func toAccountResponse(a *model.Account) model.AccountResponse {
	return model.AccountResponse{ID: a.ID, Email: a.Email, CreatedAt: a.CreatedAt}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
