package service

import (
	"errors"

	"go-dairy-books/internal/model"
	"go-dairy-books/internal/repository"
	"go-dairy-books/pkg/token"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService registers and authenticates users. Token verification on
// incoming requests lives in middleware.RequireAuth.
type AuthService interface {
	Register(email, password string) (*TokenResponse, error)
	Login(email, password string) (*TokenResponse, error)
}

// TokenResponse is the OAuth2-style bearer token envelope
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a user with a one-way password hash and returns a
// fresh token. The raw password is never stored or re-derived.
func (s *authService) Register(email, password string) (*TokenResponse, error) {
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	user := &model.User{Email: email}
	if err := user.SetPassword(password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authService) Login(email, password string) (*TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *authService) issueToken(user *model.User) (*TokenResponse, error) {
	signed, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}
	return &TokenResponse{AccessToken: signed, TokenType: "bearer"}, nil
}
