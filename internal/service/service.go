package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/farmsight/server/internal/assistant"
	"github.com/farmsight/server/internal/models"
	"github.com/farmsight/server/internal/repository"
)

// Token types embedded in JWT claims so an access token cannot be replayed
// against the refresh endpoint and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Service defines all the business logic operations.
type Service interface {
	// Authentication
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req models.RefreshRequest) (*models.AuthResponse, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)

	// Farm operations
	CreateFarm(ctx context.Context, userID string, req models.CreateFarmRequest) (*models.Farm, error)
	GetFarm(ctx context.Context, userID, farmID string) (*models.Farm, error)
	ListFarms(ctx context.Context, userID string) ([]models.Farm, error)
	UpdateFarm(ctx context.Context, userID, farmID string, req models.UpdateFarmRequest) (*models.Farm, error)
	DeleteFarm(ctx context.Context, userID, farmID string) error

	// Inventory operations
	CreateInventoryItem(ctx context.Context, userID string, req models.CreateInventoryItemRequest) (*models.InventoryItem, error)
	GetInventoryItem(ctx context.Context, userID, itemID string) (*models.InventoryItem, error)
	ListInventory(ctx context.Context, userID string) ([]models.InventoryItem, error)
	ListFarmInventory(ctx context.Context, userID, farmID string) ([]models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, userID, itemID string, req models.UpdateInventoryItemRequest) (*models.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, userID, itemID string) error

	// Supplier operations
	CreateSupplier(ctx context.Context, userID string, req models.CreateSupplierRequest) (*models.Supplier, error)
	GetSupplier(ctx context.Context, userID, supplierID string) (*models.Supplier, error)
	ListSuppliers(ctx context.Context, userID string) ([]models.Supplier, error)
	UpdateSupplier(ctx context.Context, userID, supplierID string, req models.UpdateSupplierRequest) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, userID, supplierID string) error

	// Activity operations
	CreateActivity(ctx context.Context, userID string, req models.CreateActivityRequest) (*models.Activity, error)
	GetActivity(ctx context.Context, userID, activityID string) (*models.Activity, error)
	ListFarmActivities(ctx context.Context, userID, farmID string) ([]models.Activity, error)
	ListActivities(ctx context.Context, userID string) ([]models.Activity, error)
	UpdateActivityStatus(ctx context.Context, userID, activityID string, req models.UpdateActivityStatusRequest) (*models.Activity, error)

	// Chatbot
	Chat(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error)
	ChatHistory(ctx context.Context, userID string) ([]models.ChatMessage, error)
}

// Options configures a DefaultService.
type Options struct {
	AccessSecret      string
	RefreshSecret     string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
	BcryptCost        int
}

// DefaultService implements the Service interface.
type DefaultService struct {
	repo              repository.Repository
	completer         assistant.Completer
	logger            *zap.Logger
	accessSecret      []byte
	refreshSecret     []byte
	accessExpiration  time.Duration
	refreshExpiration time.Duration
	bcryptCost        int
}

// NewDefaultService creates a new DefaultService. completer may be nil, in
// which case the chatbot reports itself unavailable.
func NewDefaultService(repo repository.Repository, completer assistant.Completer, logger *zap.Logger, opts Options) Service {
	if opts.AccessExpiration == 0 {
		opts.AccessExpiration = 24 * time.Hour
	}
	if opts.RefreshExpiration == 0 {
		opts.RefreshExpiration = 7 * 24 * time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	return &DefaultService{
		repo:              repo,
		completer:         completer,
		logger:            logger,
		accessSecret:      []byte(opts.AccessSecret),
		refreshSecret:     []byte(opts.RefreshSecret),
		accessExpiration:  opts.AccessExpiration,
		refreshExpiration: opts.RefreshExpiration,
		bcryptCost:        opts.BcryptCost,
	}
}

// Claims carries the token type alongside the registered JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

func (s *DefaultService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking user existence: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Email:    email,
		Name:     req.Name,
		Password: string(hash),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))

	return s.authResponse(user)
}

func (s *DefaultService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (s *DefaultService) Refresh(ctx context.Context, req models.RefreshRequest) (*models.AuthResponse, error) {
	claims, err := s.parseToken(req.RefreshToken, s.refreshSecret)
	if err != nil || claims.TokenType != TokenTypeRefresh {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.repo.GetUserByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	return s.authResponse(user)
}

// Authenticate validates an access token and resolves its user.
func (s *DefaultService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.parseToken(token, s.accessSecret)
	if err != nil || claims.TokenType != TokenTypeAccess {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *DefaultService) authResponse(user *models.User) (*models.AuthResponse, error) {
	access, err := s.signToken(user.ID, TokenTypeAccess, s.accessSecret, s.accessExpiration)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	refresh, err := s.signToken(user.ID, TokenTypeRefresh, s.refreshSecret, s.refreshExpiration)
	if err != nil {
		return nil, fmt.Errorf("signing refresh token: %w", err)
	}

	return &models.AuthResponse{
		User: &models.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Token:        access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.accessExpiration.Seconds()),
	}, nil
}

func (s *DefaultService) signToken(userID, tokenType string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *DefaultService) parseToken(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
