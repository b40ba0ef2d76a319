package service

import (
	"context"
	"errors"
	"time"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/pkg/logger"
	"github.com/asiburrahmanprince/ecommerce/pkg/redis"
	"github.com/asiburrahmanprince/ecommerce/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrNameAlreadyExists   = errors.New("name already exists")
	ErrInvalidRole         = errors.New("role must be one of admin, shopkeeper, customer")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
)

type AuthService interface {
	Register(name, email, password string, role model.UserRole) (*model.User, *util.TokenPair, error)
	Login(email, password string) (*model.User, *util.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*util.TokenPair, error)
}

type authService struct {
	db            *gorm.DB
	userRepo      repository.UserRepository
	jwtSecret     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewAuthService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	jwtSecret string,
	accessExpiry, refreshExpiry time.Duration,
) AuthService {
	return &authService{
		db:            db,
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (s *authService) Register(name, email, password string, role model.UserRole) (*model.User, *util.TokenPair, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"email": email,
		"name":  name,
		"role":  role,
	})

	if !model.ValidRole(role) {
		logger.Warn("Registration failed: invalid role", map[string]interface{}{
			"email": email,
			"role":  role,
		})
		return nil, nil, ErrInvalidRole
	}

	// Check uniqueness of email and name up front
	existingUser, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing email", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}
	if existingUser != nil {
		logger.Warn("Registration failed: email already exists", map[string]interface{}{
			"email": email,
		})
		return nil, nil, ErrEmailAlreadyExists
	}

	existingUser, err = s.userRepo.FindByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing name", err, map[string]interface{}{
			"name": name,
		})
		return nil, nil, err
	}
	if existingUser != nil {
		logger.Warn("Registration failed: name already exists", map[string]interface{}{
			"name": name,
		})
		return nil, nil, ErrNameAlreadyExists
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	// User and its specialization row are created atomically
	tx := s.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin registration transaction", tx.Error, map[string]interface{}{
			"email": email,
		})
		return nil, nil, tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Transaction rolled back due to panic during registration", nil, map[string]interface{}{
				"email": email,
				"panic": r,
			})
		}
	}()

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	switch role {
	case model.RoleShopkeeper:
		shopkeeper := &model.Shopkeeper{UserID: user.ID}
		if err := tx.Create(shopkeeper).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to create shopkeeper profile", err, map[string]interface{}{
				"user_id": user.ID,
			})
			return nil, nil, err
		}
		user.Shopkeeper = shopkeeper
	case model.RoleCustomer:
		customer := &model.Customer{UserID: user.ID}
		if err := tx.Create(customer).Error; err != nil {
			tx.Rollback()
			logger.Error("Failed to create customer profile", err, map[string]interface{}{
				"user_id": user.ID,
			})
			return nil, nil, err
		}
		user.Customer = customer
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to commit registration transaction", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
			"email":   email,
		})
		return nil, nil, err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})

	return user, tokens, nil
}

func (s *authService) Login(email, password string) (*model.User, *util.TokenPair, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err, map[string]interface{}{
			"email": email,
		})
		return nil, nil, err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email":   email,
			"user_id": user.ID,
		})
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens", err, map[string]interface{}{
			"user_id": user.ID,
			"email":   email,
		})
		return nil, nil, err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})

	return user, tokens, nil
}

// Refresh validates a refresh token and issues a fresh token pair. The old
// refresh token is blacklisted until its natural expiry so it cannot be
// replayed. Blacklisting requires Redis; without it rotation still happens
// but old tokens stay valid until they expire.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*util.TokenPair, error) {
	logger.Debug("Refreshing token pair")

	claims, err := util.ValidateToken(refreshToken, s.jwtSecret)
	if err != nil {
		logger.Warn("Refresh failed: token validation error", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, ErrInvalidRefreshToken
	}

	if claims.TokenType != util.TokenTypeRefresh {
		logger.Warn("Refresh failed: not a refresh token", map[string]interface{}{
			"user_id":    claims.UserID,
			"token_type": claims.TokenType,
		})
		return nil, ErrInvalidRefreshToken
	}

	if redis.IsEnabled() {
		blacklisted, err := redis.IsTokenBlacklisted(ctx, refreshToken)
		if err != nil {
			logger.Error("Failed to check refresh token blacklist", err, map[string]interface{}{
				"user_id": claims.UserID,
			})
			return nil, err
		}
		if blacklisted {
			logger.Warn("Refresh failed: token has been revoked", map[string]interface{}{
				"user_id": claims.UserID,
			})
			return nil, ErrRefreshTokenRevoked
		}
	}

	// The user may have been deleted since the token was issued
	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Refresh failed: user no longer exists", map[string]interface{}{
				"user_id": claims.UserID,
			})
			return nil, ErrInvalidRefreshToken
		}
		logger.Error("Failed to fetch user for refresh", err, map[string]interface{}{
			"user_id": claims.UserID,
		})
		return nil, err
	}

	tokens, err := util.GenerateTokenPair(
		user.ID,
		user.Email,
		string(user.Role),
		s.jwtSecret,
		s.accessExpiry,
		s.refreshExpiry,
	)
	if err != nil {
		logger.Error("Failed to generate tokens on refresh", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, err
	}

	if redis.IsEnabled() {
		ttl := time.Until(claims.ExpiresAt.Time)
		if ttl > 0 {
			if err := redis.BlacklistToken(ctx, refreshToken, ttl); err != nil {
				logger.Error("Failed to blacklist rotated refresh token", err, map[string]interface{}{
					"user_id": user.ID,
				})
				return nil, err
			}
		}
	}

	logger.Info("Token pair refreshed", map[string]interface{}{
		"user_id": user.ID,
	})

	return tokens, nil
}
