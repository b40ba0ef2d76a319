package service

import (
	"context"
	"testing"
	"time"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (AuthService, *gorm.DB) {
	testDB := newTestDB(t)

	userRepo := repository.NewUserRepository(testDB)
	authService := NewAuthService(
		testDB,
		userRepo,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)
	return authService, testDB
}

func TestAuthService_Register(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		role     model.UserRole
		wantErr  error
	}{
		{
			name:     "Valid customer registration",
			userName: "alice",
			email:    "alice@example.com",
			password: "password123",
			role:     model.RoleCustomer,
			wantErr:  nil,
		},
		{
			name:     "Valid shopkeeper registration",
			userName: "bob",
			email:    "bob@example.com",
			password: "password123",
			role:     model.RoleShopkeeper,
			wantErr:  nil,
		},
		{
			name:     "Valid admin registration",
			userName: "root",
			email:    "root@example.com",
			password: "password123",
			role:     model.RoleAdmin,
			wantErr:  nil,
		},
		{
			name:     "Duplicate email",
			userName: "alice2",
			email:    "alice@example.com",
			password: "password123",
			role:     model.RoleCustomer,
			wantErr:  ErrEmailAlreadyExists,
		},
		{
			name:     "Duplicate name",
			userName: "alice",
			email:    "alice-other@example.com",
			password: "password123",
			role:     model.RoleCustomer,
			wantErr:  ErrNameAlreadyExists,
		},
		{
			name:     "Unknown role",
			userName: "carol",
			email:    "carol@example.com",
			password: "password123",
			role:     "superuser",
			wantErr:  ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Register(tt.userName, tt.email, tt.password, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.role, user.Role)
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)
			}
		})
	}
}

func TestAuthService_Register_CreatesRoleProfile(t *testing.T) {
	authService, testDB := setupAuthServiceTest(t)

	keeper, _, err := authService.Register("bob", "bob@example.com", "password123", model.RoleShopkeeper)
	require.NoError(t, err)

	var shopkeeper model.Shopkeeper
	require.NoError(t, testDB.Where("user_id = ?", keeper.ID).First(&shopkeeper).Error)
	assert.Equal(t, model.ApprovalPending, shopkeeper.ApprovalStatus)

	buyer, _, err := authService.Register("alice", "alice@example.com", "password123", model.RoleCustomer)
	require.NoError(t, err)

	var customer model.Customer
	require.NoError(t, testDB.Where("user_id = ?", buyer.ID).First(&customer).Error)

	// Admins get neither profile
	admin, _, err := authService.Register("root", "root@example.com", "password123", model.RoleAdmin)
	require.NoError(t, err)

	err = testDB.Where("user_id = ?", admin.ID).First(&model.Shopkeeper{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	err = testDB.Where("user_id = ?", admin.ID).First(&model.Customer{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAuthService_Login(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, _, err := authService.Register("alice", "alice@example.com", "password123", model.RoleCustomer)
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid login",
			email:    "alice@example.com",
			password: "password123",
			wantErr:  nil,
		},
		{
			name:     "Wrong password",
			email:    "alice@example.com",
			password: "wrongpassword",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "nobody@example.com",
			password: "password123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	_, tokens, err := authService.Register("alice", "alice@example.com", "password123", model.RoleCustomer)
	require.NoError(t, err)

	newTokens, err := authService.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, newTokens.AccessToken)
	assert.NotEmpty(t, newTokens.RefreshToken)

	claims, err := util.ValidateToken(newTokens.RefreshToken, "test-jwt-secret")
	require.NoError(t, err)
	assert.Equal(t, util.TokenTypeRefresh, claims.TokenType)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	_, tokens, err := authService.Register("alice", "alice@example.com", "password123", model.RoleCustomer)
	require.NoError(t, err)

	_, err = authService.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)
	ctx := context.Background()

	_, err := authService.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuthService_Refresh_UserDeleted(t *testing.T) {
	authService, testDB := setupAuthServiceTest(t)
	ctx := context.Background()

	user, tokens, err := authService.Register("alice", "alice@example.com", "password123", model.RoleCustomer)
	require.NoError(t, err)

	require.NoError(t, testDB.Where("user_id = ?", user.ID).Delete(&model.Customer{}).Error)
	require.NoError(t, testDB.Delete(&model.User{}, user.ID).Error)

	_, err = authService.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

// Verifies that issued pairs carry the right token types end to end.
func TestAuthService_TokenTypes(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	_, tokens, err := authService.Register("alice", "alice@example.com", "password123", model.RoleCustomer)
	require.NoError(t, err)

	accessClaims, err := util.ValidateToken(tokens.AccessToken, "test-jwt-secret")
	require.NoError(t, err)
	assert.Equal(t, util.TokenTypeAccess, accessClaims.TokenType)

	refreshClaims, err := util.ValidateToken(tokens.RefreshToken, "test-jwt-secret")
	require.NoError(t, err)
	assert.Equal(t, util.TokenTypeRefresh, refreshClaims.TokenType)
}
