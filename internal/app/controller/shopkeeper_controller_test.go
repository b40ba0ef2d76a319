package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/internal/app/service"
	"github.com/asiburrahmanprince/ecommerce/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupShopkeeperControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	shopkeeperRepo := repository.NewShopkeeperRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	shopkeeperService := service.NewShopkeeperService(testDB, shopkeeperRepo, userRepo)
	ctrl := NewShopkeeperController(shopkeeperService)

	router := gin.New()
	router.POST("/shopkeepers", ctrl.Create)

	return router, testDB
}

func TestShopkeeperController_Create(t *testing.T) {
	router, testDB := setupShopkeeperControllerTest(t)

	user := &model.User{Name: "bob", Email: "bob@example.com", PasswordHash: "hashed", Role: model.RoleShopkeeper}
	require.NoError(t, testDB.Create(user).Error)

	w := postJSON(t, router, "/shopkeepers", CreateShopkeeperRequest{
		Email: "bob@example.com",
		TIN:   "TIN-1001",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

// Linking a second shopkeeper profile to the same user is a uniqueness
// violation and responds 400.
func TestShopkeeperController_Create_AlreadyLinked(t *testing.T) {
	router, testDB := setupShopkeeperControllerTest(t)

	user := &model.User{Name: "bob", Email: "bob@example.com", PasswordHash: "hashed", Role: model.RoleShopkeeper}
	require.NoError(t, testDB.Create(user).Error)

	w := postJSON(t, router, "/shopkeepers", CreateShopkeeperRequest{Email: "bob@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/shopkeepers", CreateShopkeeperRequest{Email: "bob@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "SHOPKEEPER_ALREADY_LINKED", response["error"])
}

func TestShopkeeperController_Create_UnknownEmail(t *testing.T) {
	router, _ := setupShopkeeperControllerTest(t)

	w := postJSON(t, router, "/shopkeepers", CreateShopkeeperRequest{Email: "nobody@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "email not found", response["message"])
}
