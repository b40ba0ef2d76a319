package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func setupShopControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	shopRepo := repository.NewShopRepository(testDB)
	shopkeeperRepo := repository.NewShopkeeperRepository(testDB)
	shopService := service.NewShopService(testDB, shopRepo, shopkeeperRepo)
	ctrl := NewShopController(shopService)

	router := gin.New()
	router.GET("/shops", ctrl.List)
	router.POST("/shops", ctrl.Create)
	router.GET("/shops/:id", ctrl.Get)
	router.PUT("/shops/:id", ctrl.Update)
	router.DELETE("/shops/:id", ctrl.Delete)

	return router, testDB
}

func seedShopkeeperRow(t *testing.T, testDB *gorm.DB, name string) *model.Shopkeeper {
	t.Helper()

	user := &model.User{Name: name, Email: name + "@example.com", PasswordHash: "hashed", Role: model.RoleShopkeeper}
	require.NoError(t, testDB.Create(user).Error)
	shopkeeper := &model.Shopkeeper{UserID: user.ID, ApprovalStatus: model.ApprovalApproved}
	require.NoError(t, testDB.Create(shopkeeper).Error)
	return shopkeeper
}

func TestShopController_Create(t *testing.T) {
	router, testDB := setupShopControllerTest(t)

	keeper := seedShopkeeperRow(t, testDB, "keeper")

	w := postJSON(t, router, "/shops", map[string]interface{}{
		"name":          "Fresh Mart",
		"address":       "12 Market Street",
		"status":        "active",
		"owner_id":      keeper.ID,
		"shopkeeper_id": keeper.ID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotNil(t, response["shop"])
	shop := response["shop"].(map[string]interface{})
	assert.Equal(t, "Fresh Mart", shop["name"])
}

// A shopkeeper already staffing a shop cannot be assigned to a second one;
// the uniqueness violation is a client error and responds 400.
func TestShopController_Create_DuplicateAssignment(t *testing.T) {
	router, testDB := setupShopControllerTest(t)

	keeper := seedShopkeeperRow(t, testDB, "keeper")

	w := postJSON(t, router, "/shops", map[string]interface{}{
		"name":          "First Shop",
		"shopkeeper_id": keeper.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/shops", map[string]interface{}{
		"name":          "Second Shop",
		"shopkeeper_id": keeper.ID,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "SHOPKEEPER_ALREADY_ASSIGNED", response["error"])
	assert.Equal(t, "Shopkeeper is already assigned to a shop", response["message"])
}

func TestShopController_Create_InvalidStatus(t *testing.T) {
	router, _ := setupShopControllerTest(t)

	w := postJSON(t, router, "/shops", map[string]interface{}{
		"name":   "Fresh Mart",
		"status": "closed",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShopController_Update_UnknownShopkeeperID(t *testing.T) {
	router, testDB := setupShopControllerTest(t)

	keeper := seedShopkeeperRow(t, testDB, "keeper")

	w := postJSON(t, router, "/shops", map[string]interface{}{
		"name":          "Fresh Mart",
		"shopkeeper_id": keeper.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	shopID := uint(response["shop"].(map[string]interface{})["id"].(float64))

	body, err := json.Marshal(map[string]interface{}{
		"shopkeeper_ids": []uint{keeper.ID, 99999},
	})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/shops/"+itoa(shopID), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShopController_Get_NotFound(t *testing.T) {
	router, _ := setupShopControllerTest(t)

	req := httptest.NewRequest("GET", "/shops/99999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
