package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/asiburrahmanprince/ecommerce/config"
	"github.com/asiburrahmanprince/ecommerce/internal/app/controller"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/asiburrahmanprince/ecommerce/internal/app/service"
	"github.com/asiburrahmanprince/ecommerce/internal/db"
	"github.com/asiburrahmanprince/ecommerce/internal/middleware"
	"github.com/asiburrahmanprince/ecommerce/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const integrationSecret = "integration-test-secret"

// setupIntegrationTest wires the full stack against an in-memory database,
// the same way cmd/server does.
func setupIntegrationTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	shopkeeperRepo := repository.NewShopkeeperRepository(testDB)
	customerRepo := repository.NewCustomerRepository(testDB)
	shopRepo := repository.NewShopRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	reviewRepo := repository.NewReviewRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)

	authService := service.NewAuthService(testDB, userRepo, integrationSecret, 15*time.Minute, 7*24*time.Hour)
	userService := service.NewUserService(testDB, userRepo)
	shopkeeperService := service.NewShopkeeperService(testDB, shopkeeperRepo, userRepo)
	customerService := service.NewCustomerService(testDB, customerRepo, userRepo)
	shopService := service.NewShopService(testDB, shopRepo, shopkeeperRepo)
	productService := service.NewProductService(testDB, productRepo, shopRepo, shopkeeperRepo)
	reviewService := service.NewReviewService(reviewRepo, productRepo, customerRepo)
	orderService := service.NewOrderService(testDB, orderRepo, customerRepo, shopRepo, productRepo)

	cfg := &config.Config{}
	cfg.Server.GinMode = gin.TestMode
	cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	r := router.NewRouter(
		controller.NewAuthController(authService),
		controller.NewUserController(userService),
		controller.NewShopController(shopService),
		controller.NewShopkeeperController(shopkeeperService),
		controller.NewCustomerController(customerService),
		controller.NewProductController(productService),
		controller.NewReviewController(reviewService),
		controller.NewOrderController(orderService),
		middleware.NewAuthMiddleware(integrationSecret),
		cfg,
	)
	return r.Setup()
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	response := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func TestHealthEndpoint(t *testing.T) {
	engine := setupIntegrationTest(t)

	w, response := doJSON(t, engine, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", response["status"])
}

// Walks the whole marketplace flow: accounts, a shop, its catalog, a review
// and an order with one line item.
func TestMarketplaceFlow(t *testing.T) {
	engine := setupIntegrationTest(t)

	// Register a shopkeeper and a customer
	w, response := doJSON(t, engine, "POST", "/api/v1/register", "", map[string]interface{}{
		"name":     "keeper",
		"email":    "keeper@example.com",
		"password": "password123",
		"role":     "shopkeeper",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	keeperToken := response["tokens"].(map[string]interface{})["access_token"].(string)
	keeper := response["user"].(map[string]interface{})
	keeperProfileID := uint(keeper["shopkeeper"].(map[string]interface{})["id"].(float64))

	w, response = doJSON(t, engine, "POST", "/api/v1/register", "", map[string]interface{}{
		"name":     "buyer",
		"email":    "buyer@example.com",
		"password": "password123",
		"role":     "customer",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	buyerToken := response["tokens"].(map[string]interface{})["access_token"].(string)
	buyer := response["user"].(map[string]interface{})
	buyerProfileID := uint(buyer["customer"].(map[string]interface{})["id"].(float64))

	// The keeper opens a shop and staffs it
	w, response = doJSON(t, engine, "POST", "/api/v1/shops", keeperToken, map[string]interface{}{
		"name":          "Fresh Mart",
		"address":       "12 Market Street",
		"status":        "active",
		"owner_id":      keeperProfileID,
		"shopkeeper_id": keeperProfileID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	shopID := uint(response["shop"].(map[string]interface{})["id"].(float64))

	// Catalog
	w, response = doJSON(t, engine, "POST", "/api/v1/products", keeperToken, map[string]interface{}{
		"name":           "Organic Honey",
		"description":    "Raw wildflower honey",
		"price":          "12.50",
		"stock_quantity": 40,
		"shop":           shopID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	productID := uint(response["product"].(map[string]interface{})["id"].(float64))

	// The customer finds it by shop name
	w, response = doJSON(t, engine, "GET", "/api/v1/products/search?shop_name=fresh", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, response["count"])

	// Review
	w, _ = doJSON(t, engine, "POST", "/api/v1/reviews", buyerToken, map[string]interface{}{
		"product":  productID,
		"customer": buyerProfileID,
		"rating":   5,
		"comment":  "excellent",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Order with one line item
	w, response = doJSON(t, engine, "POST", "/api/v1/orders", buyerToken, map[string]interface{}{
		"customer":    buyerProfileID,
		"shop":        shopID,
		"total_price": "25.00",
		"status":      "pending",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(response["order"].(map[string]interface{})["id"].(float64))

	w, _ = doJSON(t, engine, "POST", "/api/v1/order-items", buyerToken, map[string]interface{}{
		"order":    orderID,
		"product":  productID,
		"quantity": 2,
		"price":    "12.50",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Deleting the shop takes the whole scope with it
	w, _ = doJSON(t, engine, "DELETE", fmt.Sprintf("/api/v1/shops/%d", shopID), keeperToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, response = doJSON(t, engine, "GET", "/api/v1/products", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, response["count"])

	w, response = doJSON(t, engine, "GET", "/api/v1/orders", buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, response["count"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := setupIntegrationTest(t)

	paths := []string{
		"/api/v1/users",
		"/api/v1/shops",
		"/api/v1/shopkeepers",
		"/api/v1/customers",
		"/api/v1/products",
		"/api/v1/reviews",
		"/api/v1/orders",
		"/api/v1/order-items",
	}

	for _, path := range paths {
		w, _ := doJSON(t, engine, "GET", path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
