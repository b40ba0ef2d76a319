package service

import (
	"testing"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Shared seed helpers for the service tests. Rows are inserted directly so
// individual tests exercise only the service under test.

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB
}

func mustPrice(t *testing.T, s string) model.Price {
	t.Helper()

	p, err := model.ParsePrice(s)
	require.NoError(t, err)
	return p
}

func seedUser(t *testing.T, testDB *gorm.DB, name string, role model.UserRole) *model.User {
	t.Helper()

	user := &model.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hashed",
		Role:         role,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func seedShopkeeper(t *testing.T, testDB *gorm.DB, name string) *model.Shopkeeper {
	t.Helper()

	user := seedUser(t, testDB, name, model.RoleShopkeeper)
	shopkeeper := &model.Shopkeeper{UserID: user.ID, ApprovalStatus: model.ApprovalApproved}
	require.NoError(t, testDB.Create(shopkeeper).Error)
	return shopkeeper
}

func seedCustomer(t *testing.T, testDB *gorm.DB, name string) *model.Customer {
	t.Helper()

	user := seedUser(t, testDB, name, model.RoleCustomer)
	customer := &model.Customer{UserID: user.ID, ApprovalStatus: model.ApprovalApproved}
	require.NoError(t, testDB.Create(customer).Error)
	return customer
}

func seedShop(t *testing.T, testDB *gorm.DB, name string, ownerID *uint) *model.Shop {
	t.Helper()

	shop := &model.Shop{Name: name, Status: model.ShopStatusActive, OwnerID: ownerID}
	require.NoError(t, testDB.Create(shop).Error)
	return shop
}

func seedProduct(t *testing.T, testDB *gorm.DB, shop *model.Shop, keeper *model.Shopkeeper, name, price string) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:      name,
		Price:     mustPrice(t, price),
		ShopID:    shop.ID,
		AddedByID: keeper.ID,
	}
	require.NoError(t, testDB.Create(product).Error)
	return product
}

func seedOrder(t *testing.T, testDB *gorm.DB, customer *model.Customer, shop *model.Shop) *model.Order {
	t.Helper()

	order := &model.Order{
		CustomerID: customer.ID,
		ShopID:     shop.ID,
		TotalPrice: mustPrice(t, "10.00"),
		Status:     model.OrderStatusPending,
	}
	require.NoError(t, testDB.Create(order).Error)
	return order
}

func countRows(t *testing.T, testDB *gorm.DB, value interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, testDB.Model(value).Count(&count).Error)
	return count
}
