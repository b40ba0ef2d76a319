package service

import (
	"testing"
	"time"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupShopServiceTest(t *testing.T) (ShopService, *gorm.DB) {
	testDB := newTestDB(t)

	shopRepo := repository.NewShopRepository(testDB)
	shopkeeperRepo := repository.NewShopkeeperRepository(testDB)
	shopService := NewShopService(testDB, shopRepo, shopkeeperRepo)

	return shopService, testDB
}

func TestShopService_Create(t *testing.T) {
	shopService, testDB := setupShopServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")

	shop, err := shopService.Create(CreateShopInput{
		Name:         "Fresh Mart",
		Address:      "12 Market Street",
		Status:       model.ShopStatusActive,
		OwnerID:      &keeper.ID,
		ShopkeeperID: &keeper.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, shop.ID)
	require.Len(t, shop.Assignments, 1)
	assert.Equal(t, keeper.ID, shop.Assignments[0].ShopkeeperID)
}

func TestShopService_Create_DefaultsToPending(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	shop, err := shopService.Create(CreateShopInput{Name: "Fresh Mart"})
	require.NoError(t, err)
	assert.Equal(t, model.ShopStatusPending, shop.Status)
}

func TestShopService_Create_InvalidStatus(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	_, err := shopService.Create(CreateShopInput{Name: "Fresh Mart", Status: "closed"})
	assert.ErrorIs(t, err, ErrInvalidShopStatus)
}

func TestShopService_Create_UnknownOwner(t *testing.T) {
	shopService, _ := setupShopServiceTest(t)

	missing := uint(99999)
	_, err := shopService.Create(CreateShopInput{Name: "Fresh Mart", OwnerID: &missing})
	assert.ErrorIs(t, err, ErrShopkeeperNotFound)
}

func TestShopService_Create_ShopkeeperAlreadyAssigned(t *testing.T) {
	shopService, testDB := setupShopServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")

	_, err := shopService.Create(CreateShopInput{Name: "Fresh Mart", ShopkeeperID: &keeper.ID})
	require.NoError(t, err)

	_, err = shopService.Create(CreateShopInput{Name: "Corner Store", ShopkeeperID: &keeper.ID})
	assert.ErrorIs(t, err, ErrShopkeeperAlreadyAssigned)
}

func TestShopService_Update_ReplacesAssignments(t *testing.T) {
	shopService, testDB := setupShopServiceTest(t)

	first := seedShopkeeper(t, testDB, "keeper1")
	second := seedShopkeeper(t, testDB, "keeper2")
	third := seedShopkeeper(t, testDB, "keeper3")

	shop, err := shopService.Create(CreateShopInput{Name: "Fresh Mart", ShopkeeperID: &first.ID})
	require.NoError(t, err)

	replacement := []uint{second.ID, third.ID}
	updated, err := shopService.Update(shop.ID, UpdateShopInput{ShopkeeperIDs: &replacement})
	require.NoError(t, err)
	require.Len(t, updated.Assignments, 2)

	var assignments []model.ShopAssignment
	require.NoError(t, testDB.Where("shop_id = ?", shop.ID).Find(&assignments).Error)
	ids := []uint{assignments[0].ShopkeeperID, assignments[1].ShopkeeperID}
	assert.ElementsMatch(t, []uint{second.ID, third.ID}, ids)
}

func TestShopService_Update_EmptyListClearsAssignments(t *testing.T) {
	shopService, testDB := setupShopServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")
	shop, err := shopService.Create(CreateShopInput{Name: "Fresh Mart", ShopkeeperID: &keeper.ID})
	require.NoError(t, err)

	empty := []uint{}
	_, err = shopService.Update(shop.ID, UpdateShopInput{ShopkeeperIDs: &empty})
	require.NoError(t, err)

	assert.EqualValues(t, 0, countRows(t, testDB, &model.ShopAssignment{}))
}

func TestShopService_Update_NilLeavesAssignmentsAlone(t *testing.T) {
	shopService, testDB := setupShopServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")
	shop, err := shopService.Create(CreateShopInput{Name: "Fresh Mart", ShopkeeperID: &keeper.ID})
	require.NoError(t, err)

	updated, err := shopService.Update(shop.ID, UpdateShopInput{Name: "Fresh Mart 2"})
	require.NoError(t, err)
	assert.Equal(t, "Fresh Mart 2", updated.Name)

	assert.EqualValues(t, 1, countRows(t, testDB, &model.ShopAssignment{}))
}

func TestShopService_Update_UnknownShopkeeperRollsBack(t *testing.T) {
	shopService, testDB := setupShopServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")
	shop, err := shopService.Create(CreateShopInput{Name: "Fresh Mart", ShopkeeperID: &keeper.ID})
	require.NoError(t, err)

	bad := []uint{keeper.ID, 99999}
	_, err = shopService.Update(shop.ID, UpdateShopInput{Name: "Renamed", ShopkeeperIDs: &bad})
	assert.ErrorIs(t, err, ErrShopkeeperNotFound)

	// The whole update rolls back, name change included
	found, err := shopService.GetByID(shop.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Mart", found.Name)
	require.Len(t, found.Assignments, 1)
	assert.Equal(t, keeper.ID, found.Assignments[0].ShopkeeperID)
}

func TestShopService_Delete_CascadesShopScope(t *testing.T) {
	shopService, testDB := setupShopServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")
	shop, err := shopService.Create(CreateShopInput{Name: "Fresh Mart", ShopkeeperID: &keeper.ID})
	require.NoError(t, err)

	product := seedProduct(t, testDB, shop, keeper, "Honey", "12.50")
	buyer := seedCustomer(t, testDB, "buyer")
	require.NoError(t, testDB.Create(&model.Review{Rating: 5, ProductID: product.ID, CustomerID: buyer.ID}).Error)
	order := seedOrder(t, testDB, buyer, shop)
	require.NoError(t, testDB.Create(&model.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1, Price: mustPrice(t, "12.50")}).Error)

	require.NoError(t, shopService.Delete(shop.ID))

	assert.EqualValues(t, 0, countRows(t, testDB, &model.Shop{}))
	assert.EqualValues(t, 0, countRows(t, testDB, &model.Product{}))
	assert.EqualValues(t, 0, countRows(t, testDB, &model.Review{}))
	assert.EqualValues(t, 0, countRows(t, testDB, &model.Order{}))
	assert.EqualValues(t, 0, countRows(t, testDB, &model.OrderItem{}))
	assert.EqualValues(t, 0, countRows(t, testDB, &model.ShopAssignment{}))

	// The shopkeeper and customer rows are untouched
	assert.EqualValues(t, 1, countRows(t, testDB, &model.Shopkeeper{}))
	assert.EqualValues(t, 1, countRows(t, testDB, &model.Customer{}))
}

func TestShopService_PurgeStaleDeleted(t *testing.T) {
	shopService, testDB := setupShopServiceTest(t)

	stale, err := shopService.Create(CreateShopInput{Name: "Closed Long Ago", Status: model.ShopStatusDeleted})
	require.NoError(t, err)
	_, err = shopService.Create(CreateShopInput{Name: "Closed Just Now", Status: model.ShopStatusDeleted})
	require.NoError(t, err)
	_, err = shopService.Create(CreateShopInput{Name: "Still Open", Status: model.ShopStatusActive})
	require.NoError(t, err)

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, testDB.Model(&model.Shop{}).Where("id = ?", stale.ID).UpdateColumn("updated_at", old).Error)

	purged, err := shopService.PurgeStaleDeleted(time.Now().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, purged)
	assert.EqualValues(t, 2, countRows(t, testDB, &model.Shop{}))

	var remaining []model.Shop
	require.NoError(t, testDB.Find(&remaining).Error)
	for _, shop := range remaining {
		assert.NotEqual(t, stale.ID, shop.ID)
	}
}
