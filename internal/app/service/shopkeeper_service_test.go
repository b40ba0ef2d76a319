package service

import (
	"testing"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupShopkeeperServiceTest(t *testing.T) (ShopkeeperService, *gorm.DB) {
	testDB := newTestDB(t)

	shopkeeperRepo := repository.NewShopkeeperRepository(testDB)
	userRepo := repository.NewUserRepository(testDB)
	shopkeeperService := NewShopkeeperService(testDB, shopkeeperRepo, userRepo)

	return shopkeeperService, testDB
}

func TestShopkeeperService_Create(t *testing.T) {
	shopkeeperService, testDB := setupShopkeeperServiceTest(t)

	user := seedUser(t, testDB, "bob", model.RoleShopkeeper)

	shopkeeper, err := shopkeeperService.Create(CreateShopkeeperInput{
		Email: user.Email,
		TIN:   "TIN-1001",
		NID:   "NID-2002",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, shopkeeper.UserID)
	assert.Equal(t, "TIN-1001", shopkeeper.TIN)
	assert.Equal(t, model.ApprovalPending, shopkeeper.ApprovalStatus)
}

func TestShopkeeperService_Create_UnknownEmail(t *testing.T) {
	shopkeeperService, _ := setupShopkeeperServiceTest(t)

	_, err := shopkeeperService.Create(CreateShopkeeperInput{Email: "nobody@example.com"})
	assert.ErrorIs(t, err, ErrUserEmailNotFound)
}

func TestShopkeeperService_Create_AlreadyLinked(t *testing.T) {
	shopkeeperService, testDB := setupShopkeeperServiceTest(t)

	user := seedUser(t, testDB, "bob", model.RoleShopkeeper)

	_, err := shopkeeperService.Create(CreateShopkeeperInput{Email: user.Email})
	require.NoError(t, err)

	_, err = shopkeeperService.Create(CreateShopkeeperInput{Email: user.Email})
	assert.ErrorIs(t, err, ErrShopkeeperAlreadyLinked)
}

func TestShopkeeperService_Update(t *testing.T) {
	shopkeeperService, testDB := setupShopkeeperServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "bob")

	updated, err := shopkeeperService.Update(keeper.ID, UpdateShopkeeperInput{
		TIN:            "TIN-9999",
		ApprovalStatus: model.ApprovalRejected,
	})
	require.NoError(t, err)
	assert.Equal(t, "TIN-9999", updated.TIN)
	assert.Equal(t, model.ApprovalRejected, updated.ApprovalStatus)

	_, err = shopkeeperService.Update(99999, UpdateShopkeeperInput{})
	assert.ErrorIs(t, err, ErrShopkeeperNotFound)
}

func TestShopkeeperService_Delete_Cascades(t *testing.T) {
	shopkeeperService, testDB := setupShopkeeperServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "bob")
	other := seedShopkeeper(t, testDB, "carol")

	owned := seedShop(t, testDB, "Fresh Mart", &keeper.ID)
	require.NoError(t, testDB.Create(&model.ShopAssignment{ShopID: owned.ID, ShopkeeperID: keeper.ID}).Error)
	require.NoError(t, testDB.Create(&model.ShopAssignment{ShopID: owned.ID, ShopkeeperID: other.ID}).Error)

	added := seedProduct(t, testDB, owned, keeper, "Honey", "12.50")
	kept := seedProduct(t, testDB, owned, other, "Olive Oil", "8.99")

	require.NoError(t, shopkeeperService.Delete(keeper.ID))

	// The shop survives with its owner cleared
	var shop model.Shop
	require.NoError(t, testDB.First(&shop, owned.ID).Error)
	assert.Nil(t, shop.OwnerID)

	// Only the deleted keeper's assignment and products go away
	assert.EqualValues(t, 1, countRows(t, testDB, &model.ShopAssignment{}))
	err := testDB.First(&model.Product{}, added.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, testDB.First(&model.Product{}, kept.ID).Error)

	// The user account behind the profile stays
	assert.EqualValues(t, 2, countRows(t, testDB, &model.User{}))
	assert.EqualValues(t, 1, countRows(t, testDB, &model.Shopkeeper{}))
}
