package repository

import (
	"testing"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductTest(t *testing.T) (*gorm.DB, ProductRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewProductRepository(testDB)
	return testDB, repo
}

func mustPrice(t *testing.T, s string) model.Price {
	t.Helper()
	p, err := model.ParsePrice(s)
	require.NoError(t, err)
	return p
}

// seedShopWithKeeper creates the user, shopkeeper and shop rows a product
// needs to satisfy its foreign keys.
func seedShopWithKeeper(t *testing.T, testDB *gorm.DB, shopName string) (*model.Shop, *model.Shopkeeper) {
	t.Helper()

	user := &model.User{
		Name:         shopName + "-keeper",
		Email:        shopName + "-keeper@example.com",
		PasswordHash: "hashed",
		Role:         model.RoleShopkeeper,
	}
	require.NoError(t, testDB.Create(user).Error)

	shopkeeper := &model.Shopkeeper{UserID: user.ID, ApprovalStatus: model.ApprovalApproved}
	require.NoError(t, testDB.Create(shopkeeper).Error)

	shop := &model.Shop{Name: shopName, Status: model.ShopStatusActive, OwnerID: &shopkeeper.ID}
	require.NoError(t, testDB.Create(shop).Error)

	return shop, shopkeeper
}

func TestProductRepository_Create(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	shop, keeper := seedShopWithKeeper(t, testDB, "Fresh Mart")

	product := &model.Product{
		Name:          "Organic Honey",
		Description:   "Raw wildflower honey, 500g jar",
		Price:         mustPrice(t, "12.50"),
		StockQuantity: 40,
		ShopID:        shop.ID,
		AddedByID:     keeper.ID,
	}

	err := repo.Create(product)
	assert.NoError(t, err)
	assert.NotZero(t, product.ID)
}

func TestProductRepository_FindAll(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	shop, keeper := seedShopWithKeeper(t, testDB, "Fresh Mart")

	products := []model.Product{
		{Name: "Honey", Price: mustPrice(t, "12.50"), ShopID: shop.ID, AddedByID: keeper.ID},
		{Name: "Olive Oil", Price: mustPrice(t, "8.99"), ShopID: shop.ID, AddedByID: keeper.ID},
	}
	for i := range products {
		require.NoError(t, repo.Create(&products[i]))
	}

	found, err := repo.FindAll()
	assert.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestProductRepository_FindWithFilter(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	freshMart, freshKeeper := seedShopWithKeeper(t, testDB, "Fresh Mart")
	techHub, techKeeper := seedShopWithKeeper(t, testDB, "Tech Hub")

	products := []model.Product{
		{Name: "Organic Honey", Description: "Raw wildflower honey", Price: mustPrice(t, "12.50"), ShopID: freshMart.ID, AddedByID: freshKeeper.ID},
		{Name: "Olive Oil", Description: "Cold pressed extra virgin", Price: mustPrice(t, "8.99"), ShopID: freshMart.ID, AddedByID: freshKeeper.ID},
		{Name: "USB Cable", Description: "Braided 2m charging cable", Price: mustPrice(t, "5.00"), ShopID: techHub.ID, AddedByID: techKeeper.ID},
		{Name: "Mechanical Keyboard", Description: "Hot swappable switches", Price: mustPrice(t, "120.00"), ShopID: techHub.ID, AddedByID: techKeeper.ID},
	}
	for i := range products {
		require.NoError(t, repo.Create(&products[i]))
	}

	min50 := mustPrice(t, "5.00")
	max10 := mustPrice(t, "10.00")
	min100 := mustPrice(t, "100.00")

	tests := []struct {
		name      string
		filter    ProductFilter
		wantNames []string
	}{
		{
			name:      "No criteria returns everything",
			filter:    ProductFilter{},
			wantNames: []string{"Organic Honey", "Olive Oil", "USB Cable", "Mechanical Keyboard"},
		},
		{
			name:      "Name substring is case-insensitive",
			filter:    ProductFilter{Name: "HONEY"},
			wantNames: []string{"Organic Honey"},
		},
		{
			name:      "Description substring",
			filter:    ProductFilter{Description: "pressed"},
			wantNames: []string{"Olive Oil"},
		},
		{
			name:      "Min price is inclusive",
			filter:    ProductFilter{MinPrice: &min100},
			wantNames: []string{"Mechanical Keyboard"},
		},
		{
			name:      "Max price is inclusive",
			filter:    ProductFilter{MaxPrice: &max10},
			wantNames: []string{"Olive Oil", "USB Cable"},
		},
		{
			name:      "Shop name matches through the join",
			filter:    ProductFilter{ShopName: "tech"},
			wantNames: []string{"USB Cable", "Mechanical Keyboard"},
		},
		{
			name:      "Criteria compose conjunctively",
			filter:    ProductFilter{ShopName: "tech", MinPrice: &min50, MaxPrice: &max10},
			wantNames: []string{"USB Cable"},
		},
		{
			name:      "No match returns empty slice",
			filter:    ProductFilter{Name: "nonexistent"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := repo.FindWithFilter(tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(found))
			for _, p := range found {
				names = append(names, p.Name)
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}
}

func TestProductRepository_FindByID(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	shop, keeper := seedShopWithKeeper(t, testDB, "Fresh Mart")

	product := &model.Product{
		Name:      "Honey",
		Price:     mustPrice(t, "12.50"),
		ShopID:    shop.ID,
		AddedByID: keeper.ID,
	}
	require.NoError(t, repo.Create(product))

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.Name, found.Name)
	assert.Equal(t, shop.ID, found.Shop.ID)
	require.NotNil(t, found.AddedBy)
	assert.Equal(t, keeper.ID, found.AddedBy.ID)

	_, err = repo.FindByID(99999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductRepository_Update(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	shop, keeper := seedShopWithKeeper(t, testDB, "Fresh Mart")

	product := &model.Product{
		Name:      "Honey",
		Price:     mustPrice(t, "12.50"),
		ShopID:    shop.ID,
		AddedByID: keeper.ID,
	}
	require.NoError(t, repo.Create(product))

	product.Price = mustPrice(t, "14.00")
	product.StockQuantity = 25
	require.NoError(t, repo.Update(product))

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.True(t, found.Price.Equal(mustPrice(t, "14.00").Decimal))
	assert.Equal(t, 25, found.StockQuantity)
}

func TestProductRepository_Delete(t *testing.T) {
	testDB, repo := setupProductTest(t)
	defer db.CleanupTestDB(testDB)

	shop, keeper := seedShopWithKeeper(t, testDB, "Fresh Mart")

	product := &model.Product{
		Name:      "Honey",
		Price:     mustPrice(t, "12.50"),
		ShopID:    shop.ID,
		AddedByID: keeper.ID,
	}
	require.NoError(t, repo.Create(product))

	require.NoError(t, repo.Delete(product.ID))

	_, err := repo.FindByID(product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
