package service

import (
	"testing"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (OrderService, *gorm.DB) {
	testDB := newTestDB(t)

	orderRepo := repository.NewOrderRepository(testDB)
	customerRepo := repository.NewCustomerRepository(testDB)
	shopRepo := repository.NewShopRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	orderService := NewOrderService(testDB, orderRepo, customerRepo, shopRepo, productRepo)

	return orderService, testDB
}

func TestOrderService_Create(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")
	shop := seedShop(t, testDB, "Fresh Mart", &keeper.ID)
	buyer := seedCustomer(t, testDB, "buyer")

	tests := []struct {
		name    string
		input   CreateOrderInput
		wantErr error
	}{
		{
			name:    "Valid order",
			input:   CreateOrderInput{CustomerID: buyer.ID, ShopID: shop.ID, TotalPrice: mustPrice(t, "25.00"), Status: model.OrderStatusConfirmed},
			wantErr: nil,
		},
		{
			name:    "Unknown status",
			input:   CreateOrderInput{CustomerID: buyer.ID, ShopID: shop.ID, Status: "cancelled"},
			wantErr: ErrInvalidOrderStatus,
		},
		{
			name:    "Unknown customer",
			input:   CreateOrderInput{CustomerID: 99999, ShopID: shop.ID},
			wantErr: ErrCustomerNotFound,
		},
		{
			name:    "Unknown shop",
			input:   CreateOrderInput{CustomerID: buyer.ID, ShopID: 99999},
			wantErr: ErrShopNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := orderService.Create(tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, order)
			} else {
				require.NoError(t, err)
				require.NotNil(t, order)
				assert.Equal(t, model.OrderStatusConfirmed, order.Status)
			}
		})
	}
}

func TestOrderService_Create_DefaultsToPending(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")
	shop := seedShop(t, testDB, "Fresh Mart", &keeper.ID)
	buyer := seedCustomer(t, testDB, "buyer")

	order, err := orderService.Create(CreateOrderInput{CustomerID: buyer.ID, ShopID: shop.ID, TotalPrice: mustPrice(t, "10.00")})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)
}

func TestOrderService_Update(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")
	shop := seedShop(t, testDB, "Fresh Mart", &keeper.ID)
	buyer := seedCustomer(t, testDB, "buyer")
	order := seedOrder(t, testDB, buyer, shop)

	// Status moves freely between the enumerated values
	updated, err := orderService.Update(order.ID, UpdateOrderInput{Status: model.OrderStatusDelivered})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, updated.Status)

	updated, err = orderService.Update(order.ID, UpdateOrderInput{Status: model.OrderStatusPending})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, updated.Status)

	_, err = orderService.Update(order.ID, UpdateOrderInput{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)

	newTotal := mustPrice(t, "42.00")
	updated, err = orderService.Update(order.ID, UpdateOrderInput{TotalPrice: &newTotal})
	require.NoError(t, err)
	assert.True(t, updated.TotalPrice.Equal(newTotal.Decimal))

	_, err = orderService.Update(99999, UpdateOrderInput{})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_Delete_RemovesItems(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")
	shop := seedShop(t, testDB, "Fresh Mart", &keeper.ID)
	buyer := seedCustomer(t, testDB, "buyer")
	product := seedProduct(t, testDB, shop, keeper, "Honey", "12.50")

	order := seedOrder(t, testDB, buyer, shop)
	require.NoError(t, testDB.Create(&model.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 2, Price: mustPrice(t, "12.50")}).Error)

	require.NoError(t, orderService.Delete(order.ID))

	assert.EqualValues(t, 0, countRows(t, testDB, &model.Order{}))
	assert.EqualValues(t, 0, countRows(t, testDB, &model.OrderItem{}))
	assert.EqualValues(t, 1, countRows(t, testDB, &model.Product{}))

	err := orderService.Delete(99999)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_Items(t *testing.T) {
	orderService, testDB := setupOrderServiceTest(t)

	keeper := seedShopkeeper(t, testDB, "keeper")
	shop := seedShop(t, testDB, "Fresh Mart", &keeper.ID)
	buyer := seedCustomer(t, testDB, "buyer")
	product := seedProduct(t, testDB, shop, keeper, "Honey", "12.50")
	order := seedOrder(t, testDB, buyer, shop)

	item, err := orderService.CreateItem(CreateOrderItemInput{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  2,
		Price:     mustPrice(t, "12.50"),
	})
	require.NoError(t, err)
	assert.NotZero(t, item.ID)

	_, err = orderService.CreateItem(CreateOrderItemInput{OrderID: 99999, ProductID: product.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = orderService.CreateItem(CreateOrderItemInput{OrderID: order.ID, ProductID: 99999, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductNotFound)

	newQuantity := 5
	updated, err := orderService.UpdateItem(item.ID, UpdateOrderItemInput{Quantity: &newQuantity})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	items, err := orderService.ListItems()
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.NoError(t, orderService.DeleteItem(item.ID))
	_, err = orderService.GetItemByID(item.ID)
	assert.ErrorIs(t, err, ErrOrderItemNotFound)
}
