package main

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/asiburrahmanprince/ecommerce/config"
	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"github.com/asiburrahmanprince/ecommerce/internal/db"
	"github.com/asiburrahmanprince/ecommerce/pkg/util"
)

// Seeds the database with an admin account and a small demo data set for
// local development. Safe to run repeatedly: existing rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	gdb := db.GetDB()

	admin, err := seedUser(gdb, "admin", "admin@example.com", "admin1234", model.RoleAdmin)
	if err != nil {
		log.Fatal("Failed to seed admin:", err)
	}
	admin.IsStaff = true
	admin.IsSuperuser = true
	if err := gdb.Save(admin).Error; err != nil {
		log.Fatal("Failed to update admin flags:", err)
	}

	keeperUser, err := seedUser(gdb, "demo-shopkeeper", "shopkeeper@example.com", "demo1234", model.RoleShopkeeper)
	if err != nil {
		log.Fatal("Failed to seed shopkeeper user:", err)
	}
	shopkeeper, err := seedShopkeeper(gdb, keeperUser.ID)
	if err != nil {
		log.Fatal("Failed to seed shopkeeper:", err)
	}

	customerUser, err := seedUser(gdb, "demo-customer", "customer@example.com", "demo1234", model.RoleCustomer)
	if err != nil {
		log.Fatal("Failed to seed customer user:", err)
	}
	if _, err := seedCustomer(gdb, customerUser.ID); err != nil {
		log.Fatal("Failed to seed customer:", err)
	}

	shop, err := seedShop(gdb, "Demo Shop", "1 Demo Street", shopkeeper.ID)
	if err != nil {
		log.Fatal("Failed to seed shop:", err)
	}

	if err := seedProducts(gdb, shop.ID, shopkeeper.ID); err != nil {
		log.Fatal("Failed to seed products:", err)
	}

	fmt.Println("Seed completed successfully!")
}

func seedUser(gdb *gorm.DB, name, email, password string, role model.UserRole) (*model.User, error) {
	var existing model.User
	err := gdb.Where("email = ?", email).First(&existing).Error
	if err == nil {
		fmt.Printf("User %s already exists, skipping\n", email)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := gdb.Create(user).Error; err != nil {
		return nil, err
	}

	fmt.Printf("Created user %s (%s)\n", email, role)
	return user, nil
}

func seedShopkeeper(gdb *gorm.DB, userID uint) (*model.Shopkeeper, error) {
	var existing model.Shopkeeper
	err := gdb.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	shopkeeper := &model.Shopkeeper{
		UserID:         userID,
		ApprovalStatus: model.ApprovalApproved,
	}
	if err := gdb.Create(shopkeeper).Error; err != nil {
		return nil, err
	}
	return shopkeeper, nil
}

func seedCustomer(gdb *gorm.DB, userID uint) (*model.Customer, error) {
	var existing model.Customer
	err := gdb.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer := &model.Customer{
		UserID:         userID,
		ApprovalStatus: model.ApprovalApproved,
	}
	if err := gdb.Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func seedShop(gdb *gorm.DB, name, address string, ownerID uint) (*model.Shop, error) {
	var existing model.Shop
	err := gdb.Where("name = ?", name).First(&existing).Error
	if err == nil {
		fmt.Printf("Shop %s already exists, skipping\n", name)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	shop := &model.Shop{
		Name:    name,
		Address: address,
		Status:  model.ShopStatusActive,
		OwnerID: &ownerID,
	}
	if err := gdb.Create(shop).Error; err != nil {
		return nil, err
	}

	assignment := &model.ShopAssignment{
		ShopID:       shop.ID,
		ShopkeeperID: ownerID,
	}
	if err := gdb.Create(assignment).Error; err != nil {
		return nil, err
	}

	fmt.Printf("Created shop %s\n", name)
	return shop, nil
}

func seedProducts(gdb *gorm.DB, shopID, shopkeeperID uint) error {
	var count int64
	if err := gdb.Model(&model.Product{}).Where("shop_id = ?", shopID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Products already exist, skipping")
		return nil
	}

	samples := []struct {
		name        string
		description string
		price       string
		stock       int
	}{
		{"Sample Widget", "A basic widget for demos", "19.99", 25},
		{"Sample Gadget", "A slightly fancier gadget", "49.50", 10},
		{"Sample Gizmo", "Top of the demo line", "120.00", 3},
	}

	for _, sample := range samples {
		price, err := model.ParsePrice(sample.price)
		if err != nil {
			return err
		}
		product := &model.Product{
			Name:          sample.name,
			Description:   sample.description,
			Price:         price,
			StockQuantity: sample.stock,
			ShopID:        shopID,
			AddedByID:     shopkeeperID,
		}
		if err := gdb.Create(product).Error; err != nil {
			return err
		}
		fmt.Printf("Created product %s\n", sample.name)
	}

	return nil
}
