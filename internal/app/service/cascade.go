package service

import (
	"errors"

	"github.com/asiburrahmanprince/ecommerce/internal/app/model"
	"gorm.io/gorm"
)

// Cascade helpers shared by the delete paths. Each runs inside the caller's
// transaction and removes child rows before their parent. Shops owned by a
// deleted shopkeeper are kept with a nulled owner rather than removed.

func deleteProductsCascade(tx *gorm.DB, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	if err := tx.Where("product_id IN ?", productIDs).Delete(&model.Review{}).Error; err != nil {
		return err
	}
	if err := tx.Where("product_id IN ?", productIDs).Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", productIDs).Delete(&model.Product{}).Error
}

func deleteOrdersCascade(tx *gorm.DB, orderIDs []uint) error {
	if len(orderIDs) == 0 {
		return nil
	}
	if err := tx.Where("order_id IN ?", orderIDs).Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", orderIDs).Delete(&model.Order{}).Error
}

func deleteShopCascade(tx *gorm.DB, shopID uint) error {
	var productIDs []uint
	if err := tx.Model(&model.Product{}).Where("shop_id = ?", shopID).Pluck("id", &productIDs).Error; err != nil {
		return err
	}
	if err := deleteProductsCascade(tx, productIDs); err != nil {
		return err
	}

	var orderIDs []uint
	if err := tx.Model(&model.Order{}).Where("shop_id = ?", shopID).Pluck("id", &orderIDs).Error; err != nil {
		return err
	}
	if err := deleteOrdersCascade(tx, orderIDs); err != nil {
		return err
	}

	if err := tx.Where("shop_id = ?", shopID).Delete(&model.ShopAssignment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Shop{}, shopID).Error
}

func deleteShopkeeperCascade(tx *gorm.DB, shopkeeperID uint) error {
	if err := tx.Model(&model.Shop{}).Where("owner_id = ?", shopkeeperID).Update("owner_id", nil).Error; err != nil {
		return err
	}
	if err := tx.Where("shopkeeper_id = ?", shopkeeperID).Delete(&model.ShopAssignment{}).Error; err != nil {
		return err
	}

	var productIDs []uint
	if err := tx.Model(&model.Product{}).Where("added_by_id = ?", shopkeeperID).Pluck("id", &productIDs).Error; err != nil {
		return err
	}
	if err := deleteProductsCascade(tx, productIDs); err != nil {
		return err
	}
	return tx.Delete(&model.Shopkeeper{}, shopkeeperID).Error
}

func deleteCustomerCascade(tx *gorm.DB, customerID uint) error {
	if err := tx.Where("customer_id = ?", customerID).Delete(&model.Review{}).Error; err != nil {
		return err
	}

	var orderIDs []uint
	if err := tx.Model(&model.Order{}).Where("customer_id = ?", customerID).Pluck("id", &orderIDs).Error; err != nil {
		return err
	}
	if err := deleteOrdersCascade(tx, orderIDs); err != nil {
		return err
	}
	return tx.Delete(&model.Customer{}, customerID).Error
}

func deleteUserCascade(tx *gorm.DB, userID uint) error {
	var shopkeeper model.Shopkeeper
	if err := tx.Where("user_id = ?", userID).First(&shopkeeper).Error; err == nil {
		if err := deleteShopkeeperCascade(tx, shopkeeper.ID); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var customer model.Customer
	if err := tx.Where("user_id = ?", userID).First(&customer).Error; err == nil {
		if err := deleteCustomerCascade(tx, customer.ID); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return tx.Delete(&model.User{}, userID).Error
}
