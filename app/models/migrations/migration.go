package migrations

import (
	"github.com/volthome/storefront/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.ProductImage{},
		&models.Category{},
		&models.Bundle{},
		&models.BundleItem{},
		&models.BundleSlot{},
		&models.BundleSlotProduct{},
		&models.Cart{},
		&models.CartItem{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderCustomer{},
		&models.Dealer{},
		&models.ServiceRequest{},
		&models.Section{},
	)
}
