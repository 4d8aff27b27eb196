package migrations

import (
	"github.com/ssapkota/hamropasal/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.SubCategory{},
		&models.Product{},
		&models.ProductImage{},
		&models.OfferProduct{},
		&models.Review{},
		&models.Wishlist{},
		&models.Order{},
		&models.BlogCategory{},
		&models.Tag{},
		&models.BlogPost{},
		&models.BlogComment{},
	)
}
