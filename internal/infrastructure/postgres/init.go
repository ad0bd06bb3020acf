package postgres

import (
	"log"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/config"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.StorefrontConfig) *gorm.DB {
	dsn := cfg.StoreDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	return db
}

// AutoMigrate creates the schema from the GORM models. Used for local
// development; deployments run the SQL migrations instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ProfileModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.ProductVariantModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.PaymentModel{},
		&models.PaymentReceiverModel{},
		&models.ReviewModel{},
		&models.ChatModel{},
		&models.ChatMessageModel{},
		&models.NotificationModel{},
		&models.NewsletterSubscriberModel{},
	)
}
