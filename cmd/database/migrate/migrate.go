package migration

import (
	"fmt"
	"log"

	"mindfulmeals-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Household{}); err != nil {
		log.Fatalf("Error migrating household database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingList{}, &entities.ShoppingListItem{}); err != nil {
		log.Fatalf("Error migrating shopping list database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}, &entities.MealPlanEntry{}); err != nil {
		log.Fatalf("Error migrating meal plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Vendor{}, &entities.Product{}); err != nil {
		log.Fatalf("Error migrating vendor database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}, &entities.OrderItem{}, &entities.PaymentTransaction{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
