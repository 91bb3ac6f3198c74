package Models

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", dbPath, err)
	}
	DB = connection

	// 1. Base entities with no foreign keys
	DB.AutoMigrate(
		&User{},
		&Client{},
	)

	// 2. Entities referencing clients
	DB.AutoMigrate(
		&Document{}, // references Client
	)

	// 3. Entities with multiple references
	DB.AutoMigrate(
		&PurchaseOrder{}, // references Client and Document
		&Invoice{},       // references PurchaseOrder
	)

	seedDefaultAdmin()
}

// seedDefaultAdmin guarantees the users screen is reachable on a fresh
// database. Skipped when any user already exists.
func seedDefaultAdmin() {
	var count int64
	if err := DB.Model(&User{}).Count(&count).Error; err != nil {
		log.Printf("Error counting users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := User{
		Name:               "Administrador",
		Email:              "admin@docukeeper.com",
		Role:               RoleAdmin,
		PermDocuments:      true,
		PermPurchaseOrders: true,
		PermUsers:          true,
	}
	if err := admin.SetPassword("admin"); err != nil {
		log.Printf("Error hashing default admin password: %v", err)
		return
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Error creating default admin: %v", err)
	}
}
