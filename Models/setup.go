package Models

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = connection

	// 1. Base entities with no dependencies
	DB.AutoMigrate(
		&Company{},
		&User{},
		&Client{},
		&Supplier{},
		&Operator{},
		&Classification{},
		&Passenger{},
	)

	// 2. Models with simple foreign key relationships
	DB.AutoMigrate(
		&CompanySettings{},
		&CurrencyRate{},
		&Sale{},
	)

	// 3. Models that depend on multiple other models
	DB.AutoMigrate(
		&SaleItem{},
		&Payment{},
		&SupplierPayment{},
	)

	seedAdmin(DB)
}

// seedAdmin creates the bootstrap company and admin account on an empty database.
func seedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}

	company := Company{Name: "TravelPro"}
	if err := db.Create(&company).Error; err != nil {
		log.Println("Failed to seed company:", err)
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	admin := User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         RoleAdmin,
		CompanyID:    company.ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("Failed to seed admin user:", err)
		return
	}
	db.Create(&CompanySettings{CompanyID: company.ID})
	log.Println("Seeded default admin account")
}
