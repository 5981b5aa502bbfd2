package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sonmartinn/125SaleIphone-FE/cart"
	"github.com/sonmartinn/125SaleIphone-FE/catalog"
	"github.com/sonmartinn/125SaleIphone-FE/checkout"
	"github.com/sonmartinn/125SaleIphone-FE/mail"
	"github.com/sonmartinn/125SaleIphone-FE/models"
	"github.com/sonmartinn/125SaleIphone-FE/routes"
)

func main() {
	log.Println("✅ Starting storefront service...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB (cart persistence)
	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Shop API clients
	shopAPIURL := os.Getenv("SHOP_API_URL")
	if shopAPIURL == "" {
		shopAPIURL = "http://127.0.0.1:8000/api"
	}
	httpClient := &http.Client{Timeout: 30 * time.Second}

	deps := routes.Deps{
		Carts:   cart.NewManager(cart.NewGormPersister(db)),
		Catalog: catalog.NewClient(shopAPIURL, httpClient),
		Orders:  checkout.NewClient(shopAPIURL, httpClient),
		Mailer:  mail.NewClient(shopAPIURL, httpClient),
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
