package main

import (
	"os"

	"miednight-backend/config"
	"miednight-backend/models"
	"miednight-backend/routes"
	"miednight-backend/services"

	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		config.GetLogger().Info("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.InventoryItem{},
		&models.Transaction{},
		&models.OrderItem{},
		&models.Expense{},
		&models.DailyLog{},
		&models.DailyCash{},
		&models.StudioDay{},
		&models.LedgerEntry{},
		&models.StudioMonth{},
		&models.Settings{},
	)
}

func main() {
	summaryService := services.NewSummaryService(config.DB)
	summaryService.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	r.Run(":" + port)
}
