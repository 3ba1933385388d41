package routes

import (
	"os"
	"strings"

	"miednight-backend/config"
	"miednight-backend/controllers"
	"miednight-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Menu routes (menu items, toppings, drinks)
		menu := api.Group("/menu")
		{
			menu.POST("", controllers.CreateMenuItem)
			menu.GET("", controllers.GetMenuItems)
			menu.PUT("/:id", controllers.UpdateMenuItem)
			menu.DELETE("/:id", controllers.DeleteMenuItem)
		}

		// Inventory routes
		inventory := api.Group("/inventory")
		{
			inventory.POST("", controllers.CreateInventoryItem)
			inventory.GET("", controllers.GetInventory)
			inventory.PUT("/:id", controllers.UpdateInventoryItem)
			inventory.DELETE("/:id", controllers.DeleteInventoryItem)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetOrders)
			orders.POST("/:id/pay", controllers.PayOrder)
			orders.POST("/:id/deliver", controllers.ToggleDelivered)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		// Expense routes
		expenses := api.Group("/expenses")
		{
			expenses.POST("", controllers.CreateExpense)
			expenses.GET("", controllers.GetExpenses)
			expenses.DELETE("/:id", controllers.DeleteExpense)
		}

		// Cash drawer reconciliation
		drawer := api.Group("/cash-drawer")
		{
			drawer.GET("/:date", controllers.GetCashDrawer)
			drawer.PUT("/:date/float", controllers.SetStartingFloat)
			drawer.POST("/:date/reconcile", controllers.ReconcileCashDrawer)
			drawer.POST("/:date/reset", controllers.ResetCashDrawer)
		}

		// Daily log routes (manual back-fill, savings, day close)
		dailyLogs := api.Group("/daily-logs")
		{
			dailyLogs.GET("/:date", controllers.GetDailyLog)
			dailyLogs.PUT("/:date", controllers.SaveDailyLog)
			dailyLogs.POST("/:date/toggle-savings", controllers.ToggleSavingsDeposited)
			dailyLogs.POST("/:date/close", controllers.CloseDay)
			dailyLogs.POST("/:date/reopen", controllers.ReopenDay)
		}

		// Studio ledger routes
		studio := api.Group("/studio")
		{
			studio.PUT("/months/:yearMonth/target", controllers.SetMonthlyTarget)
			studio.GET("/months/:yearMonth", controllers.GetStudioMonth)

			studio.GET("/:date", controllers.GetStudioDay)
			studio.PUT("/:date/balances", controllers.SetStudioBalances)
			studio.POST("/:date/entries", controllers.AddLedgerEntry)
			studio.DELETE("/:date/entries/:id", controllers.DeleteLedgerEntry)
		}

		// Report routes
		reportController := controllers.ReportController{}
		reports := api.Group("/reports")
		{
			reports.GET("/daily", reportController.GetDailyReport)
			reports.GET("/recent", reportController.GetRecentRecap)
			reports.GET("/monthly", reportController.GetMonthlyReport)
		}

		// Settings routes
		settings := api.Group("/settings")
		{
			settings.GET("", controllers.GetSettings)
			settings.PUT("", controllers.UpdateSettings)
		}

		// Backup routes
		backup := api.Group("/backup")
		{
			backup.GET("", controllers.ExportBackup)
			backup.POST("/import", controllers.ImportBackup)
		}
	}

	return r
}
