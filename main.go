package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/uguryukselwork/quickserve/config"
	"github.com/uguryukselwork/quickserve/hub"
	"github.com/uguryukselwork/quickserve/layout"
	"github.com/uguryukselwork/quickserve/middlewares"
	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/notifier"
	"github.com/uguryukselwork/quickserve/router"
	"github.com/uguryukselwork/quickserve/services"
	"github.com/uguryukselwork/quickserve/settings"
	"github.com/uguryukselwork/quickserve/storage"
	"github.com/uguryukselwork/quickserve/store"
	"github.com/uguryukselwork/quickserve/utils"
)

func main() {
	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	gateway := storage.NewGateway(db)

	entityStore := store.New(gateway)
	entityStore.Load(store.SeedMenu())

	staffSettings := settings.New(gateway)
	staffSettings.Load()

	editor := layout.NewEditor(gateway, entityStore)
	editor.Load()

	wsHub := hub.New()
	engine := notifier.NewEngine(entityStore, staffSettings, wsHub)

	entityStore.Subscribe(wsHub.HandleStoreEvent)
	entityStore.Subscribe(engine.HandleEvent)

	deps := router.Deps{
		DB:       db,
		Store:    entityStore,
		Settings: staffSettings,
		Editor:   editor,
		Engine:   engine,
		Hub:      wsHub,
		Checkout: services.NewCheckoutService(entityStore),
		Assist:   services.NewAssistantService(entityStore),
	}

	r := router.SetupRouter(deps)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Snapshot{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
