package config

import (
	"os"
	"time"

	"fridgesmart/internal/api/handlers"
	"fridgesmart/internal/api/routes"
	"fridgesmart/internal/middleware"
	"fridgesmart/internal/utils"
	"fridgesmart/internal/utils/storage"
	"fridgesmart/pkg/analysis"
	"fridgesmart/pkg/assistant"
	"fridgesmart/pkg/inventory"
	"fridgesmart/pkg/jwt"
	"fridgesmart/pkg/recipe"
	"fridgesmart/pkg/subscription"
	"fridgesmart/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		BodyLimit:         20 * 1024 * 1024, // fridge photos
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	redisClient := ConnectRedis()

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Gateways
	visionGateway := analysis.NewGeminiVisionGateway()
	textGateway := recipe.NewGeminiTextGateway()
	snapGateway := subscription.NewSnapGateway()
	checkStates := recipe.NewRedisCheckStateStore(redisClient)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, user.NewSMTPMailer())
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	analysisService := analysis.NewAnalysisService(inventoryRepository, visionGateway, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, inventoryRepository, textGateway, checkStates)
	assistantService := assistant.NewAssistantService(inventoryRepository, textGateway)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, userRepository, snapGateway)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	scanHandler := handlers.NewScanHandler(analysisService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	assistantHandler := handlers.NewAssistantHandler(assistantService, validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		InventoryHandler:    inventoryHandler,
		ScanHandler:         scanHandler,
		RecipeHandler:       recipeHandler,
		AssistantHandler:    assistantHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
