package main

import (
	"log"

	"fridgesmart/cmd/config"
	migration "fridgesmart/cmd/database/migrate"
	"fridgesmart/internal/logger"
	"fridgesmart/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on config.yaml and environment")
	}
	utils.LoadConfig()
	logger.Init(utils.GetConfig("LOG_LEVEL"), utils.GetConfig("LOG_FORMAT"))

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App initialization failed: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
