package routes

import (
	"fridgesmart/internal/api/handlers"
	"fridgesmart/internal/middleware"
	"fridgesmart/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	InventoryHandler    handlers.InventoryHandler
	ScanHandler         handlers.ScanHandler
	RecipeHandler       handlers.RecipeHandler
	AssistantHandler    handlers.AssistantHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Inventory()
	c.Scan()
	c.Recipes()
	c.Assistant()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.SubscriptionHandler.Subscribe)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory", c.Middleware.AuthMiddleware(c.JWTService))
	inventory.Get("/dashboard", c.InventoryHandler.GetDashboardStats)
	inventory.Get("/impact", c.InventoryHandler.GetImpactStats)

	// Basic CRUD operations
	inventory.Post("", c.InventoryHandler.AddItem)
	inventory.Get("", c.InventoryHandler.GetItems)
	inventory.Get("/:id", c.InventoryHandler.GetItemDetails)
	inventory.Put("/:id", c.InventoryHandler.UpdateItem)
	inventory.Delete("/:id", c.InventoryHandler.DeleteItem)

	// Special operations
	inventory.Post("/save-scanned", c.InventoryHandler.SaveScannedItems)
	inventory.Post("/demo", c.InventoryHandler.LoadDemoItems)
}

func (c *Config) Scan() {
	scan := c.App.Group("/api/v1/scan", c.Middleware.AuthMiddleware(c.JWTService))
	scan.Post("", c.ScanHandler.ScanImage)
	scan.Get("/:id", c.ScanHandler.GetScanResult)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipes)
	recipes.Post("/rescue", c.RecipeHandler.GenerateRescueRecipes)
	recipes.Put("/check-state", c.RecipeHandler.SetCheckState)
	recipes.Get("/check-state", c.RecipeHandler.GetCheckState)
}

func (c *Config) Assistant() {
	assistant := c.App.Group("/api/v1/assistant", c.Middleware.AuthMiddleware(c.JWTService))
	assistant.Post("/chat", c.AssistantHandler.Chat)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.SubscriptionHandler.MidtransWebhookHandler)
}
