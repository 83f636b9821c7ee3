package routes

import (
	"mindfulmeals-backend/internal/api/handlers"
	"mindfulmeals-backend/internal/middleware"
	"mindfulmeals-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	HouseholdHandler    handlers.HouseholdHandler
	PantryHandler       handlers.PantryHandler
	ShoppingListHandler handlers.ShoppingListHandler
	MealPlanHandler     handlers.MealPlanHandler
	CommerceHandler     handlers.CommerceHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Household()
	c.Pantry()
	c.ShoppingLists()
	c.MealPlans()
	c.Commerce()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) Household() {
	household := c.App.Group("/api/v1/households", c.Middleware.AuthMiddleware(c.JWTService))

	household.Post("", c.HouseholdHandler.CreateHousehold)
	household.Get("/me", c.HouseholdHandler.GetMyHousehold)
	household.Patch("/me", c.HouseholdHandler.UpdateHousehold)
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry-items", c.Middleware.AuthMiddleware(c.JWTService))

	// Static lookups before parameterized routes.
	pantry.Get("/categories", c.PantryHandler.GetCategories)
	pantry.Get("/storage-locations", c.PantryHandler.GetStorageLocations)
	pantry.Get("/analytics", c.PantryHandler.GetInventoryAnalytics)
	pantry.Get("/expiry-check", c.PantryHandler.CheckExpiry)
	pantry.Post("/scan-barcode", c.PantryHandler.ScanBarcode)

	// Basic CRUD operations
	pantry.Post("", c.PantryHandler.AddItem)
	pantry.Get("", c.PantryHandler.GetItems)
	pantry.Get("/:id", c.PantryHandler.GetItemByID)
	pantry.Put("/:id", c.PantryHandler.UpdateItem)
	pantry.Delete("/:id", c.PantryHandler.DeleteItem)

	// Special operations
	pantry.Post("/:id/consume", c.PantryHandler.ConsumeItem)
	pantry.Post("/:id/waste", c.PantryHandler.TrackWaste)
	pantry.Post("/:id/image", c.PantryHandler.UploadItemImage)
}

func (c *Config) ShoppingLists() {
	lists := c.App.Group("/api/v1/shopping-lists", c.Middleware.AuthMiddleware(c.JWTService))

	lists.Post("/generate", c.ShoppingListHandler.GenerateList)
	lists.Get("", c.ShoppingListHandler.GetLists)
	lists.Get("/:id", c.ShoppingListHandler.GetList)
	lists.Post("/:id/archive", c.ShoppingListHandler.ArchiveList)
	lists.Post("/:id/items", c.ShoppingListHandler.AddItem)
	lists.Patch("/:id/items/:itemId", c.ShoppingListHandler.CompleteItem)
	lists.Delete("/:id/items/:itemId", c.ShoppingListHandler.RemoveItem)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/v1/meal-plans", c.Middleware.AuthMiddleware(c.JWTService))

	mealPlans.Post("/recipes", c.MealPlanHandler.CreateRecipe)
	mealPlans.Get("/recipes", c.MealPlanHandler.GetRecipes)
	mealPlans.Post("", c.MealPlanHandler.PlanMeal)
	mealPlans.Get("", c.MealPlanHandler.GetMealPlan)
}

func (c *Config) Commerce() {
	vendors := c.App.Group("/api/v1/vendors", c.Middleware.AuthMiddleware(c.JWTService))
	vendors.Get("", c.CommerceHandler.GetVendors)
	vendors.Get("/:id/products", c.CommerceHandler.GetVendorProducts)

	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	orders.Post("", c.CommerceHandler.CreateOrder)
	orders.Get("/:id", c.CommerceHandler.GetOrder)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.CommerceHandler.PaymentWebhook)
}
