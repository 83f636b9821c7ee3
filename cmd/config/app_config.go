package config

import (
	"os"
	"time"

	"mindfulmeals-backend/internal/api/handlers"
	"mindfulmeals-backend/internal/api/routes"
	"mindfulmeals-backend/internal/middleware"
	"mindfulmeals-backend/internal/utils"
	"mindfulmeals-backend/internal/utils/storage"
	"mindfulmeals-backend/pkg/commerce"
	"mindfulmeals-backend/pkg/household"
	"mindfulmeals-backend/pkg/jwt"
	"mindfulmeals-backend/pkg/mealplan"
	"mindfulmeals-backend/pkg/pantry"
	"mindfulmeals-backend/pkg/shoppinglist"
	"mindfulmeals-backend/pkg/user"

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

	// Repository
	userRepository := user.NewUserRepository(db)
	householdRepository := household.NewHouseholdRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	listRepository := shoppinglist.NewShoppingListRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	commerceRepository := commerce.NewCommerceRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	householdService := household.NewHouseholdService(householdRepository)
	pantryService := pantry.NewPantryService(pantryRepository, pantry.NewStaticProductLookup(), s3)
	listService := shoppinglist.NewShoppingListService(
		listRepository,
		householdRepository,
		pantryRepository,
		mealPlanRepository,
	)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository)
	commerceService := commerce.NewCommerceService(
		commerceRepository,
		listRepository,
		commerce.NewMidtransGateway(),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	householdHandler := handlers.NewHouseholdHandler(householdService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, householdService, validator)
	listHandler := handlers.NewShoppingListHandler(listService, householdService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, householdService, validator)
	commerceHandler := handlers.NewCommerceHandler(commerceService, householdService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		HouseholdHandler:    householdHandler,
		PantryHandler:       pantryHandler,
		ShoppingListHandler: listHandler,
		MealPlanHandler:     mealPlanHandler,
		CommerceHandler:     commerceHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
