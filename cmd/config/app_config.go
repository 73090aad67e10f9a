package config

import (
	"Recipe-Journal/internal/api/handlers"
	"Recipe-Journal/internal/api/routes"
	"Recipe-Journal/internal/middleware"
	"Recipe-Journal/internal/utils"
	"Recipe-Journal/internal/utils/mailing"
	"Recipe-Journal/internal/utils/storage"
	"Recipe-Journal/pkg/collection"
	"Recipe-Journal/pkg/jwt"
	"Recipe-Journal/pkg/member"
	"Recipe-Journal/pkg/recipe"
	"Recipe-Journal/pkg/search"
	"os"
	"time"

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
	media := newMediaStorage()
	mailer := mailing.NewMailer()

	// Repository
	memberRepository := member.NewMemberRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	collectionRepository := collection.NewCollectionRepository(db)
	searchRepository := search.NewSearchRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	memberService := member.NewMemberService(memberRepository, jwtService, mailer)
	collectionService := collection.NewCollectionService(collectionRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, collectionService, media)
	searchService := search.NewSearchService(searchRepository, search.NewBasicNormalizer())

	// Handler
	memberHandler := handlers.NewMemberHandler(memberService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	collectionHandler := handlers.NewCollectionHandler(collectionService, validator)
	searchHandler := handlers.NewSearchHandler(searchService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		MemberHandler:     memberHandler,
		RecipeHandler:     recipeHandler,
		CollectionHandler: collectionHandler,
		SearchHandler:     searchHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

func newMediaStorage() storage.MediaStorage {
	if utils.GetConfig("MEDIA_BACKEND") == "s3" {
		return storage.NewAwsS3()
	}

	mediaRoot := utils.GetConfig("MEDIA_ROOT")
	if mediaRoot == "" {
		mediaRoot = "./media"
	}
	return storage.NewLocalStorage(mediaRoot)
}
