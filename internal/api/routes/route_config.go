package routes

import (
	"Recipe-Journal/internal/api/handlers"
	"Recipe-Journal/internal/middleware"
	"Recipe-Journal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	MemberHandler     handlers.MemberHandler
	RecipeHandler     handlers.RecipeHandler
	CollectionHandler handlers.CollectionHandler
	SearchHandler     handlers.SearchHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Members()
	c.Recipes()
	c.Collections()
	c.GuestRoute()
}

func (c *Config) Members() {
	members := c.App.Group("/api/v1/users")
	// member routes
	{
		members.Post("/register", c.MemberHandler.Register)
		members.Post("/login", c.MemberHandler.Login)
		members.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.MemberHandler.Me)
		members.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.MemberHandler.UpdateProfile)
		members.Get("/friends", c.Middleware.AuthMiddleware(c.JWTService), c.MemberHandler.GetFriends)
		members.Post("/friends", c.Middleware.AuthMiddleware(c.JWTService), c.MemberHandler.AddFriend)
		members.Delete("/friends", c.Middleware.AuthMiddleware(c.JWTService), c.MemberHandler.RemoveFriend)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("/welcome", c.RecipeHandler.GetWelcomeFeed)
	recipes.Get("/check-title", c.RecipeHandler.CheckTitle)
	recipes.Get("/search", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.SearchHandler.SearchRecipes)

	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)

	recipes.Get("/:id/comments", c.RecipeHandler.GetComments)
	recipes.Post("/:id/comments", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.AddComment)
	recipes.Put("/:id/rating", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.RateRecipe)
}

func (c *Config) Collections() {
	collections := c.App.Group("/api/v1/collections", c.Middleware.AuthMiddleware(c.JWTService))

	collections.Get("/status", c.CollectionHandler.GetCollectionStatus)
	collections.Post("/add", c.CollectionHandler.AddToCollection)
	collections.Post("/remove", c.CollectionHandler.RemoveFromCollection)
	collections.Post("/history", c.CollectionHandler.AddHistoryEntry)
	collections.Post("/history/remove", c.CollectionHandler.RemoveHistoryEntry)
	collections.Get("/:name", c.CollectionHandler.GetMemberEntries)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
