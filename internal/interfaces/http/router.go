package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diamon/manufacturing-inventory/internal/application/production"
	"github.com/diamon/manufacturing-inventory/internal/application/recipe"
	"github.com/diamon/manufacturing-inventory/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	RawMaterialUC *usecase.RawMaterialUseCase
	RecipeUC      *recipe.UseCase
	CreateProduct *production.CreateProductUseCase
	Suggestions   *production.SuggestionUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.CreateProduct)
	products.Post("/", productHandler.CreateWithRecipes)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Raw materials
	materials := api.Group("/raw-materials")
	rawMaterialHandler := NewRawMaterialHandler(deps.RawMaterialUC)
	materials.Post("/", rawMaterialHandler.Create)
	materials.Get("/", rawMaterialHandler.List)
	materials.Get("/:id", rawMaterialHandler.GetByID)
	materials.Put("/:id", rawMaterialHandler.Update)
	materials.Delete("/:id", rawMaterialHandler.Delete)

	// Product recipes + motor de producción
	recipes := api.Group("/product-recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC, deps.Suggestions)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	// Rutas fijas antes que /:id para que fiber no las capture como parámetro.
	recipes.Get("/details", recipeHandler.Details)
	recipes.Get("/production-suggestions", recipeHandler.ProductionSuggestions)
	recipes.Get("/:id", recipeHandler.GetByID)
	recipes.Put("/:id", recipeHandler.Update)
}
