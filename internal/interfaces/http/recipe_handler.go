package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diamon/manufacturing-inventory/internal/application/dto"
	"github.com/diamon/manufacturing-inventory/internal/application/production"
	"github.com/diamon/manufacturing-inventory/internal/application/recipe"
)

// RecipeHandler maneja las peticiones HTTP de recetas y sugerencias de producción.
type RecipeHandler struct {
	uc          *recipe.UseCase
	suggestions *production.SuggestionUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *recipe.UseCase, suggestions *production.SuggestionUseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc, suggestions: suggestions}
}

// Create godoc
// @Summary      Crear receta de producto
// @Description  Crea una fila producto-materia prima. No verifica stock: la suficiencia solo aplica al alta producto+recetas.
// @Tags         product-recipes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecipeRequest  true  "product_id, raw_material_id, quantity"
// @Success      201   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-recipes [post]
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var in dto.RecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener receta por ID
// @Tags         product-recipes
// @Produce      json
// @Param        id   path  string  true  "ID de la receta"
// @Success      200  {object}  dto.RecipeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/product-recipes/{id} [get]
func (h *RecipeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recetas
// @Tags         product-recipes
// @Produce      json
// @Success      200  {array}  dto.RecipeResponse
// @Router       /api/product-recipes [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar receta
// @Tags         product-recipes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la receta"
// @Param        body  body  dto.RecipeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RecipeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/product-recipes/{id} [put]
func (h *RecipeHandler) Update(c *fiber.Ctx) error {
	var in dto.RecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Details godoc
// @Summary      Listar detalles de recetas
// @Description  Vista aplanada: un registro por fila de receta con su materia prima y cantidad.
// @Tags         product-recipes
// @Produce      json
// @Success      200  {array}  dto.RecipeDetailResponse
// @Router       /api/product-recipes/details [get]
func (h *RecipeHandler) Details(c *fiber.Ctx) error {
	out, err := h.suggestions.RecipeDetails()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductionSuggestions godoc
// @Summary      Sugerencias de producción
// @Description  Cuántas unidades de cada producto pueden fabricarse con el stock actual, ordenadas por valor descendente.
// @Tags         product-recipes
// @Produce      json
// @Success      200  {array}  dto.SuggestionResponse
// @Router       /api/product-recipes/production-suggestions [get]
func (h *RecipeHandler) ProductionSuggestions(c *fiber.Ctx) error {
	out, err := h.suggestions.ProductionSuggestions()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
