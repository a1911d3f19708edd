package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"smartretail/internal/models"
	"smartretail/internal/repositories"
	"smartretail/internal/services"
	"smartretail/internal/validation"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	productService *services.ProductService
	validate       *validation.Validator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService *services.ProductService, validate *validation.Validator) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validate,
	}
}

// RegisterRoutes registers the product routes. Both creation paths exist for
// compatibility with older clients. Every route takes the auth middleware
// explicitly rather than inheriting it from declaration order.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Post("/product", auth, h.HandleCreateProduct)
	router.Post("/", auth, h.HandleCreateProduct)
	router.Delete("/:id", auth, h.HandleDeleteProduct)
}

// HandleCreateProduct validates and persists a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req validation.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid product data",
			"errors": []validation.FieldError{
				{Field: "body", Message: "request body is not valid JSON"},
			},
		})
	}
	if errs := h.validate.Check(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid product data",
			"errors":  errs,
		})
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Category:    req.Category,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Color:       req.Color,
		Size:        req.Size,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	}
	if err := h.productService.CreateProduct(c.Context(), product); err != nil {
		log.Error().Err(err).Msg("error adding product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Server error while adding product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  true,
		"message": "Product added successfully",
		"data":    product,
	})
}

// HandleDeleteProduct deletes a product by its id.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.productService.DeleteProduct(c.Context(), id)
	switch {
	case err == nil:
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  true,
			"message": "Product deleted successfully",
		})
	case errors.Is(err, repositories.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  false,
			"message": "Product not found",
		})
	default:
		log.Error().Err(err).Str("id", id).Msg("error deleting product")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Server error while deleting product",
		})
	}
}
