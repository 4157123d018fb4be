package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/zamanlab/bank-advisor-be/internal/catalog"
	"github.com/zamanlab/bank-advisor-be/internal/models"
)

type ProductHandler struct {
	catalog *catalog.Catalog
}

func NewProductHandler(c *catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

// ListProducts godoc
// @Summary List or search products
// @Description Free-text search plus conjunctive filters; returns catalog stats alongside
// @Tags Products
// @Produce json
// @Param search query string false "Free-text query"
// @Param category query string false "Category filter"
// @Param type query string false "Type filter"
// @Param islamic query boolean false "Sharia-compliant filter"
// @Param target query string false "Target audience (retail|sme)"
// @Param min_amount query integer false "Requested amount floor"
// @Param max_amount query integer false "Requested amount ceiling"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	products := h.catalog.Search(c.Query("search"), filter)
	return c.JSON(fiber.Map{
		"products": products,
		"total":    len(products),
		"stats":    h.catalog.Stats(),
	})
}

func parseFilter(c *fiber.Ctx) (models.SearchFilter, error) {
	var filter models.SearchFilter
	filter.Category = c.Query("category")
	filter.Type = c.Query("type")
	filter.Target = c.Query("target")

	if v := c.Query("islamic"); v != "" {
		islamic, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "islamic must be a boolean")
		}
		filter.Islamic = &islamic
	}
	if v := c.Query("min_amount"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "min_amount must be a number")
		}
		filter.MinAmount = &n
	}
	if v := c.Query("max_amount"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "max_amount must be a number")
		}
		filter.MaxAmount = &n
	}
	return filter, nil
}

// SearchProducts godoc
// @Summary Search products by text
// @Tags Products
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/products/search [get]
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter q is required"})
	}
	results := h.catalog.Search(q, models.SearchFilter{})
	return c.JSON(fiber.Map{
		"query":   q,
		"results": results,
		"total":   len(results),
	})
}

// GetCategories godoc
// @Summary List categories, types and catalog stats
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/products/categories [get]
func (h *ProductHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": h.catalog.Categories(),
		"types":      h.catalog.Types(),
		"stats":      h.catalog.Stats(),
	})
}

// GetIslamicProducts godoc
// @Summary List Sharia-compliant products
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/products/islamic [get]
func (h *ProductHandler) GetIslamicProducts(c *fiber.Ctx) error {
	products := h.catalog.IslamicProducts()
	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

// GetRetailProducts godoc
// @Summary List retail products
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/products/retail [get]
func (h *ProductHandler) GetRetailProducts(c *fiber.Ctx) error {
	products := h.catalog.RetailProducts()
	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

// GetSMEProducts godoc
// @Summary List SME products
// @Tags Products
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/products/sme [get]
func (h *ProductHandler) GetSMEProducts(c *fiber.Ctx) error {
	products := h.catalog.SMEProducts()
	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

// GetProductsByAmount godoc
// @Summary List products whose amount range contains the given amount
// @Tags Products
// @Produce json
// @Param amount query integer true "Amount"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/products/by-amount [get]
func (h *ProductHandler) GetProductsByAmount(c *fiber.Ctx) error {
	amount, err := strconv.Atoi(c.Query("amount"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be a number"})
	}
	products := h.catalog.ByAmount(amount)
	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

// GetProductsByAge godoc
// @Summary List products available at the given age
// @Tags Products
// @Produce json
// @Param age query integer true "Age in years"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/products/by-age [get]
func (h *ProductHandler) GetProductsByAge(c *fiber.Ctx) error {
	age, err := strconv.Atoi(c.Query("age"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "age must be a number"})
	}
	products := h.catalog.ByAge(age)
	return c.JSON(fiber.Map{"products": products, "total": len(products)})
}

// GetProduct godoc
// @Summary Get a product by id
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, ok := h.catalog.ByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(product)
}
