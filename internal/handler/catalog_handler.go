package handler

import (
	"progas-backend/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Products())
}

func (h *CatalogHandler) GetCustomers(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Customers())
}
