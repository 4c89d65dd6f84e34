package handler

import (
	"progas-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	reports service.ReportService
}

func NewDashboardHandler(reports service.ReportService) *DashboardHandler {
	return &DashboardHandler{reports: reports}
}

// GetAssetMatrix returns the per-customer cylinders-owed view.
func (h *DashboardHandler) GetAssetMatrix(c *fiber.Ctx) error {
	matrix, err := h.reports.GetAssetMatrix()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch asset matrix"})
	}
	return c.JSON(matrix)
}

// GetStockSummary returns the per-product stock buckets with the low flag.
func (h *DashboardHandler) GetStockSummary(c *fiber.Ctx) error {
	summary, err := h.reports.GetStockSummary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch stock summary"})
	}
	return c.JSON(summary)
}
