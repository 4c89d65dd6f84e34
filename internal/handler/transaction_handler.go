package handler

import (
	"progas-backend/internal/catalog"
	"progas-backend/internal/evidence"
	"progas-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	txRepo  repository.TransactionRepository
	catalog *catalog.Catalog
}

func NewTransactionHandler(txRepo repository.TransactionRepository, cat *catalog.Catalog) *TransactionHandler {
	return &TransactionHandler{txRepo: txRepo, catalog: cat}
}

// GetTransactions lists the archive, newest first.
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.txRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.txRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(tx)
}

// GetReceipt renders the transaction as a printable PNG.
func (h *TransactionHandler) GetReceipt(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.txRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}

	png, err := evidence.RenderReceipt(tx, h.catalog)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to render receipt"})
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
