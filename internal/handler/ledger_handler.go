package handler

import (
	"errors"
	"fmt"

	"progas-backend/internal/evidence"
	"progas-backend/internal/model"
	"progas-backend/internal/notify"
	"progas-backend/internal/service"
	"progas-backend/pkg/config"
	"progas-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// LedgerHandler drives the two wizard submissions. It runs the evidence
// pipeline, hands the result to the ledger engine and fires the notification
// side channel without awaiting it.
type LedgerHandler struct {
	ledger   service.LedgerService
	photos   *evidence.PhotoProcessor
	notifier *notify.Notifier
	gps      config.GPSConfig
	log      zerolog.Logger
}

func NewLedgerHandler(ledger service.LedgerService, photos *evidence.PhotoProcessor, notifier *notify.Notifier, gps config.GPSConfig, log zerolog.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger:   ledger,
		photos:   photos,
		notifier: notifier,
		gps:      gps,
		log:      log,
	}
}

type deliveryRequest struct {
	CustomerID int                     `json:"customer_id" validate:"required"`
	Items      []model.TransactionItem `json:"items" validate:"required,min=1,dive"`

	// Photo is a required data-URL payload. Signature arrives either
	// pre-rasterized or as pad strokes the server renders itself.
	Photo            string            `json:"photo" validate:"required"`
	Signature        string            `json:"signature"`
	SignatureStrokes []evidence.Stroke `json:"signature_strokes"`

	GPSLat *float64 `json:"gps_lat"`
	GPSLng *float64 `json:"gps_lng"`
}

type returnRequest struct {
	CustomerID int                     `json:"customer_id" validate:"required"`
	Items      []model.TransactionItem `json:"items" validate:"required,min=1,dive"`
	Photo      string                  `json:"photo"`
}

func (h *LedgerHandler) CreateDelivery(c *fiber.Ctx) error {
	var req deliveryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag),
		})
	}

	photo, err := h.photos.Compress(req.Photo)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid photo payload"})
	}

	signature := req.Signature
	if signature == "" && len(req.SignatureStrokes) > 0 {
		signature, err = evidence.RenderSignature(req.SignatureStrokes)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid signature payload"})
		}
	}
	if signature == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Signature is required"})
	}

	// Deliveries always carry coordinates: a missing fix falls back to the
	// configured default, never an error.
	gpsLat, gpsLng := req.GPSLat, req.GPSLng
	if gpsLat == nil || gpsLng == nil {
		lat, lng := h.gps.FallbackLat, h.gps.FallbackLng
		gpsLat, gpsLng = &lat, &lng
	}

	tx, err := h.ledger.ProcessDelivery(req.CustomerID, req.Items, photo, signature, gpsLat, gpsLng)
	if err != nil {
		return h.ledgerError(c, err)
	}

	go h.notifier.NotifyDelivery(tx)

	return c.Status(201).JSON(fiber.Map{"message": "Delivery recorded", "data": tx})
}

func (h *LedgerHandler) CreateReturn(c *fiber.Ctx) error {
	var req returnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag),
		})
	}

	photo := ""
	if req.Photo != "" {
		var err error
		photo, err = h.photos.Compress(req.Photo)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid photo payload"})
		}
	}

	tx, err := h.ledger.ProcessReturn(req.CustomerID, req.Items, photo)
	if err != nil {
		return h.ledgerError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Return recorded", "data": tx})
}

// Reset re-seeds all three stores to defaults. Admin only.
func (h *LedgerHandler) Reset(c *fiber.Ctx) error {
	if err := h.ledger.ResetAll(); err != nil {
		h.log.Error().Err(err).Msg("full reset failed")
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "All data reset to defaults"})
}

func (h *LedgerHandler) ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case isBadRequest(err):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("ledger operation failed")
		return c.Status(500).JSON(fiber.Map{"error": "Something went wrong, try again"})
	}
}

func isBadRequest(err error) bool {
	for _, known := range []error{service.ErrUnknownCustomer, service.ErrUnknownProduct, service.ErrNoItems} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
