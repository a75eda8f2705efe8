package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revcast/revcast/internal/ledger"
	"github.com/revcast/revcast/internal/models"
	"github.com/revcast/revcast/internal/periods"
	"github.com/revcast/revcast/internal/store"
)

// CreateEntry handles POST /v1/entries
func (h *Handler) CreateEntry(c *fiber.Ctx) error {
	var body models.EntryRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_JSON",
				Message: "Failed to parse JSON body",
				Details: map[string]interface{}{"error": err.Error()},
			},
		})
	}

	if err := body.Validate(); err != nil {
		return err
	}

	entry := h.entries.Add(ledger.Entry{
		Period:   body.PeriodParsed,
		Category: body.Category,
		Amount:   body.Amount,
		Note:     body.Note,
	})

	h.logger.Info("Entry created",
		"entry_id", entry.ID,
		"period", entry.Period.Key(),
		"category", entry.Category)

	return c.Status(fiber.StatusCreated).JSON(models.NewEntryResponse(entry))
}

// ListEntries handles GET /v1/entries
func (h *Handler) ListEntries(c *fiber.Ctx) error {
	var filter store.Filter

	if from := c.Query("from"); from != "" {
		p, err := periods.Parse(from)
		if err != nil {
			return &fiber.Error{
				Code:    fiber.StatusBadRequest,
				Message: "from must be in MM/YYYY format (e.g., 01/2023)",
			}
		}
		filter.From = p
	}
	if to := c.Query("to"); to != "" {
		p, err := periods.Parse(to)
		if err != nil {
			return &fiber.Error{
				Code:    fiber.StatusBadRequest,
				Message: "to must be in MM/YYYY format (e.g., 12/2024)",
			}
		}
		filter.To = p
	}
	filter.Category = c.Query("category")

	entries := h.entries.List(filter)
	resp := models.EntryListResponse{
		Entries: make([]models.EntryResponse, 0, len(entries)),
		Count:   len(entries),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, models.NewEntryResponse(e))
	}
	return c.JSON(resp)
}

// GetEntry handles GET /v1/entries/:id
func (h *Handler) GetEntry(c *fiber.Ctx) error {
	entry, ok := h.entries.Get(c.Params("id"))
	if !ok {
		return h.entryNotFound(c)
	}
	return c.JSON(models.NewEntryResponse(entry))
}

// UpdateEntry handles PUT /v1/entries/:id
func (h *Handler) UpdateEntry(c *fiber.Ctx) error {
	var body models.EntryRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_JSON",
				Message: "Failed to parse JSON body",
				Details: map[string]interface{}{"error": err.Error()},
			},
		})
	}

	if err := body.Validate(); err != nil {
		return err
	}

	id := c.Params("id")
	updated := ledger.Entry{
		ID:       id,
		Period:   body.PeriodParsed,
		Category: body.Category,
		Amount:   body.Amount,
		Note:     body.Note,
	}
	if !h.entries.Update(updated) {
		return h.entryNotFound(c)
	}

	entry, _ := h.entries.Get(id)
	return c.JSON(models.NewEntryResponse(entry))
}

// DeleteEntry handles DELETE /v1/entries/:id
func (h *Handler) DeleteEntry(c *fiber.Ctx) error {
	if !h.entries.Delete(c.Params("id")) {
		return h.entryNotFound(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) entryNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "ENTRY_NOT_FOUND",
			Message: "No entry with the given ID",
			Path:    c.Path(),
		},
	})
}
