package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/revcast/revcast/internal/models"
	"github.com/revcast/revcast/internal/services"
)

// Forecast handles GET /v1/forecast
func (h *Handler) Forecast(c *fiber.Ctx) error {
	req := &models.ForecastRequest{
		Method:            c.Query("method"),
		From:              c.Query("from"),
		To:                c.Query("to"),
		ExcludeDeductible: c.QueryBool("exclude_deductible"),
	}

	if raw := c.Query("periods"); raw != "" {
		periods, err := strconv.Atoi(raw)
		if err != nil {
			return &fiber.Error{
				Code:    fiber.StatusBadRequest,
				Message: "periods must be an integer",
			}
		}
		req.Periods = &periods
	}

	return h.executeForecast(c, req)
}

// ForecastPost handles POST /v1/forecast
func (h *Handler) ForecastPost(c *fiber.Ctx) error {
	var body models.ForecastRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_JSON",
				Message: "Failed to parse JSON body",
				Details: map[string]interface{}{"error": err.Error()},
			},
		})
	}
	return h.executeForecast(c, &body)
}

// executeForecast validates the request and runs it through the service layer
func (h *Handler) executeForecast(c *fiber.Ctx, req *models.ForecastRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	result, err := h.forecastService.Generate(req)
	if err != nil {
		return h.renderServiceError(c, err)
	}

	return c.JSON(models.NewForecastResponse(result))
}

// ForecastLast handles GET /v1/forecast/last
func (h *Handler) ForecastLast(c *fiber.Ctx) error {
	result, err := h.forecastService.Last()
	if err != nil {
		return h.renderServiceError(c, err)
	}
	return c.JSON(models.NewForecastResponse(result))
}

// ForecastReport handles GET /v1/forecast/report
func (h *Handler) ForecastReport(c *fiber.Ctx) error {
	report, err := h.forecastService.Report()
	if err != nil {
		return h.renderServiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.SendString(report)
}

// renderServiceError maps service error codes to HTTP statuses
func (h *Handler) renderServiceError(c *fiber.Ctx, err error) error {
	if svcErr, ok := err.(*services.ServiceError); ok {
		status := fiber.StatusInternalServerError
		switch svcErr.Code {
		case "INVALID_METHOD":
			status = fiber.StatusBadRequest
		case "INSUFFICIENT_DATA":
			status = fiber.StatusUnprocessableEntity
		case "NO_FORECAST":
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    svcErr.Code,
				Message: svcErr.Message,
				Details: svcErr.Details,
			},
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "FORECAST_FAILED",
			Message: err.Error(),
		},
	})
}
