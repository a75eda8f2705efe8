package models

import (
	"github.com/shopspring/decimal"

	"github.com/revcast/revcast/internal/forecast"
	"github.com/revcast/revcast/internal/ledger"
)

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// EntryResponse represents a single revenue entry
type EntryResponse struct {
	ID        string          `json:"id"`
	Period    string          `json:"period"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	CreatedAt string          `json:"created_at"`
}

// EntryListResponse represents list entries response
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
	Count   int             `json:"count"`
}

// NewEntryResponse converts a ledger entry into its API representation
func NewEntryResponse(e ledger.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		Period:    e.Period.Key(),
		Category:  e.Category,
		Amount:    e.Amount,
		Note:      e.Note,
		CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ForecastResponse represents forecast generation response
type ForecastResponse struct {
	Historical  []forecast.HistoricalPoint `json:"historical"`
	Predictions []forecast.Prediction      `json:"predictions"`
	Accuracy    forecast.AccuracyMetrics   `json:"accuracy"`
	Method      forecast.Method            `json:"method"`
	Metadata    forecast.Metadata          `json:"metadata"`
}

// NewForecastResponse converts an engine result into its API representation
func NewForecastResponse(r *forecast.Result) ForecastResponse {
	return ForecastResponse{
		Historical:  r.Historical,
		Predictions: r.Predictions,
		Accuracy:    r.Accuracy,
		Method:      r.Method,
		Metadata:    r.Metadata,
	}
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
