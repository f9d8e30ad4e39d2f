package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type PriceRead struct {
	ID     int64  `json:"id"`
	Ticker string `json:"ticker"`
	// serialized as a string so no precision is lost
	Price     decimal.Decimal `json:"price"`
	Timestamp int64           `json:"timestamp"`
	CreatedAt *time.Time      `json:"created_at"`
}

type PriceList struct {
	Items []PriceRead `json:"items"`
}

type ListPricesRequest struct {
	Ticker string `form:"ticker"`
}

type GetLatestPriceRequest struct {
	Ticker string `form:"ticker"`
}

type FilterPricesRequest struct {
	Ticker    string `form:"ticker"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
