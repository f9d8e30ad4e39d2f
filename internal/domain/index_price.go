package domain

import (
	"github.com/shopspring/decimal"
)

// PriceScale is the number of fractional digits kept for stored prices.
const PriceScale = 8

// IndexPrice is a single observation of an index from the upstream source.
type IndexPrice struct {
	Ticker string
	Price  decimal.Decimal
	// when the upstream received the request, in microseconds since epoch
	ObservedAtMicros int64
}
