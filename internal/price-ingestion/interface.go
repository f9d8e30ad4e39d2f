package price_ingestion

import (
	"context"
	"pricefeed/internal/domain"
)

//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=price_ingestion

type PriceIngestionClient interface {
	GetIndexPrice(ctx context.Context, ticker string) (*domain.IndexPrice, error)
}
