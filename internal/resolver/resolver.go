package resolver

import (
	"context"
	api_types "pricefeed/api-types"
	"pricefeed/internal/service"
)

//go:generate mockgen -source=resolver.go -destination=mock_resolver.go -package=resolver

type Resolver interface {
	// price endpoints
	ListPrices(ctx context.Context, req api_types.ListPricesRequest) (*api_types.PriceList, error)
	GetLatestPrice(ctx context.Context, req api_types.GetLatestPriceRequest) (*api_types.PriceRead, error)
	FilterPrices(ctx context.Context, req api_types.FilterPricesRequest) (*api_types.PriceList, error)
}

type resolverHandler struct {
	PriceService service.PriceService
}

func NewResolver(
	priceService service.PriceService,
) Resolver {
	return resolverHandler{
		PriceService: priceService,
	}
}
