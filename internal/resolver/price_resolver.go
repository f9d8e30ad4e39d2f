package resolver

import (
	"context"
	"fmt"
	api_types "pricefeed/api-types"
	"pricefeed/internal/db/models/postgres/public/model"
)

func (r resolverHandler) ListPrices(ctx context.Context, req api_types.ListPricesRequest) (*api_types.PriceList, error) {
	prices, err := r.PriceService.ListAll(ctx, req.Ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", req.Ticker, err)
	}

	return priceList(prices), nil
}

func (r resolverHandler) GetLatestPrice(ctx context.Context, req api_types.GetLatestPriceRequest) (*api_types.PriceRead, error) {
	price, err := r.PriceService.Latest(ctx, req.Ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price for %s: %w", req.Ticker, err)
	}

	out := priceRead(*price)
	return &out, nil
}

func (r resolverHandler) FilterPrices(ctx context.Context, req api_types.FilterPricesRequest) (*api_types.PriceList, error) {
	prices, err := r.PriceService.FilterByDate(ctx, req.Ticker, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to filter prices for %s: %w", req.Ticker, err)
	}

	return priceList(prices), nil
}

func priceList(prices []model.CurrencyPrices) *api_types.PriceList {
	out := []api_types.PriceRead{}
	for _, p := range prices {
		out = append(out, priceRead(p))
	}
	return &api_types.PriceList{Items: out}
}

func priceRead(p model.CurrencyPrices) api_types.PriceRead {
	out := api_types.PriceRead{
		ID:        p.ID,
		Ticker:    p.Ticker,
		Price:     p.Price,
		Timestamp: p.Timestamp,
	}
	if !p.CreatedAt.IsZero() {
		createdAt := p.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}
