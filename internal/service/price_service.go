package service

import (
	"context"
	"database/sql"
	"fmt"
	pricefeed_errors "pricefeed/internal"
	"pricefeed/internal/db/models/postgres/public/model"
	"pricefeed/internal/repository"
	"pricefeed/internal/util"
	"strings"
	"time"
)

//go:generate mockgen -source=price_service.go -destination=mock_price_service.go -package=service

// PriceService is the read side of the price store. Arguments are validated
// before any database work happens.
type PriceService interface {
	ListAll(ctx context.Context, ticker string) ([]model.CurrencyPrices, error)
	Latest(ctx context.Context, ticker string) (*model.CurrencyPrices, error)
	// FilterByDate takes YYYY-MM-DD dates; an empty string leaves that side open
	FilterByDate(ctx context.Context, ticker, startDate, endDate string) ([]model.CurrencyPrices, error)
}

type priceServiceHandler struct {
	Db                      *sql.DB
	CurrencyPriceRepository repository.CurrencyPriceRepository
	AllowedTickers          *util.Set
}

func NewPriceService(
	db *sql.DB,
	currencyPriceRepository repository.CurrencyPriceRepository,
	allowedTickers []string,
) PriceService {
	return priceServiceHandler{
		Db:                      db,
		CurrencyPriceRepository: currencyPriceRepository,
		AllowedTickers:          util.NewSet(allowedTickers...),
	}
}

func (h priceServiceHandler) ListAll(ctx context.Context, ticker string) ([]model.CurrencyPrices, error) {
	if err := h.validateTicker(ticker); err != nil {
		return nil, err
	}

	tx, err := h.beginRead(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	return h.CurrencyPriceRepository.ListByTicker(ctx, tx, ticker)
}

func (h priceServiceHandler) Latest(ctx context.Context, ticker string) (*model.CurrencyPrices, error) {
	if err := h.validateTicker(ticker); err != nil {
		return nil, err
	}

	tx, err := h.beginRead(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	price, err := h.CurrencyPriceRepository.Latest(ctx, tx, ticker)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, pricefeed_errors.ErrNotFound{Ticker: ticker}
	}

	return price, nil
}

func (h priceServiceHandler) FilterByDate(ctx context.Context, ticker, startDate, endDate string) ([]model.CurrencyPrices, error) {
	if err := h.validateTicker(ticker); err != nil {
		return nil, err
	}
	startTs, endTs, err := parseDateBounds(startDate, endDate)
	if err != nil {
		return nil, err
	}

	tx, err := h.beginRead(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	return h.CurrencyPriceRepository.ListByRange(ctx, tx, ticker, startTs, endTs)
}

func (h priceServiceHandler) validateTicker(ticker string) error {
	if !h.AllowedTickers.Contains(ticker) {
		return pricefeed_errors.ErrInvalidArgument{
			Field:   "ticker",
			Message: "allowed values: " + strings.Join(h.AllowedTickers.List(), ", "),
		}
	}
	return nil
}

// reads only ever roll back
func (h priceServiceHandler) beginRead(ctx context.Context) (*sql.Tx, error) {
	tx, err := h.Db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, pricefeed_errors.ErrPersistence{Op: "begin read transaction", Err: err}
	}
	return tx, nil
}

// parseDateBounds converts calendar dates to inclusive microsecond bounds
// covering whole UTC days.
func parseDateBounds(startDate, endDate string) (startTs, endTs *int64, err error) {
	if startDate != "" {
		day, err := parseDate("start_date", startDate)
		if err != nil {
			return nil, nil, err
		}
		startTs = util.Int64Ptr(day.UnixMicro())
	}
	if endDate != "" {
		day, err := parseDate("end_date", endDate)
		if err != nil {
			return nil, nil, err
		}
		startOfNextDay := day.AddDate(0, 0, 1)
		endTs = util.Int64Ptr(startOfNextDay.UnixMicro() - 1)
	}
	return startTs, endTs, nil
}

func parseDate(field, value string) (time.Time, error) {
	day, err := time.ParseInLocation(time.DateOnly, value, time.UTC)
	if err != nil {
		return time.Time{}, pricefeed_errors.ErrInvalidArgument{
			Field:   field,
			Message: fmt.Sprintf("%q does not match YYYY-MM-DD", value),
		}
	}
	return day, nil
}
