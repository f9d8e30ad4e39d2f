package repository

import (
	"context"
	"database/sql"
	pricefeed_errors "pricefeed/internal"
	"pricefeed/internal/db/models/postgres/public/model"
	. "pricefeed/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

// DB is satisfied by both *sql.DB and *sql.Tx, so callers decide whether a
// call runs autocommitted or inside their own transaction.
type DB interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

//go:generate mockgen -source=currency_price_repository.go -destination=mock_currency_price_repository.go -package=repository

// CurrencyPriceRepository is an append-only store of observed index prices.
type CurrencyPriceRepository interface {
	Add(ctx context.Context, db DB, ticker string, price decimal.Decimal, timestamp int64) (*model.CurrencyPrices, error)
	ListByTicker(ctx context.Context, db DB, ticker string) ([]model.CurrencyPrices, error)
	// Latest returns nil when the ticker has no prices
	Latest(ctx context.Context, db DB, ticker string) (*model.CurrencyPrices, error)
	// ListByRange filters on timestamp with inclusive bounds; a nil bound is open
	ListByRange(ctx context.Context, db DB, ticker string, startTs, endTs *int64) ([]model.CurrencyPrices, error)
}

type currencyPriceRepositoryHandler struct{}

func NewCurrencyPriceRepository() CurrencyPriceRepository {
	return currencyPriceRepositoryHandler{}
}

func (h currencyPriceRepositoryHandler) Add(ctx context.Context, db DB, ticker string, price decimal.Decimal, timestamp int64) (*model.CurrencyPrices, error) {
	t := CurrencyPrices
	query := t.INSERT(
		t.Ticker,
		t.Price,
		t.Timestamp,
	).MODEL(
		model.CurrencyPrices{
			Ticker:    ticker,
			Price:     price,
			Timestamp: timestamp,
		},
	).RETURNING(
		t.AllColumns,
	)

	out := &model.CurrencyPrices{}
	err := query.QueryContext(ctx, db, out)
	if err != nil {
		return nil, pricefeed_errors.ErrPersistence{Op: "insert price for " + ticker, Err: err}
	}

	return out, nil
}

func (h currencyPriceRepositoryHandler) ListByTicker(ctx context.Context, db DB, ticker string) ([]model.CurrencyPrices, error) {
	return h.ListByRange(ctx, db, ticker, nil, nil)
}

func (h currencyPriceRepositoryHandler) Latest(ctx context.Context, db DB, ticker string) (*model.CurrencyPrices, error) {
	query := latestStatement(ticker)

	results := []model.CurrencyPrices{}
	err := query.QueryContext(ctx, db, &results)
	if err != nil {
		return nil, pricefeed_errors.ErrPersistence{Op: "get latest price for " + ticker, Err: err}
	}
	if len(results) == 0 {
		return nil, nil
	}

	return &results[0], nil
}

func (h currencyPriceRepositoryHandler) ListByRange(ctx context.Context, db DB, ticker string, startTs, endTs *int64) ([]model.CurrencyPrices, error) {
	query := rangeStatement(ticker, startTs, endTs)

	results := []model.CurrencyPrices{}
	err := query.QueryContext(ctx, db, &results)
	if err != nil {
		return nil, pricefeed_errors.ErrPersistence{Op: "list prices for " + ticker, Err: err}
	}

	return results, nil
}

func rangeStatement(ticker string, startTs, endTs *int64) postgres.SelectStatement {
	t := CurrencyPrices
	whereExp := []postgres.BoolExpression{
		t.Ticker.EQ(postgres.String(ticker)),
	}
	if startTs != nil {
		whereExp = append(whereExp, t.Timestamp.GT_EQ(postgres.Int(*startTs)))
	}
	if endTs != nil {
		whereExp = append(whereExp, t.Timestamp.LT_EQ(postgres.Int(*endTs)))
	}

	// id breaks ties between polls that share a timestamp
	return t.SELECT(t.AllColumns).
		WHERE(postgres.AND(whereExp...)).
		ORDER_BY(t.Timestamp.ASC(), t.ID.ASC())
}

func latestStatement(ticker string) postgres.SelectStatement {
	t := CurrencyPrices
	return t.SELECT(t.AllColumns).
		WHERE(t.Ticker.EQ(postgres.String(ticker))).
		ORDER_BY(t.Timestamp.DESC(), t.ID.DESC()).
		LIMIT(1)
}
