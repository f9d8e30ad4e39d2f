package service

import (
	"context"
	"database/sql"
	"errors"
	pricefeed_errors "pricefeed/internal"
	"pricefeed/internal/db/models/postgres/public/model"
	"pricefeed/internal/domain"
	price_ingestion "pricefeed/internal/price-ingestion"
	"pricefeed/internal/repository"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newCycleDb(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()
	return dbConn, mock
}

func openerFor(dbConn *sql.DB) DbOpener {
	return func(ctx context.Context) (*sql.DB, error) {
		return dbConn, nil
	}
}

func TestPriceIngestionService_RunCycle(t *testing.T) {
	ctx := context.Background()

	t.Run("one ticker failing does not stop the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := price_ingestion.NewMockPriceIngestionClient(ctrl)
		repo := repository.NewMockCurrencyPriceRepository(ctrl)
		dbConn, mock := newCycleDb(t)
		logger, hook := test.NewNullLogger()

		ethPrice := decimal.RequireFromString("3000.25")
		gomock.InOrder(
			client.EXPECT().
				GetIndexPrice(gomock.Any(), "btc_usd").
				Return(nil, pricefeed_errors.ErrNetwork{Ticker: "btc_usd", Err: errors.New("connection reset")}),
			client.EXPECT().
				GetIndexPrice(gomock.Any(), "eth_usd").
				Return(&domain.IndexPrice{Ticker: "eth_usd", Price: ethPrice, ObservedAtMicros: 1640995200123456}, nil),
		)
		repo.EXPECT().
			Add(gomock.Any(), dbConn, "eth_usd", ethPrice, int64(1640995200123456)).
			Return(&model.CurrencyPrices{ID: 7, Ticker: "eth_usd", Price: ethPrice, Timestamp: 1640995200123456}, nil)

		svc := NewPriceIngestionService(client, repo, openerFor(dbConn), logger)
		summary := svc.RunCycle(ctx, []string{"btc_usd", "eth_usd"})

		require.NotEqual(t, uuid.Nil, summary.CycleID)
		require.False(t, summary.Finished.Before(summary.Started))
		require.Len(t, summary.Results, 2)
		require.Equal(t, 1, summary.Failed())
		require.Equal(t, 1, summary.Succeeded())

		require.Equal(t, "btc_usd", summary.Results[0].Ticker)
		require.Nil(t, summary.Results[0].Record)
		var networkErr pricefeed_errors.ErrNetwork
		require.ErrorAs(t, summary.Results[0].Err, &networkErr)

		require.Equal(t, "eth_usd", summary.Results[1].Ticker)
		require.NoError(t, summary.Results[1].Err)
		require.Equal(t, int64(7), summary.Results[1].Record.ID)

		require.NoError(t, mock.ExpectationsWereMet())

		errorLogs := 0
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.ErrorLevel {
				errorLogs++
				require.Equal(t, "btc_usd", entry.Data["ticker"])
			}
		}
		require.Equal(t, 1, errorLogs)
		require.Equal(t, "ingestion cycle completed", hook.LastEntry().Message)
	})

	t.Run("persistence failure is isolated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := price_ingestion.NewMockPriceIngestionClient(ctrl)
		repo := repository.NewMockCurrencyPriceRepository(ctrl)
		dbConn, mock := newCycleDb(t)
		logger, _ := test.NewNullLogger()

		btcPrice := decimal.RequireFromString("50000.5")
		ethPrice := decimal.RequireFromString("3000.25")
		client.EXPECT().
			GetIndexPrice(gomock.Any(), "btc_usd").
			Return(&domain.IndexPrice{Ticker: "btc_usd", Price: btcPrice, ObservedAtMicros: 1}, nil)
		client.EXPECT().
			GetIndexPrice(gomock.Any(), "eth_usd").
			Return(&domain.IndexPrice{Ticker: "eth_usd", Price: ethPrice, ObservedAtMicros: 2}, nil)
		repo.EXPECT().
			Add(gomock.Any(), dbConn, "btc_usd", btcPrice, int64(1)).
			Return(nil, pricefeed_errors.ErrPersistence{Op: "insert price for btc_usd", Err: errors.New("deadlock")})
		repo.EXPECT().
			Add(gomock.Any(), dbConn, "eth_usd", ethPrice, int64(2)).
			Return(&model.CurrencyPrices{ID: 1, Ticker: "eth_usd", Price: ethPrice, Timestamp: 2}, nil)

		summary := NewPriceIngestionService(client, repo, openerFor(dbConn), logger).
			RunCycle(ctx, []string{"btc_usd", "eth_usd"})

		require.Equal(t, 1, summary.Failed())
		var persistenceErr pricefeed_errors.ErrPersistence
		require.ErrorAs(t, summary.Results[0].Err, &persistenceErr)
		require.NotNil(t, summary.Results[1].Record)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("parse failure is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := price_ingestion.NewMockPriceIngestionClient(ctrl)
		repo := repository.NewMockCurrencyPriceRepository(ctrl)
		dbConn, mock := newCycleDb(t)
		logger, _ := test.NewNullLogger()

		client.EXPECT().
			GetIndexPrice(gomock.Any(), "btc_usd").
			Return(nil, pricefeed_errors.ErrParse{Ticker: "btc_usd", Field: "usIn", Err: errors.New("field is missing")})

		summary := NewPriceIngestionService(client, repo, openerFor(dbConn), logger).
			RunCycle(ctx, []string{"btc_usd"})

		require.Equal(t, 1, summary.Failed())
		var parseErr pricefeed_errors.ErrParse
		require.ErrorAs(t, summary.Results[0].Err, &parseErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("panicking client is contained", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := price_ingestion.NewMockPriceIngestionClient(ctrl)
		repo := repository.NewMockCurrencyPriceRepository(ctrl)
		dbConn, mock := newCycleDb(t)
		logger, _ := test.NewNullLogger()

		ethPrice := decimal.RequireFromString("3000.25")
		client.EXPECT().
			GetIndexPrice(gomock.Any(), "btc_usd").
			DoAndReturn(func(ctx context.Context, ticker string) (*domain.IndexPrice, error) {
				panic("boom")
			})
		client.EXPECT().
			GetIndexPrice(gomock.Any(), "eth_usd").
			Return(&domain.IndexPrice{Ticker: "eth_usd", Price: ethPrice, ObservedAtMicros: 2}, nil)
		repo.EXPECT().
			Add(gomock.Any(), dbConn, "eth_usd", ethPrice, int64(2)).
			Return(&model.CurrencyPrices{ID: 1, Ticker: "eth_usd", Price: ethPrice, Timestamp: 2}, nil)

		summary := NewPriceIngestionService(client, repo, openerFor(dbConn), logger).
			RunCycle(ctx, []string{"btc_usd", "eth_usd"})

		require.Equal(t, 1, summary.Failed())
		require.ErrorContains(t, summary.Results[0].Err, "boom")
		require.NoError(t, summary.Results[1].Err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unavailable database fails every ticker without fetching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := price_ingestion.NewMockPriceIngestionClient(ctrl)
		repo := repository.NewMockCurrencyPriceRepository(ctrl)
		logger, _ := test.NewNullLogger()

		opener := func(ctx context.Context) (*sql.DB, error) {
			return nil, errors.New("too many connections")
		}

		summary := NewPriceIngestionService(client, repo, opener, logger).
			RunCycle(ctx, []string{"btc_usd", "eth_usd"})

		require.Len(t, summary.Results, 2)
		require.Equal(t, 2, summary.Failed())
		for _, r := range summary.Results {
			var persistenceErr pricefeed_errors.ErrPersistence
			require.ErrorAs(t, r.Err, &persistenceErr)
			require.ErrorContains(t, r.Err, "too many connections")
		}
	})

	t.Run("no tickers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dbConn, mock := newCycleDb(t)
		logger, _ := test.NewNullLogger()

		summary := NewPriceIngestionService(
			price_ingestion.NewMockPriceIngestionClient(ctrl),
			repository.NewMockCurrencyPriceRepository(ctrl),
			openerFor(dbConn),
			logger,
		).RunCycle(ctx, nil)

		require.Empty(t, summary.Results)
		require.Equal(t, 0, summary.Failed())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
