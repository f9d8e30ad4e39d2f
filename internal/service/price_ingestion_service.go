package service

import (
	"context"
	"database/sql"
	"fmt"
	pricefeed_errors "pricefeed/internal"
	"pricefeed/internal/db/models/postgres/public/model"
	"pricefeed/internal/metrics"
	price_ingestion "pricefeed/internal/price-ingestion"
	"pricefeed/internal/repository"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DbOpener hands out a database handle owned by a single ingestion cycle.
type DbOpener func(ctx context.Context) (*sql.DB, error)

// PriceIngestionService fetches and stores one price per ticker per cycle.
type PriceIngestionService interface {
	// RunCycle never fails as a whole; per-ticker failures are logged and
	// reported in the summary
	RunCycle(ctx context.Context, tickers []string) CycleSummary
}

type TickerResult struct {
	Ticker string
	Record *model.CurrencyPrices
	Err    error
}

type CycleSummary struct {
	CycleID  uuid.UUID
	Started  time.Time
	Finished time.Time
	Results  []TickerResult
}

func (s CycleSummary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func (s CycleSummary) Succeeded() int {
	return len(s.Results) - s.Failed()
}

func NewPriceIngestionService(
	priceClient price_ingestion.PriceIngestionClient,
	currencyPriceRepository repository.CurrencyPriceRepository,
	openDb DbOpener,
	logger logrus.FieldLogger,
) PriceIngestionService {
	return priceIngestionServiceHandler{
		PriceClient:             priceClient,
		CurrencyPriceRepository: currencyPriceRepository,
		OpenDb:                  openDb,
		Logger:                  logger,
	}
}

type priceIngestionServiceHandler struct {
	PriceClient             price_ingestion.PriceIngestionClient
	CurrencyPriceRepository repository.CurrencyPriceRepository
	OpenDb                  DbOpener
	Logger                  logrus.FieldLogger
}

func (h priceIngestionServiceHandler) RunCycle(ctx context.Context, tickers []string) (summary CycleSummary) {
	summary = CycleSummary{
		CycleID: uuid.New(),
		Started: time.Now().UTC(),
		Results: make([]TickerResult, 0, len(tickers)),
	}
	log := h.Logger.WithField("cycle_id", summary.CycleID.String())

	defer func() {
		summary.Finished = time.Now().UTC()
		metrics.ObserveCycle(summary.Finished.Sub(summary.Started))
		log.WithFields(logrus.Fields{
			"succeeded": summary.Succeeded(),
			"failed":    summary.Failed(),
			"duration":  summary.Finished.Sub(summary.Started).String(),
		}).Info("ingestion cycle completed")
	}()

	dbConn, err := h.OpenDb(ctx)
	if err != nil {
		log.WithError(err).Error("failed to open cycle database")
		for _, ticker := range tickers {
			metrics.RecordTickerResult(ticker, metrics.OutcomeDbUnavailable)
			summary.Results = append(summary.Results, TickerResult{
				Ticker: ticker,
				Err:    pricefeed_errors.ErrPersistence{Op: "open cycle database", Err: err},
			})
		}
		return summary
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			log.WithError(err).Warn("failed to close cycle database")
		}
	}()

	for _, ticker := range tickers {
		result := h.ingestTicker(ctx, dbConn, ticker)
		tickerLog := log.WithField("ticker", ticker)
		if result.Err != nil {
			tickerLog.WithError(result.Err).Error("failed to ingest index price")
		} else {
			tickerLog.WithFields(logrus.Fields{
				"id":        result.Record.ID,
				"price":     result.Record.Price.String(),
				"timestamp": result.Record.Timestamp,
			}).Info("index price saved")
		}
		summary.Results = append(summary.Results, result)
	}

	return summary
}

func (h priceIngestionServiceHandler) ingestTicker(ctx context.Context, dbConn *sql.DB, ticker string) (result TickerResult) {
	result.Ticker = ticker
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordTickerResult(ticker, metrics.OutcomeFetchFailed)
			result.Record = nil
			result.Err = fmt.Errorf("recovered from panic while ingesting %s: %v", ticker, r)
		}
	}()

	indexPrice, err := h.PriceClient.GetIndexPrice(ctx, ticker)
	if err != nil {
		metrics.RecordTickerResult(ticker, metrics.OutcomeFetchFailed)
		result.Err = err
		return result
	}

	record, err := h.CurrencyPriceRepository.Add(ctx, dbConn, ticker, indexPrice.Price, indexPrice.ObservedAtMicros)
	if err != nil {
		metrics.RecordTickerResult(ticker, metrics.OutcomeStoreFailed)
		result.Err = err
		return result
	}

	metrics.RecordTickerResult(ticker, metrics.OutcomeStored)
	result.Record = record
	return result
}
