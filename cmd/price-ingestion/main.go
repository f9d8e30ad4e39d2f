package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	db "pricefeed/internal/db/query"
	"pricefeed/internal/metrics"
	price_ingestion "pricefeed/internal/price-ingestion"
	"pricefeed/internal/repository"
	"pricefeed/internal/scheduler"
	"pricefeed/internal/service"
	"pricefeed/internal/util"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	once := flag.Bool("once", false, "run a single ingestion cycle and exit")
	flag.Parse()

	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := util.NewLogger(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}

	priceClient := price_ingestion.NewDeribitClient(cfg.Deribit)
	currencyPriceRepository := repository.NewCurrencyPriceRepository()
	openCycleDb := func(ctx context.Context) (*sql.DB, error) {
		return db.NewIsolated(ctx, cfg.Db)
	}

	ingestionService := service.NewPriceIngestionService(
		priceClient,
		currencyPriceRepository,
		openCycleDb,
		logger,
	)

	runCycle := func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, cfg.Ingestion.CycleTimeout)
		defer cancel()
		ingestionService.RunCycle(ctx, cfg.Ingestion.Tickers)
	}

	if *once {
		runCycle(context.Background())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Ingestion.MetricsPort != 0 {
		go serveMetrics(cfg.Ingestion.MetricsPort, logger)
	}

	s, err := scheduler.New(cfg.Ingestion.Schedule, runCycle, logger)
	if err != nil {
		logger.Fatal(err)
	}

	logger.WithFields(logrus.Fields{
		"schedule": cfg.Ingestion.Schedule,
		"tickers":  cfg.Ingestion.Tickers,
	}).Info("starting price ingestion")
	s.Run(ctx)
}

func serveMetrics(port int, logger logrus.FieldLogger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Error("metrics listener stopped")
	}
}
