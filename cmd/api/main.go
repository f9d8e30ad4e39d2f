package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"pricefeed/api"
	db "pricefeed/internal/db/query"
	"pricefeed/internal/repository"
	"pricefeed/internal/resolver"
	"pricefeed/internal/service"
	"pricefeed/internal/util"
	"syscall"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := util.NewLogger(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.New(cfg.Db)
	if err != nil {
		logger.Fatal(err)
	}
	defer dbConn.Close()

	currencyPriceRepository := repository.NewCurrencyPriceRepository()
	priceService := service.NewPriceService(
		dbConn,
		currencyPriceRepository,
		cfg.Query.AllowedTickers,
	)

	r := resolver.NewResolver(
		priceService,
	)

	router := api.NewRouter(*cfg, r, dbConn.PingContext, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = api.StartApi(ctx, cfg.Run.Addr(), router, logger)
	if err != nil {
		logger.Fatal(err)
	}
}
