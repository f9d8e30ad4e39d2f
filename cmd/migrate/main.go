package main

import (
	"flag"
	"fmt"
	"log"
	"pricefeed/internal/db/migrations"
	db "pricefeed/internal/db/query"
	"pricefeed/internal/util"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate up|down|version")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatal("expected exactly one command")
	}

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

	switch cmd := flag.Arg(0); cmd {
	case "up":
		err = migrations.Up(dbConn)
	case "down":
		err = migrations.Down(dbConn)
	case "version":
		version, dirty, ok, verr := migrations.Version(dbConn)
		if verr != nil {
			err = verr
			break
		}
		if !ok {
			logger.Info("no migrations applied")
			return
		}
		logger.WithFields(logrus.Fields{"version": version, "dirty": dirty}).Info("schema version")
		return
	default:
		flag.Usage()
		logger.Fatalf("unknown command %q", cmd)
	}
	if err != nil {
		logger.Fatal(err)
	}
	logger.WithField("command", flag.Arg(0)).Info("migration complete")
}
