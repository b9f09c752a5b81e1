package main

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	_ "github.com/go-sql-driver/mysql"

	"github.com/vanso-himesh/rs-mysql/config"
	"github.com/vanso-himesh/rs-mysql/db_helper"
	"github.com/vanso-himesh/rs-mysql/os_helper"
	"github.com/vanso-himesh/rs-mysql/readiness"
)

func main() {
	var cfg Config
	if err := ParseConfig(&cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: bad configuration - %s\n", err)
		os.Exit(1)
	}

	logger := lager.NewLogger("pingdb")
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))

	dbConfig := cfg.DBConfig()
	poller := readiness.NewPoller(
		db_helper.NewDBHelper(&dbConfig, config.ApplicationConfig{}, logger),
		os_helper.NewImpl(),
		logger,
	)
	poller.Interval = cfg.Interval

	// WaitForDatabase only fails with a ServiceNotReadyError.
	if err := poller.WaitForDatabase(cfg.Timeout); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: database not ready after %s: %v\n", cfg.Timeout, errors.Unwrap(err))
		os.Exit(1)
	}
}
