package main

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	_ "github.com/go-sql-driver/mysql"

	"github.com/vanso-himesh/rs-mysql/config"
	"github.com/vanso-himesh/rs-mysql/db_helper"
	"github.com/vanso-himesh/rs-mysql/os_helper"
	"github.com/vanso-himesh/rs-mysql/provisioner"
	"github.com/vanso-himesh/rs-mysql/sysinfo"
)

func main() {
	cfg, err := config.NewConfig(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating config: %s\n", err)
		os.Exit(1)
	}

	err = cfg.Validate()
	if err != nil {
		cfg.Logger.Fatal("Error validating config", err)
		return
	}

	OsHelper := os_helper.NewImpl()
	DBHelper := db_helper.NewDBHelper(
		&cfg.Db,
		cfg.Application,
		cfg.Logger,
	)

	Provisioner := provisioner.New(
		cfg,
		OsHelper,
		sysinfo.NewSigar(),
		DBHelper,
		cfg.Logger,
	)

	cfg.Logger.Info("starting")

	result, err := Provisioner.Execute()
	if err != nil {
		cfg.Logger.Info("abnormal-termination", lager.Data{
			"run-id": result.RunID,
			"error":  err.Error(),
		})
		os.Exit(1)
	}

	cfg.Logger.Info("exited", lager.Data{
		"run-id":                 result.RunID,
		"tunables":               result.Tunables,
		"options":                result.Options,
		"tags":                   result.Tags,
		"server-version":         result.ServerVersion,
		"restart-required":       result.RestartRequired,
		"innodb-log-files-stale": result.InnodbLogFilesStale,
		"binlog-index-rewritten": result.BinlogIndexRewritten,
	})
}
