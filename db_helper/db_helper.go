package db_helper

import (
	"context"
	"database/sql"
	"net"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/blang/semver/v4"
	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/vanso-himesh/rs-mysql/config"
	s "github.com/vanso-himesh/rs-mysql/db_helper/seeder"
)

// TLSConfigName is the name the client TLS configuration is registered under with the mysql driver.
const TLSConfigName = "rs-mysql"

var applicationUserHosts = []string{"localhost", "%"}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . DBHelper
type DBHelper interface {
	Ping(ctx context.Context) error
	ServerVersion() (semver.Version, error)
	SeedApplicationDatabase() error
}

type MySQLDBHelper struct {
	config      *config.DBConfig
	application config.ApplicationConfig
	logger      lager.Logger
}

func NewDBHelper(
	config *config.DBConfig,
	application config.ApplicationConfig,
	logger lager.Logger) *MySQLDBHelper {
	return &MySQLDBHelper{
		config:      config,
		application: application,
		logger:      logger,
	}
}

var BuildSeeder = func(db *sql.DB, config config.ApplicationConfig, logger lager.Logger) s.Seeder {
	return s.NewSeeder(db, config, logger)
}

func FormatDSN(config config.DBConfig) string {
	cfg := mysql.NewConfig()
	cfg.User = config.User
	cfg.Passwd = config.Password

	if config.Socket != "" {
		cfg.Net = "unix"
		cfg.Addr = config.Socket
	} else {
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	}

	if config.TLS.Enabled {
		cfg.TLSConfig = TLSConfigName
	}

	return cfg.FormatDSN()
}

// Overridable methods to allow mocking DB connections in tests
var OpenDBConnection = func(config *config.DBConfig) (*sql.DB, error) {
	tlsConfig, err := config.ClientTLSConfig()
	if err != nil {
		return nil, err
	}

	if tlsConfig != nil {
		if err := mysql.RegisterTLSConfig(TLSConfigName, tlsConfig); err != nil {
			return nil, errors.Wrap(err, "failed to register tls config")
		}
	}

	db, err := sql.Open("mysql", FormatDSN(*config))
	if err != nil {
		return nil, err
	}

	return db, nil
}
var CloseDBConnection = func(db *sql.DB) error {
	return db.Close()
}

// RecognizedMySQLError reports whether err was generated by a mysql server, as opposed to the client.
func RecognizedMySQLError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}

	return mysqlErr.Number < 2000 || mysqlErr.Number >= 3000
}

// Ping succeeds once the server accepts connections. An error reported by
// the server itself, such as access denied, still proves it is up.
func (m MySQLDBHelper) Ping(ctx context.Context) error {
	db, err := OpenDBConnection(m.config)
	if err != nil {
		return err
	}
	defer func() { _ = CloseDBConnection(db) }()

	if err := db.PingContext(ctx); err != nil {
		if RecognizedMySQLError(err) {
			m.logger.Debug("database answered ping with an error", lager.Data{"err": err.Error()})
			return nil
		}
		return err
	}

	return nil
}

func (m MySQLDBHelper) ServerVersion() (semver.Version, error) {
	db, err := OpenDBConnection(m.config)
	if err != nil {
		return semver.Version{}, err
	}
	defer func() { _ = CloseDBConnection(db) }()

	var rawVersion string
	if err := db.QueryRow(`SELECT @@global.version`).Scan(&rawVersion); err != nil {
		return semver.Version{}, errors.Wrap(err, "failed to query server version")
	}

	return ParseServerVersion(rawVersion)
}

// ParseServerVersion drops any distribution suffix, e.g. "8.0.36-28" or "5.7.44-log".
func ParseServerVersion(rawVersion string) (semver.Version, error) {
	core, _, _ := strings.Cut(strings.TrimSpace(rawVersion), "-")
	version, err := semver.ParseTolerant(core)
	if err != nil {
		return semver.Version{}, errors.Wrapf(err, "failed to parse server version %q", rawVersion)
	}
	return version, nil
}

func (m MySQLDBHelper) SeedApplicationDatabase() error {
	app := m.application
	createUser := app.Username != "" && app.Password != ""

	if app.DatabaseName == "" {
		if createUser {
			return errors.New("application database name is required for creating user")
		}
		m.logger.Info("No application database specified, skipping seeding.")
		return nil
	}

	if createUser {
		if _, err := s.PrivilegeList(app.Privileges); err != nil {
			return err
		}
	}

	m.logger.Info("Seeding application database", lager.Data{"dbName": app.DatabaseName})

	db, err := OpenDBConnection(m.config)
	if err != nil {
		m.logger.Error("database not reachable", err)
		return err
	}
	defer func() { _ = CloseDBConnection(db) }()

	seeder := BuildSeeder(db, app, m.logger)

	if err := seeder.CreateDBIfNeeded(); err != nil {
		return err
	}

	if !createUser {
		return nil
	}

	for _, host := range applicationUserHosts {
		if err := seeder.SeedUser(host); err != nil {
			return err
		}
	}

	return m.flushPrivileges(db)
}

func (m MySQLDBHelper) flushPrivileges(db *sql.DB) error {
	if _, err := db.Exec("FLUSH PRIVILEGES"); err != nil {
		m.logger.Error("Error flushing privileges", err)
		return errors.Wrap(err, "failed to flush privileges")
	}

	return nil
}
