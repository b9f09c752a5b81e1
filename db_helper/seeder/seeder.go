package seeder

import (
	"database/sql"
	"fmt"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"

	"github.com/vanso-himesh/rs-mysql/config"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Seeder
type Seeder interface {
	CreateDBIfNeeded() error
	SeedUser(host string) error
}

var knownPrivileges = map[string]string{
	"all":                     "ALL PRIVILEGES",
	"alter":                   "ALTER",
	"alter routine":           "ALTER ROUTINE",
	"create":                  "CREATE",
	"create routine":          "CREATE ROUTINE",
	"create temporary tables": "CREATE TEMPORARY TABLES",
	"create view":             "CREATE VIEW",
	"delete":                  "DELETE",
	"drop":                    "DROP",
	"event":                   "EVENT",
	"execute":                 "EXECUTE",
	"index":                   "INDEX",
	"insert":                  "INSERT",
	"lock tables":             "LOCK TABLES",
	"references":              "REFERENCES",
	"select":                  "SELECT",
	"show view":               "SHOW VIEW",
	"trigger":                 "TRIGGER",
	"update":                  "UPDATE",
}

// PrivilegeList renders privileges as the comma separated list used in a GRANT.
func PrivilegeList(privileges []string) (string, error) {
	if len(privileges) == 0 {
		return "", errors.New("no privileges specified")
	}

	keywords := make([]string, 0, len(privileges))
	for _, privilege := range privileges {
		keyword, ok := knownPrivileges[strings.ToLower(strings.TrimSpace(privilege))]
		if !ok {
			return "", errors.Errorf("unknown privilege %q", privilege)
		}
		keywords = append(keywords, keyword)
	}

	return strings.Join(keywords, ", "), nil
}

func QuoteIdentifier(identifier string) string {
	return "`" + strings.ReplaceAll(identifier, "`", "``") + "`"
}

func QuoteString(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + replacer.Replace(value) + "'"
}

type seeder struct {
	db     *sql.DB
	config config.ApplicationConfig
	logger lager.Logger
}

func NewSeeder(db *sql.DB, config config.ApplicationConfig, logger lager.Logger) Seeder {
	return &seeder{
		db:     db,
		config: config,
		logger: logger,
	}
}

func (s seeder) CreateDBIfNeeded() error {
	_, err := s.db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", QuoteIdentifier(s.config.DatabaseName)))
	if err != nil {
		s.logger.Error("Error creating application database", err, lager.Data{"dbName": s.config.DatabaseName})
		return errors.Wrapf(err, "failed to create database %s", s.config.DatabaseName)
	}
	return nil
}

func (s seeder) SeedUser(host string) error {
	grants, err := PrivilegeList(s.config.Privileges)
	if err != nil {
		return err
	}

	account := QuoteIdentifier(s.config.Username) + "@" + QuoteIdentifier(host)
	password := QuoteString(s.config.Password)

	_, err = s.db.Exec(fmt.Sprintf("CREATE USER IF NOT EXISTS %s IDENTIFIED BY %s", account, password))
	if err != nil {
		s.logger.Error("Error creating user", err, lager.Data{
			"user": s.config.Username,
			"host": host,
		})
		return errors.Wrapf(err, "failed to create user %s", s.config.Username)
	}

	_, err = s.db.Exec(fmt.Sprintf("ALTER USER %s IDENTIFIED BY %s", account, password))
	if err != nil {
		s.logger.Error("Error updating user password", err, lager.Data{
			"user": s.config.Username,
			"host": host,
		})
		return errors.Wrapf(err, "failed to update password for user %s", s.config.Username)
	}

	_, err = s.db.Exec(fmt.Sprintf("GRANT %s ON %s.* TO %s", grants, QuoteIdentifier(s.config.DatabaseName), account))
	if err != nil {
		s.logger.Error("Error granting user privileges", err, lager.Data{
			"dbName": s.config.DatabaseName,
			"user":   s.config.Username,
			"host":   host,
		})
		return errors.Wrapf(err, "failed to grant privileges to user %s", s.config.Username)
	}

	return nil
}
