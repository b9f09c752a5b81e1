package config

import (
	"crypto/tls"
	"crypto/x509"
	"flag"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"code.cloudfoundry.org/tlsconfig"
	"github.com/pkg/errors"
	"gopkg.in/validator.v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Tuning          TuningConfig      `yaml:"Tuning"`
	Platform        PlatformConfig    `yaml:"Platform"`
	Server          ServerConfig      `yaml:"Server"`
	Db              DBConfig          `yaml:"Db"`
	Application     ApplicationConfig `yaml:"Application"`
	Lineage         string            `yaml:"Lineage"`
	OptionFilePath  string            `yaml:"OptionFilePath" validate:"nonzero"`
	TagsFilePath    string            `yaml:"TagsFilePath"`
	MetricsFilePath string            `yaml:"MetricsFilePath"`
	Logger          lager.Logger      `yaml:"-"`
}

type TuningConfig struct {
	ServerUsage          string            `yaml:"ServerUsage" validate:"nonzero"`
	TotalMemory          string            `yaml:"TotalMemory"`
	BinlogDiskPercentage float64           `yaml:"BinlogDiskPercentage" validate:"min=0,max=100"`
	Overrides            map[string]uint64 `yaml:"Overrides"`
}

type PlatformConfig struct {
	Name                   string `yaml:"Name" validate:"nonzero"`
	Family                 string `yaml:"Family" validate:"nonzero"`
	CloudProvider          string `yaml:"CloudProvider"`
	RepoWaitTimeoutSeconds int    `yaml:"RepoWaitTimeoutSeconds" validate:"min=0"`
}

type ServerConfig struct {
	Version                   string   `yaml:"Version" validate:"nonzero"`
	ServiceName               string   `yaml:"ServiceName" validate:"nonzero"`
	DataDir                   string   `yaml:"DataDir" validate:"nonzero"`
	MacAddress                string   `yaml:"MacAddress" validate:"nonzero"`
	PrivateIPs                []string `yaml:"PrivateIPs"`
	PublicIPs                 []string `yaml:"PublicIPs"`
	RemoveStaleInnodbLogFiles bool     `yaml:"RemoveStaleInnodbLogFiles"`
}

type DBConfig struct {
	Host                  string `yaml:"Host"`
	Port                  int    `yaml:"Port" validate:"nonzero"`
	Socket                string `yaml:"Socket"`
	User                  string `yaml:"User" validate:"nonzero"`
	Password              string `yaml:"Password"`
	StartupTimeoutSeconds int    `yaml:"StartupTimeoutSeconds" validate:"min=0"`
	TLS                   DBTLS  `yaml:"TLS"`
}

type DBTLS struct {
	Enabled    bool   `yaml:"Enabled"`
	CA         string `yaml:"CA"`
	ServerName string `yaml:"ServerName"`
}

type ApplicationConfig struct {
	DatabaseName string   `yaml:"DatabaseName"`
	Username     string   `yaml:"Username"`
	Password     string   `yaml:"Password"`
	Privileges   []string `yaml:"Privileges"`
}

func defaultConfig() Config {
	return Config{
		Tuning: TuningConfig{
			ServerUsage: "dedicated",
		},
		Platform: PlatformConfig{
			RepoWaitTimeoutSeconds: 300,
		},
		Server: ServerConfig{
			Version:     "5.7",
			ServiceName: "mysql-default",
			DataDir:     "/var/lib/mysql-default",
		},
		Db: DBConfig{
			Host:                  "localhost",
			Port:                  3306,
			User:                  "root",
			StartupTimeoutSeconds: 300,
		},
		Application: ApplicationConfig{
			Privileges: []string{"select", "update", "insert"},
		},
		OptionFilePath: "/etc/mysql-default/conf.d/tunable.cnf",
	}
}

func NewConfig(osArgs []string) (*Config, error) {
	var rootConfig Config

	binaryName := osArgs[0]
	configurationOptions := osArgs[1:]

	flags := flag.NewFlagSet(binaryName, flag.ExitOnError)
	var configData = flags.String("config", "", "yaml encoded configuration string")
	var configPath = flags.String("configPath", "", "path to configuration file with yaml encoded content")

	lagerflags.AddFlags(flags)
	if err := flags.Parse(configurationOptions); err != nil {
		return nil, err
	}

	rootConfig = defaultConfig()

	if err := loadConfig(&rootConfig, *configData, *configPath); err != nil {
		return nil, err
	}

	rootConfig.Logger, _ = lagerflags.NewFromConfig(binaryName, lagerflags.ConfigFromFlags())
	return &rootConfig, nil
}

func (c Config) Validate() error {
	var errString string
	if err := validator.Validate(c); err != nil {
		errString += formatErrorString(err, "")
	}

	if c.Application.Username != "" && c.Application.Password != "" && c.Application.DatabaseName == "" {
		errString += "Application.DatabaseName : required for creating the application user\n"
	}

	if c.Db.TLS.Enabled && c.Db.TLS.CA == "" {
		errString += "Db.TLS.CA : required when TLS is enabled\n"
	}

	if len(errString) > 0 {
		return errors.New(fmt.Sprintf("Validation errors: %s\n", errString))
	}
	return nil
}

func formatErrorString(err error, keyPrefix string) string {
	errs := err.(validator.ErrorMap)
	var errsString string
	for fieldName, validationMessage := range errs {
		errsString += fmt.Sprintf("%s%s : %s\n", keyPrefix, fieldName, validationMessage)
	}
	return errsString
}

func (c DBConfig) StartupTimeout() time.Duration {
	return time.Duration(c.StartupTimeoutSeconds) * time.Second
}

func (c PlatformConfig) RepoWaitTimeout() time.Duration {
	return time.Duration(c.RepoWaitTimeoutSeconds) * time.Second
}

// ClientTLSConfig returns nil when TLS to the server is disabled.
func (c DBConfig) ClientTLSConfig() (*tls.Config, error) {
	if !c.TLS.Enabled {
		return nil, nil
	}

	certPool := x509.NewCertPool()
	if ok := certPool.AppendCertsFromPEM([]byte(c.TLS.CA)); !ok {
		return nil, errors.New("unable to parse Db.TLS.CA")
	}

	tlsConfig, err := tlsconfig.Build(
		tlsconfig.WithInternalServiceDefaults(),
	).Client(
		tlsconfig.WithAuthority(certPool),
		tlsconfig.WithServerName(c.TLS.ServerName),
	)
	if err != nil {
		return nil, errors.Wrap(err, "generating tls config")
	}

	return tlsConfig, nil
}

// Load configuration from sources in order of precedence:
// command line data "-config" or file "-configPath", environment variables
// for data CONFIG or file CONFIG_PATH.
func loadConfig(config *Config, configData, configPath string) error {
	var yamlData []byte
	var err error

	if configData != "" {
		yamlData = []byte(configData)
	} else if configPath != "" {
		yamlData, err = os.ReadFile(configPath)
		if err != nil {
			return errors.Wrapf(err, "failed to read config file %s", configPath)
		}
	} else if envConfig := os.Getenv("CONFIG"); envConfig != "" {
		yamlData = []byte(envConfig)
	} else if envConfigPath := os.Getenv("CONFIG_PATH"); envConfigPath != "" {
		yamlData, err = os.ReadFile(envConfigPath)
		if err != nil {
			return errors.Wrapf(err, "failed to read config file from CONFIG_PATH %s", envConfigPath)
		}
	} else {
		return errors.New("no configuration provided: use -config, -configPath, CONFIG, or CONFIG_PATH")
	}

	if err := yaml.Unmarshal(yamlData, config); err != nil {
		return errors.Wrap(err, "parsing YAML config")
	}

	return nil
}
