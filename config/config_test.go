package config_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/tlsconfig/certtest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/vanso-himesh/rs-mysql/config"
)

const minimalConfig = `
Tuning:
  ServerUsage: shared
  TotalMemory: 1011228kB
  Overrides:
    max_connections: 500
Platform:
  Name: ubuntu
  Family: debian
  CloudProvider: google
Server:
  Version: "8.0"
  MacAddress: "42:01:0a:80:00:02"
  PrivateIPs: ["10.128.0.2"]
Db:
  Password: root-password
Application:
  DatabaseName: app_test
  Username: app_user
  Password: app_password
Lineage: production
`

var _ = Describe("Config", func() {
	var (
		rootConfig *Config
	)

	Describe("NewConfig", func() {
		It("reads configuration from the -config flag", func() {
			var err error
			rootConfig, err = NewConfig([]string{"provision", fmt.Sprintf("-config=%s", minimalConfig)})
			Expect(err).NotTo(HaveOccurred())

			Expect(rootConfig.Tuning.ServerUsage).To(Equal("shared"))
			Expect(rootConfig.Tuning.TotalMemory).To(Equal("1011228kB"))
			Expect(rootConfig.Tuning.Overrides).To(HaveKeyWithValue("max_connections", uint64(500)))
			Expect(rootConfig.Platform.Family).To(Equal("debian"))
			Expect(rootConfig.Server.Version).To(Equal("8.0"))
			Expect(rootConfig.Server.PrivateIPs).To(ConsistOf("10.128.0.2"))
			Expect(rootConfig.Db.Password).To(Equal("root-password"))
			Expect(rootConfig.Lineage).To(Equal("production"))
			Expect(rootConfig.Logger).NotTo(BeNil())
		})

		It("keeps defaults for unset values", func() {
			var err error
			rootConfig, err = NewConfig([]string{"provision", fmt.Sprintf("-config=%s", minimalConfig)})
			Expect(err).NotTo(HaveOccurred())

			Expect(rootConfig.Server.ServiceName).To(Equal("mysql-default"))
			Expect(rootConfig.Server.DataDir).To(Equal("/var/lib/mysql-default"))
			Expect(rootConfig.Db.Host).To(Equal("localhost"))
			Expect(rootConfig.Db.Port).To(Equal(3306))
			Expect(rootConfig.Db.User).To(Equal("root"))
			Expect(rootConfig.Db.StartupTimeout()).To(Equal(300 * time.Second))
			Expect(rootConfig.Platform.RepoWaitTimeout()).To(Equal(300 * time.Second))
			Expect(rootConfig.Application.Privileges).To(Equal([]string{"select", "update", "insert"}))
			Expect(rootConfig.OptionFilePath).To(Equal("/etc/mysql-default/conf.d/tunable.cnf"))
		})

		It("reads configuration from the -configPath flag", func() {
			configFile := filepath.Join(GinkgoT().TempDir(), "provision.yml")
			Expect(os.WriteFile(configFile, []byte(minimalConfig), 0600)).To(Succeed())

			var err error
			rootConfig, err = NewConfig([]string{"provision", "-configPath=" + configFile})
			Expect(err).NotTo(HaveOccurred())
			Expect(rootConfig.Application.DatabaseName).To(Equal("app_test"))
		})

		It("reads configuration from the CONFIG environment variable", func() {
			GinkgoT().Setenv("CONFIG", minimalConfig)

			var err error
			rootConfig, err = NewConfig([]string{"provision"})
			Expect(err).NotTo(HaveOccurred())
			Expect(rootConfig.Platform.CloudProvider).To(Equal("google"))
		})

		It("fails when no configuration is provided", func() {
			GinkgoT().Setenv("CONFIG", "")
			GinkgoT().Setenv("CONFIG_PATH", "")

			_, err := NewConfig([]string{"provision"})
			Expect(err).To(MatchError("no configuration provided: use -config, -configPath, CONFIG, or CONFIG_PATH"))
		})

		It("fails when the configuration file is missing", func() {
			_, err := NewConfig([]string{"provision", "-configPath=/does/not/exist.yml"})
			Expect(err).To(MatchError(ContainSubstring("failed to read config file /does/not/exist.yml")))
		})

		It("fails on malformed YAML", func() {
			_, err := NewConfig([]string{"provision", "-config=Tuning: [unterminated"})
			Expect(err).To(MatchError(ContainSubstring("parsing YAML config")))
		})
	})

	Describe("Validate", func() {
		BeforeEach(func() {
			var err error
			rootConfig, err = NewConfig([]string{"provision", fmt.Sprintf("-config=%s", minimalConfig)})
			Expect(err).NotTo(HaveOccurred())
		})

		It("does not return error on valid config", func() {
			Expect(rootConfig.Validate()).To(Succeed())
		})

		It("requires a MAC address", func() {
			rootConfig.Server.MacAddress = ""
			err := rootConfig.Validate()
			Expect(err).To(MatchError(ContainSubstring("Server.MacAddress")))
		})

		It("requires the platform family", func() {
			rootConfig.Platform.Family = ""
			err := rootConfig.Validate()
			Expect(err).To(MatchError(ContainSubstring("Platform.Family")))
		})

		It("rejects a binlog disk percentage over 100", func() {
			rootConfig.Tuning.BinlogDiskPercentage = 150
			err := rootConfig.Validate()
			Expect(err).To(MatchError(ContainSubstring("Tuning.BinlogDiskPercentage")))
		})

		It("requires an application database name to create the application user", func() {
			rootConfig.Application.DatabaseName = ""
			err := rootConfig.Validate()
			Expect(err).To(MatchError(ContainSubstring("Application.DatabaseName : required for creating the application user")))
		})

		It("allows a database without an application user", func() {
			rootConfig.Application.Username = ""
			rootConfig.Application.Password = ""
			Expect(rootConfig.Validate()).To(Succeed())
		})

		It("requires a CA when TLS is enabled", func() {
			rootConfig.Db.TLS.Enabled = true
			err := rootConfig.Validate()
			Expect(err).To(MatchError(ContainSubstring("Db.TLS.CA : required when TLS is enabled")))
		})
	})

	Describe("ClientTLSConfig", func() {
		var dbConfig DBConfig

		BeforeEach(func() {
			dbConfig = DBConfig{Host: "mysql.example.com", Port: 3306, User: "root"}
		})

		It("returns nil when TLS is disabled", func() {
			tlsConfig, err := dbConfig.ClientTLSConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(tlsConfig).To(BeNil())
		})

		It("trusts the configured CA", func() {
			authority, err := certtest.BuildCA("mysqlCA")
			Expect(err).NotTo(HaveOccurred())
			caPEM, err := authority.CertificatePEM()
			Expect(err).NotTo(HaveOccurred())

			dbConfig.TLS = DBTLS{Enabled: true, CA: string(caPEM), ServerName: "mysql.example.com"}

			tlsConfig, err := dbConfig.ClientTLSConfig()
			Expect(err).NotTo(HaveOccurred())
			Expect(tlsConfig.ServerName).To(Equal("mysql.example.com"))
			Expect(tlsConfig.RootCAs).NotTo(BeNil())
		})

		It("rejects an unparseable CA", func() {
			dbConfig.TLS = DBTLS{Enabled: true, CA: "not a certificate"}

			_, err := dbConfig.ClientTLSConfig()
			Expect(err).To(MatchError("unable to parse Db.TLS.CA"))
		})
	})
})
