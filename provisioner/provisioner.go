package provisioner

import (
	"path/filepath"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/vanso-himesh/rs-mysql/config"
	"github.com/vanso-himesh/rs-mysql/data_dir"
	"github.com/vanso-himesh/rs-mysql/db_helper"
	"github.com/vanso-himesh/rs-mysql/metrics"
	"github.com/vanso-himesh/rs-mysql/option_file"
	"github.com/vanso-himesh/rs-mysql/os_helper"
	"github.com/vanso-himesh/rs-mysql/platform"
	"github.com/vanso-himesh/rs-mysql/readiness"
	"github.com/vanso-himesh/rs-mysql/replication"
	"github.com/vanso-himesh/rs-mysql/sysinfo"
	"github.com/vanso-himesh/rs-mysql/tuning"
)

const selinuxProbe = "/usr/sbin/getenforce"

type Result struct {
	RunID                string
	Tunables             tuning.TunableSet
	Options              map[string]string
	Tags                 []string
	ServerVersion        string
	BinlogDir            string
	RestartRequired      bool
	InnodbLogFilesStale  bool
	BinlogIndexRewritten bool
}

type Provisioner struct {
	config        *config.Config
	osHelper      os_helper.OsHelper
	hostResources sysinfo.HostResources
	dbHelper      db_helper.DBHelper
	logger        lager.Logger
}

func New(
	config *config.Config,
	osHelper os_helper.OsHelper,
	hostResources sysinfo.HostResources,
	dbHelper db_helper.DBHelper,
	logger lager.Logger) *Provisioner {
	return &Provisioner{
		config:        config,
		osHelper:      osHelper,
		hostResources: hostResources,
		dbHelper:      dbHelper,
		logger:        logger,
	}
}

// Execute runs one provisioning pass. Every step is idempotent.
func (p *Provisioner) Execute() (Result, error) {
	result := Result{RunID: uuid.NewString()}
	logger := p.logger.Session("provision", lager.Data{"run-id": result.RunID})
	logger.Info("starting")

	family, err := platform.ParseFamily(p.config.Platform.Family)
	if err != nil {
		return result, err
	}

	provider, err := platform.ParseCloudProvider(p.config.Platform.CloudProvider)
	if err != nil {
		return result, err
	}

	profile, err := tuning.ParseUsageProfile(p.config.Tuning.ServerUsage)
	if err != nil {
		return result, err
	}

	err = platform.NewRepoWaiter(p.osHelper, logger).
		WaitForRHELRepo(p.config.Platform.Name, provider, p.config.Platform.RepoWaitTimeout())
	if err != nil {
		return result, err
	}

	memory, err := p.systemMemory()
	if err != nil {
		return result, err
	}

	result.Tunables, err = p.tunables(memory, profile)
	if err != nil {
		return result, err
	}
	logger.Info("tunables-calculated", lager.Data{"memory": memory, "profile": profile})

	result.Options, err = p.options(family)
	if err != nil {
		return result, err
	}

	dataDir := data_dir.New(p.config.Server.DataDir, p.osHelper, logger)

	result.InnodbLogFilesStale, err = dataDir.InnodbLogFilesStale(result.Tunables["innodb_log_file_size"])
	if err != nil {
		return result, err
	}
	if result.InnodbLogFilesStale && p.config.Server.RemoveStaleInnodbLogFiles {
		if err := dataDir.RemoveInnodbLogFiles(); err != nil {
			return result, err
		}
	}

	// log_bin always lives under the data dir, relocated or not.
	binlogDir := filepath.Join(p.config.Server.DataDir, replication.BinlogDirName)
	if err := p.osHelper.MkdirAll(binlogDir, 0770); err != nil {
		return result, errors.Wrapf(err, "failed to create %s", binlogDir)
	}
	if dir, ok := replication.BinlogDir(p.config.Server.DataDir, p.config.Server.ServiceName); ok {
		result.BinlogDir = dir
	}

	result.BinlogIndexRewritten, err = dataDir.RewriteBinlogIndex()
	if err != nil {
		return result, err
	}

	result.RestartRequired, err = option_file.NewWriter(p.osHelper, logger).
		Write(p.config.OptionFilePath, result.Tunables, result.Options)
	if err != nil {
		return result, err
	}
	if result.RestartRequired || result.InnodbLogFilesStale {
		result.RestartRequired = true
		logger.Info("restart-required")
	}

	if err := readiness.NewPoller(p.dbHelper, p.osHelper, logger).WaitForDatabase(p.config.Db.StartupTimeout()); err != nil {
		return result, err
	}

	version, err := p.dbHelper.ServerVersion()
	if err != nil {
		return result, err
	}
	result.ServerVersion = version.String()
	logger.Info("server-version", lager.Data{"version": result.ServerVersion, "configured": p.config.Server.Version})

	if err := p.dbHelper.SeedApplicationDatabase(); err != nil {
		return result, err
	}

	if p.config.Lineage != "" {
		result.Tags, err = replication.DatabaseTags(p.config.Lineage, result.Options["bind-address"], p.config.Db.Port)
		if err != nil {
			return result, err
		}

		if p.config.TagsFilePath != "" {
			if err := p.osHelper.WriteStringToFile(p.config.TagsFilePath, strings.Join(result.Tags, "\n")+"\n"); err != nil {
				return result, errors.Wrapf(err, "failed to write %s", p.config.TagsFilePath)
			}
		}
	}

	if p.config.MetricsFilePath != "" {
		if err := metrics.New(result.Tunables, memory).WriteTextfile(p.config.MetricsFilePath); err != nil {
			return result, err
		}
	}

	logger.Info("done", lager.Data{
		"restart-required":       result.RestartRequired,
		"innodb-log-files-stale": result.InnodbLogFilesStale,
		"binlog-index-rewritten": result.BinlogIndexRewritten,
		"option-file":            p.config.OptionFilePath,
	})
	return result, nil
}

func (p *Provisioner) systemMemory() (uint64, error) {
	if p.config.Tuning.TotalMemory != "" {
		return tuning.ParseMemory(p.config.Tuning.TotalMemory)
	}
	return p.hostResources.TotalMemory()
}

func (p *Provisioner) tunables(memory uint64, profile tuning.UsageProfile) (tuning.TunableSet, error) {
	tunables := tuning.TunableSet{}
	for name, value := range p.config.Tuning.Overrides {
		if _, known := tuning.Lookup(name); !known {
			p.logger.Info("passing-through-override", lager.Data{"tunable": name})
		}
		tunables[name] = value
	}

	tunables, err := tuning.Calculate(memory, profile, tunables)
	if err != nil {
		return nil, err
	}

	if p.config.Tuning.BinlogDiskPercentage > 0 {
		disk, err := p.hostResources.TotalDiskKB(p.config.Server.DataDir)
		if err != nil {
			return nil, err
		}

		tunables, err = tuning.CalculateBinlogLimits(disk, p.config.Tuning.BinlogDiskPercentage, tunables)
		if err != nil {
			return nil, err
		}
	}

	return tunables, nil
}

func (p *Provisioner) options(family platform.Family) (map[string]string, error) {
	serverID, err := replication.ServerID(p.config.Server.MacAddress)
	if err != nil {
		return nil, err
	}

	bindAddress, err := replication.BindAddress(p.config.Server.PrivateIPs, p.config.Server.PublicIPs)
	if err != nil {
		return nil, err
	}

	options, err := replication.BinlogOptions(p.config.Server.DataDir, p.config.Server.Version)
	if err != nil {
		return nil, err
	}

	options["server_id"] = strconv.FormatUint(uint64(serverID), 10)
	options["bind-address"] = bindAddress

	if logError, ok := family.ErrorLogOverride(p.osHelper.FileExists(selinuxProbe)); ok {
		options["log-error"] = logError
		if err := p.osHelper.MkdirAll(filepath.Dir(logError), 0750); err != nil {
			return nil, errors.Wrapf(err, "failed to create %s", filepath.Dir(logError))
		}
	}

	return options, nil
}
