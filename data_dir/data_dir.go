package data_dir

import (
	"path/filepath"
	"regexp"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"

	"github.com/vanso-himesh/rs-mysql/os_helper"
)

var binlogPath = regexp.MustCompile(`^.*/(mysql_binlogs/.*)$`)

type DataDir struct {
	path     string
	osHelper os_helper.OsHelper
	logger   lager.Logger
}

func New(path string, osHelper os_helper.OsHelper, logger lager.Logger) *DataDir {
	return &DataDir{
		path:     path,
		osHelper: osHelper,
		logger:   logger.Session("data-dir", lager.Data{"path": path}),
	}
}

// InnodbLogFilesStale reports whether the redo logs on disk were created with
// a different innodb_log_file_size. mysqld refuses to start until they are
// removed.
func (d *DataDir) InnodbLogFilesStale(expectedBytes uint64) (bool, error) {
	logFile := filepath.Join(d.path, "ib_logfile0")
	if !d.osHelper.FileExists(logFile) {
		return false, nil
	}

	size, err := d.osHelper.FileSize(logFile)
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat %s", logFile)
	}

	stale := uint64(size) != expectedBytes
	if stale {
		d.logger.Info("innodb-log-files-stale", lager.Data{
			"size":     size,
			"expected": expectedBytes,
		})
	}

	return stale, nil
}

// RemoveInnodbLogFiles must only run while mysqld is stopped.
func (d *DataDir) RemoveInnodbLogFiles() error {
	removed, err := d.osHelper.RemoveGlob(filepath.Join(d.path, "ib_logfile*"))
	if err != nil {
		return errors.Wrap(err, "failed to delete innodb log files")
	}

	d.logger.Info("innodb-log-files-removed", lager.Data{"files": removed})
	return nil
}

// RewriteBinlogIndex points every entry of the binary log index at the
// current data directory.
func (d *DataDir) RewriteBinlogIndex() (bool, error) {
	index := filepath.Join(d.path, "mysql_binlogs", "mysql-bin.index")
	if !d.osHelper.FileExists(index) {
		return false, nil
	}

	contents, err := d.osHelper.ReadFile(index)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", index)
	}

	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		if m := binlogPath.FindStringSubmatch(line); m != nil {
			lines[i] = d.path + "/" + m[1]
		}
	}
	rewritten := strings.Join(lines, "\n")

	if rewritten == contents {
		return false, nil
	}

	if err := d.osHelper.WriteStringToFile(index, rewritten); err != nil {
		return false, errors.Wrapf(err, "failed to write %s", index)
	}

	d.logger.Info("binlog-index-rewritten", lager.Data{"index": index})
	return true, nil
}
