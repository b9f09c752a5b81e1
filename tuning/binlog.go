package tuning

import (
	"github.com/pkg/errors"
)

const (
	binlogBlockSize      = 4 * 1024
	maxBinlogSizeCeiling = 1024 * 1024 * 1024
)

// CalculateBinlogLimits caps binary log disk usage at a percentage of the data
// volume. A zero percentage leaves the set unchanged.
func CalculateBinlogLimits(totalDiskInKB uint64, targetPercentageOfDisk float64, tunables TunableSet) (TunableSet, error) {
	if targetPercentageOfDisk == 0.0 {
		return tunables, nil
	}

	if targetPercentageOfDisk < 0 || targetPercentageOfDisk > 100 {
		return tunables, errors.Errorf("invalid binlog disk percentage %v: must be between 0 and 100", targetPercentageOfDisk)
	}

	if totalDiskInKB == 0 {
		return tunables, errors.New("unable to size binary logs: total disk size is unknown")
	}

	totalDisk := totalDiskInKB * 1024
	binlogSpaceLimit := uint64(float64(totalDisk) * targetPercentageOfDisk / 100.0)

	maxBinlogSize := min(binlogSpaceLimit/3, maxBinlogSizeCeiling)
	maxBinlogSize = (maxBinlogSize / binlogBlockSize) * binlogBlockSize

	if tunables == nil {
		tunables = TunableSet{}
	}

	setIfMissing(tunables, "binlog_space_limit", binlogSpaceLimit)
	setIfMissing(tunables, "max_binlog_size", maxBinlogSize)

	return tunables, nil
}
