package replication

import (
	"fmt"
	"net"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/pkg/errors"
)

const (
	BinlogFormat        = "MIXED"
	BinlogRetentionDays = 2
	BinlogDirName       = "mysql_binlogs"
)

var macSeparator = regexp.MustCompile(`\W`)

// ServerID derives a 32 bit server_id from every group of a MAC address after
// the first two. IP addresses are not unique on clouds that NAT several instances
// behind one public address.
func ServerID(macAddress string) (uint32, error) {
	octets := macSeparator.Split(strings.TrimSpace(macAddress), -1)
	if len(octets) < 6 {
		return 0, errors.Errorf("invalid MAC address %q", macAddress)
	}

	id, err := strconv.ParseUint(strings.Join(octets[2:], ""), 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid MAC address %q", macAddress)
	}

	return uint32(id), nil
}

// BindAddress picks the address mysqld listens on: the first private IP, or the
// first public IP when the instance has no private network.
func BindAddress(privateIPs, publicIPs []string) (string, error) {
	for _, candidates := range [][]string{privateIPs, publicIPs} {
		for _, ip := range candidates {
			if net.ParseIP(strings.TrimSpace(ip)) != nil {
				return strings.TrimSpace(ip), nil
			}
		}
	}
	return "", errors.New("no usable IP address to bind to")
}

func BinlogDir(dataDir, serviceName string) (string, bool) {
	if filepath.Clean(dataDir) != filepath.Join("/var/lib", serviceName) {
		return "", false
	}
	return filepath.Join(dataDir, BinlogDirName), true
}

// BinlogOptions returns the binary logging settings for a server version.
// MySQL 8.0 replaced expire_logs_days with binlog_expire_logs_seconds.
func BinlogOptions(dataDir, serverVersion string) (map[string]string, error) {
	version, err := semver.ParseTolerant(serverVersion)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid mysql version %q", serverVersion)
	}

	options := map[string]string{
		"log_bin":       filepath.Join(dataDir, BinlogDirName, "mysql-bin"),
		"binlog_format": BinlogFormat,
	}

	if version.LT(semver.MustParse("8.0.0")) {
		options["expire_logs_days"] = strconv.Itoa(BinlogRetentionDays)
	} else {
		options["binlog_expire_logs_seconds"] = strconv.Itoa(BinlogRetentionDays * 24 * 60 * 60)
	}

	return options, nil
}

// DatabaseTags are the instance tags replication peers use to discover this
// server.
func DatabaseTags(lineage, bindIPAddress string, bindPort int) ([]string, error) {
	if lineage == "" {
		return nil, errors.New("a backup lineage is required to tag the database server")
	}

	return []string{
		"database:active=true",
		fmt.Sprintf("database:lineage=%s", lineage),
		fmt.Sprintf("database:bind_ip_address=%s", bindIPAddress),
		fmt.Sprintf("database:bind_port=%d", bindPort),
	}, nil
}
