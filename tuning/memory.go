package tuning

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// ParseMemory reads a total memory figure such as "1011228kB", "4GiB" or
// "1048576000". A "kB" suffix is read as kibibytes, the way Ohai and
// /proc/meminfo report it. Other suffixes follow go-humanize.
func ParseMemory(value string) (uint64, error) {
	trimmed := strings.TrimSpace(value)
	if kibibytes, ok := strings.CutSuffix(trimmed, "kB"); ok {
		trimmed = strings.TrimSpace(kibibytes) + "KiB"
	}

	if trimmed == "" {
		return 0, &InvalidMemoryValueError{Value: value}
	}

	bytes, err := humanize.ParseBytes(trimmed)
	if err != nil {
		return 0, &InvalidMemoryValueError{Value: value, Reason: err.Error()}
	}

	if bytes == 0 {
		return 0, &InvalidMemoryValueError{Value: value}
	}

	return bytes, nil
}
