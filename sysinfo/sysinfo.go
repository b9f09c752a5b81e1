package sysinfo

import (
	sigar "github.com/cloudfoundry/gosigar"
	"github.com/pkg/errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . HostResources
type HostResources interface {
	TotalMemory() (uint64, error)
	TotalDiskKB(path string) (uint64, error)
}

type Sigar struct{}

func NewSigar() *Sigar {
	return &Sigar{}
}

func (Sigar) TotalMemory() (uint64, error) {
	mem := sigar.Mem{}
	if err := mem.Get(); err != nil {
		return 0, errors.Wrap(err, "failed to read total memory")
	}
	return mem.Total, nil
}

// TotalDiskKB reports the size of the filesystem holding path, in kilobytes.
func (Sigar) TotalDiskKB(path string) (uint64, error) {
	fsu := sigar.FileSystemUsage{}
	if err := fsu.Get(path); err != nil {
		return 0, errors.Wrapf(err, "failed to read filesystem usage for %s", path)
	}
	return fsu.Total, nil
}
