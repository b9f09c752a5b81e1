package tuning

import (
	"strconv"
)

type UsageProfile string

const (
	Dedicated UsageProfile = "dedicated"
	Shared    UsageProfile = "shared"
)

func ParseUsageProfile(value string) (UsageProfile, error) {
	profile := UsageProfile(value)
	if _, err := profile.reservedFraction(); err != nil {
		return "", err
	}
	return profile, nil
}

// reservedFraction is the share of system memory left to the operating system
// and to other workloads on the host.
func (p UsageProfile) reservedFraction() (float64, error) {
	switch p {
	case Dedicated:
		return 0.10, nil
	case Shared:
		return 0.50, nil
	default:
		return 0, &InvalidUsageProfileError{Value: string(p)}
	}
}

func MegabytesToBytes(megabytes uint64) uint64 {
	return megabytes * MB
}

// Calculate fills every recognized tunable missing from tunables with a value
// sized from the system memory and usage profile. Entries already present are
// left untouched. Nothing is written unless the whole set can be derived.
func Calculate(systemMemory uint64, profile UsageProfile, tunables TunableSet) (TunableSet, error) {
	if systemMemory == 0 {
		return tunables, &InvalidMemoryValueError{Value: "0"}
	}

	reserved, err := profile.reservedFraction()
	if err != nil {
		return tunables, err
	}

	budget := float64(systemMemory) * (1 - reserved)

	computed := TunableSet{}
	resolve := func(name string) uint64 {
		if v, ok := tunables[name]; ok {
			return v
		}
		return computed[name]
	}

	var memoryInUse uint64
	for _, t := range Tunables {
		computed[t.Name] = t.value(budget, resolve)
		if t.ConsumesMemory {
			memoryInUse += computed[t.Name]
		}
	}

	if memoryInUse > systemMemory {
		return tunables, &InvalidMemoryValueError{
			Value:  strconv.FormatUint(systemMemory, 10),
			Reason: "too small to hold the minimum buffer sizes (" + strconv.FormatUint(memoryInUse, 10) + " bytes)",
		}
	}

	if tunables == nil {
		tunables = TunableSet{}
	}

	for name, value := range computed {
		setIfMissing(tunables, name, value)
	}

	return tunables, nil
}

func setIfMissing(tunables TunableSet, name string, value uint64) {
	if _, ok := tunables[name]; !ok {
		tunables[name] = value
	}
}
