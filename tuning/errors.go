package tuning

import "fmt"

type InvalidMemoryValueError struct {
	Value  string
	Reason string
}

func (e *InvalidMemoryValueError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "insufficient information to size the server safely"
	}
	return fmt.Sprintf("invalid system memory value %q: %s", e.Value, reason)
}

type InvalidUsageProfileError struct {
	Value string
}

func (e *InvalidUsageProfileError) Error() string {
	return fmt.Sprintf("invalid usage profile %q: must be %q or %q", e.Value, Dedicated, Shared)
}
