package platform

import (
	"fmt"
	"time"
)

type UnknownPlatformFamilyError struct {
	Value string
}

func (e *UnknownPlatformFamilyError) Error() string {
	return fmt.Sprintf("unknown platform family %q: must be %q or %q", e.Value, RHEL, Debian)
}

type UnknownCloudProviderError struct {
	Value string
}

func (e *UnknownCloudProviderError) Error() string {
	return fmt.Sprintf("unknown cloud provider %q", e.Value)
}

type RepoNotReadyError struct {
	RepoID  string
	Timeout time.Duration
}

func (e *RepoNotReadyError) Error() string {
	return fmt.Sprintf("Timeout: repository %s not available after %s", e.RepoID, e.Timeout)
}
