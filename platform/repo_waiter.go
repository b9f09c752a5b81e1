package platform

import (
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/vanso-himesh/rs-mysql/os_helper"
)

const (
	DefaultRepoWaitTimeout = 300 * time.Second
	RepoPollingInterval    = time.Second
)

type RepoWaiter struct {
	osHelper os_helper.OsHelper
	logger   lager.Logger
	interval time.Duration
}

func NewRepoWaiter(osHelper os_helper.OsHelper, logger lager.Logger) *RepoWaiter {
	return &RepoWaiter{
		osHelper: osHelper,
		logger:   logger,
		interval: RepoPollingInterval,
	}
}

// WaitForRHELRepo blocks until the cloud's RHEL repository shows up in the
// yum cache. Red Hat hosts on some clouds get their repositories registered
// shortly after boot.
func (w *RepoWaiter) WaitForRHELRepo(platformName string, provider CloudProvider, timeout time.Duration) error {
	logger := w.logger.Session("wait-for-rhel-repo", lager.Data{
		"platform": platformName,
		"cloud":    provider,
	})

	if platformName != "redhat" {
		logger.Debug("skipping-non-redhat-platform")
		return nil
	}

	if provider == NoCloud {
		logger.Info("not-running-on-a-known-cloud")
		return nil
	}

	repoID, ok := provider.RHELRepoID()
	if !ok {
		logger.Debug("no-repo-check-for-cloud")
		return nil
	}

	if timeout <= 0 {
		timeout = DefaultRepoWaitTimeout
	}

	deadline := w.osHelper.Now().Add(timeout)
	for {
		output, err := w.osHelper.RunCommand("yum", "--cacheonly", "repolist")
		if err == nil && strings.Contains(output, repoID) {
			logger.Info("repo-available", lager.Data{"repo": repoID})
			return nil
		}

		remaining := deadline.Sub(w.osHelper.Now())
		if remaining <= 0 {
			err := &RepoNotReadyError{RepoID: repoID, Timeout: timeout}
			logger.Error("repo-not-available", err)
			return err
		}

		logger.Debug("repo-not-yet-available", lager.Data{"repo": repoID})
		w.osHelper.Sleep(min(w.interval, remaining))
	}
}
