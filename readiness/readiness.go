package readiness

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager/v3"

	"github.com/vanso-himesh/rs-mysql/os_helper"
)

const (
	DefaultStartupTimeout = 300 * time.Second
	DefaultPollInterval   = time.Second
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}

type ServiceNotReadyError struct {
	Timeout  time.Duration
	Attempts int
	LastErr  error
}

func (e ServiceNotReadyError) Error() string {
	return fmt.Sprintf("service not ready: database did not accept connections within %s after %d attempts: %v", e.Timeout, e.Attempts, e.LastErr)
}

func (e ServiceNotReadyError) Unwrap() error {
	return e.LastErr
}

type Poller struct {
	pinger   Pinger
	osHelper os_helper.OsHelper
	logger   lager.Logger
	Interval time.Duration
}

func NewPoller(pinger Pinger, osHelper os_helper.OsHelper, logger lager.Logger) *Poller {
	return &Poller{
		pinger:   pinger,
		osHelper: osHelper,
		logger:   logger,
		Interval: DefaultPollInterval,
	}
}

// WaitForDatabase blocks until the database accepts a connection or timeout elapses.
// A zero timeout means DefaultStartupTimeout.
func (p *Poller) WaitForDatabase(timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultStartupTimeout
	}
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	deadline := p.osHelper.Now().Add(timeout)
	logger := p.logger.Session("wait-for-database", lager.Data{"timeout": timeout.String()})
	logger.Info("starting")

	var attempts int
	for {
		attempts++
		err := p.ping(deadline)
		if err == nil {
			logger.Info("database-ready", lager.Data{"attempts": attempts})
			return nil
		}

		remaining := deadline.Sub(p.osHelper.Now())
		if remaining > 0 {
			logger.Debug("database-not-ready", lager.Data{"attempt": attempts, "err": err.Error()})
			p.osHelper.Sleep(min(interval, remaining))
		}

		// A ping at the deadline would only report the expired context.
		if !p.osHelper.Now().Before(deadline) {
			logger.Error("timed-out", err, lager.Data{"attempts": attempts})
			return ServiceNotReadyError{Timeout: timeout, Attempts: attempts, LastErr: err}
		}
	}
}

func (p *Poller) ping(deadline time.Time) error {
	ctx, cancel := context.WithDeadline(context.Background(), deadline)
	defer cancel()
	return p.pinger.Ping(ctx)
}
