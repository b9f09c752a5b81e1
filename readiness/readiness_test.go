package readiness_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/vanso-himesh/rs-mysql/os_helper"
	"github.com/vanso-himesh/rs-mysql/os_helper/os_helperfakes"
	"github.com/vanso-himesh/rs-mysql/readiness"
	"github.com/vanso-himesh/rs-mysql/readiness/readinessfakes"
)

var _ = Describe("Poller", func() {
	var (
		poller       *readiness.Poller
		fakePinger   *readinessfakes.FakePinger
		fakeOsHelper *os_helperfakes.FakeOsHelper
		testLogger   *lagertest.TestLogger
		now          time.Time
		refused      error
	)

	BeforeEach(func() {
		fakePinger = &readinessfakes.FakePinger{}
		fakeOsHelper = &os_helperfakes.FakeOsHelper{}
		testLogger = lagertest.NewTestLogger("readiness")
		refused = errors.New("connect: connection refused")

		now = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
		fakeOsHelper.NowStub = func() time.Time { return now }
		fakeOsHelper.SleepStub = func(d time.Duration) { now = now.Add(d) }

		poller = readiness.NewPoller(fakePinger, fakeOsHelper, testLogger)
	})

	It("returns immediately when the database is already up", func() {
		Expect(poller.WaitForDatabase(10 * time.Second)).To(Succeed())

		Expect(fakePinger.PingCallCount()).To(Equal(1))
		Expect(fakeOsHelper.SleepCallCount()).To(BeZero())
		Expect(testLogger).To(gbytes.Say("database-ready"))
	})

	It("keeps polling once per interval until the database answers", func() {
		fakePinger.PingReturnsOnCall(0, refused)
		fakePinger.PingReturnsOnCall(1, refused)
		fakePinger.PingReturnsOnCall(2, nil)

		Expect(poller.WaitForDatabase(10 * time.Second)).To(Succeed())

		Expect(fakePinger.PingCallCount()).To(Equal(3))
		Expect(fakeOsHelper.SleepCallCount()).To(Equal(2))
		Expect(fakeOsHelper.SleepArgsForCall(0)).To(Equal(time.Second))
		Expect(fakeOsHelper.SleepArgsForCall(1)).To(Equal(time.Second))
	})

	It("bounds every ping with the overall deadline", func() {
		start := now
		Expect(poller.WaitForDatabase(5 * time.Second)).To(Succeed())

		ctx := fakePinger.PingArgsForCall(0)
		deadline, ok := ctx.Deadline()
		Expect(ok).To(BeTrue())
		Expect(deadline).To(Equal(start.Add(5 * time.Second)))
	})

	When("the database never becomes ready", func() {
		BeforeEach(func() {
			fakePinger.PingReturns(refused)
		})

		It("fails with ServiceNotReadyError once the timeout elapses", func() {
			start := now
			err := poller.WaitForDatabase(2 * time.Second)

			var notReady readiness.ServiceNotReadyError
			Expect(errors.As(err, &notReady)).To(BeTrue())
			Expect(notReady.Timeout).To(Equal(2 * time.Second))
			Expect(notReady.Attempts).To(Equal(2))
			Expect(errors.Is(err, refused)).To(BeTrue())

			Expect(now.Sub(start)).To(Equal(2 * time.Second))
			Expect(testLogger).To(gbytes.Say("timed-out"))
		})

		It("never sleeps past the deadline", func() {
			poller.Interval = 3 * time.Second
			start := now

			Expect(poller.WaitForDatabase(4 * time.Second)).To(HaveOccurred())

			Expect(fakeOsHelper.SleepCallCount()).To(Equal(2))
			Expect(fakeOsHelper.SleepArgsForCall(0)).To(Equal(3 * time.Second))
			Expect(fakeOsHelper.SleepArgsForCall(1)).To(Equal(time.Second))
			Expect(now.Sub(start)).To(Equal(4 * time.Second))
		})

		It("uses the default timeout when none is given", func() {
			start := now
			err := poller.WaitForDatabase(0)

			var notReady readiness.ServiceNotReadyError
			Expect(errors.As(err, &notReady)).To(BeTrue())
			Expect(notReady.Timeout).To(Equal(readiness.DefaultStartupTimeout))
			Expect(now.Sub(start)).To(Equal(readiness.DefaultStartupTimeout))
		})

		It("describes the failure", func() {
			err := poller.WaitForDatabase(2 * time.Second)
			Expect(err).To(MatchError("service not ready: database did not accept connections within 2s after 2 attempts: connect: connection refused"))
		})
	})

	Context("with the real clock", func() {
		It("gives up after approximately the timeout", func() {
			fakePinger.PingStub = func(ctx context.Context) error { return refused }
			poller = readiness.NewPoller(fakePinger, os_helper.NewImpl(), testLogger)
			poller.Interval = 100 * time.Millisecond

			start := time.Now()
			err := poller.WaitForDatabase(500 * time.Millisecond)
			elapsed := time.Since(start)

			Expect(err).To(BeAssignableToTypeOf(readiness.ServiceNotReadyError{}))
			Expect(elapsed).To(BeNumerically("~", 500*time.Millisecond, 200*time.Millisecond))
		})
	})
})
