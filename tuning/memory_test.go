package tuning_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vanso-himesh/rs-mysql/tuning"
)

var _ = Describe("ParseMemory", func() {
	DescribeTable("parses memory figures",
		func(value string, expected uint64) {
			Expect(tuning.ParseMemory(value)).To(Equal(expected))
		},
		Entry("Ohai kilobytes", "1011228kB", uint64(1011228*1024)),
		Entry("kilobytes with a space", "2048 kB", uint64(2048*1024)),
		Entry("plain bytes", "1048576000", uint64(1048576000)),
		Entry("binary units", "4GiB", uint64(4*1024*1024*1024)),
	)

	DescribeTable("rejects unusable figures",
		func(value string) {
			_, err := tuning.ParseMemory(value)
			Expect(err).To(BeAssignableToTypeOf(&tuning.InvalidMemoryValueError{}))
			Expect(err).To(MatchError(ContainSubstring(value)))
		},
		Entry("empty", ""),
		Entry("zero", "0kB"),
		Entry("garbage", "plenty"),
	)
})
