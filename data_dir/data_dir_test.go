package data_dir_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vanso-himesh/rs-mysql/data_dir"
	"github.com/vanso-himesh/rs-mysql/os_helper/os_helperfakes"
	"github.com/vanso-himesh/rs-mysql/tuning"
)

var _ = Describe("DataDir", func() {
	var (
		dataDir *data_dir.DataDir
		fakeOs  *os_helperfakes.FakeOsHelper
	)

	BeforeEach(func() {
		fakeOs = new(os_helperfakes.FakeOsHelper)
		dataDir = data_dir.New("/mnt/storage/mysql", fakeOs, lagertest.NewTestLogger("data_dir"))
	})

	Describe("InnodbLogFilesStale", func() {
		Context("when there are no innodb log files", func() {
			It("is not stale", func() {
				stale, err := dataDir.InnodbLogFilesStale(tuning.MegabytesToBytes(48))
				Expect(err).NotTo(HaveOccurred())
				Expect(stale).To(BeFalse())
				Expect(fakeOs.FileExistsArgsForCall(0)).To(Equal("/mnt/storage/mysql/ib_logfile0"))
			})
		})

		Context("when the log file matches the configured size", func() {
			BeforeEach(func() {
				fakeOs.FileExistsReturns(true)
				fakeOs.FileSizeReturns(int64(tuning.MegabytesToBytes(48)), nil)
			})

			It("is not stale", func() {
				Expect(dataDir.InnodbLogFilesStale(tuning.MegabytesToBytes(48))).To(BeFalse())
			})
		})

		Context("when the log file has a different size", func() {
			BeforeEach(func() {
				fakeOs.FileExistsReturns(true)
				fakeOs.FileSizeReturns(int64(tuning.MegabytesToBytes(5)), nil)
			})

			It("is stale", func() {
				Expect(dataDir.InnodbLogFilesStale(tuning.MegabytesToBytes(48))).To(BeTrue())
			})
		})

		Context("when the log file cannot be inspected", func() {
			BeforeEach(func() {
				fakeOs.FileExistsReturns(true)
				fakeOs.FileSizeReturns(0, errors.New("permission denied"))
			})

			It("returns an error", func() {
				_, err := dataDir.InnodbLogFilesStale(tuning.MegabytesToBytes(48))
				Expect(err).To(MatchError("failed to stat /mnt/storage/mysql/ib_logfile0: permission denied"))
			})
		})
	})

	Describe("RemoveInnodbLogFiles", func() {
		It("removes every innodb log file", func() {
			Expect(dataDir.RemoveInnodbLogFiles()).To(Succeed())
			Expect(fakeOs.RemoveGlobArgsForCall(0)).To(Equal("/mnt/storage/mysql/ib_logfile*"))
		})

		It("returns an error when removal fails", func() {
			fakeOs.RemoveGlobReturns(nil, errors.New("read-only file system"))
			Expect(dataDir.RemoveInnodbLogFiles()).To(MatchError("failed to delete innodb log files: read-only file system"))
		})
	})

	Describe("RewriteBinlogIndex", func() {
		const index = "/mnt/storage/mysql/mysql_binlogs/mysql-bin.index"

		Context("when there is no binlog index", func() {
			It("does nothing", func() {
				rewritten, err := dataDir.RewriteBinlogIndex()
				Expect(err).NotTo(HaveOccurred())
				Expect(rewritten).To(BeFalse())
				Expect(fakeOs.FileExistsArgsForCall(0)).To(Equal(index))
				Expect(fakeOs.WriteStringToFileCallCount()).To(BeZero())
			})
		})

		Context("when the index refers to the old data directory", func() {
			BeforeEach(func() {
				fakeOs.FileExistsReturns(true)
				fakeOs.ReadFileReturns("/var/lib/mysql/mysql_binlogs/mysql-bin.000001\n/var/lib/mysql/mysql_binlogs/mysql-bin.000002\n", nil)
			})

			It("points every entry at the new data directory", func() {
				rewritten, err := dataDir.RewriteBinlogIndex()
				Expect(err).NotTo(HaveOccurred())
				Expect(rewritten).To(BeTrue())

				path, contents := fakeOs.WriteStringToFileArgsForCall(0)
				Expect(path).To(Equal(index))
				Expect(contents).To(Equal("/mnt/storage/mysql/mysql_binlogs/mysql-bin.000001\n/mnt/storage/mysql/mysql_binlogs/mysql-bin.000002\n"))
			})
		})

		Context("when the data directory name contains a dollar sign", func() {
			BeforeEach(func() {
				dataDir = data_dir.New("/data/$1x", fakeOs, lagertest.NewTestLogger("data_dir"))
				fakeOs.FileExistsReturns(true)
				fakeOs.ReadFileReturns("/var/lib/mysql/mysql_binlogs/mysql-bin.000001\n", nil)
			})

			It("keeps the name literally", func() {
				Expect(dataDir.RewriteBinlogIndex()).To(BeTrue())

				_, contents := fakeOs.WriteStringToFileArgsForCall(0)
				Expect(contents).To(Equal("/data/$1x/mysql_binlogs/mysql-bin.000001\n"))
			})
		})

		Context("when the index is already up to date", func() {
			BeforeEach(func() {
				fakeOs.FileExistsReturns(true)
				fakeOs.ReadFileReturns("/mnt/storage/mysql/mysql_binlogs/mysql-bin.000001\n", nil)
			})

			It("leaves it alone", func() {
				Expect(dataDir.RewriteBinlogIndex()).To(BeFalse())
				Expect(fakeOs.WriteStringToFileCallCount()).To(BeZero())
			})
		})

		Context("when the index cannot be written", func() {
			BeforeEach(func() {
				fakeOs.FileExistsReturns(true)
				fakeOs.ReadFileReturns("./mysql_binlogs/mysql-bin.000001\n", nil)
				fakeOs.WriteStringToFileReturns(errors.New("disk full"))
			})

			It("returns an error", func() {
				_, err := dataDir.RewriteBinlogIndex()
				Expect(err).To(MatchError("failed to write " + index + ": disk full"))
			})
		})
	})
})
