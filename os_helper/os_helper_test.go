package os_helper_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/vanso-himesh/rs-mysql/os_helper"
)

var _ = Describe("OsHelper", func() {
	var (
		helper  *OsHelperImpl
		tempDir string
	)

	BeforeEach(func() {
		helper = NewImpl()

		var err error
		tempDir, err = os.MkdirTemp("", "os_helper_")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, tempDir)
	})

	Describe("RunCommand", func() {
		It("runs a command", func() {
			output, err := helper.RunCommand("echo", "-n", "some data")
			Expect(err).NotTo(HaveOccurred())

			Expect(output).To(Equal("some data"))
		})

		When("running the command fails", func() {
			It("returns an error and still returns the output", func() {
				output, err := helper.RunCommand("bash", "-c", "echo >&2 -n some data && false")
				Expect(err).To(MatchError(ContainSubstring(`error running "bash"`)))

				Expect(output).To(Equal("some data"))
			})
		})
	})

	Describe("FileExists", func() {
		It("returns true when the file exists", func() {
			Expect(os.WriteFile(filepath.Join(tempDir, "foo"), nil, 0644)).To(Succeed())
			Expect(helper.FileExists(filepath.Join(tempDir, "foo"))).To(BeTrue())
		})

		It("returns false when the file does not exist", func() {
			Expect(helper.FileExists("/tmp/" + uuid.NewString())).To(BeFalse())
		})
	})

	Describe("FileSize", func() {
		It("returns the size of the file in bytes", func() {
			Expect(os.WriteFile(filepath.Join(tempDir, "ib_logfile0"), make([]byte, 4096), 0644)).To(Succeed())

			size, err := helper.FileSize(filepath.Join(tempDir, "ib_logfile0"))
			Expect(err).NotTo(HaveOccurred())
			Expect(size).To(Equal(int64(4096)))
		})

		When("the file does not exist", func() {
			It("returns an error", func() {
				_, err := helper.FileSize("/tmp/" + uuid.NewString())
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("ReadFile", func() {
		It("returns the contents of a file", func() {
			Expect(os.WriteFile(filepath.Join(tempDir, "foo"), []byte("some fancy data: \U0001f37f"), 0644)).To(Succeed())

			content, err := helper.ReadFile(filepath.Join(tempDir, "foo"))
			Expect(err).NotTo(HaveOccurred())
			Expect(content).To(Equal("some fancy data: 🍿"))
		})

		When("reading a file fails", func() {
			It("returns an error", func() {
				_, err := helper.ReadFile("/tmp/" + uuid.NewString())
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("WriteStringToFile", func() {
		It("writes a string to a file", func() {
			err := helper.WriteStringToFile(filepath.Join(tempDir, "foo"), "some fancy string")
			Expect(err).NotTo(HaveOccurred())

			contents, err := os.ReadFile(filepath.Join(tempDir, "foo"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(contents)).To(Equal("some fancy string"))
		})

		When("writing to a file fails", func() {
			It("returns an error", func() {
				err := helper.WriteStringToFile(filepath.Join(tempDir, "invalid-directory", uuid.NewString()), "anything")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("RemoveGlob", func() {
		BeforeEach(func() {
			for _, name := range []string{"ib_logfile0", "ib_logfile1", "ibdata1"} {
				Expect(os.WriteFile(filepath.Join(tempDir, name), nil, 0644)).To(Succeed())
			}
		})

		It("removes only the matching files", func() {
			removed, err := helper.RemoveGlob(filepath.Join(tempDir, "ib_logfile*"))
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(ConsistOf(
				filepath.Join(tempDir, "ib_logfile0"),
				filepath.Join(tempDir, "ib_logfile1"),
			))

			Expect(filepath.Join(tempDir, "ib_logfile0")).NotTo(BeAnExistingFile())
			Expect(filepath.Join(tempDir, "ibdata1")).To(BeAnExistingFile())
		})

		It("returns nothing when no file matches", func() {
			removed, err := helper.RemoveGlob(filepath.Join(tempDir, "mysql-bin.*"))
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeEmpty())
		})

		It("rejects a malformed pattern", func() {
			_, err := helper.RemoveGlob("[")
			Expect(err).To(MatchError(ContainSubstring(`invalid pattern "["`)))
		})
	})

	Describe("MkdirAll", func() {
		It("creates nested directories", func() {
			dir := filepath.Join(tempDir, "data", "mysql_binlogs")
			Expect(helper.MkdirAll(dir, 0770)).To(Succeed())
			Expect(dir).To(BeADirectory())
		})

		It("succeeds when the directory already exists", func() {
			Expect(helper.MkdirAll(tempDir, 0770)).To(Succeed())
		})
	})

	Describe("Sleep", func() {
		It("sleeps for the specified duration", func() {
			now := helper.Now()
			helper.Sleep(time.Second)

			Expect(time.Since(now)).To(BeNumerically("~", time.Second, 250*time.Millisecond))
		})
	})
})
