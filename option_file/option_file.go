package option_file

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager/v3"
	"github.com/pkg/errors"

	"github.com/vanso-himesh/rs-mysql/os_helper"
	"github.com/vanso-himesh/rs-mysql/tuning"
)

// Render writes a [mysqld] option group. Tunables take precedence over string
// options with the same name.
func Render(writer io.Writer, tunables tuning.TunableSet, options map[string]string) error {
	merged := make(map[string]string, len(tunables)+len(options))
	for name, value := range options {
		merged[name] = value
	}
	for name, value := range tunables {
		merged[name] = strconv.FormatUint(value, 10)
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]string, 0, len(names))
	for _, name := range names {
		params = append(params, fmt.Sprintf("%s = %s", name, merged[name]))
	}

	config := "\n[mysqld]\n" + strings.Join(params, "\n") + "\n"
	_, err := writer.Write([]byte(config))
	return errors.Wrap(err, "failed to emit mysql configuration")
}

type Writer struct {
	osHelper os_helper.OsHelper
	logger   lager.Logger
}

func NewWriter(osHelper os_helper.OsHelper, logger lager.Logger) *Writer {
	return &Writer{
		osHelper: osHelper,
		logger:   logger,
	}
}

// Write renders the option file to path and reports whether its contents
// changed. mysqld only picks up a changed file after a restart.
func (w *Writer) Write(path string, tunables tuning.TunableSet, options map[string]string) (bool, error) {
	var rendered bytes.Buffer
	if err := Render(&rendered, tunables, options); err != nil {
		return false, err
	}

	if w.osHelper.FileExists(path) {
		current, err := w.osHelper.ReadFile(path)
		if err != nil {
			return false, errors.Wrapf(err, "failed to read %s", path)
		}

		if current == rendered.String() {
			w.logger.Info("option-file-unchanged", lager.Data{"path": path})
			return false, nil
		}
	}

	if err := w.osHelper.WriteStringToFile(path, rendered.String()); err != nil {
		return false, errors.Wrapf(err, "failed to write %s", path)
	}

	w.logger.Info("option-file-written", lager.Data{
		"path":    path,
		"options": len(tunables) + len(options),
	})

	return true, nil
}
