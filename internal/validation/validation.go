// Package validation checks user supplied paths and options before a run
// starts, so that obvious mistakes fail fast with a clear message.
package validation

import (
	"fmt"
	"os"
	"strings"

	"github.com/CadoCordova/Tempero-Fechamento/internal/fileutils"
	"github.com/CadoCordova/Tempero-Fechamento/internal/parsererror"
	"github.com/CadoCordova/Tempero-Fechamento/internal/tabular"
)

// IsValidInputFile checks that path is a readable regular file with a
// supported statement extension.
func IsValidInputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return &parsererror.ValidationError{Reason: "input file path is empty"}
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &parsererror.ValidationError{FilePath: path, Reason: "file does not exist"}
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return &parsererror.ValidationError{FilePath: path, Reason: "not a regular file"}
	}

	if ext := fileutils.Extension(path); !tabular.IsSupported(ext) {
		return &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: strings.Join(tabular.SupportedExtensions, ", "),
			Msg:            fmt.Sprintf("unsupported extension %q", ext),
		}
	}
	return nil
}

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string, supported []string) error {
	for _, s := range supported {
		if format == s {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, strings.Join(supported, ", "))
}
