package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Header is the single CSV column for an application list export.
const Header = "applicationNumber"

// FileName returns the artifact name for a status export.
func FileName(status string) string {
	return status + "_applications.csv"
}

// WriteApplications writes the single-column CSV for one status's list. The
// artifact is the header and one application number per line, newline-joined
// with no trailing terminator; application numbers carry no embedded commas
// or newlines so no quoting is needed.
func WriteApplications(w io.Writer, apps []string) error {
	lines := append([]string{Header}, apps...)
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Save writes the status export into dir and returns the file path.
func Save(dir, status string, apps []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(status))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := WriteApplications(f, apps); err != nil {
		return "", err
	}
	return path, nil
}
