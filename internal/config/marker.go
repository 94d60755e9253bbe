package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoMarker is returned when a project has no .forgekit marker
var ErrNoMarker = errors.New("no .forgekit marker")

// Marker is the content of a project's .forgekit file
type Marker struct {
	Version     string
	InstallPath string
}

// MarkerPath returns <project>/.forgekit
func MarkerPath(projectDir string) string {
	return filepath.Join(projectDir, MarkerFile)
}

// Encode renders the two-line key=value form
func (m Marker) Encode() []byte {
	return []byte(fmt.Sprintf("version=%s\ninstall_path=%s\n", m.Version, m.InstallPath))
}

// ParseMarker reads key=value lines. Blank lines and unknown keys are ignored.
func ParseMarker(data []byte) (*Marker, error) {
	var m Marker
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed marker line %q", line)
		}
		switch key {
		case "version":
			m.Version = value
		case "install_path":
			m.InstallPath = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return &m, nil
}

// WriteMarker creates or overwrites the project marker
func WriteMarker(projectDir string, m Marker) error {
	return os.WriteFile(MarkerPath(projectDir), m.Encode(), 0644)
}

// ReadMarker loads the project marker, returning ErrNoMarker if absent
func ReadMarker(projectDir string) (*Marker, error) {
	data, err := os.ReadFile(MarkerPath(projectDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoMarker
		}
		return nil, err
	}
	return ParseMarker(data)
}

// RemoveMarker deletes the marker if present and reports whether it existed
func RemoveMarker(projectDir string) (bool, error) {
	err := os.Remove(MarkerPath(projectDir))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
