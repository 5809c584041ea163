// Package manifest reads and updates the package.json of the package being
// released. Updating the version splices the new value into the original
// bytes instead of re-marshaling, so field order, formatting, and every field
// other than "version" survive untouched.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/releasekit/releasekit/pkg/logger"
)

var manifestLog = logger.New("manifest")

// FileName is the manifest file read and rewritten by a release.
const FileName = "package.json"

// Manifest is the on-disk package descriptor.
type Manifest struct {
	Path    string
	Name    string
	Version string

	raw []byte
}

// Load reads the package.json in dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fields struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if fields.Name == "" {
		return nil, fmt.Errorf("%s has no \"name\" field", path)
	}
	if fields.Version == "" {
		return nil, fmt.Errorf("%s has no \"version\" field", path)
	}

	manifestLog.Printf("Loaded %s: name=%s version=%s", path, fields.Name, fields.Version)

	return &Manifest{
		Path:    path,
		Name:    fields.Name,
		Version: fields.Version,
		raw:     raw,
	}, nil
}

// WriteVersion replaces the top-level "version" value in place and persists
// the manifest with a trailing newline. Every other byte of the file is kept
// as it was.
func (m *Manifest) WriteVersion(newVersion string) error {
	start, end, err := findTopLevelVersionValue(m.raw)
	if err != nil {
		return fmt.Errorf("failed to locate version field in %s: %w", m.Path, err)
	}

	var out bytes.Buffer
	out.Grow(len(m.raw) + len(newVersion))
	out.Write(m.raw[:start])
	fmt.Fprintf(&out, "%q", newVersion)
	out.Write(m.raw[end:])
	if out.Len() == 0 || out.Bytes()[out.Len()-1] != '\n' {
		out.WriteByte('\n')
	}

	if err := os.WriteFile(m.Path, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.Path, err)
	}

	manifestLog.Printf("Updated %s: version %s -> %s", m.Path, m.Version, newVersion)
	m.raw = out.Bytes()
	m.Version = newVersion
	return nil
}

// findTopLevelVersionValue returns the byte span of the JSON string value of
// the top-level "version" key. Nested "version" keys (in dependencies,
// engines, and the like) are skipped by tracking nesting depth.
func findTopLevelVersionValue(raw []byte) (start, end int64, err error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	depth := 0
	expectValue := false

	for {
		tok, tokErr := dec.Token()
		if tokErr == io.EOF {
			return 0, 0, errors.New("no top-level \"version\" field")
		}
		if tokErr != nil {
			return 0, 0, tokErr
		}

		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
			if depth != 1 {
				expectValue = false
			} else if t == '{' || t == '[' {
				// Entering the top object, or a composite value just closed
				// into it; either way the next scalar is a key.
				expectValue = false
			}
		default:
			if depth != 1 {
				continue
			}
			if expectValue {
				expectValue = false
				continue
			}
			key, ok := t.(string)
			expectValue = true
			if !ok || key != "version" {
				continue
			}

			keyEnd := dec.InputOffset()
			valTok, valErr := dec.Token()
			if valErr != nil {
				return 0, 0, valErr
			}
			if _, ok := valTok.(string); !ok {
				return 0, 0, fmt.Errorf("\"version\" value is not a string")
			}
			end = dec.InputOffset()
			start = valueStart(raw, keyEnd)
			return start, end, nil
		}
	}
}

// valueStart scans past the colon and whitespace that separate a key from its
// value.
func valueStart(raw []byte, keyEnd int64) int64 {
	i := keyEnd
	for i < int64(len(raw)) && (raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n' || raw[i] == '\r') {
		i++
	}
	if i < int64(len(raw)) && raw[i] == ':' {
		i++
	}
	for i < int64(len(raw)) && (raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n' || raw[i] == '\r') {
		i++
	}
	return i
}
