package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by LoadFile for unknown extensions.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// LoadFile reads a dataset, choosing the decoder by extension:
// .yaml and .yml use YAML, .cue uses CUE.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(data))
	case ".cue":
		return LoadCUE(path, data)
	default:
		return nil, fmt.Errorf("%w: %q (want .yaml, .yml or .cue)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadYAML decodes a dataset document. Unknown fields are rejected so that
// typos ("salary:" for "annual_salary:") surface as errors.
func LoadYAML(r io.Reader) (*Dataset, error) {
	var ds Dataset
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := finish(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// finish normalises names to NFC and checks identifier uniqueness.
// Foreign keys are left unchecked.
func finish(ds *Dataset) error {
	seen := make(map[int]bool, len(ds.Employees))
	for i := range ds.Employees {
		e := &ds.Employees[i]
		if seen[e.ID] {
			return fmt.Errorf("duplicate employee id %d", e.ID)
		}
		seen[e.ID] = true
		e.FirstName = norm.NFC.String(e.FirstName)
		e.LastName = norm.NFC.String(e.LastName)
	}

	seen = make(map[int]bool, len(ds.Departments))
	for i := range ds.Departments {
		d := &ds.Departments[i]
		if seen[d.ID] {
			return fmt.Errorf("duplicate department id %d", d.ID)
		}
		seen[d.ID] = true
		d.ShortName = norm.NFC.String(d.ShortName)
		d.LongName = norm.NFC.String(d.LongName)
	}
	return nil
}
