package core

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed/lab.yaml
var defaultSeed []byte

// DecodeSnapshot reads a YAML seed document and builds a Snapshot from it.
// Unknown keys are rejected so typos in seed files surface immediately.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var data SnapshotData
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return NewSnapshot(data)
}

// DefaultSnapshot returns the snapshot built from the embedded seed.
func DefaultSnapshot() (*Snapshot, error) {
	return DecodeSnapshot(bytes.NewReader(defaultSeed))
}

// LoadSnapshot returns the snapshot in path, or the embedded seed when path
// is empty.
func LoadSnapshot(path string) (*Snapshot, error) {
	if path == "" {
		return DefaultSnapshot()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	s, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
