package form

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAnswers reads a profile record from a YAML file.
func LoadAnswers(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("failed to read answers file: %w", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers decodes a profile record. Keys that are not profile fields
// are rejected.
func ParseAnswers(data []byte) (State, error) {
	var s State
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("failed to parse answers: %w", err)
	}
	return s, nil
}
