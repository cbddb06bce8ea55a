// Package session persists a charting session: which file was open, the
// header prefix in effect, and the headers selected for plotting. Sessions
// are stored as YAML files the user can keep alongside the logs.
package session

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Format constants
const (
	// Version is the current session file version
	Version = 1

	// FileExtension is the suggested extension for session files
	FileExtension = ".csvision.yaml"

	filePermissions = 0o644
)

// Validation errors
var (
	// ErrNoFilePath signals a session without a CSV file reference
	ErrNoFilePath = errors.New("session has no csv file path")

	// ErrUnknownVersion signals a session written by a newer app
	ErrUnknownVersion = errors.New("unknown session version")
)

// Session captures everything needed to restore a chart
type Session struct {
	Version         int       `yaml:"version"`
	CSVPath         string    `yaml:"csv_path"`
	HeaderPrefix    string    `yaml:"header_prefix,omitempty"`
	SelectedHeaders []string  `yaml:"selected_headers"`
	SavedAt         time.Time `yaml:"saved_at"`
}

// New creates a session for the given file and selection
func New(csvPath, headerPrefix string, selectedHeaders []string) *Session {
	return &Session{
		Version:         Version,
		CSVPath:         csvPath,
		HeaderPrefix:    headerPrefix,
		SelectedHeaders: selectedHeaders,
		SavedAt:         time.Now(),
	}
}

// Save writes the session to path as YAML
func Save(path string, s *Session) error {
	if s.CSVPath == "" {
		return ErrNoFilePath
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads and validates a session file
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, s.Version)
	}
	if s.CSVPath == "" {
		return nil, ErrNoFilePath
	}

	return &s, nil
}
