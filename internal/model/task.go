package model

import (
	"strings"
	"time"
)

// LoadTask represents a single CSV file load
type LoadTask struct {
	ID          string
	Path        string
	Status      TaskStatus
	Progress    float64 // 0.0 to 1.0
	Percent     int     // 0 to 100
	RowCount    int     // data rows parsed so far
	ColumnCount int     // columns found in the header row
	LastError   string  // last error message if any
	FileSize    int64   // file size in bytes
	StartedAt   time.Time
	FinishedAt  time.Time
}

// GetDisplayName returns the base file name without extension, or the path
// if no file name can be derived
func (lt *LoadTask) GetDisplayName() string {
	if lt.Path == "" {
		return ""
	}

	// Extract just the filename without path (support both / and \ separators)
	parts := strings.FieldsFunc(lt.Path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return lt.Path
	}

	filename := parts[len(parts)-1]
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		filename = filename[:idx]
	}
	return filename
}
