package source

import (
	"context"
	"os"
	"time"

	"showroom/internal"
	"showroom/internal/errors"
	"showroom/ports"
)

// FileSource reads the spreadsheet from the local filesystem
type FileSource struct {
	path   string
	logger *internal.Logger
}

// NewFileSource creates a file-backed source
func NewFileSource(path string, logger *internal.Logger) *FileSource {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &FileSource{path: path, logger: logger}
}

// Location implements ports.Source
func (s *FileSource) Location() string {
	return s.path
}

// Fetch implements ports.Source
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.LoadFailure("inventory read cancelled", err)
	}

	startTime := time.Now()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.LoadFailure("failed to read inventory file", err)
	}

	s.logger.Debug("[FileSource] read %s (%d bytes) in %s", s.path, len(data), time.Since(startTime))
	return data, nil
}

// New picks an HTTP source for URLs and a file source otherwise.
func New(location string, timeout time.Duration, logger *internal.Logger) ports.Source {
	if IsURL(location) {
		return NewHTTPSource(location, timeout, logger)
	}
	return NewFileSource(location, logger)
}
