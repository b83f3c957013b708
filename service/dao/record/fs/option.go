package fs

import "github.com/viant/afs"

// Format selects the document encoding of stored records.
type Format string

const (
	// FormatJSON stores records as <id>.json documents.
	FormatJSON Format = "json"
	// FormatYAML stores records as <id>.yaml documents.
	FormatYAML Format = "yaml"
)

// Option customises the record storage service.
type Option func(s *Service)

// WithFormat sets the document encoding; an empty value keeps JSON.
func WithFormat(format Format) Option {
	return func(s *Service) {
		if format != "" {
			s.format = format
		}
	}
}

// WithFS sets the storage backend.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}
