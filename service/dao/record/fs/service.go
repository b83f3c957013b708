package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"github.com/viant/labsh/internal/idgen"
	"github.com/viant/labsh/model"
	"github.com/viant/labsh/service/dao"
	"gopkg.in/yaml.v3"
)

// Service implements a filesystem-based session record storage. Any afs
// URL works as a base location (file://, mem://, s3://, gs://).
type Service struct {
	basePath string
	format   Format
	fs       afs.Service
	mu       sync.RWMutex
}

// Ensure Service implements dao.Service
var _ dao.Service[string, model.Record] = (*Service)(nil)

// Save persists a record to the filesystem
func (s *Service) Save(ctx context.Context, record *model.Record) error {
	if record == nil {
		return dao.ErrNilEntity
	}
	if !idgen.Valid(record.ID) {
		return fmt.Errorf("%w: %q", dao.ErrInvalidID, record.ID)
	}

	data, err := s.marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", record.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.recordPath(record.ID)
	if err = s.fs.Upload(ctx, filePath, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save record to file %s: %w", filePath, err)
	}
	return nil
}

// Load retrieves a record from the filesystem
func (s *Service) Load(ctx context.Context, id string) (*model.Record, error) {
	if !idgen.Valid(id) {
		return nil, fmt.Errorf("%w: %q", dao.ErrInvalidID, id)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filePath := s.recordPath(id)
	exists, err := s.fs.Exists(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check if record exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("record %s: %w", id, dao.ErrNotFound)
	}

	data, err := s.fs.DownloadWithURL(ctx, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	record := &model.Record{}
	if err := s.unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %s: %w", id, err)
	}
	return record, nil
}

// Delete removes a record from the filesystem
func (s *Service) Delete(ctx context.Context, id string) error {
	if !idgen.Valid(id) {
		return fmt.Errorf("%w: %q", dao.ErrInvalidID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.recordPath(id)
	exists, err := s.fs.Exists(ctx, filePath)
	if err != nil {
		return fmt.Errorf("failed to check if record exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("record %s: %w", id, dao.ErrNotFound)
	}
	if err := s.fs.Delete(ctx, filePath); err != nil {
		return fmt.Errorf("failed to delete record file: %w", err)
	}
	return nil
}

// List returns all records stored under the base path in the configured
// format. Unreadable documents are logged and skipped.
func (s *Service) List(ctx context.Context) ([]*model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, err := s.fs.List(ctx, s.basePath, option.NewRecursive(false))
	if err != nil {
		return nil, fmt.Errorf("failed to list record files: %w", err)
	}

	var records []*model.Record
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		if !strings.HasSuffix(object.Name(), s.extension()) {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			log.Printf("record: failed to read %s: %v", object.URL(), err)
			continue
		}
		record := &model.Record{}
		if err := s.unmarshal(data, record); err != nil {
			log.Printf("record: failed to unmarshal %s: %v", object.URL(), err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *Service) marshal(record *model.Record) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(record)
	}
	return json.MarshalIndent(record, "", "  ")
}

func (s *Service) unmarshal(data []byte, record *model.Record) error {
	if s.format == FormatYAML {
		return yaml.Unmarshal(data, record)
	}
	return json.Unmarshal(data, record)
}

func (s *Service) extension() string {
	return "." + string(s.format)
}

// recordPath returns the file path for a record
func (s *Service) recordPath(id string) string {
	return url.Join(s.basePath, id+s.extension())
}

// New creates a new filesystem record storage service
func New(basePath string, options ...Option) (*Service, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}
	ret := &Service{format: FormatJSON}
	for _, opt := range options {
		opt(ret)
	}
	switch ret.format {
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported record format: %q", ret.format)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}

	basePath = url.Normalize(basePath, file.Scheme)

	// Ensure the base directory exists
	ctx := context.Background()
	exists, _ := ret.fs.Exists(ctx, basePath)
	if !exists {
		if err := ret.fs.Create(ctx, basePath, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create base directory: %w", err)
		}
	}
	ret.basePath = basePath
	return ret, nil
}
