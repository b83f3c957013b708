package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service loads YAML or JSON documents from any afs location. ${env.KEY}
// expressions in a document are expanded before decoding.
type Service struct {
	fs afs.Service
}

// Load decodes the document at URL into target. Documents with a .json
// extension are decoded as JSON, anything else as YAML.
func (s *Service) Load(ctx context.Context, URL string, target interface{}) error {
	URL = url.Normalize(URL, file.Scheme)
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", URL, err)
	}
	expanded := expandEnvExpr(string(data))
	if strings.EqualFold(path.Ext(URL), ".json") {
		err = json.Unmarshal([]byte(expanded), target)
	} else {
		err = yaml.Unmarshal([]byte(expanded), target)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", URL, err)
	}
	return nil
}

// New creates a meta service
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}
