package memory

import (
	"context"
	"sort"

	"github.com/viant/labsh/model"
	"github.com/viant/labsh/service/dao"
	"github.com/viant/labsh/service/dao/store"
)

// Service keeps session records in memory.
type Service struct {
	*store.MemoryStore[string, model.Record]
}

// Ensure Service implements dao.Service
var _ dao.Service[string, model.Record] = (*Service)(nil)

// List returns all records ordered by id.
func (s *Service) List(ctx context.Context) ([]*model.Record, error) {
	records, err := s.MemoryStore.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// New creates a memory record service
func New() *Service {
	return &Service{
		MemoryStore: store.NewMemoryStore[string, model.Record](
			func(r *model.Record) string { return r.ID },
			func(r *model.Record) *model.Record { return r.Clone() },
		),
	}
}
