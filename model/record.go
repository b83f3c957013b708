package model

import (
	"time"

	"github.com/viant/labsh/vfs"
)

// Record is the persisted state of a lab session.
type Record struct {
	ID        string            `json:"id" yaml:"id"`
	Snapshot  *vfs.Snapshot     `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`
	History   []string          `json:"history,omitempty" yaml:"history,omitempty"`
	Env       map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	CreatedAt time.Time         `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt" yaml:"updatedAt"`
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	ret := *r
	if r.Snapshot != nil {
		snapshot := *r.Snapshot
		if r.Snapshot.FileSystem != nil {
			snapshot.FileSystem = r.Snapshot.FileSystem.Clone()
		}
		ret.Snapshot = &snapshot
	}
	if r.History != nil {
		ret.History = append([]string(nil), r.History...)
	}
	if r.Env != nil {
		ret.Env = make(map[string]string, len(r.Env))
		for k, v := range r.Env {
			ret.Env[k] = v
		}
	}
	return &ret
}
