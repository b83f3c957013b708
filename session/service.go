package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/viant/labsh/internal/clock"
	"github.com/viant/labsh/internal/idgen"
	"github.com/viant/labsh/model"
	"github.com/viant/labsh/policy"
	"github.com/viant/labsh/progress"
	"github.com/viant/labsh/service/dao"
	"github.com/viant/labsh/service/dao/record/memory"
	"github.com/viant/labsh/service/messaging"
	"github.com/viant/labsh/terminal"
	"github.com/viant/labsh/tracing"
	"github.com/viant/labsh/vfs"
)

// Service owns the live sessions of a host application.
type Service struct {
	policy          *policy.Policy
	store           dao.Service[string, model.Record]
	terminalOptions []terminal.Option
	listener        func(progress.Progress)
	audit           messaging.Queue[AuditEntry]

	sessions map[string]*Session
	mux      sync.RWMutex
}

// New creates a session service; records are kept in memory unless
// WithStore supplies another store.
func New(options ...Option) *Service {
	ret := &Service{
		policy:   policy.Default(),
		sessions: make(map[string]*Session),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.store == nil {
		ret.store = memory.New()
	}
	return ret
}

// Policy returns the policy shared by all sessions.
func (s *Service) Policy() *policy.Policy {
	return s.policy
}

// Open starts a session over a freshly seeded file system. A policy
// attached to ctx with policy.WithPolicy overrides the service policy.
func (s *Service) Open(ctx context.Context, options ...OpenOption) (*Session, error) {
	opts := &openOptions{}
	for _, opt := range options {
		opt(opts)
	}
	if opts.id == "" {
		opts.id = idgen.New()
	}
	if !idgen.Valid(opts.id) {
		return nil, fmt.Errorf("%w: %q", dao.ErrInvalidID, opts.id)
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.sessions[opts.id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionExists, opts.id)
	}
	p := s.policyFor(ctx)
	session := s.newSession(p, opts.id, clock.Now(), vfs.New(p.Root()), opts.terminal...)
	s.sessions[session.ID] = session
	return session, nil
}

// policyFor returns the policy attached with policy.WithPolicy, falling back
// to the service policy.
func (s *Service) policyFor(ctx context.Context) *policy.Policy {
	if p := policy.FromContext(ctx); p != nil {
		return p
	}
	return s.policy
}

func (s *Service) newSession(p *policy.Policy, id string, createdAt time.Time, fs *vfs.FileSystem, options ...terminal.Option) *Session {
	terminalOptions := append(append([]terminal.Option(nil), s.terminalOptions...), options...)
	emulator := terminal.New(fs, p, terminalOptions...)
	return newSession(id, createdAt, fs, emulator, s.listener, s.audit)
}

// Get returns a live session.
func (s *Service) Get(_ context.Context, id string) (*Session, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

// IDs returns the ids of all live sessions in sorted order.
func (s *Service) IDs() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ret = append(ret, id)
	}
	sort.Strings(ret)
	return ret
}

// Execute runs one command line in session id. Command failures are part
// of the returned text; the error only reports a missing session.
func (s *Service) Execute(ctx context.Context, id, line string) (string, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return session.Execute(ctx, line), nil
}

// Save persists the session state to the store.
func (s *Service) Save(ctx context.Context, id string) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = s.store.Save(ctx, session.record(clock.Now())); err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

// Restore loads a saved session and makes it live, replacing a live session
// with the same id. A record whose snapshot cannot be used restores the
// starter tree with the saved history and environment. Options other than
// WithID apply as in Open.
func (s *Service) Restore(ctx context.Context, id string, options ...OpenOption) (ret *Session, err error) {
	ctx, span := tracing.StartSpan(ctx, "lab.restore")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"lab.session": id})

	record, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session %s: %w", id, err)
	}
	p := s.policyFor(ctx)
	fs := vfs.New(p.Root())
	fs.Deserialize(record.Snapshot)
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = clock.Now()
	}
	opts := &openOptions{}
	for _, opt := range options {
		opt(opts)
	}
	terminalOptions := append([]terminal.Option{terminal.WithEnv(record.Env), terminal.WithHistory(record.History)}, opts.terminal...)
	ret = s.newSession(p, record.ID, createdAt, fs, terminalOptions...)

	s.mux.Lock()
	s.sessions[ret.ID] = ret
	s.mux.Unlock()
	return ret, nil
}

// Close discards a live session. Saved records are kept.
func (s *Service) Close(_ context.Context, id string) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	return nil
}

// Changes lists the differences between the session and its starter tree.
func (s *Service) Changes(ctx context.Context, id string) ([]Change, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.Changes(), nil
}

// Stats returns the command counters of a live session.
func (s *Service) Stats(ctx context.Context, id string) (progress.Progress, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return progress.Progress{}, err
	}
	return session.Stats(), nil
}

// Saved lists the ids of all stored sessions.
func (s *Service) Saved(ctx context.Context) ([]string, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(records))
	for _, record := range records {
		ret = append(ret, record.ID)
	}
	sort.Strings(ret)
	return ret, nil
}
