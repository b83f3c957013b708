package session

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/viant/labsh/internal/clock"
	"github.com/viant/labsh/model"
	"github.com/viant/labsh/progress"
	"github.com/viant/labsh/service/messaging"
	"github.com/viant/labsh/terminal"
	"github.com/viant/labsh/tracing"
	"github.com/viant/labsh/vfs"
)

// Session is one live lab shell. All methods are safe for concurrent use;
// command lines run one at a time in the order they acquire the session.
type Session struct {
	ID        string
	CreatedAt time.Time

	fs       *vfs.FileSystem
	terminal *terminal.Emulator
	baseline *vfs.Snapshot
	progress *progress.Progress
	audit    messaging.Queue[AuditEntry]
	mux      sync.Mutex
}

// AuditEntry records one executed command line.
type AuditEntry struct {
	SessionID        string    `json:"sessionId" yaml:"sessionId"`
	Line             string    `json:"line" yaml:"line"`
	Command          string    `json:"command" yaml:"command"`
	Outcome          string    `json:"outcome" yaml:"outcome"`
	Output           string    `json:"output,omitempty" yaml:"output,omitempty"`
	CurrentDirectory string    `json:"currentDirectory" yaml:"currentDirectory"`
	Time             time.Time `json:"time" yaml:"time"`
}

const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeDenied    = "denied"
)

func newSession(id string, createdAt time.Time, fs *vfs.FileSystem, emulator *terminal.Emulator, listener func(progress.Progress), audit messaging.Queue[AuditEntry]) *Session {
	ret := &Session{
		ID:        id,
		CreatedAt: createdAt,
		fs:        fs,
		terminal:  emulator,
		baseline:  vfs.New(fs.SandboxRoot()).Serialize(),
		progress:  progress.New(id, createdAt),
		audit:     audit,
	}
	ret.progress.OnChange(listener)
	return ret
}

// Execute runs one command line and returns its rendered output.
func (s *Session) Execute(ctx context.Context, line string) string {
	s.mux.Lock()
	defer s.mux.Unlock()

	name, args := terminal.Parse(line)
	if name == "" {
		return s.terminal.Execute(line)
	}
	_, span := tracing.StartSpan(ctx, "lab.execute")
	output, err := s.terminal.Run(line)

	delta := progress.Delta{Total: 1}
	outcome := OutcomeSucceeded
	switch {
	case err == nil:
		delta.Succeeded = 1
	case errors.Is(err, terminal.ErrCommandNotAllowed):
		delta.Denied = 1
		outcome = OutcomeDenied
	default:
		delta.Failed = 1
		outcome = OutcomeFailed
	}
	if err != nil {
		output = err.Error()
	}
	span.WithAttributes(map[string]string{
		"lab.session":   s.ID,
		"lab.command":   name,
		"lab.arguments": strconv.Itoa(len(args)),
		"lab.outcome":   outcome,
		"lab.cwd":       s.fs.CurrentDirectory(),
	})
	tracing.EndSpan(span, err)
	s.progress.Update(delta)
	s.publish(ctx, &AuditEntry{
		SessionID:        s.ID,
		Line:             strings.TrimSpace(line),
		Command:          name,
		Outcome:          outcome,
		Output:           output,
		CurrentDirectory: s.fs.CurrentDirectory(),
		Time:             clock.Now(),
	})
	return output
}

func (s *Session) publish(ctx context.Context, entry *AuditEntry) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Publish(ctx, entry); err != nil {
		log.Printf("session: dropped audit entry of %s: %v", s.ID, err)
	}
}

// Prompt returns the shell prompt for the current directory.
func (s *Session) Prompt() string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.terminal.Prompt()
}

// History returns a copy of the executed command lines.
func (s *Session) History() []string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.terminal.History()
}

// PreviousCommand moves the history cursor back one entry.
func (s *Session) PreviousCommand() (string, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.terminal.PreviousCommand()
}

// NextCommand moves the history cursor forward one entry.
func (s *Session) NextCommand() (string, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.terminal.NextCommand()
}

// Environ returns a copy of the session environment.
func (s *Session) Environ() map[string]string {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.terminal.Environ()
}

// Snapshot returns a deep copy of the session file system.
func (s *Session) Snapshot() *vfs.Snapshot {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.fs.Serialize()
}

// Stats returns the command counters.
func (s *Session) Stats() progress.Progress {
	return s.progress.Snapshot()
}

// Changes lists every entry that differs from the starter tree.
func (s *Session) Changes() []Change {
	s.mux.Lock()
	current := s.fs.Serialize()
	s.mux.Unlock()
	return compare(s.fs.SandboxRoot(), s.baseline.FileSystem, current.FileSystem)
}

func (s *Session) record(updatedAt time.Time) *model.Record {
	s.mux.Lock()
	defer s.mux.Unlock()
	return &model.Record{
		ID:        s.ID,
		Snapshot:  s.fs.Serialize(),
		History:   s.terminal.History(),
		Env:       s.terminal.Environ(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
