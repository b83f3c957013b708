package session

import (
	"github.com/viant/labsh/model"
	"github.com/viant/labsh/policy"
	"github.com/viant/labsh/progress"
	"github.com/viant/labsh/service/dao"
	"github.com/viant/labsh/service/messaging"
	"github.com/viant/labsh/terminal"
)

// Option customises the session service.
type Option func(s *Service)

// WithPolicy sets the sandbox policy shared by all sessions.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithStore sets the record store used by Save and Restore.
func WithStore(store dao.Service[string, model.Record]) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithTerminalOptions sets emulator options applied to every session.
func WithTerminalOptions(options ...terminal.Option) Option {
	return func(s *Service) {
		s.terminalOptions = append(s.terminalOptions, options...)
	}
}

// WithProgressListener registers a callback invoked after every command
// with the updated session counters.
func WithProgressListener(listener func(progress.Progress)) Option {
	return func(s *Service) {
		s.listener = listener
	}
}

// WithAudit publishes an AuditEntry for every executed command line. A
// full or failing queue drops entries without affecting the command.
func WithAudit(queue messaging.Queue[AuditEntry]) Option {
	return func(s *Service) {
		s.audit = queue
	}
}

type openOptions struct {
	id       string
	terminal []terminal.Option
}

// OpenOption customises a single session.
type OpenOption func(o *openOptions)

// WithID opens the session under a caller supplied id.
func WithID(id string) OpenOption {
	return func(o *openOptions) {
		o.id = id
	}
}

// WithScreen sets the surface cleared by the clear command.
func WithScreen(screen terminal.Screen) OpenOption {
	return func(o *openOptions) {
		o.terminal = append(o.terminal, terminal.WithScreen(screen))
	}
}

// WithEnv merges variables over the session environment.
func WithEnv(env map[string]string) OpenOption {
	return func(o *openOptions) {
		o.terminal = append(o.terminal, terminal.WithEnv(env))
	}
}
