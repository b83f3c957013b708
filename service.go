package labsh

import (
	"context"
	"fmt"
	"log"

	"github.com/viant/labsh/extension"
	"github.com/viant/labsh/model"
	"github.com/viant/labsh/model/types"
	"github.com/viant/labsh/policy"
	"github.com/viant/labsh/service/action/lab"
	"github.com/viant/labsh/service/dao"
	"github.com/viant/labsh/service/dao/record/fs"
	"github.com/viant/labsh/service/dao/record/memory"
	mqmemory "github.com/viant/labsh/service/messaging/memory"
	"github.com/viant/labsh/session"
	"github.com/viant/labsh/terminal"
	"github.com/viant/labsh/tracing"
	"github.com/viant/x"
)

// Service wires the sandbox policy, the session store, the session manager
// and the action registry.
type Service struct {
	config            *Config
	policy            *policy.Policy
	store             dao.Service[string, model.Record]
	sessions          *session.Service
	actions           *extension.Actions
	audit             *mqmemory.Queue[session.AuditEntry]
	sessionOptions    []session.Option
	extensionTypes    []*x.Type
	extensionServices []types.Service
	tracingInit       func() error
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	if err := s.ensureBaseSetup(); err != nil {
		return err
	}
	s.initTracing()

	sessionOptions := []session.Option{
		session.WithPolicy(s.policy),
		session.WithStore(s.store),
		session.WithTerminalOptions(
			terminal.WithHostname(s.config.Terminal.Hostname),
			terminal.WithUser(s.config.Terminal.User),
		),
	}
	if s.config.Audit.Enabled {
		queueConfig := mqmemory.DefaultConfig()
		if s.config.Audit.Buffer > 0 {
			queueConfig.QueueBuffer = s.config.Audit.Buffer
		}
		s.audit = mqmemory.NewQueue[session.AuditEntry](queueConfig)
		sessionOptions = append(sessionOptions, session.WithAudit(s.audit))
	}
	s.sessions = session.New(append(sessionOptions, s.sessionOptions...)...)

	s.actions = extension.NewActions(s.extensionTypes...)
	s.actions.Register(lab.New(s.sessions))
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}
	return nil
}

func (s *Service) ensureBaseSetup() error {
	if s.policy == nil {
		s.policy = policy.FromConfig(s.config.Policy)
	}
	if s.store != nil {
		return nil
	}
	if s.config.Store.URL == "" {
		s.store = memory.New()
		return nil
	}
	store, err := fs.New(s.config.Store.URL, fs.WithFormat(fs.Format(s.config.Store.Format)))
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}
	s.store = store
	return nil
}

// initTracing installs the configured exporter. Failures are logged and the
// service keeps running untraced.
func (s *Service) initTracing() {
	initFn := s.tracingInit
	if initFn == nil && s.config.Tracing.Enabled {
		tracingConfig := s.config.Tracing
		initFn = func() error {
			return tracing.Init(tracingConfig.ServiceName, tracingConfig.ServiceVersion, tracingConfig.OutputFile)
		}
	}
	if initFn == nil {
		return
	}
	if err := initFn(); err != nil {
		log.Printf("labsh: tracing disabled: %v", err)
	}
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Policy returns the default sandbox policy.
func (s *Service) Policy() *policy.Policy {
	return s.policy
}

// Sessions returns the session manager.
func (s *Service) Sessions() *session.Service {
	return s.sessions
}

// Audit returns the audit queue, nil unless Config.Audit is enabled.
func (s *Service) Audit() *mqmemory.Queue[session.AuditEntry] {
	return s.audit
}

// Actions returns the action registry; the lab service is registered as
// lab.Name.
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

// RegisterExtensionServices adds action services after construction.
func (s *Service) RegisterExtensionServices(services ...types.Service) {
	for i := range services {
		s.actions.Register(services[i])
	}
}

// RegisterExtensionTypes adds types to the action type registry.
func (s *Service) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.actions.Types().Register(types[i])
	}
}

// Shutdown flushes pending traces.
func (s *Service) Shutdown(ctx context.Context) error {
	return tracing.Shutdown(ctx)
}

// New creates a lab service.
func New(options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
