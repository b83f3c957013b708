package lab

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/labsh/extension"
	"github.com/viant/labsh/model/types"
	"github.com/viant/labsh/session"
	"github.com/viant/x"
)

const Name = "lab/shell"

// Service exposes lab sessions as an action service.
type Service struct {
	sessions *session.Service
}

// New creates a lab action service backed by sessions.
func New(sessions *session.Service) *Service {
	return &Service{sessions: sessions}
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "open",
			Description: "Opens a lab session over a freshly seeded sandbox.",
			Input:       reflect.TypeOf(&OpenInput{}),
			Output:      reflect.TypeOf(&OpenOutput{}),
		},
		{
			Name:        "execute",
			Description: "Runs one shell command line in a session and returns its output.",
			Input:       reflect.TypeOf(&ExecuteInput{}),
			Output:      reflect.TypeOf(&ExecuteOutput{}),
		},
		{
			Name:        "prompt",
			Description: "Returns the session prompt.",
			Input:       reflect.TypeOf(&SessionInput{}),
			Output:      reflect.TypeOf(&PromptOutput{}),
		},
		{
			Name:        "history",
			Description: "Returns the command lines executed in a session.",
			Input:       reflect.TypeOf(&SessionInput{}),
			Output:      reflect.TypeOf(&HistoryOutput{}),
		},
		{
			Name:        "save",
			Description: "Persists the session file system, history and environment.",
			Input:       reflect.TypeOf(&SessionInput{}),
			Output:      reflect.TypeOf(&SaveOutput{}),
		},
		{
			Name:        "restore",
			Description: "Reopens a saved session.",
			Input:       reflect.TypeOf(&SessionInput{}),
			Output:      reflect.TypeOf(&RestoreOutput{}),
		},
		{
			Name:        "changes",
			Description: "Lists entries that differ from the starter tree, with unified diffs for files.",
			Input:       reflect.TypeOf(&SessionInput{}),
			Output:      reflect.TypeOf(&ChangesOutput{}),
		},
		{
			Name:        "stats",
			Description: "Returns the session command counters.",
			Input:       reflect.TypeOf(&SessionInput{}),
			Output:      reflect.TypeOf(&StatsOutput{}),
		},
		{
			Name:        "close",
			Description: "Discards a live session.",
			Input:       reflect.TypeOf(&SessionInput{}),
			Output:      reflect.TypeOf(&CloseOutput{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "open":
		return s.open, nil
	case "execute":
		return s.execute, nil
	case "prompt":
		return s.prompt, nil
	case "history":
		return s.history, nil
	case "save":
		return s.save, nil
	case "restore":
		return s.restore, nil
	case "changes":
		return s.changes, nil
	case "stats":
		return s.stats, nil
	case "close":
		return s.close, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

// InitTypes registers method input and output types.
func (s *Service) InitTypes(registry *extension.Types) {
	for _, signature := range s.Methods() {
		for _, rType := range []reflect.Type{signature.Input, signature.Output} {
			if registry.Lookup(rType.Elem().PkgPath()+"."+rType.Elem().Name()) != nil {
				continue
			}
			registry.Register(x.NewType(rType.Elem()))
		}
	}
}

func (s *Service) open(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*OpenInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*OpenOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	var options []session.OpenOption
	if input.ID != "" {
		options = append(options, session.WithID(input.ID))
	}
	if len(input.Env) > 0 {
		options = append(options, session.WithEnv(input.Env))
	}
	aSession, err := s.sessions.Open(ctx, options...)
	if err != nil {
		return err
	}
	output.SessionID = aSession.ID
	output.Prompt = aSession.Prompt()
	return nil
}

func (s *Service) execute(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*ExecuteInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*ExecuteOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	aSession, err := s.sessions.Get(ctx, input.SessionID)
	if err != nil {
		return err
	}
	output.Output = aSession.Execute(ctx, input.Line)
	output.Prompt = aSession.Prompt()
	output.CurrentDirectory = aSession.Snapshot().CurrentDirectory
	return nil
}

func (s *Service) lookup(ctx context.Context, in interface{}) (*session.Session, error) {
	input, ok := in.(*SessionInput)
	if !ok {
		return nil, types.NewInvalidInputError(in)
	}
	return s.sessions.Get(ctx, input.SessionID)
}

func (s *Service) prompt(ctx context.Context, in, out interface{}) error {
	output, ok := out.(*PromptOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	aSession, err := s.lookup(ctx, in)
	if err != nil {
		return err
	}
	output.Prompt = aSession.Prompt()
	return nil
}

func (s *Service) history(ctx context.Context, in, out interface{}) error {
	output, ok := out.(*HistoryOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	aSession, err := s.lookup(ctx, in)
	if err != nil {
		return err
	}
	output.Lines = aSession.History()
	return nil
}

func (s *Service) save(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*SessionInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*SaveOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	if err := s.sessions.Save(ctx, input.SessionID); err != nil {
		return err
	}
	output.SessionID = input.SessionID
	return nil
}

func (s *Service) restore(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*SessionInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*RestoreOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	aSession, err := s.sessions.Restore(ctx, input.SessionID)
	if err != nil {
		return err
	}
	output.SessionID = aSession.ID
	output.Prompt = aSession.Prompt()
	output.History = aSession.History()
	return nil
}

func (s *Service) changes(ctx context.Context, in, out interface{}) error {
	output, ok := out.(*ChangesOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	aSession, err := s.lookup(ctx, in)
	if err != nil {
		return err
	}
	output.Changes = aSession.Changes()
	return nil
}

func (s *Service) stats(ctx context.Context, in, out interface{}) error {
	output, ok := out.(*StatsOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	aSession, err := s.lookup(ctx, in)
	if err != nil {
		return err
	}
	stats := aSession.Stats()
	output.Total = stats.TotalCommands
	output.Succeeded = stats.SucceededCommands
	output.Failed = stats.FailedCommands
	output.Denied = stats.DeniedCommands
	return nil
}

func (s *Service) close(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*SessionInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	if _, ok = out.(*CloseOutput); !ok {
		return types.NewInvalidOutputError(out)
	}
	return s.sessions.Close(ctx, input.SessionID)
}
