package terminal

import (
	"path"
	"strings"

	"github.com/viant/labsh/policy"
	"github.com/viant/labsh/vfs"
)

// DefaultHostname is shown in the prompt unless WithHostname overrides it.
const DefaultHostname = "lab"

// Emulator interprets single command lines against a file system. It reads
// and mutates the injected FileSystem but does not own it. An Emulator is
// not safe for concurrent use.
type Emulator struct {
	fs       *vfs.FileSystem
	policy   *policy.Policy
	screen   Screen
	hostname string
	env      map[string]string
	history  []string
	cursor   int
}

// New creates an emulator over fs governed by p (policy.Default when nil).
func New(fs *vfs.FileSystem, p *policy.Policy, options ...Option) *Emulator {
	if p == nil {
		p = policy.Default()
	}
	ret := &Emulator{
		fs:       fs,
		policy:   p,
		hostname: DefaultHostname,
		env: map[string]string{
			"USER":  "student",
			"HOME":  fs.SandboxRoot(),
			"PATH":  "/usr/local/bin:/usr/bin:/bin",
			"SHELL": "/bin/bash",
		},
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// FileSystem returns the file system the emulator operates on.
func (e *Emulator) FileSystem() *vfs.FileSystem {
	return e.fs
}

// Execute runs one command line and returns its output. Failures are
// rendered as "<command>: <message>"; an empty line yields empty output and
// is not recorded in history.
func (e *Emulator) Execute(line string) string {
	output, err := e.Run(line)
	if err != nil {
		return err.Error()
	}
	return output
}

// Run executes one command line like Execute but returns failures as an
// *Error so callers can branch on the cause with errors.Is.
func (e *Emulator) Run(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	e.history = append(e.history, line)
	e.cursor = len(e.history)

	tokens := tokenize(line)
	if len(tokens) == 0 {
		return "", nil
	}
	name, args := tokens[0], tokens[1:]
	if !e.policy.IsCommandAllowed(name) {
		return "", &Error{Command: name, Err: ErrCommandNotAllowed}
	}
	command := Lookup(name)
	if command == Unknown {
		return "", &Error{Command: name, Err: ErrCommandNotFound}
	}
	output, err := builtins[command](e, command, args)
	if err != nil {
		return "", &Error{Command: name, Err: err}
	}
	return output, nil
}

// Parse splits line into a command name and its arguments.
func Parse(line string) (string, []string) {
	tokens := tokenize(strings.TrimSpace(line))
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}

// Prompt renders "<user>@<host>:<dir>$ " where dir is "~" at HOME and the
// last path segment elsewhere.
func (e *Emulator) Prompt() string {
	cwd := e.fs.CurrentDirectory()
	short := path.Base(cwd)
	if cwd == e.env["HOME"] {
		short = "~"
	}
	return e.env["USER"] + "@" + e.hostname + ":" + short + "$ "
}

// Getenv returns the value of an environment variable.
func (e *Emulator) Getenv(name string) string {
	return e.env[name]
}

// Setenv sets an environment variable.
func (e *Emulator) Setenv(name, value string) {
	e.env[name] = value
}

// Environ returns a copy of the environment.
func (e *Emulator) Environ() map[string]string {
	ret := make(map[string]string, len(e.env))
	for k, v := range e.env {
		ret[k] = v
	}
	return ret
}
