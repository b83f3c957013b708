package terminal

import (
	"fmt"
	"strings"
	"time"

	"github.com/viant/labsh/internal/clock"
)

func (e *Emulator) help(_ Command, _ []string) (string, error) {
	var lines []string
	lines = append(lines, "Available commands:")
	for _, name := range e.policy.Commands() {
		if command := Lookup(name); command != Unknown {
			lines = append(lines, fmt.Sprintf("  %-8s %s", name, commandUsage[command]))
			continue
		}
		lines = append(lines, "  "+name)
	}
	return strings.Join(lines, "\n"), nil
}

func (e *Emulator) ls(_ Command, args []string) (string, error) {
	target := ""
	switch len(args) {
	case 0:
	case 1:
		target = args[0]
	default:
		return "", &usageError{usage: "ls [directory]"}
	}
	entries, err := e.fs.ListDirectory(target)
	if err != nil {
		return "", err
	}
	owner := e.env["USER"]
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		mode := "-rw-r--r--"
		if entry.IsDir() {
			mode = "drwxr-xr-x"
		}
		lines = append(lines, fmt.Sprintf("%s 1 %s %s %6d %s", mode, owner, owner, entry.Size, entry.Name))
	}
	return strings.Join(lines, "\n"), nil
}

func (e *Emulator) cd(_ Command, args []string) (string, error) {
	target := e.env["HOME"]
	if len(args) > 0 {
		target = args[0]
	}
	if target == "" {
		target = e.fs.SandboxRoot()
	}
	_, err := e.fs.ChangeDirectory(target)
	return "", err
}

func (e *Emulator) pwd(_ Command, _ []string) (string, error) {
	return e.fs.CurrentDirectory(), nil
}

func (e *Emulator) cat(_ Command, args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrMissingOperand
	case 1:
		return e.fs.ReadFile(args[0])
	default:
		return "", &usageError{usage: "cat <file>"}
	}
}

func (e *Emulator) echo(_ Command, args []string) (string, error) {
	return strings.Join(args, " "), nil
}

func (e *Emulator) mkdir(_ Command, args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrMissingOperand
	}
	for _, arg := range args {
		if err := e.fs.CreateDirectory(arg); err != nil {
			return "", err
		}
	}
	return "", nil
}

func (e *Emulator) touch(_ Command, args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrMissingOperand
	}
	for _, arg := range args {
		if e.fs.Exists(arg) {
			continue
		}
		if err := e.fs.WriteFile(arg, ""); err != nil {
			return "", err
		}
	}
	return "", nil
}

func (e *Emulator) clear(_ Command, _ []string) (string, error) {
	if e.screen != nil {
		e.screen.Clear()
	}
	return "", nil
}

func (e *Emulator) whoami(_ Command, _ []string) (string, error) {
	return e.env["USER"], nil
}

func (e *Emulator) date(_ Command, _ []string) (string, error) {
	return clock.Now().Format(time.UnixDate), nil
}

func (e *Emulator) rm(_ Command, args []string) (string, error) {
	if len(args) == 0 {
		return "", ErrMissingOperand
	}
	for _, arg := range args {
		if err := e.fs.Delete(arg); err != nil {
			return "", err
		}
	}
	return "", nil
}

var banners = map[Command]string{
	Python: "Python 3.11.4 (simulated)\nType \"help\", \"copyright\", \"credits\" or \"license\" for more information.\nInteractive mode is not available in the lab; run a script with: python <file>",
	Node:   "Welcome to Node.js v20.5.0 (simulated).\nInteractive mode is not available in the lab; run a script with: node <file>",
	Gcc:    "gcc (GCC) 13.2.0 (simulated)\nCompile a source file with: gcc <file>",
}

// simulate backs python, node and gcc. Nothing is interpreted or compiled;
// a file argument only has to be readable.
func (e *Emulator) simulate(command Command, args []string) (string, error) {
	if len(args) == 0 {
		return banners[command], nil
	}
	file := args[0]
	content, err := e.fs.ReadFile(file)
	if err != nil {
		return "", err
	}
	lines := strings.Count(content, "\n")
	if content != "" && !strings.HasSuffix(content, "\n") {
		lines++
	}
	if command == Gcc {
		return fmt.Sprintf("Compiling %s (%d lines)... done (simulated compilation, no binary produced)", file, lines), nil
	}
	return fmt.Sprintf("Running %s with %s (%d lines)... done (simulated execution, no output captured)", file, command, lines), nil
}
