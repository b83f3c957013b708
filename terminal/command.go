package terminal

// Command identifies a builtin.
type Command int

const (
	Unknown Command = iota
	Help
	Ls
	Cd
	Pwd
	Cat
	Echo
	Mkdir
	Touch
	Clear
	Whoami
	Date
	Rm
	Python
	Node
	Gcc
	commandCount
)

var commandNames = [commandCount]string{
	Help:   "help",
	Ls:     "ls",
	Cd:     "cd",
	Pwd:    "pwd",
	Cat:    "cat",
	Echo:   "echo",
	Mkdir:  "mkdir",
	Touch:  "touch",
	Clear:  "clear",
	Whoami: "whoami",
	Date:   "date",
	Rm:     "rm",
	Python: "python",
	Node:   "node",
	Gcc:    "gcc",
}

var commandUsage = [commandCount]string{
	Help:   "show available commands",
	Ls:     "list directory contents",
	Cd:     "change the working directory",
	Pwd:    "print the working directory",
	Cat:    "print a file",
	Echo:   "print arguments",
	Mkdir:  "create a directory",
	Touch:  "create an empty file",
	Clear:  "clear the screen",
	Whoami: "print the current user",
	Date:   "print the current date and time",
	Rm:     "remove a file or directory",
	Python: "run a Python script (simulated)",
	Node:   "run a JavaScript file (simulated)",
	Gcc:    "compile a C file (simulated)",
}

type handler func(e *Emulator, command Command, args []string) (string, error)

// builtins is indexed by Command; every entry but Unknown is set.
var builtins = [commandCount]handler{
	Help:   (*Emulator).help,
	Ls:     (*Emulator).ls,
	Cd:     (*Emulator).cd,
	Pwd:    (*Emulator).pwd,
	Cat:    (*Emulator).cat,
	Echo:   (*Emulator).echo,
	Mkdir:  (*Emulator).mkdir,
	Touch:  (*Emulator).touch,
	Clear:  (*Emulator).clear,
	Whoami: (*Emulator).whoami,
	Date:   (*Emulator).date,
	Rm:     (*Emulator).rm,
	Python: (*Emulator).simulate,
	Node:   (*Emulator).simulate,
	Gcc:    (*Emulator).simulate,
}

// Lookup maps a command name to its builtin, Unknown when there is none.
func Lookup(name string) Command {
	for i := Help; i < commandCount; i++ {
		if commandNames[i] == name {
			return i
		}
	}
	return Unknown
}

func (c Command) String() string {
	if c <= Unknown || c >= commandCount {
		return "unknown"
	}
	return commandNames[c]
}

// Commands returns every builtin name.
func Commands() []string {
	return append([]string(nil), commandNames[Help:]...)
}
