package terminal

// Screen is the output surface cleared by the clear builtin.
type Screen interface {
	Clear()
}

// Option configures an Emulator.
type Option func(e *Emulator)

// WithScreen sets the surface cleared by "clear".
func WithScreen(screen Screen) Option {
	return func(e *Emulator) {
		e.screen = screen
	}
}

// WithHostname sets the host name shown in the prompt.
func WithHostname(hostname string) Option {
	return func(e *Emulator) {
		if hostname != "" {
			e.hostname = hostname
		}
	}
}

// WithUser sets the USER variable.
func WithUser(user string) Option {
	return func(e *Emulator) {
		if user != "" {
			e.env["USER"] = user
		}
	}
}

// WithEnv merges variables over the seeded environment.
func WithEnv(env map[string]string) Option {
	return func(e *Emulator) {
		for k, v := range env {
			e.env[k] = v
		}
	}
}

// WithHistory preloads previously executed lines, for restored sessions.
func WithHistory(lines []string) Option {
	return func(e *Emulator) {
		e.history = append([]string(nil), lines...)
		e.cursor = len(e.history)
	}
}
