package terminal

// History returns a copy of the executed lines, oldest first.
func (e *Emulator) History() []string {
	return append([]string(nil), e.history...)
}

// HistoryCursor returns the replay position, 0 <= cursor <= len(History()).
func (e *Emulator) HistoryCursor() int {
	return e.cursor
}

// PreviousCommand steps the replay cursor back. It returns false when there
// is no earlier command.
func (e *Emulator) PreviousCommand() (string, bool) {
	if e.cursor > 0 {
		e.cursor--
		return e.history[e.cursor], true
	}
	return "", false
}

// NextCommand steps the replay cursor forward. Moving past the newest entry
// returns an empty line (a blank prompt); beyond that it returns false.
func (e *Emulator) NextCommand() (string, bool) {
	last := len(e.history) - 1
	switch {
	case e.cursor < last:
		e.cursor++
		return e.history[e.cursor], true
	case e.cursor == last:
		e.cursor = len(e.history)
		return "", true
	default:
		return "", false
	}
}
