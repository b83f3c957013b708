package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmulator_HistoryBounds(t *testing.T) {
	e := newEmulator()
	_, ok := e.PreviousCommand()
	assert.False(t, ok)
	_, ok = e.NextCommand()
	assert.False(t, ok)

	lines := []string{"pwd", "ls", "cd examples", "cat hello.c"}
	for _, line := range lines {
		e.Execute(line)
	}
	e.Execute("   ")
	assert.EqualValues(t, lines, e.History())
	assert.EqualValues(t, len(lines), e.HistoryCursor())

	for i := len(lines) - 1; i >= 0; i-- {
		line, ok := e.PreviousCommand()
		assert.True(t, ok)
		assert.EqualValues(t, lines[i], line)
	}
	_, ok = e.PreviousCommand()
	assert.False(t, ok)
	assert.EqualValues(t, 0, e.HistoryCursor())

	for i := 1; i < len(lines); i++ {
		line, ok := e.NextCommand()
		assert.True(t, ok)
		assert.EqualValues(t, lines[i], line)
	}
	line, ok := e.NextCommand()
	assert.True(t, ok)
	assert.EqualValues(t, "", line)
	assert.EqualValues(t, len(lines), e.HistoryCursor())

	_, ok = e.NextCommand()
	assert.False(t, ok)
	assert.EqualValues(t, len(lines), e.HistoryCursor())
}

func TestEmulator_HistoryResetOnExecute(t *testing.T) {
	e := newEmulator()
	e.Execute("pwd")
	e.Execute("ls")
	e.PreviousCommand()
	e.PreviousCommand()
	e.Execute("  whoami  ")
	assert.EqualValues(t, 3, e.HistoryCursor())
	line, _ := e.PreviousCommand()
	assert.EqualValues(t, "whoami", line)
}

func TestEmulator_HistoryRecordsRejected(t *testing.T) {
	e := newEmulator()
	e.Execute("sudo ls")
	e.Execute("cat missing")
	assert.EqualValues(t, []string{"sudo ls", "cat missing"}, e.History())
}

func TestWithHistory(t *testing.T) {
	e := newEmulator(WithHistory([]string{"ls", "pwd"}))
	assert.EqualValues(t, 2, e.HistoryCursor())
	line, ok := e.PreviousCommand()
	assert.True(t, ok)
	assert.EqualValues(t, "pwd", line)
}
