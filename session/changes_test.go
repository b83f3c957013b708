package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Changes(t *testing.T) {
	ctx := context.Background()
	srv := New()
	session, err := srv.Open(ctx)
	require.NoError(t, err)

	changes, err := srv.Changes(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, changes)

	for _, line := range []string{"mkdir notes", "touch notes/todo.txt", "rm examples/test.py", "rm workspace"} {
		session.Execute(ctx, line)
	}
	changes = session.Changes()

	expected := []struct {
		kind  ChangeKind
		path  string
		isDir bool
	}{
		{kind: Created, path: "/home/student/notes", isDir: true},
		{kind: Created, path: "/home/student/notes/todo.txt"},
		{kind: Deleted, path: "/home/student/examples/test.py"},
		{kind: Deleted, path: "/home/student/workspace", isDir: true},
		{kind: Deleted, path: "/home/student/workspace/.gitkeep"},
	}
	require.Len(t, changes, len(expected))
	for i, e := range expected {
		assert.EqualValues(t, e.kind, changes[i].Kind, e.path)
		assert.EqualValues(t, e.path, changes[i].Path)
		assert.EqualValues(t, e.isDir, changes[i].IsDir, e.path)
	}
	assert.Empty(t, changes[0].Diff)
	assert.Empty(t, changes[1].Diff)
	assert.Contains(t, changes[2].Diff, "--- a/home/student/examples/test.py")
	assert.Contains(t, changes[2].Diff, "+++ /dev/null")
	assert.EqualValues(t, 4, changes[2].Removed)
	assert.EqualValues(t, 0, changes[2].Added)
}

func TestCompare_Update(t *testing.T) {
	ctx := context.Background()
	srv := New()
	session, err := srv.Open(ctx)
	require.NoError(t, err)
	require.NoError(t, session.fs.WriteFile("readme.txt", "Welcome to the lab!\n"))
	require.NoError(t, session.fs.WriteFile("workspace/main.go", "package main\n"))

	changes := session.Changes()
	require.Len(t, changes, 2)

	assert.EqualValues(t, Updated, changes[0].Kind)
	assert.EqualValues(t, "/home/student/readme.txt", changes[0].Path)
	assert.Contains(t, changes[0].Diff, "--- a/home/student/readme.txt")
	assert.Contains(t, changes[0].Diff, "+++ b/home/student/readme.txt")
	assert.EqualValues(t, 0, changes[0].Added)
	assert.True(t, changes[0].Removed > 0)

	assert.EqualValues(t, Created, changes[1].Kind)
	assert.EqualValues(t, "--- /dev/null\n+++ b/home/student/workspace/main.go\n@@ -0,0 +1 @@\n+package main\n", changes[1].Diff)
	assert.EqualValues(t, 1, changes[1].Added)
}

func TestCompare_KindChange(t *testing.T) {
	ctx := context.Background()
	srv := New()
	session, err := srv.Open(ctx)
	require.NoError(t, err)
	session.Execute(ctx, "rm readme.txt")
	session.Execute(ctx, "mkdir readme.txt")

	changes := session.Changes()
	require.Len(t, changes, 2)
	assert.EqualValues(t, Deleted, changes[0].Kind)
	assert.False(t, changes[0].IsDir)
	assert.EqualValues(t, Created, changes[1].Kind)
	assert.True(t, changes[1].IsDir)
}

func TestSplitLines(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    []string
	}{
		{description: "empty", input: "", expected: nil},
		{description: "trailing newline", input: "a\nb\n", expected: []string{"a\n", "b\n"}},
		{description: "no trailing newline", input: "a\nb", expected: []string{"a\n", "b\n"}},
	}
	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expected, splitLines(testCase.input), testCase.description)
	}
}
