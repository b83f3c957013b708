package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/labsh/internal/clock"
	"github.com/viant/labsh/internal/idgen"
	"github.com/viant/labsh/model"
	"github.com/viant/labsh/policy"
	"github.com/viant/labsh/progress"
	"github.com/viant/labsh/service/dao"
	"github.com/viant/labsh/service/dao/record/fs"
	mqmemory "github.com/viant/labsh/service/messaging/memory"
	"github.com/viant/labsh/terminal"
)

func TestService_OpenExecute(t *testing.T) {
	ctx := context.Background()
	srv := New(WithTerminalOptions(terminal.WithHostname("box")))
	session, err := srv.Open(ctx)
	require.NoError(t, err)
	assert.True(t, idgen.Valid(session.ID))

	output, err := srv.Execute(ctx, session.ID, "pwd")
	require.NoError(t, err)
	assert.EqualValues(t, "/home/student", output)

	output, err = srv.Execute(ctx, session.ID, "sudo ls")
	require.NoError(t, err)
	assert.EqualValues(t, "sudo: command not found or not allowed", output)
	assert.EqualValues(t, "student@box:~$ ", session.Prompt())

	_, err = srv.Execute(ctx, "missing", "pwd")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	got, err := srv.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.EqualValues(t, []string{session.ID}, srv.IDs())
}

func TestService_OpenWithID(t *testing.T) {
	ctx := context.Background()
	srv := New()
	session, err := srv.Open(ctx, WithID("lab-1"), WithEnv(map[string]string{"USER": "ada"}))
	require.NoError(t, err)
	assert.EqualValues(t, "lab-1", session.ID)
	assert.EqualValues(t, "ada", session.Execute(ctx, "whoami"))

	_, err = srv.Open(ctx, WithID("lab-1"))
	assert.ErrorIs(t, err, ErrSessionExists)
	_, err = srv.Open(ctx, WithID("../lab"))
	assert.ErrorIs(t, err, dao.ErrInvalidID)
}

func TestService_IsolatedSessions(t *testing.T) {
	ctx := context.Background()
	srv := New()
	first, err := srv.Open(ctx)
	require.NoError(t, err)
	second, err := srv.Open(ctx)
	require.NoError(t, err)

	first.Execute(ctx, "mkdir only-here")
	first.Execute(ctx, "cd only-here")
	assert.EqualValues(t, "/home/student/only-here", first.Execute(ctx, "pwd"))
	assert.EqualValues(t, "/home/student", second.Execute(ctx, "pwd"))
	assert.EqualValues(t, "ls: File or directory not found", second.Execute(ctx, "ls only-here"))
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	var events []progress.Progress
	srv := New(WithProgressListener(func(p progress.Progress) { events = append(events, p) }))
	session, err := srv.Open(ctx)
	require.NoError(t, err)

	for _, line := range []string{"ls", "   ", "cat nope", "sudo rm -rf /", "echo hi"} {
		session.Execute(ctx, line)
	}
	stats, err := srv.Stats(ctx, session.ID)
	require.NoError(t, err)
	assert.EqualValues(t, session.ID, stats.SessionID)
	assert.EqualValues(t, 4, stats.TotalCommands)
	assert.EqualValues(t, 2, stats.SucceededCommands)
	assert.EqualValues(t, 1, stats.FailedCommands)
	assert.EqualValues(t, 1, stats.DeniedCommands)
	assert.Len(t, events, 4)

	_, err = srv.Stats(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ConcurrentExecute(t *testing.T) {
	ctx := context.Background()
	srv := New()
	session, err := srv.Open(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = srv.Execute(ctx, session.ID, fmt.Sprintf("touch workspace/file%d.txt", i))
		}(i)
	}
	wg.Wait()
	assert.Len(t, session.History(), 20)
	assert.EqualValues(t, 20, session.Stats().SucceededCommands)
	assert.Len(t, strings.Split(session.Execute(ctx, "ls workspace"), "\n"), 21)
}

func TestService_SaveRestore(t *testing.T) {
	testCases := []struct {
		description string
		store       func(t *testing.T) dao.Service[string, model.Record]
	}{
		{
			description: "memory store",
			store:       func(t *testing.T) dao.Service[string, model.Record] { return nil },
		},
		{
			description: "afs json store",
			store: func(t *testing.T) dao.Service[string, model.Record] {
				srv, err := fs.New("mem://localhost/labsh/session/json")
				require.NoError(t, err)
				return srv
			},
		},
		{
			description: "afs yaml store",
			store: func(t *testing.T) dao.Service[string, model.Record] {
				srv, err := fs.New("mem://localhost/labsh/session/yaml", fs.WithFormat(fs.FormatYAML))
				require.NoError(t, err)
				return srv
			},
		},
	}

	ctx := context.Background()
	for _, testCase := range testCases {
		srv := New(WithStore(testCase.store(t)))
		session, err := srv.Open(ctx, WithID("restore-me"))
		require.NoError(t, err, testCase.description)
		for _, line := range []string{"mkdir project", "cd project", "touch main.go"} {
			session.Execute(ctx, line)
		}
		require.NoError(t, srv.Save(ctx, session.ID), testCase.description)

		session.Execute(ctx, "rm main.go")
		require.NoError(t, srv.Close(ctx, session.ID), testCase.description)
		_, err = srv.Get(ctx, session.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound, testCase.description)

		restored, err := srv.Restore(ctx, "restore-me")
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, "/home/student/project", restored.Execute(ctx, "pwd"), testCase.description)
		assert.Contains(t, restored.Execute(ctx, "ls"), "main.go", testCase.description)
		assert.EqualValues(t, []string{"mkdir project", "cd project", "touch main.go", "pwd", "ls"}, restored.History(), testCase.description)
		changes := restored.Changes()
		require.Len(t, changes, 2, testCase.description)
		assert.EqualValues(t, Change{Kind: Created, Path: "/home/student/project", IsDir: true}, changes[0], testCase.description)
		assert.EqualValues(t, Created, changes[1].Kind, testCase.description)
		assert.EqualValues(t, "/home/student/project/main.go", changes[1].Path, testCase.description)
		line, ok := restored.PreviousCommand()
		assert.True(t, ok, testCase.description)
		assert.EqualValues(t, "ls", line, testCase.description)

		saved, err := srv.Saved(ctx)
		require.NoError(t, err, testCase.description)
		assert.Contains(t, saved, "restore-me", testCase.description)

		_, err = srv.Restore(ctx, "never-saved")
		assert.ErrorIs(t, err, dao.ErrNotFound, testCase.description)
	}
}

func TestService_RestoreCorruptedSnapshot(t *testing.T) {
	ctx := context.Background()
	srv := New()
	require.NoError(t, srv.store.Save(ctx, &model.Record{
		ID:      "broken",
		History: []string{"ls"},
		Env:     map[string]string{"USER": "grace"},
	}))
	restored, err := srv.Restore(ctx, "broken")
	require.NoError(t, err)
	assert.EqualValues(t, "/home/student", restored.Execute(ctx, "pwd"))
	assert.EqualValues(t, "grace", restored.Execute(ctx, "whoami"))
	assert.Contains(t, restored.Execute(ctx, "cat readme.txt"), "Welcome")
	assert.Empty(t, restored.Changes())
}

func TestService_Close(t *testing.T) {
	ctx := context.Background()
	srv := New(WithPolicy(&policy.Policy{AllowList: []string{"pwd"}, SandboxRoot: "/lab"}))
	session, err := srv.Open(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, "/lab", session.Execute(ctx, "pwd"))
	assert.EqualValues(t, "ls: command not found or not allowed", session.Execute(ctx, "ls"))

	require.NoError(t, srv.Close(ctx, session.ID))
	assert.ErrorIs(t, srv.Close(ctx, session.ID), ErrSessionNotFound)
	assert.ErrorIs(t, srv.Save(ctx, session.ID), ErrSessionNotFound)
	assert.Empty(t, srv.IDs())
}

func TestService_ContextPolicy(t *testing.T) {
	srv := New()
	ctx := policy.WithPolicy(context.Background(), &policy.Policy{AllowList: []string{"pwd", "echo"}, SandboxRoot: "/srv/lab"})
	session, err := srv.Open(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, "/srv/lab", session.Execute(ctx, "pwd"))
	assert.EqualValues(t, "ls: command not found or not allowed", session.Execute(ctx, "ls"))

	other, err := srv.Open(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, "/home/student", other.Execute(ctx, "pwd"))
}

func TestService_Audit(t *testing.T) {
	clock.NowFunc = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }
	defer func() { clock.NowFunc = time.Now }()

	ctx := context.Background()
	queue := mqmemory.NewQueue[AuditEntry](mqmemory.DefaultConfig())
	srv := New(WithAudit(queue))
	session, err := srv.Open(ctx, WithID("audited"))
	require.NoError(t, err)

	for _, line := range []string{" cd examples ", "", "cat nope", "vim x"} {
		session.Execute(ctx, line)
	}
	expected := []AuditEntry{
		{Line: "cd examples", Command: "cd", Outcome: OutcomeSucceeded},
		{Line: "cat nope", Command: "cat", Outcome: OutcomeFailed, Output: "cat: File or directory not found"},
		{Line: "vim x", Command: "vim", Outcome: OutcomeDenied, Output: "vim: command not found or not allowed"},
	}
	require.EqualValues(t, len(expected), queue.Size())
	for _, e := range expected {
		message, err := queue.Consume(ctx)
		require.NoError(t, err)
		e.SessionID = "audited"
		e.CurrentDirectory = "/home/student/examples"
		e.Time = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
		assert.EqualValues(t, e, *message.T(), e.Line)
		require.NoError(t, message.Ack())
	}
}

func TestService_AuditQueueFull(t *testing.T) {
	ctx := context.Background()
	queue := mqmemory.NewQueue[AuditEntry](mqmemory.Config{QueueBuffer: 1})
	srv := New(WithAudit(queue))
	session, err := srv.Open(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, "/home/student", session.Execute(ctx, "pwd"))
	assert.EqualValues(t, "/home/student", session.Execute(ctx, "pwd"))
	assert.EqualValues(t, 1, queue.Size())
	assert.EqualValues(t, 2, session.Stats().SucceededCommands)
}
