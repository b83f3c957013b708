package fs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/labsh/model"
	"github.com/viant/labsh/service/dao"
	"github.com/viant/labsh/vfs"
)

func newRecord(t *testing.T, id string) *model.Record {
	fs := vfs.New("/home/student")
	require.NoError(t, fs.CreateDirectory("workspace/project"))
	require.NoError(t, fs.WriteFile("workspace/project/main.go", "package main\n"))
	_, err := fs.ChangeDirectory("workspace")
	require.NoError(t, err)
	return &model.Record{
		ID:        id,
		Snapshot:  fs.Serialize(),
		History:   []string{"mkdir workspace/project", "cd workspace"},
		Env:       map[string]string{"USER": "student"},
		CreatedAt: time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC),
		UpdatedAt: time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC),
	}
}

func TestService_RoundTrip(t *testing.T) {
	testCases := []struct {
		description string
		baseURL     string
		format      Format
		extension   string
	}{
		{description: "json", baseURL: "mem://localhost/labsh/json", format: FormatJSON, extension: ".json"},
		{description: "yaml", baseURL: "mem://localhost/labsh/yaml", format: FormatYAML, extension: ".yaml"},
		{description: "default format", baseURL: "mem://localhost/labsh/default", extension: ".json"},
	}

	ctx := context.Background()
	for _, testCase := range testCases {
		srv, err := New(testCase.baseURL, WithFormat(testCase.format))
		require.NoError(t, err, testCase.description)

		record := newRecord(t, "s-1")
		require.NoError(t, srv.Save(ctx, record), testCase.description)

		exists, err := afs.New().Exists(ctx, testCase.baseURL+"/s-1"+testCase.extension)
		require.NoError(t, err)
		assert.True(t, exists, testCase.description)

		loaded, err := srv.Load(ctx, "s-1")
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, record.History, loaded.History, testCase.description)
		assert.EqualValues(t, record.Env, loaded.Env, testCase.description)
		assert.True(t, record.CreatedAt.Equal(loaded.CreatedAt), testCase.description)
		assert.EqualValues(t, record.Snapshot.CurrentDirectory, loaded.Snapshot.CurrentDirectory, testCase.description)
		assert.EqualValues(t, record.Snapshot.FileSystem, loaded.Snapshot.FileSystem, testCase.description)

		restored := vfs.New("/home/student")
		assert.True(t, restored.Deserialize(loaded.Snapshot), testCase.description)
		content, err := restored.ReadFile("project/main.go")
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, "package main\n", content, testCase.description)

		records, err := srv.List(ctx)
		require.NoError(t, err, testCase.description)
		require.Len(t, records, 1, testCase.description)
		assert.EqualValues(t, "s-1", records[0].ID, testCase.description)

		require.NoError(t, srv.Delete(ctx, "s-1"), testCase.description)
		_, err = srv.Load(ctx, "s-1")
		assert.ErrorIs(t, err, dao.ErrNotFound, testCase.description)
		assert.ErrorIs(t, srv.Delete(ctx, "s-1"), dao.ErrNotFound, testCase.description)
	}
}

func TestService_InvalidID(t *testing.T) {
	ctx := context.Background()
	srv, err := New("mem://localhost/labsh/invalid")
	require.NoError(t, err)

	assert.ErrorIs(t, srv.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, srv.Save(ctx, &model.Record{ID: "../escape"}), dao.ErrInvalidID)
	_, err = srv.Load(ctx, "")
	assert.ErrorIs(t, err, dao.ErrInvalidID)
	assert.ErrorIs(t, srv.Delete(ctx, "a/b"), dao.ErrInvalidID)
}

func TestService_ListSkipsForeignDocuments(t *testing.T) {
	ctx := context.Background()
	baseURL := "mem://localhost/labsh/mixed"
	srv, err := New(baseURL)
	require.NoError(t, err)
	require.NoError(t, srv.Save(ctx, newRecord(t, "good")))

	storage := afs.New()
	require.NoError(t, storage.Upload(ctx, baseURL+"/broken.json", 0644, strings.NewReader("{not json")))
	require.NoError(t, storage.Upload(ctx, baseURL+"/notes.txt", 0644, strings.NewReader("hello")))

	records, err := srv.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.EqualValues(t, "good", records[0].ID)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
	_, err = New("mem://localhost/labsh/xml", WithFormat("xml"))
	assert.Error(t, err)
}
