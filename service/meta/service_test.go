package meta

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

type document struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestService_Load(t *testing.T) {
	t.Setenv("LAB_META_NAME", "lab")
	ctx := context.Background()
	fs := afs.New()

	testCases := []struct {
		description string
		URL         string
		content     string
		expected    document
		hasError    bool
	}{
		{description: "yaml", URL: "mem://localhost/meta/doc.yaml", content: "name: ${env.LAB_META_NAME}\ncount: 2\n", expected: document{Name: "lab", Count: 2}},
		{description: "json", URL: "mem://localhost/meta/doc.json", content: `{"name":"${env.LAB_META_NAME}","count":3}`, expected: document{Name: "lab", Count: 3}},
		{description: "invalid", URL: "mem://localhost/meta/bad.yaml", content: "name: [", hasError: true},
	}
	srv := New(fs)
	for _, testCase := range testCases {
		require.NoError(t, fs.Upload(ctx, testCase.URL, 0644, strings.NewReader(testCase.content)))
		actual := document{}
		err := srv.Load(ctx, testCase.URL, &actual)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expected, actual, testCase.description)
	}

	assert.Error(t, srv.Load(ctx, "mem://localhost/meta/missing.yaml", &document{}))
}
