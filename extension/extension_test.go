package extension

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/labsh/model/types"
	"github.com/viant/x"
)

type Sample struct {
	Name string
}

type sampleService struct{}

func (s *sampleService) Name() string { return "sample" }

func (s *sampleService) Methods() types.Signatures {
	return types.Signatures{{Name: "noop", Input: reflect.TypeOf(&Sample{}), Output: reflect.TypeOf(&Sample{})}}
}

func (s *sampleService) Method(name string) (types.Executable, error) {
	if name != "noop" {
		return nil, types.NewMethodNotFoundError(name)
	}
	return func(context.Context, interface{}, interface{}) error { return nil }, nil
}

func (s *sampleService) InitTypes(registry *Types) {
	registry.Register(x.NewType(reflect.TypeOf(Sample{})))
}

func TestActions_Register(t *testing.T) {
	actions := NewActions()
	actions.Register(&sampleService{})

	require.NotNil(t, actions.Lookup("sample"))
	assert.Nil(t, actions.Lookup("other"))
	assert.EqualValues(t, []string{"sample"}, actions.Names())
	assert.EqualValues(t, "github.com/viant/labsh/extension", actions.Types().Aliases()["extension"])
}

func TestTypes_Lookup(t *testing.T) {
	registry := NewTypes()
	registry.Register(x.NewType(reflect.TypeOf(Sample{})))

	testCases := []struct {
		description string
		name        string
		options     []Option
		expected    reflect.Type
	}{
		{description: "alias", name: "extension.Sample", expected: reflect.TypeOf(Sample{})},
		{description: "full package path", name: "github.com/viant/labsh/extension.Sample", expected: reflect.TypeOf(Sample{})},
		{description: "slice", name: "[]extension.Sample", expected: reflect.TypeOf([]Sample{})},
		{description: "map", name: "map[string]extension.Sample", expected: reflect.TypeOf(map[string]Sample{})},
		{description: "custom alias", name: "ext.Sample", options: []Option{WithAlias("ext", "github.com/viant/labsh/extension")}, expected: reflect.TypeOf(Sample{})},
		{description: "unknown", name: "extension.Missing"},
	}
	for _, testCase := range testCases {
		actual := registry.Lookup(testCase.name, testCase.options...)
		if testCase.expected == nil {
			assert.Nil(t, actual, testCase.description)
			continue
		}
		require.NotNil(t, actual, testCase.description)
		assert.EqualValues(t, testCase.expected, actual.Type, testCase.description)
	}
}
