package types

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatures_Lookup(t *testing.T) {
	signatures := Signatures{
		{Name: "open", Input: reflect.TypeOf(&struct{}{})},
		{Name: "close"},
	}
	assert.EqualValues(t, "close", signatures.Lookup("close").Name)
	assert.EqualValues(t, "open", signatures.Lookup("OPEN").Name)
	assert.Nil(t, signatures.Lookup("missing"))
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		description string
		err         error
		sentinel    error
		expected    string
	}{
		{description: "method", err: NewMethodNotFoundError("run"), sentinel: ErrMethodNotFound, expected: "method not found: run"},
		{description: "input", err: NewInvalidInputError(new(int)), sentinel: ErrInvalidInput, expected: "invalid input *int"},
		{description: "output", err: NewInvalidOutputError(""), sentinel: ErrInvalidOutput, expected: "invalid output string"},
	}
	for _, testCase := range testCases {
		assert.ErrorIs(t, testCase.err, testCase.sentinel, testCase.description)
		assert.EqualValues(t, testCase.expected, testCase.err.Error(), testCase.description)
	}
}
