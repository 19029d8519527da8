package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestWrapKeepsChain(t *testing.T) {
	sentinel := New("document not found")
	err := Wrapf(Wrap(sentinel, "get idol"), "delete %s", "i1")

	assert.True(t, Is(err, sentinel))
	assert.Equal(t, sentinel, Cause(err))
	assert.Equal(t, "delete i1: get idol: document not found", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestAsType(t *testing.T) {
	err := WithStack(&codeError{code: "CONFLICT"})

	got, ok := AsType[*codeError](err)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", got.code)

	_, ok = AsType[*codeError](Errorf("plain %d", 1))
	assert.False(t, ok)

	_, ok = AsType[*codeError](nil)
	assert.False(t, ok)
}
