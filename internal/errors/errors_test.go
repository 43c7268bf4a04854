package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

type codedError struct{ code int }

func (e *codedError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestWrapKeepsCause(t *testing.T) {
	err := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "outer 1: inner: sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrapKeepsCause")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}

func TestAs(t *testing.T) {
	err := WithStack(&codedError{code: 7})

	var coded *codedError
	assert.True(t, As(err, &coded))
	assert.Equal(t, 7, coded.code)
	assert.False(t, Is(Errorf("other"), errSentinel))
}
