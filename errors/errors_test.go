package errors_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/percona-lab/nodelist/errors"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.NoError(t, errors.Wrap(nil, "noop"))
	assert.NoError(t, errors.Wrapf(nil, "noop %d", 1))

	err := errors.Wrapf(errors.Wrap(io.EOF, "read"), "line %d", 3)
	assert.EqualError(t, err, "line 3: read: EOF")
	assert.True(t, errors.Is(err, io.EOF))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.NoError(t, errors.Join(nil, errors.Wrap(nil, "close")))

	err := errors.Join(errors.Wrap(io.EOF, "read"), nil)
	assert.EqualError(t, err, "read: EOF")
	assert.True(t, errors.Is(err, io.EOF))
}
