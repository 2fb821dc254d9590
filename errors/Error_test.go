package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("plain message", func(t *testing.T) {
		err := New(ERR_PROCESSING, "something went wrong")

		require.NotNil(t, err)
		assert.Equal(t, ERR_PROCESSING, err.Code())
		assert.Equal(t, "something went wrong", err.Message())
		assert.Nil(t, err.WrappedErr())
	})

	t.Run("formatted message", func(t *testing.T) {
		err := New(ERR_CANT_GET_FAKE_OUTPUTS, "Requested outputs: %d, found outputs: %d", 5, 3)

		assert.Equal(t, "Requested outputs: 5, found outputs: 3", err.Message())
	})

	t.Run("trailing error param is wrapped, not formatted", func(t *testing.T) {
		inner := stderrors.New("connection refused")
		err := New(ERR_SERVICE_ERROR, "pool submit failed for %s", "abc", inner)

		assert.Equal(t, "pool submit failed for abc", err.Message())
		assert.Equal(t, inner, err.WrappedErr())
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("invalid code", func(t *testing.T) {
		err := New(ERR(9999), "whatever")

		assert.Equal(t, "invalid error code", err.Message())
	})
}

func TestIs(t *testing.T) {
	t.Run("matches on code", func(t *testing.T) {
		err := NewCantGetFakeOutputsError("not enough outputs")

		assert.True(t, Is(err, ErrCantGetFakeOutputs))
		assert.False(t, Is(err, ErrTxRejected))
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		inner := NewBlockNotFoundError("no block at height 42")
		outer := NewProcessingError("info handler failed", inner)

		assert.True(t, Is(outer, ErrBlockNotFound))
	})
}

func TestAs(t *testing.T) {
	var target *Error

	err := NewTxRejectedError("fee too low")

	require.True(t, As(err, &target))
	assert.Equal(t, ERR_TX_REJECTED, target.Code())
}

func TestNilReceiver(t *testing.T) {
	var err *Error

	assert.Equal(t, "<nil>", err.Error())
	assert.Equal(t, ERR_UNKNOWN, err.Code())
	assert.Equal(t, "", err.Message())
	assert.Nil(t, err.Unwrap())
	assert.False(t, err.Is(ErrUnknown))
}

func TestEnum(t *testing.T) {
	assert.Equal(t, "ERR_CANT_GET_FAKE_OUTPUTS", ERR_CANT_GET_FAKE_OUTPUTS.Enum())
	assert.Equal(t, "ERR_UNKNOWN", ERR(12345).Enum())
}
