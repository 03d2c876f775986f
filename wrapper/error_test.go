package wrapper

import (
	"fmt"
	"testing"

	"github.com/gomlx/clwrap/status"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := NewError("Wrapper.Release", status.InvalidCommandQueue, "unable to release native object %#x", 0x10)
	require.EqualError(t, err, "Wrapper.Release: unable to release native object 0x10 (native error InvalidCommandQueue (-36))")
	require.Equal(t, status.InvalidCommandQueue, CodeOf(err))
	require.Equal(t, status.InvalidCommandQueue, CodeOf(errors.WithMessage(err, "destroying queue")))
	require.Contains(t, fmt.Sprintf("%+v", err), "error_test.go", "stack trace expected")

	require.Equal(t, status.Success, CodeOf(nil))
	require.Equal(t, status.Success, CodeOf(errors.New("not a native error")))

	err = contractViolation("Test", "nil %s", "thing")
	require.ErrorIs(t, err, ErrContract)
	require.ErrorContains(t, err, "Test: nil thing")
}
