package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	require.Equal(t, "Success", Success.String())
	require.Equal(t, "DeviceNotFound", DeviceNotFound.String())
	require.Equal(t, "InvalidValue", InvalidValue.String())
	require.Equal(t, "InvalidProperty", InvalidProperty.String())
	require.Equal(t, "Code(-20)", Code(-20).String())

	c, err := CodeString("invalidcontext")
	require.NoError(t, err)
	require.Equal(t, InvalidContext, c)
	_, err = CodeString("NoSuchCode")
	require.Error(t, err)
}

func TestCode_Describe(t *testing.T) {
	require.True(t, Success.Ok())
	require.False(t, InvalidValue.Ok())
	require.Equal(t, "InvalidPlatform (-32)", InvalidPlatform.Describe())
	require.Equal(t, "unknown status (-1000)", Code(-1000).Describe())
	for _, c := range CodeValues() {
		require.Truef(t, c.IsACode(), "%s should be a known code", c)
	}
}
