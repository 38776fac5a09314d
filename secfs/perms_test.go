package secfs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermissionSet_String(t *testing.T) {
	tests := []struct {
		set  PermissionSet
		want string
	}{
		{0, "none"},
		{PermRead, "read"},
		{PermRead | PermWrite, "read,write"},
		{PermRead | PermWrite | PermExecute, "read,write,execute"},
		{PermExecute, "execute"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.set.String())
	}
}

func TestParsePermissionSet(t *testing.T) {
	set, err := ParsePermissionSet("read,write")
	require.NoError(t, err)
	require.Equal(t, PermRead|PermWrite, set)

	set, err = ParsePermissionSet(" R , x ")
	require.NoError(t, err)
	require.Equal(t, PermRead|PermExecute, set)

	set, err = ParsePermissionSet("")
	require.NoError(t, err)
	require.Equal(t, PermissionSet(0), set)

	_, err = ParsePermissionSet("read,delete")
	require.Error(t, err)
}

func TestPermissionSet_Has(t *testing.T) {
	set := PermRead | PermWrite
	require.True(t, set.Has(PermRead))
	require.True(t, set.Has(PermRead|PermWrite))
	require.False(t, set.Has(PermExecute))
	require.False(t, set.Has(PermRead|PermExecute))
}
