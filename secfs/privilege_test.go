package secfs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newCountingGuard() (*countedGuard, *int, *int) {
	enabled := 0
	disabled := 0
	g := &countedGuard{
		held:    make(map[string]int),
		enable:  func(string) error { enabled++; return nil },
		disable: func(string) error { disabled++; return nil },
	}
	return g, &enabled, &disabled
}

func TestCountedGuard_PairsEnableDisable(t *testing.T) {
	g, enabled, disabled := newCountingGuard()

	err := g.WithPrivilege(SeTakeOwnershipPrivilege, func() error { return nil })
	require.NoError(t, err)
	require.Equal(t, 1, *enabled)
	require.Equal(t, 1, *disabled)
}

func TestCountedGuard_DisablesOnBodyFailure(t *testing.T) {
	g, enabled, disabled := newCountingGuard()
	bodyErr := errors.New("write failed")

	err := g.WithPrivilege(SeTakeOwnershipPrivilege, func() error { return bodyErr })
	require.ErrorIs(t, err, bodyErr)
	require.Equal(t, 1, *enabled)
	require.Equal(t, 1, *disabled)
}

func TestCountedGuard_NestedScopesDisableOnce(t *testing.T) {
	g, enabled, disabled := newCountingGuard()

	err := g.WithPrivilege(SeTakeOwnershipPrivilege, func() error {
		// The privilege stays enabled for the inner scope; only the
		// outermost exit disables it.
		return g.WithPrivilege(SeTakeOwnershipPrivilege, func() error {
			require.Equal(t, 1, *enabled)
			require.Equal(t, 0, *disabled)
			return nil
		})
	})
	require.NoError(t, err)
	require.Equal(t, 1, *enabled)
	require.Equal(t, 1, *disabled)
}

func TestCountedGuard_DistinctPrivilegesTracked(t *testing.T) {
	g, enabled, disabled := newCountingGuard()

	err := g.WithPrivilege(SeTakeOwnershipPrivilege, func() error {
		return g.WithPrivilege("SeBackupPrivilege", func() error { return nil })
	})
	require.NoError(t, err)
	require.Equal(t, 2, *enabled)
	require.Equal(t, 2, *disabled)
}

func TestCountedGuard_EnableFailureSkipsBody(t *testing.T) {
	enableErr := errors.New("privilege not held")
	g := &countedGuard{
		held:    make(map[string]int),
		enable:  func(string) error { return enableErr },
		disable: func(string) error { t.Fatal("disable called after failed enable"); return nil },
	}

	ran := false
	err := g.WithPrivilege(SeTakeOwnershipPrivilege, func() error { ran = true; return nil })
	require.ErrorIs(t, err, enableErr)
	require.False(t, ran)
}
