package commands

import (
	"testing"

	"github.com/fsown/fsown/secfs"
	"github.com/stretchr/testify/require"
)

func TestPermissionSetMapping(t *testing.T) {
	require.Equal(t, secfs.PermissionSet(0), permissionSet(nil))
	require.Equal(t, secfs.PermRead, permissionSet([]permission{permRead}))
	require.Equal(t, secfs.PermRead|secfs.PermWrite|secfs.PermExecute,
		permissionSet([]permission{permRead, permWrite, permExecute}))
}

func TestPermsSet(t *testing.T) {
	_, accessor, _, translator := withFakeManager(t)

	_, err := runCommand(t, "perms", "set", "/data/report.xlsx", "--allow", "read,write")
	require.NoError(t, err)

	require.Len(t, translator.perms, 1)
	require.Equal(t, secfs.PermRead|secfs.PermWrite, translator.perms[0])
	// The current owner is the target group.
	require.Equal(t, testPrincipal(1), translator.groups[0])
	require.Equal(t, []string{"/data/report.xlsx"}, accessor.daclWrites)
}

func TestPermsSet_NoAllowRevokes(t *testing.T) {
	_, _, _, translator := withFakeManager(t)

	_, err := runCommand(t, "perms", "set", "/data/report.xlsx")
	require.NoError(t, err)
	require.Equal(t, secfs.PermissionSet(0), translator.perms[0])
}

func TestPermsSet_UnknownPermission(t *testing.T) {
	withFakeManager(t)

	_, err := runCommand(t, "perms", "set", "/data/report.xlsx", "--allow", "delete")
	require.Error(t, err)
}

func TestPermsSet_DeniedReturnsError(t *testing.T) {
	_, accessor, _, _ := withFakeManager(t)
	accessor.setDACLErr = &secfs.AccessError{Kind: secfs.AccessPermissionDenied, Op: "set-dacl"}

	_, err := runCommand(t, "perms", "set", "/data/report.xlsx", "--allow", "read")
	require.Error(t, err)
}
