package commands

import (
	"fmt"

	"github.com/fsown/fsown/secfs"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

// permission is the enum backing the --allow flag.
type permission enumflag.Flag

const (
	permRead permission = iota
	permWrite
	permExecute
)

var permissionIds = map[permission][]string{
	permRead:    {"read", "r"},
	permWrite:   {"write", "w"},
	permExecute: {"execute", "exec", "x"},
}

func permissionSet(flags []permission) secfs.PermissionSet {
	var set secfs.PermissionSet
	for _, p := range flags {
		switch p {
		case permRead:
			set |= secfs.PermRead
		case permWrite:
			set |= secfs.PermWrite
		case permExecute:
			set |= secfs.PermExecute
		}
	}
	return set
}

// NewPermsCmd returns the perms parent command.
func NewPermsCmd() *cobra.Command {
	permsCmd := &cobra.Command{
		Use:   "perms",
		Short: "Manage group permissions of a path",
		Args:  cobra.NoArgs,
	}

	var allow []permission
	setCmd := &cobra.Command{
		Use:   "set <path>",
		Short: "Grant the owning group the given permissions, keeping administrative access",
		Long: "Rewrites the path's access control list so the owning group holds exactly " +
			"the permissions named by --allow, plus an unconditional full-control entry " +
			"for the local administrators group. Without --allow all group access is revoked.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !NewManagerFunc().SetGroupPermissions(args[0], permissionSet(allow)) {
				return fmt.Errorf("could not set permissions on %s", args[0])
			}
			return nil
		},
	}
	setCmd.Flags().Var(
		enumflag.NewSlice(&allow, "permission", permissionIds, enumflag.EnumCaseInsensitive),
		"allow",
		"permissions to grant the owning group; any of: read, write, execute")

	permsCmd.AddCommand(setCmd)
	return permsCmd
}
