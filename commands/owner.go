package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewOwnerCmd returns the owner parent command with get/set subcommands.
func NewOwnerCmd() *cobra.Command {
	ownerCmd := &cobra.Command{
		Use:   "owner",
		Short: "Query and change the owning principal of a path",
		Args:  cobra.NoArgs,
	}

	getCmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Print the account name owning the path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := NewManagerFunc().OwnerGroup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <path> <group>",
		Short: "Make the named group the owner of the path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if elevated, err := IsElevatedFunc(); err == nil && !elevated {
				fmt.Fprintln(cmd.ErrOrStderr(),
					"warning: not elevated; taking ownership of a foreign-owned path will likely fail")
			}
			if !NewManagerFunc().SetOwnerGroup(args[0], args[1]) {
				return fmt.Errorf("could not set owner of %s to %s", args[0], args[1])
			}
			return nil
		},
	}

	ownerCmd.AddCommand(getCmd)
	ownerCmd.AddCommand(setCmd)
	return ownerCmd
}
