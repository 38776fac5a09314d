package commands

import (
	"fmt"

	"github.com/fsown/fsown/secfs"
	"github.com/spf13/cobra"
)

// NewInspectorFunc is a testable indirection for constructing the inspector.
var NewInspectorFunc = secfs.NewInspector

// NewInspectCmd returns the inspect command.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <path>",
		Short: "Show the owner and access control entries of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := NewInspectorFunc(commandFs()).Inspect(args[0])
			if err != nil {
				return err
			}
			printReport(cmd, report)
			if !report.Exists {
				return fmt.Errorf("%s not found", args[0])
			}
			return nil
		},
	}
}

func printReport(cmd *cobra.Command, r secfs.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "path: %s\n", r.Path)
	if r.Owner != "" {
		if r.OwnerSID != "" {
			fmt.Fprintf(out, "owner: %s (%s)\n", r.Owner, r.OwnerSID)
		} else {
			fmt.Fprintf(out, "owner: %s\n", r.Owner)
		}
	}
	if r.Mode != 0 {
		fmt.Fprintf(out, "mode: %04o\n", uint32(r.Mode))
	}
	for _, ace := range r.ACEs {
		inherited := ""
		if ace.Inherited {
			inherited = " (inherited)"
		}
		fmt.Fprintf(out, "  %-5s %-24s %s%s\n", ace.Type, ace.Principal, ace.Rights, inherited)
	}
	for _, p := range r.Problems {
		fmt.Fprintf(out, "problem: %s\n", p)
	}
}
