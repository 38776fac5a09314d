package commands

import (
	"fmt"

	"github.com/fsown/fsown/manifest"
	"github.com/spf13/cobra"
)

// NewApplyCmd returns the apply command, which enforces a manifest of
// ownership and permission entries. Each entry is best-effort; failures are
// counted and reported at the end rather than aborting the run.
func NewApplyCmd() *cobra.Command {
	var file string
	applyCmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply ownership and permissions from a manifest file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(commandFs(), file)
			if err != nil {
				return err
			}
			mgr := NewManagerFunc()
			failed := 0
			for _, e := range m.Entries {
				ok := true
				if e.Owner != "" && !mgr.SetOwnerGroup(e.Path, e.Owner) {
					ok = false
				}
				if ok && e.Allow != nil {
					// Validated during Load.
					perms, _ := e.Permissions()
					if !mgr.SetGroupPermissions(e.Path, perms) {
						ok = false
					}
				}
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d entries failed", failed, len(m.Entries))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d entries\n", len(m.Entries))
			return nil
		},
	}
	applyCmd.Flags().StringVarP(&file, "file", "f", "", "Manifest file to apply")
	_ = applyCmd.MarkFlagRequired("file")
	return applyCmd
}
