package commands

import (
	"log/slog"
	"os"

	"github.com/fsown/fsown/secfs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// DefaultFs can be set by tests to use an in-memory filesystem. If nil,
// the commands will use the real OS filesystem.
var DefaultFs afero.Fs

func commandFs() afero.Fs {
	if DefaultFs != nil {
		return DefaultFs
	}
	return afero.NewOsFs()
}

// NewManagerFunc is a testable indirection for constructing the ownership
// manager. Tests may override it to inject fakes.
var NewManagerFunc = secfs.NewManager

// IsElevatedFunc is a testable indirection for elevation checks. By default
// it points to the platform-specific IsElevated implementation but tests may
// override it.
var IsElevatedFunc = IsElevated

// NewRootCmd returns the fsown root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:          "fsown",
		Short:        "Manage filesystem ownership and group permissions",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(NewOwnerCmd())
	rootCmd.AddCommand(NewPermsCmd())
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewApplyCmd())
	return rootCmd
}
