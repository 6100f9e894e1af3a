package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/objedit/internal/cmd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "objedit [file]",
		Short: "objedit - edit JSON and YAML objects as key/value rows",
		Long: "objedit opens a JSON or YAML object as editable rows. Keys stay unique:\n" +
			"renaming onto a key that already exists is refused.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.Help()
			}
			return cmd.RunEditor(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cmd.EditCmd())
	root.AddCommand(cmd.GetCmd())
	root.AddCommand(cmd.KeysCmd())
	root.AddCommand(cmd.SetCmd())
	root.AddCommand(cmd.RenameCmd())
	root.AddCommand(cmd.DeleteCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}
