package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/objedit/internal/mapfile"
)

// GetCmd returns the `objedit get` command.
func GetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print the value stored under a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			defer env.close()

			m, _, err := mapfile.Load(args[0], env.cfg.FileFormat())
			if err != nil {
				return err
			}
			v, ok := m.Get(args[1])
			if !ok {
				return fmt.Errorf("key %q not found", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), mapfile.FormatValue(v))
			return nil
		},
	}
}

// KeysCmd returns the `objedit keys` command.
func KeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file>",
		Short: "List keys in file order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			defer env.close()

			m, _, err := mapfile.Load(args[0], env.cfg.FileFormat())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, k := range m.Keys() {
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}
}
