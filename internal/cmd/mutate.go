package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/objedit/internal/mapfile"
)

// SetCmd returns the `objedit set` command.
func SetCmd() *cobra.Command {
	var typed bool
	cmd := &cobra.Command{
		Use:   "set <file> <key=value>...",
		Short: "Set one or more keys, creating the file if needed",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return withSession(args[0], true, func(s *session) error {
				for _, arg := range args[1:] {
					key, text, ok := strings.Cut(arg, "=")
					if !ok {
						return fmt.Errorf("expected key=value, got %q", arg)
					}
					var value any = text
					if typed {
						value = mapfile.ParseValue(text)
					}
					if err := s.set(key, value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&typed, "typed", "t", false, "parse values as YAML scalars (numbers, booleans, null, lists)")
	return cmd
}

// RenameCmd returns the `objedit rename` command.
func RenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <file> <old> <new>",
		Short: "Rename a key, keeping its position",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return withSession(args[0], false, func(s *session) error {
				return s.rename(args[1], args[2])
			})
		},
	}
}

// DeleteCmd returns the `objedit delete` command.
func DeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <file> <key>...",
		Aliases: []string{"rm"},
		Short:   "Remove keys",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return withSession(args[0], false, func(s *session) error {
				for _, key := range args[1:] {
					if err := s.remove(key); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

// withSession runs fn against path and saves only when fn succeeds, so a
// failing command never leaves a half-applied file.
func withSession(path string, create bool, fn func(*session) error) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.close()

	s, err := openSession(env, path, create)
	if err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return s.save()
}
