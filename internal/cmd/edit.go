package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/objedit/internal/logging"
	"github.com/gravitrone/objedit/internal/mapfile"
	"github.com/gravitrone/objedit/internal/objectinput"
	"github.com/gravitrone/objedit/internal/ui"
)

// EditCmd returns the `objedit edit` command.
func EditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <file>",
		Short: "Edit a JSON or YAML object in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return RunEditor(args[0])
		},
	}
}

// RunEditor opens the interactive editor on path. A missing file starts as
// an empty object and is created on first save.
func RunEditor(path string) error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errors.New("edit needs an interactive terminal; use get/set/rename/delete instead")
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}
	defer env.close()

	m, format, err := mapfile.LoadOrEmpty(path, env.cfg.FileFormat())
	if err != nil {
		return err
	}

	ui.ApplyTheme(env.cfg.Theme)
	opts := ui.EditorOptions{
		Title:   filepath.Base(path),
		VimKeys: env.cfg.VimKeys,
		Logger:  env.logger.Named(logging.NameEditor),
		Save: func(m objectinput.Mapping[any]) error {
			return mapfile.Save(path, m, format, env.cfg.Indent)
		},
	}
	if _, ok := env.cfg.NewEntryValue(); ok {
		text := env.cfg.NewValue
		opts.NewValue = func() any { return mapfile.ParseValue(text) }
	}

	env.logger.Info("editor opened", zap.String("file", path), zap.Int("keys", m.Len()))
	p := tea.NewProgram(ui.NewObjectEditor(m, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
