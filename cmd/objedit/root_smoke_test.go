package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootWithoutArgsPrintsHelp(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "rename")
	assert.Contains(t, out.String(), "config")
}

func TestRootRejectsExtraArgs(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"a.json", "b.json"})
	assert.Error(t, root.Execute())
}

func TestRootWithFileNeedsTerminal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := newRootCmd()
	root.SetArgs([]string{filepath.Join(t.TempDir(), "a.json")})

	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestRootRunsSubcommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "a.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0644))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"keys", path})
	require.NoError(t, root.Execute())
	assert.Equal(t, "a\n", out.String())
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"objedit", "--help"}
	defer func() { os.Args = oldArgs }()

	main()
}
