package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", rootCmd.Version)
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "marios", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.RunE, "root boots the desktop")

	for _, flag := range []string{"config", "debug"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
	for _, flag := range []string{"mobile", "no-boot", "mcp"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(flag), flag)
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}
	testCmd.SetVersionTemplate(`{{printf "marios version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)
	testCmd.SetArgs([]string{"--version"})
	require.NoError(t, testCmd.Execute())
	assert.Equal(t, "marios version 1.0.0\n", buf.String())
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, expected := range []string{"boot", "serve", "replay", "windows", "ctl", "version", "self-update"} {
		assert.True(t, found[expected], "expected subcommand %s to be registered", expected)
	}
}

func TestVersionCommand(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	rootCmd.Version = "2.0.0"

	c := newVersionCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.Run(c, nil)
	assert.Equal(t, "marios version 2.0.0\n", buf.String())
}

func TestWindowsCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("desktop:\n  defaultWindow: about\n"), 0o644))

	originalPath := configPath
	defer func() { configPath = originalPath }()
	configPath = path

	c := newWindowsCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetArgs([]string{"--no-color"})
	require.NoError(t, c.Execute())

	out := buf.String()
	assert.Contains(t, out, "about *")
	assert.Contains(t, out, "terminal-main")
	assert.Contains(t, out, "contact form")

	buf.Reset()
	c = newWindowsCmd()
	c.SetOut(&buf)
	c.SetArgs([]string{"-o", "xml"})
	err := c.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("boot:\n  skip: true\n"), 0o644))
	scriptPath := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(scriptPath, []byte(`
steps:
  - click: skills
  - expect: {active: skills}
`), 0o644))

	originalPath := configPath
	defer func() { configPath = originalPath }()
	configPath = cfgPath

	c := newReplayCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetArgs([]string{scriptPath, "--no-color", "-o", "json"})
	require.NoError(t, c.Execute())

	out := buf.String()
	assert.Contains(t, out, "click skills")
	assert.True(t, strings.Contains(out, `"active": "skills"`), out)
}

func TestRootCommandHelp(t *testing.T) {
	var buf bytes.Buffer
	testRootCmd := &cobra.Command{
		Use:          rootCmd.Use,
		Short:        rootCmd.Short,
		Long:         rootCmd.Long,
		SilenceUsage: true,
	}
	testRootCmd.SetOut(&buf)
	testRootCmd.SetArgs([]string{"--help"})
	require.NoError(t, testRootCmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "marios")
	assert.Contains(t, output, "portfolio desktop")
}
