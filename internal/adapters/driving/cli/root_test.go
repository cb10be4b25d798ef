package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "vocalise", rootCmd.Use)
}

func TestRootCmd_CommandsRegistered(t *testing.T) {
	expected := []string{"normalize", "batch", "watch", "settings", "lexicon", "tui", "version"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %s not registered", name)
	}
}

func TestRootCmd_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "vocalise")
	assert.Contains(t, out, "normalize")
}

func TestBatchCmd_NotConfigured(t *testing.T) {
	_, err := execute(t, "batch", "some.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestWatchCmd_NotConfigured(t *testing.T) {
	_, err := execute(t, "watch", ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestTUICmd_NotConfigured(t *testing.T) {
	_, err := execute(t, "tui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
