package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPunctuation(t *testing.T) {
	cfg := Default()
	require.Equal(t, byte('&'), cfg.Punct.And)
	require.Equal(t, byte('|'), cfg.Punct.Or)
}

func TestLoadOverridesPunctuation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cubecalc.toml")
	doc := "mcc_budget_ms = 500\ndefault_verbosity = 3\n\n[punct]\nand = \"*\"\nor = \"+\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, byte('*'), cfg.Punct.And)
	require.Equal(t, byte('+'), cfg.Punct.Or)
	require.Equal(t, 3, cfg.DefaultVerbosity)
}

func TestNewContextAppliesConfig(t *testing.T) {
	cfg := Default()
	cfg.Punct.And = '*'
	ctx := cfg.NewContext(4)
	require.Equal(t, byte('*'), ctx.Punct.And)
	require.EqualValues(t, 4, ctx.NumVars)
}
