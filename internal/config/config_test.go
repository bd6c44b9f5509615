package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromPathDefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromPath(tmpDir)
	require.NoError(t, err)

	require.Equal(t, DefaultIndent, cfg.Indent)
	require.Equal(t, DefaultTheme, cfg.Theme)

	absPath, err := filepath.Abs(tmpDir)
	require.NoError(t, err)
	require.Equal(t, absPath, cfg.ProjectRoot)
}

func TestLoadFromPathCustomIndent(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := "indent: 2\ntheme: dark\n"
	configPath := filepath.Join(tmpDir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := LoadFromPath(tmpDir)
	require.NoError(t, err)

	require.Equal(t, 2, cfg.Indent)
	require.Equal(t, "dark", cfg.Theme)
}

func TestLoadFromPathLanguageAliases(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := "languages:\n  js: javascript\n  ts: typescript\n"
	configPath := filepath.Join(tmpDir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := LoadFromPath(tmpDir)
	require.NoError(t, err)

	require.Equal(t, "javascript", cfg.Normalize("js"))
	require.Equal(t, "rust", cfg.Normalize("rust"), "unmapped languages pass through unchanged")
}

func TestLoadFromPathDiscoveryFromNestedDir(t *testing.T) {
	tmpDir := t.TempDir()

	nestedDir := filepath.Join(tmpDir, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nestedDir, 0o755))

	configContent := "indent: 8\n"
	configPath := filepath.Join(tmpDir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	cfg, err := LoadFromPath(nestedDir)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Indent, "config should be found by walking up from %s", nestedDir)

	absRoot, err := filepath.Abs(tmpDir)
	require.NoError(t, err)
	require.Equal(t, absRoot, cfg.ProjectRoot)
}

func TestLoadFromPathInvalidTheme(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := "theme: does-not-exist\n"
	configPath := filepath.Join(tmpDir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	_, err := LoadFromPath(tmpDir)
	require.Error(t, err)
}

func TestLoadFromPathNegativeIndent(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := "indent: -1\n"
	configPath := filepath.Join(tmpDir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	_, err := LoadFromPath(tmpDir)
	require.Error(t, err)
}

func TestLoadFromPathMalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("indent: [this is not valid\n"), 0o644))

	_, err := LoadFromPath(tmpDir)
	require.Error(t, err)
}
