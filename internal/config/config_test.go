package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CIPHER", "KEY", "ALPHABET", "SEED", "KEEP_SPACES", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(EnvPrefix+k, "")
	}
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yml", `cipher: zigzag
key: 5x4
seed: 17
keep_spaces: true
log:
  level: debug
`)
	t.Setenv(EnvPrefix+"KEY", "9x8")
	t.Setenv(EnvPrefix+"LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zigzag", cfg.Cipher)
	assert.Equal(t, "9x8", cfg.Key, "environment beats file")
	assert.Equal(t, int64(17), cfg.Seed)
	assert.True(t, cfg.KeepSpaces)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "", cfg.Alphabet, "absent keys keep defaults")
}

func TestLoad_LocalFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, DefaultFile, "cipher: stencil\nalphabet: ABC\n")
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "stencil", cfg.Cipher)
	assert.Equal(t, "ABC", cfg.Alphabet)
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "empty.yml", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist, "an explicit path must exist")

	_, err = Load(writeFile(t, dir, "unknown.yml", "colour: blue\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, dir, "badseed.yml", "seed: many\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, dir, "badlevel.yml", "log:\n  level: loud\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_EnvErrors(t *testing.T) {
	cases := map[string]string{
		"SEED":        "abc",
		"KEEP_SPACES": "perhaps",
		"LOG_FORMAT":  "xml",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			t.Setenv(EnvPrefix+k, v)
			_, err := Load("")
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
