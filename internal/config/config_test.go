package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv(CredentialsEnv, "")
	return filepath.Join(base, "recbrowse")
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, 30*time.Second, c.Timeout())
}

func TestSaveAndLoad(t *testing.T) {
	dir := isolate(t)

	want := Config{LogLevel: "debug", Table: "crm.kunden", FetchTimeout: "5s", CredentialsPath: "/etc/recbrowse.ini"}
	require.NoError(t, Save(want))

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 5*time.Second, got.Timeout())
}

func TestLoad_EmptyFieldsTakeDefaults(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"table": ""}`), 0o600))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultTable, c.Table)
	assert.Equal(t, DefaultLogLevel, c.LogLevel)
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{`), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestTimeout_InvalidFallsBack(t *testing.T) {
	for _, v := range []string{"", "soon", "-1s", "0s"} {
		assert.Equal(t, DefaultFetchTimeout, Config{FetchTimeout: v}.Timeout(), v)
	}
}

func TestResolveCredentialsPath(t *testing.T) {
	dir := isolate(t)
	c := Config{}

	p, err := c.ResolveCredentialsPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "credentials.ini"), p)

	c.CredentialsPath = "/from/config.ini"
	p, err = c.ResolveCredentialsPath("")
	require.NoError(t, err)
	assert.Equal(t, "/from/config.ini", p)

	t.Setenv(CredentialsEnv, "/from/env.ini")
	p, err = c.ResolveCredentialsPath("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env.ini", p)

	p, err = c.ResolveCredentialsPath("/from/flag.ini")
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.ini", p)
}
