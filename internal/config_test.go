package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 2*time.Second, cfg.FeedbackDuration())
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := Default()
	require.NoError(t, cfg.Set("default_action", "LINK"))
	require.NoError(t, cfg.Set("page_size", "5"))
	require.NoError(t, cfg.Set("feedback_window", "1500ms"))
	require.NoError(t, SaveConfigTo(path, cfg))

	got, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "link", got.DefaultAction)
	assert.Equal(t, 5, got.PageSize)
	assert.Equal(t, 1500*time.Millisecond, got.FeedbackDuration())
}

func TestSetRejectsInvalidValues(t *testing.T) {
	cfg := Default()
	for key, value := range map[string]string{
		"default_action":  "fax",
		"feedback_window": "-1s",
		"page_size":       "0",
		"debug":           "maybe",
		"colour":          "blue",
	} {
		assert.Error(t, cfg.Set(key, value), key)
	}
	assert.Equal(t, Default(), cfg)
}

func TestGetKnownKeys(t *testing.T) {
	cfg := Default()
	for _, key := range Keys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
	v, _ := cfg.Get("page_size")
	assert.Equal(t, "3", v)
	_, err := cfg.Get("nope")
	assert.Error(t, err)
}

func TestLoadConfigAppliesEnv(t *testing.T) {
	t.Setenv("TENIS_HOME", t.TempDir())
	t.Setenv("TENIS_DEFAULT_ACTION", "link")
	t.Setenv("TENIS_PAGE_SIZE", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "link", cfg.DefaultAction)
	assert.Equal(t, 7, cfg.PageSize)
}

func TestLoadConfigReportsBadEnv(t *testing.T) {
	t.Setenv("TENIS_HOME", t.TempDir())
	t.Setenv("TENIS_PAGE_SIZE", "many")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Equal(t, 3, cfg.PageSize)
}

func TestRememberKeepsEnvOverridesOutOfFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TENIS_HOME", dir)
	t.Setenv("TENIS_PAGE_SIZE", "9")

	require.NoError(t, Remember("/tmp/jugadores.csv", "link"))

	stored, err := LoadConfigFrom(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/jugadores.csv", stored.LastFile)
	assert.Equal(t, "link", stored.DefaultAction)
	assert.Equal(t, 3, stored.PageSize)
}

func TestRememberWithoutActionKeepsStoredAction(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TENIS_HOME", dir)
	t.Setenv("TENIS_DEFAULT_ACTION", "link")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "link", cfg.DefaultAction)

	require.NoError(t, Remember("/tmp/jugadores.csv", ""))

	stored, err := LoadConfigFrom(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, "copy", stored.DefaultAction)
	assert.Equal(t, "/tmp/jugadores.csv", stored.LastFile)
}
