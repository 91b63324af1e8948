package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a config file for the bounded variant with redis
		path := writeConfig(t, `
log-level: debug
variant: bounded
human-mark: o
human-first: false
search-depth: 3
redis:
  enabled: true
  host: cache
  ttl: 1h
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "bounded", conf.Variant)
		assert.Equal(t, "o", conf.HumanMark)
		assert.False(t, conf.HumanFirst)
		assert.Equal(t, 3, conf.SearchDepth)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.TTL)
		assert.Equal(t, ModePlay, conf.Mode)
		require.NoError(t, conf.Validate())
	})

	t.Run("Falls back to the environment", func(t *testing.T) {
		// Given: no config file and a few variables
		t.Setenv("VARIANT", "rules")
		t.Setenv("ARENA_GAMES", "12")

		// When: the config is loaded from a missing path
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: env values and defaults are used
		require.NoError(t, err)
		assert.Equal(t, "rules", conf.Variant)
		assert.Equal(t, 12, conf.Arena.Games)
		assert.Equal(t, 4, conf.Arena.Workers)
		assert.Equal(t, "info", conf.LogLevel)
		assert.True(t, conf.HumanFirst)
		assert.True(t, conf.Color)
		assert.Equal(t, 24*time.Hour, conf.Redis.TTL)
	})

	t.Run("Broken file", func(t *testing.T) {
		path := writeConfig(t, "variant: [")

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_RegisterFlags(t *testing.T) {
	// Given: a config loaded from a file
	conf, err := Load(writeConfig(t, "variant: rules\nsearch-depth: 2\n"))
	require.NoError(t, err)

	// When: some flags are given
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	conf.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-v", "bounded", "--first=false", "--mode", "arena", "--games", "8"}))

	// Then: given flags override, the rest keeps file values
	assert.Equal(t, "bounded", conf.Variant)
	assert.False(t, conf.HumanFirst)
	assert.Equal(t, ModeArena, conf.Mode)
	assert.Equal(t, 8, conf.Arena.Games)
	assert.Equal(t, 2, conf.SearchDepth)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel:    "warn",
			Mode:        ModeArena,
			Variant:     "exhaustive",
			HumanMark:   "X",
			SearchDepth: 4,
			Arena:       Arena{Games: 10, Workers: 2, Opponent: "random"},
		}
	}

	require.NoError(t, valid().Validate())

	conf := valid()
	conf.LogLevel = "verbose"
	require.ErrorIs(t, conf.Validate(), ErrInvalidLogLevel)

	conf = valid()
	conf.Mode = "tournament"
	require.ErrorIs(t, conf.Validate(), ErrInvalidMode)

	conf = valid()
	conf.Variant = "oracle"
	require.ErrorIs(t, conf.Validate(), ErrInvalidVariant)

	conf = valid()
	conf.HumanMark = "Z"
	require.Error(t, conf.Validate())

	conf = valid()
	conf.SearchDepth = 0
	require.ErrorIs(t, conf.Validate(), ErrInvalidDepth)

	conf = valid()
	conf.Arena.Opponent = "oracle"
	require.ErrorIs(t, conf.Validate(), ErrInvalidVariant)

	conf = valid()
	conf.Arena.Workers = 0
	require.ErrorIs(t, conf.Validate(), ErrInvalidArena)
}
