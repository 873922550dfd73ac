package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, home string) Config {
	t.Helper()

	cfg, v, err := Load(Options{Home: home, EnvFile: filepath.Join(home, "missing.env")})
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, cfg.Store.Path, v.GetString("store.path"))
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg := loadFrom(t, home)
	assert.Equal(t, DriverTOML, cfg.Store.Driver)
	assert.Equal(t, filepath.Join(home, ".vehiculo", "store.toml"), cfg.Store.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.False(t, cfg.Speech.Enabled)
	assert.Equal(t, "espeak-ng", cfg.Speech.Command)
	assert.Equal(t, "es", cfg.Speech.Voice)
	assert.Equal(t, 160, cfg.Speech.Rate)
	assert.Empty(t, cfg.Telegram.Token)
	assert.Empty(t, cfg.Telegram.AllowedChats)
	assert.Equal(t, "0 8 * * *", cfg.Remind.Schedule)
	assert.Empty(t, cfg.Remind.Chats)
	require.NoError(t, cfg.Validate())
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".vehiculo")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[store]
driver = "sqlite"

[speech]
enabled = true
voice = "es-419"

[telegram]
token = "123:abc"
allowed_chats = [10, -20]

[remind]
schedule = "30 7 * * 1-5"
chats = [10]
`), 0o600))

	cfg := loadFrom(t, home)
	assert.Equal(t, DriverSQL, cfg.Store.Driver)
	assert.Equal(t, filepath.Join(home, ".vehiculo", "store.db"), cfg.Store.Path)
	assert.True(t, cfg.Speech.Enabled)
	assert.Equal(t, "es-419", cfg.Speech.Voice)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, []int64{10, -20}, cfg.Telegram.AllowedChats)
	assert.Equal(t, "30 7 * * 1-5", cfg.Remind.Schedule)
	assert.Equal(t, []int64{10}, cfg.Remind.Chats)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".vehiculo")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[log]\nlevel = \"info\"\n"), 0o600))

	t.Setenv("VA_LOG_LEVEL", "debug")
	t.Setenv("VA_STORE_PATH", "~/datos/app.toml")
	t.Setenv("VA_TELEGRAM_ALLOWED_CHATS", "1, 2,3")

	cfg := loadFrom(t, home)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, "datos", "app.toml"), cfg.Store.Path)
	assert.Equal(t, []int64{1, 2, 3}, cfg.Telegram.AllowedChats)
}

func TestDotEnvIsLoaded(t *testing.T) {
	home := t.TempDir()
	envFile := filepath.Join(home, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("VA_SPEECH_RATE=190\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("VA_SPEECH_RATE") })

	cfg, _, err := Load(Options{Home: home, EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, 190, cfg.Speech.Rate)
}

func TestLoadRejectsBadChatIDs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("VA_REMIND_CHATS", "10,abc")

	_, _, err := Load(Options{Home: home, EnvFile: filepath.Join(home, "missing.env")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remind.chats")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{
		Store:  StoreConfig{Driver: DriverTOML, Path: "/tmp/store.toml"},
		Speech: SpeechConfig{Rate: 160},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "driver", mutate: func(c *Config) { c.Store.Driver = "redis" }, want: ErrUnknownDriver},
		{name: "path", mutate: func(c *Config) { c.Store.Path = " " }, want: ErrEmptyPath},
		{name: "rate", mutate: func(c *Config) { c.Speech.Rate = 0 }, want: ErrSpeechRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestChatIDs(t *testing.T) {
	t.Parallel()

	got, err := chatIDs([]any{int64(5), "6", 7})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 7}, got)

	got, err = chatIDs("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = chatIDs(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
