// Package config loads settings from ~/.vehiculo/config.toml, a local .env
// file and VA_ prefixed environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "VA"
	DirName    = ".vehiculo"
	FileName   = "config.toml"
	EnvFile    = ".env"
	DriverTOML = "toml"
	DriverSQL  = "sqlite"

	tomlStoreFile   = "store.toml"
	sqliteStoreFile = "store.db"
)

type Config struct {
	Store    StoreConfig
	Log      LogConfig
	Speech   SpeechConfig
	Telegram TelegramConfig
	Remind   RemindConfig
}

type StoreConfig struct {
	Driver string
	Path   string
}

type LogConfig struct {
	Level    string
	Encoding string
}

type SpeechConfig struct {
	Enabled bool
	Command string
	Voice   string
	Rate    int
}

type TelegramConfig struct {
	Token        string
	AllowedChats []int64
}

type RemindConfig struct {
	Schedule string
	Chats    []int64
}

var (
	ErrUnknownDriver = errors.New("unknown store driver")
	ErrEmptyPath     = errors.New("store path is empty")
	ErrSpeechRate    = errors.New("speech rate must be positive")
)

// Options locate the inputs. Empty fields use the user's home directory and
// the working directory.
type Options struct {
	Home    string
	File    string
	EnvFile string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", DriverTOML)
	v.SetDefault("store.path", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("speech.enabled", false)
	v.SetDefault("speech.command", "espeak-ng")
	v.SetDefault("speech.voice", "es")
	v.SetDefault("speech.rate", 160)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.allowed_chats", []int64{})
	v.SetDefault("remind.schedule", "0 8 * * *")
	v.SetDefault("remind.chats", []int64{})
}

// Load returns the decoded settings together with the viper instance they
// came from. store.path is resolved to an absolute path on the returned viper.
func Load(opts Options) (Config, *viper.Viper, error) {
	home := opts.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return Config{}, nil, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = EnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := opts.File
	if file == "" {
		file = filepath.Join(home, DirName, FileName)
	}
	if _, err := os.Stat(file); err == nil {
		v.SetConfigFile(file)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, nil, fmt.Errorf("stat config %s: %w", file, err)
	}

	cfg, err := decode(v, home)
	if err != nil {
		return Config{}, nil, err
	}
	v.Set("store.path", cfg.Store.Path)

	return cfg, v, nil
}

func decode(v *viper.Viper, home string) (Config, error) {
	allowed, err := chatIDs(v.Get("telegram.allowed_chats"))
	if err != nil {
		return Config{}, fmt.Errorf("decode telegram.allowed_chats: %w", err)
	}
	remindChats, err := chatIDs(v.Get("remind.chats"))
	if err != nil {
		return Config{}, fmt.Errorf("decode remind.chats: %w", err)
	}

	driver := strings.ToLower(strings.TrimSpace(v.GetString("store.driver")))

	return Config{
		Store: StoreConfig{
			Driver: driver,
			Path:   storePath(v.GetString("store.path"), driver, home),
		},
		Log: LogConfig{
			Level:    v.GetString("log.level"),
			Encoding: v.GetString("log.encoding"),
		},
		Speech: SpeechConfig{
			Enabled: v.GetBool("speech.enabled"),
			Command: v.GetString("speech.command"),
			Voice:   v.GetString("speech.voice"),
			Rate:    v.GetInt("speech.rate"),
		},
		Telegram: TelegramConfig{
			Token:        v.GetString("telegram.token"),
			AllowedChats: allowed,
		},
		Remind: RemindConfig{
			Schedule: v.GetString("remind.schedule"),
			Chats:    remindChats,
		},
	}, nil
}

func storePath(raw, driver, home string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		name := tomlStoreFile
		if driver == DriverSQL {
			name = sqliteStoreFile
		}
		return filepath.Join(home, DirName, name)
	}
	if raw == "~" {
		return home
	}
	if strings.HasPrefix(raw, "~/") {
		return filepath.Join(home, raw[2:])
	}

	return raw
}

// chatIDs accepts a list from a config file or a comma separated string from the environment.
func chatIDs(raw any) ([]int64, error) {
	var items []any
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		for _, field := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' }) {
			items = append(items, field)
		}
	case []int64:
		return append([]int64(nil), v...), nil
	default:
		slice, err := cast.ToSliceE(v)
		if err != nil {
			return nil, err
		}
		items = slice
	}

	out := make([]int64, 0, len(items))
	for _, item := range items {
		id, err := cast.ToInt64E(item)
		if err != nil {
			return nil, fmt.Errorf("chat id %v: %w", item, err)
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverTOML, DriverSQL:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Store.Driver)
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		return ErrEmptyPath
	}
	if c.Speech.Rate <= 0 {
		return fmt.Errorf("%w: %d", ErrSpeechRate, c.Speech.Rate)
	}

	return nil
}
