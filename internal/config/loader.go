package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	configDir  = ".tablepeek"
	configFile = "config"
	configType = "yaml"
	envPrefix  = "TABLEPEEK"
)

// DefaultPath returns ~/.tablepeek/config.yaml.
func DefaultPath() (string, error) {
	dir, err := configDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile+"."+configType), nil
}

// Load reads the configuration from path, or from ~/.tablepeek/config.yaml
// when path is empty. Returns an empty config if the file does not exist.
// Preferences can be overridden with TABLEPEEK_* environment variables.
func Load(path string) (*Config, error) {
	v := newViper()

	if path == "" {
		dir, err := configDirPath()
		if err != nil {
			return nil, errors.Wrap(err, "config dir")
		}
		v.SetConfigName(configFile)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
	} else {
		v.SetConfigFile(path)
	}

	cfg := &Config{}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	return cfg, nil
}

// Save writes the configuration to path, or to ~/.tablepeek/config.yaml when
// path is empty. Passwords of keyring-backed connections are never written.
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return errors.Wrap(err, "config dir")
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	conns := make([]Connection, len(cfg.Connections))
	for i, c := range cfg.Connections {
		if c.Keyring {
			c.Password = ""
		}
		conns[i] = c
	}

	v := viper.New()
	v.SetConfigType(configType)
	v.Set("connections", conns)
	v.Set("preferences", cfg.Preferences)

	return v.WriteConfigAs(path)
}

// SaveConnection adds conn to cfg and persists it. With conn.Keyring set the
// password goes to the OS keyring first.
func SaveConnection(cfg *Config, conn Connection, path string) error {
	if conn.Keyring && conn.Password != "" {
		if err := StorePassword(conn); err != nil {
			return err
		}
	}
	cfg.AddConnection(conn)
	return Save(cfg, path)
}

// DefaultConnection returns the default connection from config, or the first one.
func DefaultConnection(cfg *Config) *Connection {
	if len(cfg.Connections) == 0 {
		return nil
	}

	if cfg.Preferences.DefaultConnection != "" {
		for i := range cfg.Connections {
			if cfg.Connections[i].Name == cfg.Preferences.DefaultConnection {
				return &cfg.Connections[i]
			}
		}
	}

	return &cfg.Connections[0]
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper knows about
	_ = v.BindEnv("preferences.style", envPrefix+"_STYLE")
	_ = v.BindEnv("preferences.log_level", envPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("preferences.default_connection", envPrefix+"_CONNECTION")

	v.SetDefault("preferences.style", "plain")
	v.SetDefault("preferences.log_level", "warn")
	return v
}

func configDirPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir), nil
}
