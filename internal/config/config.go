package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. HASHTAGSET_DATA_DIR.
const EnvPrefix = "HASHTAGSET"

type Config struct {
	DataDir          string `mapstructure:"data_dir"`
	MaxHashtags      int    `mapstructure:"max_hashtags"`
	ReservedCategory string `mapstructure:"reserved_category"`
	Extension        string `mapstructure:"extension"`
	LogLevel         string `mapstructure:"log_level"`
	Seed             int64  `mapstructure:"seed"` // 0 means time-seeded

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "./data")
	v.SetDefault("max_hashtags", 30)
	v.SetDefault("reserved_category", "test")
	v.SetDefault("extension", ".txt")
	v.SetDefault("log_level", "info")
	v.SetDefault("seed", 0)
	v.SetDefault("server.addr", "localhost")
	v.SetDefault("server.port", "8080")
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"data-dir": "data_dir",
	"max":      "max_hashtags",
	"seed":     "seed",
	"addr":     "server.addr",
	"port":     "server.port",
}

// LoadConfig reads configuration from (in increasing priority) defaults,
// config.yaml, HASHTAGSET_* environment variables and flags that were set.
// configFile overrides the search for config.yaml when non-empty.
func LoadConfig(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".") // Look for config.yaml in the current directory
		v.AddConfigPath("$HOME/.config/hashtagset")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist when we were only searching for it
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for flagName, key := range flagKeys {
			if f := flags.Lookup(flagName); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	dataDir, err := ResolveDataDir(config.DataDir)
	if err != nil {
		return nil, err
	}
	config.DataDir = dataDir

	return &config, nil
}
