package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

const Version = "v1.0.0"

// Config holds user-level defaults read from ~/.layergen.yaml and the
// LAYERGEN_* environment. Flags always win over both.
type Config struct {
	Workspace string `mapstructure:"workspace"` // default parent dir for new projects
	NoColor   bool   `mapstructure:"no_color"`  // disable styled output
}

// LoadConfig reads the optional config file and environment. A missing
// config file is not an error; defaults apply.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return loadFrom(home)
}

func loadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".layergen")
	v.SetConfigType("yaml")

	v.SetDefault("workspace", ".")
	v.SetDefault("no_color", false)

	v.SetEnvPrefix("LAYERGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
