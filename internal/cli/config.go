package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds settings shared by all commands. Values come from an optional
// sno.yaml file and SNO_* environment variables; command-line flags override
// both.
type Config struct {
	Format  string `mapstructure:"format"`
	Comment string `mapstructure:"comment"`
	Strict  bool   `mapstructure:"strict"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Format:  "text",
		Comment: "#;",
		Strict:  false,
	}
}

// LoadConfig reads configuration from path, or from ./sno.yaml when path is
// empty. A missing default file is not an error; a missing explicit file is.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetDefault("format", config.Format)
	v.SetDefault("comment", config.Comment)
	v.SetDefault("strict", config.Strict)
	v.SetEnvPrefix("SNO")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sno")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return config, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("cannot decode config: %w", err)
	}
	return config, nil
}
