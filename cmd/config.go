package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fileConfig mirrors the command-line flags. Values from the file only
// apply to flags the user did not set explicitly.
type fileConfig struct {
	URL          string `mapstructure:"url"`
	Stdio        string `mapstructure:"stdio"`
	Headers      string `mapstructure:"headers"`
	AuthToken    string `mapstructure:"auth_token"`
	Timeout      int    `mapstructure:"timeout"`
	Schema       string `mapstructure:"schema"`
	Output       string `mapstructure:"output"`
	ServerURL    string `mapstructure:"server_url"`
	Tools        string `mapstructure:"tools"`
	ExcludeTools string `mapstructure:"exclude_tools"`
	Pin          string `mapstructure:"pin"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %s", path, err)
	}
	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %s", path, err)
	}
	return &cfg, nil
}

// applyFileConfig loads --config (if given) and fills in any flags the
// user left at their defaults.
func applyFileConfig(cmd *cobra.Command) error {
	if flagConfig == "" {
		return nil
	}
	cfg, err := loadFileConfig(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Lookup(name) != nil && !flags.Changed(name) {
			apply()
		}
	}

	if cfg.URL != "" {
		set("url", func() { flagURL = cfg.URL })
	}
	if cfg.Stdio != "" {
		set("stdio", func() { flagStdio = cfg.Stdio })
	}
	if cfg.Headers != "" {
		set("headers", func() { flagHeaders = cfg.Headers })
	}
	if cfg.AuthToken != "" {
		set("auth-token", func() { flagAuthToken = cfg.AuthToken })
	}
	if cfg.Timeout != 0 {
		set("timeout", func() { flagTimeout = cfg.Timeout })
	}
	if cfg.Schema != "" {
		set("schema", func() { flagSchema = cfg.Schema })
	}
	if cfg.Output != "" {
		set("output", func() { flagOutput = cfg.Output })
	}
	if cfg.ServerURL != "" {
		set("server-url", func() { flagServerURL = cfg.ServerURL })
	}
	if cfg.Tools != "" {
		set("tools", func() { flagTools = cfg.Tools })
	}
	if cfg.ExcludeTools != "" {
		set("exclude-tools", func() { flagExcludeTools = cfg.ExcludeTools })
	}
	if cfg.Pin != "" {
		set("pin", func() { flagPin = cfg.Pin })
	}
	return nil
}
