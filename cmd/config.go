package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/poker-client/domain/table"
)

const envPrefix = "POKERCLIENT"

type config struct {
	Centered bool          `mapstructure:"ui_centralized_view"`
	Anchor   int           `mapstructure:"ui_seat_anchor"`
	Server   string        `mapstructure:"server"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Requests string        `mapstructure:"requests"`
	Render   bool          `mapstructure:"render"`
}

func (c config) seatView() table.SeatView {
	return table.SeatView{Centered: c.Centered, Anchor: c.Anchor}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("ui_centralized_view", true)
	v.SetDefault("ui_seat_anchor", table.DefaultAnchor)
	v.SetDefault("server", "")
	v.SetDefault("timeout", 5*time.Second)
	v.SetDefault("requests", "")
	v.SetDefault("render", true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// flagKeys binds command-line flags to configuration keys.
var flagKeys = map[string]string{
	"centered": "ui_centralized_view",
	"anchor":   "ui_seat_anchor",
	"server":   "server",
	"timeout":  "timeout",
	"requests": "requests",
	"render":   "render",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		f := flags.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper, file string) (config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Timeout < 0 {
		return config{}, fmt.Errorf("negative timeout %s", cfg.Timeout)
	}
	return cfg, nil
}
