// Package config binds command-line flags and DHPING_* environment variables.
package config

import (
	"strings"
	"time"

	"dhping/internal/i18n"
	"dhping/internal/probe"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DHPING_COLOR.
const EnvPrefix = "DHPING"

// Config holds the settings of one run.
type Config struct {
	Lang    string // auto, en or zh
	Color   string // auto, always or never
	Verbose bool
	Help    bool
	Version bool

	// Timeout is the probe receive timeout. It is not user configurable.
	Timeout time.Duration
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Lang:    "auto",
		Color:   "auto",
		Timeout: probe.DefaultTimeout,
	}
}

// RegisterFlags adds the dh-ping flags to fs using def for defaults.
func RegisterFlags(fs *pflag.FlagSet, def Config) {
	fs.String("lang", def.Lang, "display language (auto, en, zh)")
	fs.String("color", def.Color, "colored output (auto, always, never)")
	fs.Bool("verbose", def.Verbose, "log socket diagnostics to stderr")
	fs.BoolP("help", "?", false, "display help and exit")
	fs.BoolP("version", "v", false, "display version and exit")
}

// Load resolves the configuration from fs and the environment. Flags set on
// the command line win over environment variables, which win over defaults.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Default(), errors.Wrap(err, "bind flags")
	}

	cfg := Default()
	cfg.Lang = strings.ToLower(strings.TrimSpace(v.GetString("lang")))
	cfg.Color = strings.ToLower(strings.TrimSpace(v.GetString("color")))
	cfg.Verbose = v.GetBool("verbose")
	cfg.Help = v.GetBool("help")
	cfg.Version = v.GetBool("version")

	switch cfg.Color {
	case "auto", "always", "never":
	default:
		bad := cfg.Color
		cfg.Color = "auto"
		return cfg, errors.Errorf("invalid color mode %q", bad)
	}
	if cfg.Lang != "auto" && !i18n.IsSupported(cfg.Lang) {
		bad := cfg.Lang
		cfg.Lang = "auto"
		return cfg, errors.Errorf("invalid language %q", bad)
	}
	return cfg, nil
}
