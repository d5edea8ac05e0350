// Package config layers defaults, an optional config file, DIFF_*
// environment variables and command line flags into a single Config.
package config

import (
	"fmt"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys understood in config files and, upper-cased with the DIFF_ prefix, in
// the environment.
const (
	KeyMode     = "mode"
	KeyEngine   = "engine"
	KeyParallel = "parallel"
	KeyTimeout  = "timeout"
	KeyColor    = "color"
	KeyLogFile  = "log_file"
	KeyFormat   = "format"
)

// Engine names.
const (
	EngineLCS = "lcs"
	EngineDMP = "dmp"
)

const (
	configName = ".diff"
	configType = "yaml"
	envPrefix  = "DIFF"
)

// Config is the resolved configuration of one invocation.
type Config struct {
	Mode     string        `mapstructure:"mode"`
	Engine   string        `mapstructure:"engine"`
	Parallel int           `mapstructure:"parallel"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Color    string        `mapstructure:"color"`
	LogFile  string        `mapstructure:"log_file"`
	Format   string        `mapstructure:"format"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyMode, "interactive")
	v.SetDefault(KeyEngine, EngineLCS)
	v.SetDefault(KeyParallel, 1)
	v.SetDefault(KeyTimeout, 10*time.Second)
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyFormat, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile loads cfgFile, or searches for .diff.yaml in the working
// directory and then the home directory. A missing file is only an error
// when cfgFile was given explicitly. It returns the file that was read.
func ReadFile(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")

		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "reading config")
	}

	return v.ConfigFileUsed(), nil
}

// BindFlag makes the named flag, when set, override key.
func BindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) error {
	flag := flags.Lookup(name)
	if flag == nil {
		return errors.Errorf("unknown flag %q", name)
	}

	return errors.WithStack(v.BindPFlag(key, flag))
}

// Decode resolves every layer into a validated Config.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects values no command can act on.
func (c Config) Validate() error {
	if err := oneOf(KeyMode, c.Mode, "interactive", "batch", "program"); err != nil {
		return err
	}

	if err := oneOf(KeyEngine, c.Engine, EngineLCS, EngineDMP); err != nil {
		return err
	}

	if err := oneOf(KeyColor, c.Color, "auto", "always", "never"); err != nil {
		return err
	}

	// An empty format is derived from the output path.
	if err := oneOf(KeyFormat, c.Format, "", "toml", "yaml", "yml"); err != nil {
		return err
	}

	if c.Parallel < 1 {
		return fmt.Errorf("%s must be at least 1, got %d", KeyParallel, c.Parallel)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyTimeout, c.Timeout)
	}

	return nil
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}

	return fmt.Errorf("invalid %s %q: expected one of %q", key, value, allowed)
}
