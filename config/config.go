package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/vitalvas/numfield/numberfield"
	"github.com/vitalvas/numfield/xlogger"
)

// EnvPrefix is the default prefix of environment overrides.
const EnvPrefix = "NUMFIELD"

// Config is the configuration of the numfield tools.
type Config struct {
	Logger xlogger.Config     `yaml:"logger" json:"logger"`
	Kernel numberfield.Config `yaml:"kernel" json:"kernel"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logger: xlogger.DefaultConfig(),
		Kernel: numberfield.DefaultConfig(),
	}
}

type Options struct {
	files     []string
	envPrefix string
}

type Option func(*Options)

// WithFiles adds YAML or JSON files, loaded in order. Missing files are
// skipped.
func WithFiles(filenames ...string) Option {
	return func(o *Options) {
		o.files = append(o.files, filenames...)
	}
}

// WithEnv enables overrides from variables named PREFIX_SECTION_KEY,
// e.g. NUMFIELD_KERNEL_MAX_TRIALS.
func WithEnv(prefix string) Option {
	return func(o *Options) {
		o.envPrefix = prefix
	}
}

// Load builds a configuration from defaults, then files, then environment,
// and validates the result.
func Load(options ...Option) (Config, error) {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}

	conf := Default()

	if len(opts.files) > 0 {
		if err := loadFromFiles(&conf, opts.files); err != nil {
			return Config{}, fmt.Errorf("failed to load from files: %w", err)
		}
	}

	if opts.envPrefix != "" {
		if err := loadFromEnv(&conf, opts.envPrefix); err != nil {
			return Config{}, fmt.Errorf("failed to load from environment: %w", err)
		}
	}

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}

	return conf, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
