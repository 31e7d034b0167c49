package numberfield

// Config holds the tunable limits of field construction.
type Config struct {
	// RootPrecision is the number of significant digits used to match a
	// generator against the numeric roots of its minimal polynomial. Roots are
	// complex128 approximations, which bounds the useful precision.
	RootPrecision int `yaml:"root_precision" json:"root_precision" validate:"min=1,max=9"`

	// MaxTrials bounds the integers t tried when combining two generators
	// into theta + t*g.
	MaxTrials int `yaml:"max_trials" json:"max_trials" validate:"min=1"`

	// MaxFactorDegree bounds the degree of polynomials whose factors are
	// searched numerically.
	MaxFactorDegree int `yaml:"max_factor_degree" json:"max_factor_degree" validate:"min=1,max=64"`
}

// DefaultConfig returns the default limits.
func DefaultConfig() Config {
	return Config{
		RootPrecision:   2,
		MaxTrials:       64,
		MaxFactorDegree: 24,
	}
}

func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.RootPrecision <= 0 {
		c.RootPrecision = def.RootPrecision
	}
	if c.MaxTrials <= 0 {
		c.MaxTrials = def.MaxTrials
	}
	if c.MaxFactorDegree <= 0 {
		c.MaxFactorDegree = def.MaxFactorDegree
	}
	return c
}
